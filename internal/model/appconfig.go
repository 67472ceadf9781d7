package model

import "fmt"

// Label paper formats supported by the label exporter.
const (
	PaperLetter = "Letter"
	PaperA4     = "A4"
)

// AppConfig holds application-wide preferences.
type AppConfig struct {
	Theme        string `json:"theme" toml:"theme"`                 // "light" or "dark"
	HistoryDepth int    `json:"history_depth" toml:"history_depth"` // Undo steps kept, 0 = default
	LabelPaper   string `json:"label_paper" toml:"label_paper"`     // "Letter" or "A4"
	ReportTitle  string `json:"report_title" toml:"report_title"`
}

// DefaultHistoryDepth is the number of undo steps kept when unset.
const DefaultHistoryDepth = 50

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme:        LightPalette.Name,
		HistoryDepth: DefaultHistoryDepth,
		LabelPaper:   PaperLetter,
		ReportTitle:  "Cabinet Design",
	}
}

// Validate checks the config for values the application cannot use.
func (c AppConfig) Validate() error {
	if _, err := PaletteByName(c.Theme); err != nil {
		return err
	}
	if c.HistoryDepth < 0 {
		return fmt.Errorf("history depth must not be negative, got %d", c.HistoryDepth)
	}
	switch c.LabelPaper {
	case "", PaperLetter, PaperA4:
	default:
		return fmt.Errorf("unknown label paper %q", c.LabelPaper)
	}
	return nil
}

// Palette returns the palette selected by the config, falling back to light.
func (c AppConfig) Palette() Palette {
	p, err := PaletteByName(c.Theme)
	if err != nil {
		return LightPalette
	}
	return p
}
