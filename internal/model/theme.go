package model

import (
	"fmt"
	"strings"
)

// Palette holds the default display colours handed to new components.
type Palette struct {
	Name       string `json:"name"`
	Cabinet    string `json:"cabinet"`
	Shelf      string `json:"shelf"`
	Drawer     string `json:"drawer"`
	HangingRod string `json:"hanging_rod"`
	Handle     string `json:"handle"`
}

var (
	LightPalette = Palette{
		Name:       "light",
		Cabinet:    "#E8D0B0",
		Shelf:      "#D4B483",
		Drawer:     "#C1A87D",
		HangingRod: "#A0A0A0",
		Handle:     "#808080",
	}
	DarkPalette = Palette{
		Name:       "dark",
		Cabinet:    "#5D4037",
		Shelf:      "#795548",
		Drawer:     "#8D6E63",
		HangingRod: "#616161",
		Handle:     "#9E9E9E",
	}
)

// PaletteByName returns the built-in palette with the given name.
func PaletteByName(name string) (Palette, error) {
	switch strings.ToLower(name) {
	case "", LightPalette.Name:
		return LightPalette, nil
	case DarkPalette.Name:
		return DarkPalette, nil
	default:
		return Palette{}, fmt.Errorf("unknown theme %q", name)
	}
}

// ColorFor returns the palette colour for t, or "" for unknown types.
func (p Palette) ColorFor(t ComponentType) string {
	switch t {
	case TypeCabinet:
		return p.Cabinet
	case TypeShelf:
		return p.Shelf
	case TypeDrawer:
		return p.Drawer
	case TypeHangingRod:
		return p.HangingRod
	case TypeHandle:
		return p.Handle
	default:
		return ""
	}
}

// Toggle flips between the light and dark palettes.
func (p Palette) Toggle() Palette {
	if p.Name == LightPalette.Name {
		return DarkPalette
	}
	return LightPalette
}
