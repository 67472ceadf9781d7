package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/piwi3910/cabinetry/internal/engine"
	"github.com/piwi3910/cabinetry/internal/export"
	"github.com/piwi3910/cabinetry/internal/model"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle       = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
	styleWarning     = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCabinetRow  = lipgloss.NewStyle().Bold(true)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// sceneTable renders the bill of materials of a resolved scene.
func sceneTable(bom export.BOM) string {
	rows := make([][]string, 0, len(bom.Rows))
	for _, r := range bom.Rows {
		rows = append(rows, []string{r.Name, r.Group, r.PositionText(), r.DimensionsText(), r.Color, r.Notes, r.ID})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Component", "Cabinet", "Position", "W x H x D", "Color", "Notes", "ID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row >= 0 && row < len(bom.Rows) && bom.Rows[row].Type == model.TypeCabinet {
				return styleCabinetRow
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

// catalogTable renders the factory defaults for every component type.
func catalogTable(defaults []model.Defaults) string {
	rows := make([][]string, 0, len(defaults))
	for _, d := range defaults {
		axes := "-"
		if len(d.ConstrainedDimensions) > 0 {
			axes = ""
			for i, a := range d.ConstrainedDimensions {
				if i > 0 {
					axes += ", "
				}
				axes += string(a)
			}
		}
		rows = append(rows, []string{
			d.Type.String(),
			fmt.Sprintf("%s x %s x %s", fmtMM(d.Dimensions.Width), fmtMM(d.Dimensions.Height), fmtMM(d.Dimensions.Depth)),
			d.ConstraintType.String(),
			axes,
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "W x H x D (mm)", "Constraint", "Locked").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

func printIssues(w io.Writer, issues []engine.Issue) {
	for _, is := range issues {
		printWarning(w, "%s", is)
	}
}

func fmtMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
