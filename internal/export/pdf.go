package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/cabinetry/internal/model"
)

// rgb is a colour in 0..255 components.
type rgb struct {
	R, G, B int
}

// fallbackColor is used for components whose colour cannot be parsed.
var fallbackColor = rgb{R: 190, G: 190, B: 190}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	rowHeight    = 6.0
)

// ExportPDF writes a front elevation of the scene followed by its bill of
// materials.
func ExportPDF(path string, components []model.Component, title string) error {
	if len(components) == 0 {
		return ErrEmptyScene
	}
	if title == "" {
		title = "Cabinet Design"
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(title, true)

	bom := BuildBOM(components)

	pdf.AddPage()
	renderElevationPage(pdf, components, bom, title)
	renderBOMPages(pdf, bom)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// renderElevationPage draws every component as a rectangle, scaled to fit.
func renderElevationPage(pdf *fpdf.Fpdf, components []model.Component, bom BOM, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title+" - Front Elevation", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, countsLine(bom), "", 0, "L", false, 0, "")

	minX, minY, maxX, maxY := sceneBounds(components)
	sceneW := math.Max(maxX-minX, 1)
	sceneH := math.Max(maxY-minY, 1)

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 10
	scale := math.Min(drawWidth/sceneW, drawHeight/sceneH)

	offsetX := marginLeft + (drawWidth-sceneW*scale)/2
	offsetY := drawAreaTop

	names := map[string]string{}
	for _, r := range bom.Rows {
		names[r.ID] = r.Name
	}

	// Cabinets first so their contents are drawn on top.
	for _, pass := range []bool{true, false} {
		for _, c := range components {
			if c.IsCabinet() != pass {
				continue
			}
			x := offsetX + (c.Position.X-minX)*scale
			y := offsetY + (c.Position.Y-minY)*scale
			w := c.Dimensions.Width * scale
			h := c.Dimensions.Height * scale

			col := parseHexColor(c.Color)
			pdf.SetFillColor(col.R, col.G, col.B)
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.3)
			if c.IsCabinet() && c.Opacity > 0 {
				pdf.SetAlpha(c.Opacity, "Normal")
			}
			pdf.Rect(x, y, w, h, "FD")
			pdf.SetAlpha(1, "Normal")

			if c.IsCabinet() && c.MaterialThickness > 0 {
				t := c.MaterialThickness * scale
				pdf.SetDrawColor(90, 60, 30)
				pdf.SetLineWidth(0.15)
				pdf.Rect(x+t, y+t, w-2*t, h-2*t, "D")
			}

			if w > 15 && h > 4 {
				label := names[c.ID]
				pdf.SetFont("Helvetica", "", labelFontSize(w, h))
				pdf.SetTextColor(0, 0, 0)
				if lw := pdf.GetStringWidth(label); lw < w-2 {
					ly := y + h/2 - 2
					if c.IsCabinet() {
						ly = y + 1
					}
					pdf.SetXY(x+(w-lw)/2, ly)
					pdf.CellFormat(lw, 4, label, "", 0, "C", false, 0, "")
				}
			}
		}
	}

	drawScaleNote(pdf, scale, sceneW, sceneH)
}

// drawScaleNote prints the scene extent and drawing scale under the drawing.
func drawScaleNote(pdf *fpdf.Fpdf, scale, sceneW, sceneH float64) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(marginLeft, pageHeight-marginBottom-5)
	note := fmt.Sprintf("Scene extent %.0f x %.0f mm, scale 1:%.1f", sceneW, sceneH, 1/scale)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, note, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderBOMPages writes the bill of materials table, paging as needed.
func renderBOMPages(pdf *fpdf.Fpdf, bom BOM) {
	colWidths := []float64{32, 25, 32, 50, 40, 88}
	headers := []string{"Name", "Type", "Cabinet", "W x H x D (mm)", "Position (mm)", "Notes"}

	y := pageHeight
	for i, row := range bom.Rows {
		if y+rowHeight > pageHeight-marginBottom-5 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 16)
			pdf.SetXY(marginLeft, marginTop)
			pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Bill of Materials", "", 0, "L", false, 0, "")
			y = marginTop + 14
			drawTableRow(pdf, y, colWidths, headers, true, 0)
			y += rowHeight
		}
		cells := []string{row.Name, row.Type.String(), row.Group, row.DimensionsText(), row.PositionText(), row.Notes}
		drawTableRow(pdf, y, colWidths, cells, false, i)
		y += rowHeight
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by Cabinetry", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func drawTableRow(pdf *fpdf.Fpdf, y float64, widths []float64, cells []string, header bool, index int) {
	if header {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
	} else {
		pdf.SetFont("Helvetica", "", 9)
		if index%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
	}
	x := marginLeft
	for i, cell := range cells {
		pdf.SetXY(x, y)
		pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, "C", true, 0, "")
		x += widths[i]
	}
}

// countsLine summarises the per-type component counts.
func countsLine(bom BOM) string {
	parts := make([]string, 0, len(bom.Counts))
	for _, tc := range bom.Counts {
		parts = append(parts, fmt.Sprintf("%s: %d", tc.Type, tc.Count))
	}
	return strings.Join(parts, " | ")
}

// sceneBounds returns the bounding rectangle of all component fronts.
func sceneBounds(components []model.Component) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range components {
		minX = math.Min(minX, c.Position.X)
		minY = math.Min(minY, c.Position.Y)
		maxX = math.Max(maxX, c.Position.X+c.Dimensions.Width)
		maxY = math.Max(maxY, c.Position.Y+c.Dimensions.Height)
	}
	return minX, minY, maxX, maxY
}

// parseHexColor reads "#RRGGBB" or "#RGB".
func parseHexColor(s string) rgb {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallbackColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackColor
	}
	return rgb{R: int(v >> 16 & 0xFF), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
