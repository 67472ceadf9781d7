package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/cabinetry/internal/model"
)

// LabelInfo holds the data encoded into each component label's QR code.
type LabelInfo struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Cabinet string  `json:"cabinet,omitempty"`
	Width   float64 `json:"width_mm"`
	Height  float64 `json:"height_mm"`
	Depth   float64 `json:"depth_mm"`
	X       float64 `json:"x_mm"`
	Y       float64 `json:"y_mm"`
}

// labelSheet describes a label stock layout.
type labelSheet struct {
	size       string // fpdf page size name
	marginTop  float64
	marginLeft float64
	width      float64
	height     float64
	cols, rows int
}

func (s labelSheet) perPage() int { return s.cols * s.rows }

// Avery 5160 on US Letter: 3 columns x 10 rows of 66.7 x 25.4 mm.
var letterSheet = labelSheet{size: "Letter", marginTop: 12.7, marginLeft: 4.8, width: 66.7, height: 25.4, cols: 3, rows: 10}

// 3 x 8 of 70 x 37 mm on A4.
var a4Sheet = labelSheet{size: "A4", marginTop: 0.5, marginLeft: 0, width: 70, height: 37, cols: 3, rows: 8}

const (
	qrSize       = 20.0 // QR code size in mm
	labelPadding = 2.0  // mm internal padding
)

func sheetFor(paper string) (labelSheet, error) {
	switch paper {
	case "", model.PaperLetter:
		return letterSheet, nil
	case model.PaperA4:
		return a4Sheet, nil
	default:
		return labelSheet{}, fmt.Errorf("unknown label paper %q", paper)
	}
}

// ExportLabels generates a PDF of QR-coded labels, one per component. Each
// label shows the component name, its cabinet and dimensions, and a QR code
// encoding LabelInfo as JSON.
func ExportLabels(path string, components []model.Component, paper string) error {
	if len(components) == 0 {
		return ErrEmptyScene
	}
	sheet, err := sheetFor(paper)
	if err != nil {
		return err
	}

	labels := CollectLabelInfos(components)

	pdf := fpdf.New("P", "mm", sheet.size, "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%sheet.perPage() == 0 {
			pdf.AddPage()
		}

		posOnPage := i % sheet.perPage()
		col := posOnPage % sheet.cols
		row := posOnPage / sheet.cols

		x := sheet.marginLeft + float64(col)*sheet.width
		y := sheet.marginTop + float64(row)*sheet.height

		if err := renderLabel(pdf, sheet, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Name, err)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write labels: %w", err)
	}
	return nil
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, sheet labelSheet, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, sheet.width, sheet.height, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := "qr_" + info.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + sheet.width - qrSize - labelPadding
	qrY := y + (sheet.height-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := sheet.width - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, truncate(pdf, info.Name, textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%s x %s x %s mm", formatMM(info.Width), formatMM(info.Height), formatMM(info.Depth))
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	where := fmt.Sprintf("@ (%s, %s)", formatMM(info.X), formatMM(info.Y))
	if info.Cabinet != "" {
		where = info.Cabinet + " " + where
	}
	pdf.CellFormat(textW, 3, truncate(pdf, where, textW), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// truncate shortens s with an ellipsis until it fits in w.
func truncate(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// CollectLabelInfos extracts label information in bill of materials order.
func CollectLabelInfos(components []model.Component) []LabelInfo {
	bom := BuildBOM(components)
	labels := make([]LabelInfo, 0, len(bom.Rows))
	for _, r := range bom.Rows {
		labels = append(labels, LabelInfo{
			ID:      r.ID,
			Name:    r.Name,
			Type:    r.Type.String(),
			Cabinet: r.ParentName,
			Width:   r.Dimensions.Width,
			Height:  r.Dimensions.Height,
			Depth:   r.Dimensions.Depth,
			X:       r.Position.X,
			Y:       r.Position.Y,
		})
	}
	return labels
}
