package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/cabinetry/internal/model"
)

// Workbook sheet names.
const (
	BOMSheet     = "BOM"
	SummarySheet = "Summary"
)

// BOMHeaders is the header row of the BOM sheet.
var BOMHeaders = []string{"Name", "Type", "Cabinet", "X", "Y", "Width", "Height", "Depth", "Color", "Notes", "ID"}

// ExportXLSX writes the bill of materials as a workbook with a BOM sheet and
// a per-type Summary sheet.
func ExportXLSX(path string, components []model.Component) error {
	if len(components) == 0 {
		return ErrEmptyScene
	}
	bom := BuildBOM(components)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), BOMSheet); err != nil {
		return fmt.Errorf("failed to name BOM sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E6E6E6"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	rows := make([][]interface{}, 0, len(bom.Rows)+1)
	rows = append(rows, toRow(BOMHeaders))
	for _, r := range bom.Rows {
		rows = append(rows, []interface{}{
			r.Name, r.Type.String(), r.Group,
			r.Position.X, r.Position.Y,
			r.Dimensions.Width, r.Dimensions.Height, r.Dimensions.Depth,
			r.Color, r.Notes, r.ID,
		})
	}
	if err := writeRows(f, BOMSheet, rows); err != nil {
		return err
	}

	summary := [][]interface{}{{"Type", "Count"}}
	total := 0
	for _, tc := range bom.Counts {
		summary = append(summary, []interface{}{tc.Type.String(), tc.Count})
		total += tc.Count
	}
	summary = append(summary, []interface{}{"Total", total})
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return err
	}

	for sheet, last := range map[string]string{BOMSheet: "K1", SummarySheet: "B1"} {
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style %s header: %w", sheet, err)
		}
	}
	if err := f.SetColWidth(BOMSheet, "A", "C", 14); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(BOMSheet, "J", "K", 28); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to create cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				return fmt.Errorf("failed to set %s!%s: %w", sheet, ref, err)
			}
		}
	}
	return nil
}

func toRow(cells []string) []interface{} {
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
