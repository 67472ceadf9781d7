// Package export renders a resolved scene to one-way report formats: a PDF
// elevation with a bill of materials, QR-coded component labels, an XLSX
// bill of materials and a DXF front elevation.
package export

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/piwi3910/cabinetry/internal/model"
)

// ErrEmptyScene is returned when there is nothing to export.
var ErrEmptyScene = errors.New("scene has no components")

// LooseGroup names the BOM group of components without a cabinet.
const LooseGroup = "Loose"

// BOMRow is one component line in the bill of materials.
type BOMRow struct {
	ID         string
	Name       string // e.g. "Shelf 2"
	Type       model.ComponentType
	Group      string // Name of the owning cabinet, or LooseGroup
	ParentID   string
	ParentName string
	Position   model.Position
	Dimensions model.Dimensions
	Color      string
	Opacity    float64
	Notes      string
}

// TypeCount is the number of components of one type in a scene.
type TypeCount struct {
	Type  model.ComponentType
	Count int
}

// BOM is a bill of materials grouped by cabinet.
type BOM struct {
	Rows   []BOMRow
	Counts []TypeCount
}

// BuildBOM groups components by cabinet: each cabinet in collection order is
// followed by the components it constrains, then everything without a
// present cabinet parent is listed under LooseGroup.
func BuildBOM(components []model.Component) BOM {
	names := componentNames(components)
	var bom BOM
	listed := map[string]bool{}

	for _, cab := range components {
		if !cab.IsCabinet() {
			continue
		}
		bom.Rows = append(bom.Rows, newBOMRow(cab, names[cab.ID], names[cab.ID], ""))
		listed[cab.ID] = true
		for _, c := range components {
			if c.ConstrainedBy == cab.ID && !c.IsCabinet() {
				bom.Rows = append(bom.Rows, newBOMRow(c, names[c.ID], names[cab.ID], names[cab.ID]))
				listed[c.ID] = true
			}
		}
	}
	for _, c := range components {
		if !listed[c.ID] {
			bom.Rows = append(bom.Rows, newBOMRow(c, names[c.ID], LooseGroup, ""))
		}
	}

	for _, t := range model.ComponentTypes {
		n := 0
		for _, c := range components {
			if c.Type == t {
				n++
			}
		}
		if n > 0 {
			bom.Counts = append(bom.Counts, TypeCount{Type: t, Count: n})
		}
	}
	return bom
}

func newBOMRow(c model.Component, name, group, parentName string) BOMRow {
	return BOMRow{
		ID:         c.ID,
		Name:       name,
		Type:       c.Type,
		Group:      group,
		ParentID:   c.ConstrainedBy,
		ParentName: parentName,
		Position:   c.Position,
		Dimensions: c.Dimensions,
		Color:      c.Color,
		Opacity:    c.Opacity,
		Notes:      notesFor(c),
	}
}

// componentNames numbers components per type in collection order.
func componentNames(components []model.Component) map[string]string {
	seen := map[model.ComponentType]int{}
	names := make(map[string]string, len(components))
	for _, c := range components {
		seen[c.Type]++
		names[c.ID] = fmt.Sprintf("%s %d", c.Type, seen[c.Type])
	}
	return names
}

func notesFor(c model.Component) string {
	switch c.Type {
	case model.TypeCabinet:
		return fmt.Sprintf("t=%smm, opacity %.0f%%", formatMM(c.MaterialThickness), c.Opacity*100)
	case model.TypeShelf:
		return fmt.Sprintf("max load %skg", formatMM(c.MaxLoadCapacity))
	case model.TypeDrawer:
		return c.ExtensionType + " extension"
	default:
		return ""
	}
}

// formatMM prints a measurement without trailing zeros.
func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DimensionsText formats W x H x D in mm.
func (r BOMRow) DimensionsText() string {
	return fmt.Sprintf("%s x %s x %s", formatMM(r.Dimensions.Width), formatMM(r.Dimensions.Height), formatMM(r.Dimensions.Depth))
}

// PositionText formats the x, y position in mm.
func (r BOMRow) PositionText() string {
	return fmt.Sprintf("(%s, %s)", formatMM(r.Position.X), formatMM(r.Position.Y))
}
