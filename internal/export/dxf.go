package export

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/piwi3910/cabinetry/internal/model"
)

// layerColors assigns an ACI colour to each component type layer.
var layerColors = map[model.ComponentType]color.ColorNumber{
	model.TypeCabinet:    color.White,
	model.TypeShelf:      color.Yellow,
	model.TypeDrawer:     color.Cyan,
	model.TypeHangingRod: color.Green,
	model.TypeHandle:     color.Red,
}

// textHeight is the height of component labels in drawing units (mm).
const textHeight = 20.0

// LayerName returns the DXF layer a component type is drawn on.
func LayerName(t model.ComponentType) string {
	return "CAB_" + t.String()
}

// ExportDXF writes a front elevation with one closed LWPOLYLINE per component
// outline and a TEXT label, one layer per component type. Scene y grows
// downwards, so it is flipped to keep the drawing upright.
func ExportDXF(path string, components []model.Component) error {
	if len(components) == 0 {
		return ErrEmptyScene
	}
	bom := BuildBOM(components)
	_, _, _, maxY := sceneBounds(components)

	d := dxf.NewDrawing()
	for _, tc := range bom.Counts {
		cl, ok := layerColors[tc.Type]
		if !ok {
			cl = color.White
		}
		if _, err := d.AddLayer(LayerName(tc.Type), cl, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer for %s: %w", tc.Type, err)
		}
	}

	for _, r := range bom.Rows {
		if err := d.ChangeLayer(LayerName(r.Type)); err != nil {
			return fmt.Errorf("failed to select layer for %s: %w", r.Name, err)
		}

		x0, x1 := r.Position.X, r.Position.X+r.Dimensions.Width
		top := maxY - r.Position.Y
		bottom := top - r.Dimensions.Height
		if _, err := d.LwPolyline(true,
			[]float64{x0, bottom},
			[]float64{x1, bottom},
			[]float64{x1, top},
			[]float64{x0, top},
		); err != nil {
			return fmt.Errorf("failed to draw %s: %w", r.Name, err)
		}

		h := math.Min(textHeight, r.Dimensions.Height/2)
		if h <= 0 {
			continue
		}
		if _, err := d.Text(r.Name, x0+h/2, top-h*1.5, 0, h); err != nil {
			return fmt.Errorf("failed to label %s: %w", r.Name, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}
