package model

// PositionPatch carries optional per-axis position overrides.
type PositionPatch struct {
	X *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Z *float64 `json:"z,omitempty" yaml:"z,omitempty"`
}

// DimensionsPatch carries optional per-axis size overrides.
type DimensionsPatch struct {
	Width  *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Depth  *float64 `json:"depth,omitempty" yaml:"depth,omitempty"`
}

// ComponentPatch is a partial update. Nil fields are left untouched, and the
// nested position and dimension groups merge field by field, so
// {Dimensions: {Width: 700}} keeps the existing height and depth.
//
// Identity, type and constraint settings are fixed at creation and have no
// patch fields.
type ComponentPatch struct {
	Position          *PositionPatch   `json:"position,omitempty" yaml:"position,omitempty"`
	Dimensions        *DimensionsPatch `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Color             *string          `json:"color,omitempty" yaml:"color,omitempty"`
	MaterialThickness *float64         `json:"material_thickness,omitempty" yaml:"material_thickness,omitempty"`
	Opacity           *float64         `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	MaxLoadCapacity   *float64         `json:"max_load_capacity,omitempty" yaml:"max_load_capacity,omitempty"`
	ExtensionType     *string          `json:"extension_type,omitempty" yaml:"extension_type,omitempty"`
}

// Float returns a pointer to v, for building patches inline.
func Float(v float64) *float64 { return &v }

// String returns a pointer to s, for building patches inline.
func String(s string) *string { return &s }

// MoveTo builds a patch that sets the x and y position.
func MoveTo(x, y float64) ComponentPatch {
	return ComponentPatch{Position: &PositionPatch{X: Float(x), Y: Float(y)}}
}

// Resize builds a patch that sets width and height.
func Resize(w, h float64) ComponentPatch {
	return ComponentPatch{Dimensions: &DimensionsPatch{Width: Float(w), Height: Float(h)}}
}

// Apply returns a copy of c with the patch merged in.
func (p ComponentPatch) Apply(c Component) Component {
	c = c.Clone()
	if p.Position != nil {
		setIf(&c.Position.X, p.Position.X)
		setIf(&c.Position.Y, p.Position.Y)
		setIf(&c.Position.Z, p.Position.Z)
	}
	if p.Dimensions != nil {
		setIf(&c.Dimensions.Width, p.Dimensions.Width)
		setIf(&c.Dimensions.Height, p.Dimensions.Height)
		setIf(&c.Dimensions.Depth, p.Dimensions.Depth)
	}
	setIf(&c.Color, p.Color)
	setIf(&c.MaterialThickness, p.MaterialThickness)
	setIf(&c.Opacity, p.Opacity)
	setIf(&c.MaxLoadCapacity, p.MaxLoadCapacity)
	setIf(&c.ExtensionType, p.ExtensionType)
	return c
}

// IsEmpty reports whether the patch changes nothing.
func (p ComponentPatch) IsEmpty() bool {
	return p.Position == nil && p.Dimensions == nil && p.Color == nil &&
		p.MaterialThickness == nil && p.Opacity == nil &&
		p.MaxLoadCapacity == nil && p.ExtensionType == nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
