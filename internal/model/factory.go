package model

import "github.com/google/uuid"

// Defaults describes what the factory produces for one component type.
type Defaults struct {
	Type                  ComponentType
	Dimensions            Dimensions
	ConstraintType        ConstraintType
	ConstrainedDimensions []Axis
	MaterialThickness     float64
	Opacity               float64
	MaxLoadCapacity       float64
	ExtensionType         string
}

var catalog = []Defaults{
	{
		Type:              TypeCabinet,
		Dimensions:        Dimensions{Width: 600, Height: 800, Depth: 600},
		ConstraintType:    ConstraintNone,
		MaterialThickness: 18,
		Opacity:           0.8,
	},
	{
		Type:                  TypeShelf,
		Dimensions:            Dimensions{Width: 564, Height: 18, Depth: 580},
		ConstraintType:        ConstraintContained,
		ConstrainedDimensions: []Axis{AxisWidth},
		MaxLoadCapacity:       50,
	},
	{
		Type:                  TypeDrawer,
		Dimensions:            Dimensions{Width: 564, Height: 150, Depth: 580},
		ConstraintType:        ConstraintContained,
		ConstrainedDimensions: []Axis{AxisWidth},
		ExtensionType:         "full",
	},
	{
		Type:                  TypeHangingRod,
		Dimensions:            Dimensions{Width: 564, Height: 10, Depth: 25},
		ConstraintType:        ConstraintContained,
		ConstrainedDimensions: []Axis{AxisWidth, AxisX},
	},
	{
		Type:           TypeHandle,
		Dimensions:     Dimensions{Width: 150, Height: 20, Depth: 30},
		ConstraintType: ConstraintAttached,
	},
}

// Catalog returns a copy of the factory defaults for every known type.
func Catalog() []Defaults {
	cp := make([]Defaults, len(catalog))
	for i, d := range catalog {
		cp[i] = d
		cp[i].ConstrainedDimensions = append([]Axis{}, d.ConstrainedDimensions...)
	}
	return cp
}

// DefaultsFor returns the factory defaults for t.
func DefaultsFor(t ComponentType) (Defaults, bool) {
	for _, d := range Catalog() {
		if d.Type == t {
			return d, true
		}
	}
	return Defaults{}, false
}

// NewID returns a fresh component identifier.
func NewID() string {
	return uuid.New().String()
}

// NewComponent builds a component of the given type at pos with the type's
// default geometry and constraint settings. The colour comes from palette.
// ConstrainedBy is left empty; parent resolution happens in the store.
func NewComponent(t ComponentType, pos Position, palette Palette) Component {
	return newComponent(NewID(), t, pos, palette)
}

func newComponent(id string, t ComponentType, pos Position, palette Palette) Component {
	c := Component{
		ID:                    id,
		Type:                  t,
		Position:              pos,
		ConstraintType:        ConstraintNone,
		ConstrainedDimensions: []Axis{},
	}
	d, ok := DefaultsFor(t)
	if !ok {
		// Unknown types get the bare base component.
		return c
	}
	c.Dimensions = d.Dimensions
	c.ConstraintType = d.ConstraintType
	c.ConstrainedDimensions = d.ConstrainedDimensions
	c.MaterialThickness = d.MaterialThickness
	c.Opacity = d.Opacity
	c.MaxLoadCapacity = d.MaxLoadCapacity
	c.ExtensionType = d.ExtensionType
	c.Color = palette.ColorFor(t)
	return c
}

// NewComponentWithID is NewComponent with a caller-supplied identifier.
func NewComponentWithID(id string, t ComponentType, pos Position, palette Palette) Component {
	return newComponent(id, t, pos, palette)
}
