package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownType is returned when a component type name cannot be parsed.
var ErrUnknownType = errors.New("unknown component type")

// ComponentType identifies what kind of physical component a Component is.
type ComponentType int

const (
	TypeCabinet ComponentType = iota // Carcass that contains other components
	TypeShelf
	TypeDrawer
	TypeHangingRod
	TypeHandle
)

// ComponentTypes lists every known type in palette order.
var ComponentTypes = []ComponentType{TypeCabinet, TypeShelf, TypeDrawer, TypeHangingRod, TypeHandle}

func (t ComponentType) String() string {
	switch t {
	case TypeCabinet:
		return "Cabinet"
	case TypeShelf:
		return "Shelf"
	case TypeDrawer:
		return "Drawer"
	case TypeHangingRod:
		return "HangingRod"
	case TypeHandle:
		return "Handle"
	default:
		return fmt.Sprintf("ComponentType(%d)", int(t))
	}
}

// ParseComponentType accepts the type names case-insensitively, with or
// without separators ("hanging-rod", "hangingRod", "HangingRod").
func ParseComponentType(s string) (ComponentType, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for _, t := range ComponentTypes {
		if strings.ToLower(t.String()) == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// ConstraintType says how a component relates to its parent cabinet.
type ConstraintType int

const (
	ConstraintNone      ConstraintType = iota // Free-standing
	ConstraintContained                       // Enclosed in the parent's interior
	ConstraintAttached                        // Pinned to the parent's right edge
)

func (c ConstraintType) String() string {
	switch c {
	case ConstraintContained:
		return "Contained"
	case ConstraintAttached:
		return "Attached"
	default:
		return "None"
	}
}

// Axis tags a single geometric field of a component.
type Axis string

const (
	AxisX      Axis = "x"
	AxisY      Axis = "y"
	AxisZ      Axis = "z"
	AxisWidth  Axis = "width"
	AxisHeight Axis = "height"
	AxisDepth  Axis = "depth"
)

// Position is a location in mm.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Translate returns p shifted by dx, dy.
func (p Position) Translate(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, Z: p.Z}
}

// Dimensions is an extent in mm.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Component is a single placed element of a design: a cabinet carcass or
// something placed in or on one.
type Component struct {
	ID                    string         `json:"id"`
	Type                  ComponentType  `json:"type"`
	Position              Position       `json:"position"`
	Dimensions            Dimensions     `json:"dimensions"`
	Color                 string         `json:"color"`
	ConstraintType        ConstraintType `json:"constraint_type"`
	ConstrainedDimensions []Axis         `json:"constrained_dimensions"`
	ConstrainedBy         string         `json:"constrained_by,omitempty"` // Parent cabinet ID, empty if none

	// Type-specific attributes. Zero when not applicable.
	MaterialThickness float64 `json:"material_thickness,omitempty"` // Cabinet wall thickness mm
	Opacity           float64 `json:"opacity,omitempty"`            // Cabinet render opacity 0..1
	MaxLoadCapacity   float64 `json:"max_load_capacity,omitempty"`  // Shelf load kg
	ExtensionType     string  `json:"extension_type,omitempty"`     // Drawer runner type
}

// Clone returns a deep copy of c.
func (c Component) Clone() Component {
	c.ConstrainedDimensions = slices.Clone(c.ConstrainedDimensions)
	return c
}

// Constrains reports whether the engine computes the given field.
func (c Component) Constrains(a Axis) bool {
	return slices.Contains(c.ConstrainedDimensions, a)
}

// IsCabinet reports whether c can act as a parent.
func (c Component) IsCabinet() bool {
	return c.Type == TypeCabinet
}

// OuterContains reports whether the point lies inside the component's outer
// front rectangle. Edges are inclusive and z is ignored.
func (c Component) OuterContains(x, y float64) bool {
	return x >= c.Position.X && x <= c.Position.X+c.Dimensions.Width &&
		y >= c.Position.Y && y <= c.Position.Y+c.Dimensions.Height
}

// Interior returns the usable inner dimensions of a cabinet: the outer
// dimensions inset by the material thickness on both sides, the same inset
// the resolver applies to contained children. Zero thickness leaves the
// outer dimensions.
func (c Component) Interior() Dimensions {
	t := 2 * c.MaterialThickness
	return Dimensions{
		Width:  c.Dimensions.Width - t,
		Height: c.Dimensions.Height - t,
		Depth:  c.Dimensions.Depth - t,
	}
}

// CloneAll deep-copies a component slice. A nil slice stays nil.
func CloneAll(components []Component) []Component {
	if components == nil {
		return nil
	}
	cp := make([]Component, len(components))
	for i, c := range components {
		cp[i] = c.Clone()
	}
	return cp
}

// Find returns the index of the component with the given ID, or -1.
func Find(components []Component, id string) int {
	if id == "" {
		return -1
	}
	for i := range components {
		if components[i].ID == id {
			return i
		}
	}
	return -1
}
