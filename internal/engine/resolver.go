// Package engine derives constrained component geometry from parent cabinets.
//
// Containment is exactly one level deep: children always hang directly off a
// cabinet and never have children of their own. That is what lets Resolve
// reach a stable state in a single pass. If nested containment is ever
// introduced, Resolve must visit parents before children or iterate to a
// fixed point.
package engine

import (
	"math"

	"github.com/piwi3910/cabinetry/internal/model"
)

// Resolve returns a copy of components in which every constrained field is
// recomputed from the component's parent, looked up by ID in the same slice.
// The input is never modified. Components whose parent is missing, is not a
// cabinet, or is the component itself pass through unchanged.
//
// Resolve is idempotent: Resolve(Resolve(cs)) equals Resolve(cs).
func Resolve(components []model.Component) []model.Component {
	if components == nil {
		return nil
	}
	out := make([]model.Component, len(components))
	for i, c := range components {
		out[i] = c.Clone()
		if c.ConstraintType == model.ConstraintNone {
			continue
		}
		parent, ok := Parent(components, c)
		if !ok {
			continue
		}
		switch c.ConstraintType {
		case model.ConstraintContained:
			applyContained(&out[i], parent)
		case model.ConstraintAttached:
			applyAttached(&out[i], parent)
		}
	}
	return out
}

// Parent looks up the cabinet that constrains c. It reports false when c has
// no parent, the parent is absent, the parent is not a cabinet, or c names
// itself.
func Parent(components []model.Component, c model.Component) (model.Component, bool) {
	if c.ConstrainedBy == "" || c.ConstrainedBy == c.ID {
		return model.Component{}, false
	}
	idx := model.Find(components, c.ConstrainedBy)
	if idx < 0 || !components[idx].IsCabinet() {
		return model.Component{}, false
	}
	return components[idx], true
}

// applyContained keeps c inside the parent's interior rectangle.
func applyContained(c *model.Component, p model.Component) {
	t := p.MaterialThickness
	if c.Constrains(model.AxisWidth) {
		c.Dimensions.Width = p.Dimensions.Width - 2*t
	}
	if c.Constrains(model.AxisX) {
		c.Position.X = p.Position.X + t
	} else {
		c.Position.X = clamp(c.Position.X,
			p.Position.X+t,
			p.Position.X+p.Dimensions.Width-c.Dimensions.Width-t)
	}
	c.Position.Y = clamp(c.Position.Y,
		p.Position.Y+t,
		p.Position.Y+p.Dimensions.Height-c.Dimensions.Height-t)
}

// applyAttached pins c to the parent's right edge, centred on it.
func applyAttached(c *model.Component, p model.Component) {
	c.Position.X = p.Position.X + p.Dimensions.Width - c.Dimensions.Width/2
	c.Position.Y = clamp(c.Position.Y,
		p.Position.Y,
		p.Position.Y+p.Dimensions.Height-c.Dimensions.Height)
}

// clamp applies the upper bound first and the lower bound last, so the lower
// bound wins when the range is inverted.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
