package engine

import "github.com/piwi3910/cabinetry/internal/model"

// ResolveParent picks the cabinet a newly added component of type t, dropped
// at drop, should be constrained by. It returns "" when there is none.
//
// The current selection wins over position: a selected cabinet is used
// directly, and a selected child lends its own parent cabinet. Otherwise the
// first cabinet in collection order whose outer rectangle contains the drop
// point is used. Cabinets never get a parent.
func ResolveParent(components []model.Component, selected *model.Component, t model.ComponentType, drop model.Position) string {
	if t == model.TypeCabinet {
		return ""
	}
	if id := parentFromSelection(components, selected); id != "" {
		return id
	}
	if cab, ok := FindContainer(components, drop.X, drop.Y); ok {
		return cab.ID
	}
	return ""
}

func parentFromSelection(components []model.Component, selected *model.Component) string {
	if selected == nil {
		return ""
	}
	idx := model.Find(components, selected.ID)
	if idx < 0 {
		return ""
	}
	sel := components[idx]
	if sel.IsCabinet() {
		return sel.ID
	}
	if sel.ConstrainedBy == "" {
		return ""
	}
	if p := model.Find(components, sel.ConstrainedBy); p >= 0 && components[p].IsCabinet() {
		return components[p].ID
	}
	return ""
}

// FindContainer returns the first cabinet, in collection order, whose outer
// front rectangle contains (x, y). There is no depth tie-break.
func FindContainer(components []model.Component, x, y float64) (model.Component, bool) {
	for _, c := range components {
		if c.IsCabinet() && c.OuterContains(x, y) {
			return c, true
		}
	}
	return model.Component{}, false
}

// Children returns the components directly constrained by id, in collection
// order.
func Children(components []model.Component, id string) []model.Component {
	var out []model.Component
	if id == "" {
		return out
	}
	for _, c := range components {
		if c.ConstrainedBy == id {
			out = append(out, c.Clone())
		}
	}
	return out
}
