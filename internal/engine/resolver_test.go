package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cabinetry/internal/model"
)

func cabinetAt(id string, x, y float64) model.Component {
	return model.NewComponentWithID(id, model.TypeCabinet, model.Position{X: x, Y: y}, model.LightPalette)
}

func childOf(id string, t model.ComponentType, parent string, x, y float64) model.Component {
	c := model.NewComponentWithID(id, t, model.Position{X: x, Y: y}, model.LightPalette)
	c.ConstrainedBy = parent
	return c
}

func byID(t *testing.T, cs []model.Component, id string) model.Component {
	t.Helper()
	idx := model.Find(cs, id)
	require.GreaterOrEqual(t, idx, 0, "component %s missing", id)
	return cs[idx]
}

func TestResolveShelfInsideCabinet(t *testing.T) {
	shelf := childOf("shelf", model.TypeShelf, "cab", 300, 300)
	shelf.Dimensions.Width = 300

	out := Resolve([]model.Component{cabinetAt("cab", 100, 100), shelf})
	got := byID(t, out, "shelf")

	assert.Equal(t, 564.0, got.Dimensions.Width, "width locked to interior")
	assert.Equal(t, 118.0, got.Position.X, "no horizontal slack left")
	assert.Equal(t, 300.0, got.Position.Y, "y already inside interior")
}

func TestResolveContainedClampsY(t *testing.T) {
	tests := []struct {
		name  string
		typ   model.ComponentType
		y     float64
		wantY float64
	}{
		{"shelf below interior", model.TypeShelf, 2000, 864},
		{"shelf above interior", model.TypeShelf, 0, 118},
		{"drawer below interior", model.TypeDrawer, 2000, 732},
		{"drawer inside", model.TypeDrawer, 400, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := childOf("c", tt.typ, "cab", 300, tt.y)
			out := Resolve([]model.Component{cabinetAt("cab", 100, 100), c})
			assert.Equal(t, tt.wantY, byID(t, out, "c").Position.Y)
		})
	}
}

func TestResolveHangingRodPinsX(t *testing.T) {
	rod := childOf("rod", model.TypeHangingRod, "cab", 5000, 200)
	out := Resolve([]model.Component{cabinetAt("cab", 100, 100), rod})
	got := byID(t, out, "rod")

	assert.Equal(t, 118.0, got.Position.X)
	assert.Equal(t, 564.0, got.Dimensions.Width)
	assert.Equal(t, 200.0, got.Position.Y)
}

func TestResolveHandleAttachesToRightEdge(t *testing.T) {
	tests := []struct {
		y, wantY float64
	}{
		{5000, 880},
		{0, 100},
		{450, 450},
	}
	for _, tt := range tests {
		h := childOf("h", model.TypeHandle, "cab", -400, tt.y)
		out := Resolve([]model.Component{cabinetAt("cab", 100, 100), h})
		got := byID(t, out, "h")
		assert.Equal(t, 625.0, got.Position.X)
		assert.Equal(t, tt.wantY, got.Position.Y)
		assert.Equal(t, 150.0, got.Dimensions.Width, "handles keep their own width")
	}
}

func TestResolveLeavesUnresolvableComponentsAlone(t *testing.T) {
	shelf := model.NewComponent(model.TypeShelf, model.Position{}, model.LightPalette)
	tests := []struct {
		name   string
		mutate func(c *model.Component)
	}{
		{"no parent", func(c *model.Component) { c.ConstrainedBy = "" }},
		{"dangling parent", func(c *model.Component) { c.ConstrainedBy = "gone" }},
		{"non-cabinet parent", func(c *model.Component) { c.ConstrainedBy = "other-shelf" }},
		{"self parent", func(c *model.Component) { c.ConstrainedBy = c.ID }},
		{"unconstrained type", func(c *model.Component) {
			c.ConstrainedBy = "cab"
			c.ConstraintType = model.ConstraintNone
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := shelf.Clone()
			c.Position = model.Position{X: -50, Y: 9000}
			c.Dimensions.Width = 10
			tt.mutate(&c)
			other := childOf("other-shelf", model.TypeShelf, "", 0, 0)

			out := Resolve([]model.Component{cabinetAt("cab", 100, 100), other, c})
			assert.Equal(t, c, byID(t, out, c.ID))
		})
	}
}

func TestResolveInvertedRangeUsesLowBound(t *testing.T) {
	cab := cabinetAt("cab", 100, 100)
	cab.Dimensions.Width = 300
	wide := childOf("wide", model.TypeShelf, "cab", 400, 300)
	wide.ConstrainedDimensions = nil
	wide.Dimensions.Width = 500

	out := Resolve([]model.Component{cab, wide})
	assert.Equal(t, 118.0, byID(t, out, "wide").Position.X)
}

func TestResolvePassesThroughOtherFields(t *testing.T) {
	shelf := childOf("s", model.TypeShelf, "cab", 300, 300)
	shelf.Color = "#123456"
	shelf.Dimensions.Depth = 333
	shelf.Position.Z = 42
	shelf.MaxLoadCapacity = 75

	got := byID(t, Resolve([]model.Component{cabinetAt("cab", 100, 100), shelf}), "s")
	assert.Equal(t, "#123456", got.Color)
	assert.Equal(t, 333.0, got.Dimensions.Depth)
	assert.Equal(t, 42.0, got.Position.Z)
	assert.Equal(t, 75.0, got.MaxLoadCapacity)
	assert.Equal(t, 18.0, got.Dimensions.Height)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	in := []model.Component{cabinetAt("cab", 100, 100), childOf("s", model.TypeShelf, "cab", 9999, 9999)}
	before := model.CloneAll(in)

	_ = Resolve(in)
	assert.Equal(t, before, in)
}

func TestResolveNil(t *testing.T) {
	assert.Nil(t, Resolve(nil))
}

// randomScene builds cabinets followed by children pointing at random
// cabinets, with arbitrary starting geometry.
func randomScene(r *rand.Rand) []model.Component {
	var cs []model.Component
	var cabs []string
	for i := 0; i < 1+r.Intn(4); i++ {
		cab := model.NewComponent(model.TypeCabinet, model.Position{X: r.Float64()*3000 - 500, Y: r.Float64()*2000 - 500}, model.LightPalette)
		cab.Dimensions.Width = 300 + r.Float64()*900
		cab.Dimensions.Height = 400 + r.Float64()*1600
		cab.MaterialThickness = 12 + r.Float64()*13
		cs = append(cs, cab)
		cabs = append(cabs, cab.ID)
	}
	types := []model.ComponentType{model.TypeShelf, model.TypeDrawer, model.TypeHangingRod, model.TypeHandle}
	for i := 0; i < 10; i++ {
		c := model.NewComponent(types[r.Intn(len(types))], model.Position{X: r.Float64()*6000 - 3000, Y: r.Float64()*6000 - 3000}, model.LightPalette)
		c.ConstrainedBy = cabs[r.Intn(len(cabs))]
		c.Dimensions.Width = 10 + r.Float64()*2000
		cs = append(cs, c)
	}
	return cs
}

func TestResolveProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const eps = 1e-9

	for iter := 0; iter < 200; iter++ {
		out := Resolve(randomScene(r))

		assert.Equal(t, out, Resolve(out), "resolve must be idempotent")

		for _, c := range out {
			p, ok := Parent(out, c)
			if !ok {
				continue
			}
			th := p.MaterialThickness
			switch c.ConstraintType {
			case model.ConstraintContained:
				require.InDelta(t, p.Dimensions.Width-2*th, c.Dimensions.Width, eps, "width lock")
				require.GreaterOrEqual(t, c.Position.X, p.Position.X+th-eps)
				require.LessOrEqual(t, c.Position.X, p.Position.X+p.Dimensions.Width-c.Dimensions.Width-th+eps)
				require.GreaterOrEqual(t, c.Position.Y, p.Position.Y+th-eps)
				require.LessOrEqual(t, c.Position.Y, p.Position.Y+p.Dimensions.Height-c.Dimensions.Height-th+eps)
			case model.ConstraintAttached:
				require.InDelta(t, p.Position.X+p.Dimensions.Width-c.Dimensions.Width/2, c.Position.X, eps)
				require.GreaterOrEqual(t, c.Position.Y, p.Position.Y-eps)
				require.LessOrEqual(t, c.Position.Y, p.Position.Y+p.Dimensions.Height-c.Dimensions.Height+eps)
			}
		}
	}
}
