package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cabinetry/internal/model"
)

func TestAuditCleanScene(t *testing.T) {
	cs := Resolve([]model.Component{
		cabinetAt("cab", 100, 100),
		childOf("s", model.TypeShelf, "cab", 300, 300),
		childOf("h", model.TypeHandle, "cab", 0, 0),
	})
	assert.Empty(t, Audit(cs))
}

func TestAuditReportsDanglingAndNonCabinetParents(t *testing.T) {
	cs := []model.Component{
		childOf("shelf", model.TypeShelf, "", 0, 0),
		childOf("orphan", model.TypeDrawer, "gone", 0, 0),
		childOf("odd", model.TypeHandle, "shelf", 0, 0),
	}
	issues := Audit(cs)
	require.Len(t, issues, 2)
	assert.Equal(t, IssueDanglingParent, issues[0].Kind)
	assert.Equal(t, "orphan", issues[0].ComponentID)
	assert.Equal(t, IssueNonCabinetParent, issues[1].Kind)
	assert.Contains(t, issues[1].String(), "odd")
}

func TestAuditReportsOversizedChild(t *testing.T) {
	cab := cabinetAt("cab", 0, 0)
	cab.Dimensions.Height = 100
	drawer := childOf("d", model.TypeDrawer, "cab", 0, 0)

	issues := Audit(Resolve([]model.Component{cab, drawer}))
	require.Len(t, issues, 1)
	assert.Equal(t, IssueOversizedChild, issues[0].Kind)
	assert.Contains(t, issues[0].Message, "height")
}

func TestAuditZeroThicknessCabinet(t *testing.T) {
	cab := cabinetAt("cab", 0, 0)
	cab.MaterialThickness = 0
	shelf := childOf("s", model.TypeShelf, "cab", 10, 10)

	cs := Resolve([]model.Component{cab, shelf})
	require.Equal(t, 600.0, byID(t, cs, "s").Dimensions.Width)
	assert.Empty(t, Audit(cs))
}
