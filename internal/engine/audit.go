package engine

import (
	"fmt"

	"github.com/piwi3910/cabinetry/internal/model"
)

// IssueKind classifies a scene audit finding.
type IssueKind string

const (
	IssueDanglingParent   IssueKind = "dangling-parent"
	IssueNonCabinetParent IssueKind = "non-cabinet-parent"
	IssueOversizedChild   IssueKind = "oversized-child"
)

// Issue is an advisory finding about a scene. Issues never block editing;
// the resolver already degrades gracefully for every kind reported here.
type Issue struct {
	ComponentID string
	Kind        IssueKind
	Message     string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s [%s]: %s", i.ComponentID, i.Kind, i.Message)
}

// Audit reports components whose constraints cannot be fully honoured.
func Audit(components []model.Component) []Issue {
	var issues []Issue
	for _, c := range components {
		if c.ConstrainedBy == "" || c.ConstraintType == model.ConstraintNone {
			continue
		}
		idx := model.Find(components, c.ConstrainedBy)
		if idx < 0 || c.ConstrainedBy == c.ID {
			issues = append(issues, Issue{
				ComponentID: c.ID,
				Kind:        IssueDanglingParent,
				Message:     fmt.Sprintf("parent %s is not in the scene, constraints skipped", c.ConstrainedBy),
			})
			continue
		}
		p := components[idx]
		if !p.IsCabinet() {
			issues = append(issues, Issue{
				ComponentID: c.ID,
				Kind:        IssueNonCabinetParent,
				Message:     fmt.Sprintf("parent %s is a %s, constraints skipped", p.ID, p.Type),
			})
			continue
		}
		if c.ConstraintType != model.ConstraintContained {
			continue
		}
		in := p.Interior()
		if c.Dimensions.Width > in.Width {
			issues = append(issues, Issue{
				ComponentID: c.ID,
				Kind:        IssueOversizedChild,
				Message:     fmt.Sprintf("width %.1f mm exceeds interior width %.1f mm of %s", c.Dimensions.Width, in.Width, p.ID),
			})
		}
		if c.Dimensions.Height > in.Height {
			issues = append(issues, Issue{
				ComponentID: c.ID,
				Kind:        IssueOversizedChild,
				Message:     fmt.Sprintf("height %.1f mm exceeds interior height %.1f mm of %s", c.Dimensions.Height, in.Height, p.ID),
			})
		}
	}
	return issues
}
