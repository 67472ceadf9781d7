package scene

import "github.com/piwi3910/cabinetry/internal/model"

// Snapshot is a deep copy of the component collection and the selected ID,
// tagged with the mutation that follows it.
type Snapshot struct {
	Components []model.Component
	SelectedID string
	Label      string // mutation name, e.g. "Add Shelf"
}

// History holds scene snapshots on two bounded stacks. Undo restores the
// scene as it was before the last mutation; Redo reapplies it.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History keeping at most maxDepth undo steps.
// A non-positive depth selects model.DefaultHistoryDepth.
func NewHistory(maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = model.DefaultHistoryDepth
	}
	return &History{maxDepth: maxDepth}
}

// Push records the scene before a mutation. The oldest snapshot is dropped
// beyond maxDepth, and any redo branch is discarded.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo returns the scene preceding the last mutation and parks current on
// the redo stack under that mutation's label.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	current.Label = last.Label
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo returns the scene after the last undone mutation and parks current
// back on the undo stack, keeping the label.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	current.Label = last.Label
	h.undoStack = append(h.undoStack, current)
	return last, true
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Clear forgets every recorded scene, e.g. after loading a new design.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MakeSnapshot deep-copies components so later mutations cannot alias the
// recorded scene.
func MakeSnapshot(components []model.Component, selectedID, label string) Snapshot {
	return Snapshot{
		Components: model.CloneAll(components),
		SelectedID: selectedID,
		Label:      label,
	}
}
