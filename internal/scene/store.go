// Package scene owns the authoritative component collection of a design and
// the current selection. Every mutation re-runs the constraint resolver over
// the whole collection before publishing it, so readers never observe a
// child that is out of step with its cabinet.
//
// Unknown IDs are never errors: Update and Remove on a missing component do
// nothing, and selecting a missing component resolves to no selection.
package scene

import (
	"io"
	"reflect"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/cabinetry/internal/engine"
	"github.com/piwi3910/cabinetry/internal/model"
)

// Store is the single writer of a scene. All methods are safe for concurrent
// use; each call runs to completion under one lock, so concurrent callers
// are serialized operation by operation.
type Store struct {
	mu         sync.Mutex
	components []model.Component
	selectedID string
	selected   *model.Component
	palette    model.Palette
	history    *History

	historyDepth int
	newID        func() string
	logger       *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug tracing of mutations.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPalette sets the colour palette used for new components.
func WithPalette(p model.Palette) Option {
	return func(s *Store) { s.palette = p }
}

// WithIDGenerator replaces the UUID generator, mainly for deterministic tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithHistoryDepth bounds the number of undo steps kept.
func WithHistoryDepth(n int) Option {
	return func(s *Store) { s.historyDepth = n }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		components:   []model.Component{},
		palette:      model.LightPalette,
		historyDepth: model.DefaultHistoryDepth,
		newID:        model.NewID,
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.history = NewHistory(s.historyDepth)
	return s
}

// Add creates a component of type t dropped at pos, attaches it to a parent
// cabinet when one can be found, selects it and returns its resolved state.
func (s *Store) Add(t model.ComponentType, pos model.Position) model.Component {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.NewComponentWithID(s.newID(), t, pos, s.palette)
	c.ConstrainedBy = engine.ResolveParent(s.components, s.selected, t, pos)

	s.pushHistory("Add " + t.String())
	next := append(model.CloneAll(s.components), c)
	s.components = engine.Resolve(next)
	s.selectedID = c.ID
	s.refreshSelection()

	added := s.components[len(s.components)-1]
	s.logger.Debug("component added", "id", added.ID, "type", added.Type, "parent", added.ConstrainedBy,
		"x", added.Position.X, "y", added.Position.Y)
	return added.Clone()
}

// Update merges patch into the component with the given ID. Moving a cabinet
// carries its children along by the same offset before constraints are
// re-applied, so children follow the cabinet and are then clamped into the
// new interior. An update that resolves to the current scene records no
// history.
func (s *Store) Update(id string, patch model.ComponentPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := model.Find(s.components, id)
	if idx < 0 {
		s.logger.Debug("update ignored, unknown component", "id", id)
		return
	}
	if patch.IsEmpty() {
		return
	}

	orig := s.components[idx]
	next := model.CloneAll(s.components)
	next[idx] = patch.Apply(orig)

	dx := next[idx].Position.X - orig.Position.X
	dy := next[idx].Position.Y - orig.Position.Y
	if orig.IsCabinet() && (dx != 0 || dy != 0) {
		moved := 0
		for i := range next {
			if i != idx && next[i].ConstrainedBy == id {
				next[i].Position = next[i].Position.Translate(dx, dy)
				moved++
			}
		}
		s.logger.Debug("cabinet moved", "id", id, "dx", dx, "dy", dy, "children", moved)
	}

	resolved := engine.Resolve(next)
	if reflect.DeepEqual(resolved, s.components) {
		s.logger.Debug("update ignored, nothing changed", "id", id)
		return
	}
	s.pushHistory("Update " + orig.Type.String())
	s.components = resolved
	s.refreshSelection()
}

// Remove deletes the component with the given ID together with every
// component it directly constrains. The selection is cleared if it pointed
// at any removed component.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := model.Find(s.components, id)
	if idx < 0 {
		s.logger.Debug("remove ignored, unknown component", "id", id)
		return
	}

	doomed := map[string]bool{id: true}
	for _, c := range s.components {
		if c.ConstrainedBy == id {
			doomed[c.ID] = true
		}
	}

	s.pushHistory("Remove " + s.components[idx].Type.String())
	kept := make([]model.Component, 0, len(s.components)-len(doomed))
	for _, c := range s.components {
		if !doomed[c.ID] {
			kept = append(kept, c)
		}
	}
	s.components = kept
	if doomed[s.selectedID] {
		s.selectedID = ""
	}
	s.refreshSelection()
	s.logger.Debug("component removed", "id", id, "cascade", len(doomed)-1)
}

// Select sets the selection to id, or clears it for "". The ID is kept even
// when it does not name a component; Selected then reports nothing.
func (s *Store) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedID = id
	s.refreshSelection()
}

// Undo restores the scene as it was before the last mutation.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.history.Undo(MakeSnapshot(s.components, s.selectedID, ""))
	if !ok {
		return false
	}
	s.restore(snap)
	s.logger.Debug("undo", "label", snap.Label)
	return true
}

// Redo re-applies the last undone mutation.
func (s *Store) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.history.Redo(MakeSnapshot(s.components, s.selectedID, ""))
	if !ok {
		return false
	}
	s.restore(snap)
	s.logger.Debug("redo", "label", snap.Label)
	return true
}

// CanUndo reports whether Undo would change anything.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// Components returns a copy of the resolved collection in insertion order.
func (s *Store) Components() []model.Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneAll(s.components)
}

// Len returns the number of components in the scene.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.components)
}

// Component returns the component with the given ID.
func (s *Store) Component(id string) (model.Component, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := model.Find(s.components, id)
	if idx < 0 {
		return model.Component{}, false
	}
	return s.components[idx].Clone(), true
}

// Children returns the components directly constrained by id.
func (s *Store) Children(id string) []model.Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.Children(s.components, id)
}

// SelectedID returns the selection ID exactly as last set.
func (s *Store) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// Selected returns the resolved selected component, if the selection ID
// names one.
func (s *Store) Selected() (model.Component, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return model.Component{}, false
	}
	return s.selected.Clone(), true
}

// Palette returns the palette used for new components.
func (s *Store) Palette() model.Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette
}

// SetPalette changes the palette for components created from now on.
// Existing component colours are left alone.
func (s *Store) SetPalette(p model.Palette) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.palette = p
}

// ToggleTheme switches between the light and dark palettes and returns the
// new one.
func (s *Store) ToggleTheme() model.Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.palette = s.palette.Toggle()
	return s.palette
}

func (s *Store) pushHistory(label string) {
	s.history.Push(MakeSnapshot(s.components, s.selectedID, label))
}

// restore installs a snapshot, re-resolving it in case it was taken from an
// inconsistent state.
func (s *Store) restore(snap Snapshot) {
	s.components = engine.Resolve(snap.Components)
	if s.components == nil {
		s.components = []model.Component{}
	}
	s.selectedID = snap.SelectedID
	s.refreshSelection()
}

func (s *Store) refreshSelection() {
	idx := model.Find(s.components, s.selectedID)
	if idx < 0 {
		s.selected = nil
		return
	}
	sel := s.components[idx].Clone()
	s.selected = &sel
}
