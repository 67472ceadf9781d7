package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/cabinetry/internal/model"
	"github.com/piwi3910/cabinetry/internal/scene"
)

// Scenario is a scripted editing session: a sequence of store operations
// that builds up a scene. Components added with an alias can be referred to
// by that alias in later steps.
type Scenario struct {
	// Name identifies the scenario in reports.
	Name string `yaml:"name"`

	// Theme selects the palette for new components before the first step.
	// Empty keeps the store's current palette.
	Theme string `yaml:"theme,omitempty"`

	Steps []Step `yaml:"steps"`
}

// Step is one operation. Exactly one field must be set.
type Step struct {
	Add    *AddStep    `yaml:"add,omitempty"`
	Select *string     `yaml:"select,omitempty"` // "" clears the selection
	Update *UpdateStep `yaml:"update,omitempty"`
	Remove string      `yaml:"remove,omitempty"`
	Undo   bool        `yaml:"undo,omitempty"`
	Redo   bool        `yaml:"redo,omitempty"`
	Theme  string      `yaml:"theme,omitempty"` // light, dark or toggle
}

// AddStep drops a new component of Type at At.
type AddStep struct {
	Type string         `yaml:"type"`
	As   string         `yaml:"as,omitempty"`
	At   model.Position `yaml:"at"`
}

// UpdateStep patches the component named by ID, an alias or a raw ID.
type UpdateStep struct {
	ID                   string `yaml:"id"`
	model.ComponentPatch `yaml:",inline"`
}

// ThemeToggle is the Step.Theme value that flips the palette.
const ThemeToggle = "toggle"

// Aliases maps scenario aliases to the component IDs the store assigned.
type Aliases map[string]string

// Resolve returns the ID behind ref, or ref itself when it is not an alias.
func (a Aliases) Resolve(ref string) string {
	if id, ok := a[ref]; ok {
		return id
	}
	return ref
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScenario decodes a scenario, rejecting unknown fields and malformed
// steps.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

// Validate checks the scenario theme and that every step names exactly one
// well-formed operation.
func (s *Scenario) Validate() error {
	if _, err := model.PaletteByName(s.Theme); err != nil {
		return err
	}
	aliases := map[string]int{}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.Add != nil && step.Add.As != "" {
			if prev, ok := aliases[step.Add.As]; ok {
				return fmt.Errorf("step %d: alias %q already defined in step %d", i+1, step.Add.As, prev)
			}
			aliases[step.Add.As] = i + 1
		}
	}
	return nil
}

func (st Step) validate() error {
	ops := 0
	for _, set := range []bool{
		st.Add != nil, st.Select != nil, st.Update != nil, st.Remove != "",
		st.Undo, st.Redo, st.Theme != "",
	} {
		if set {
			ops++
		}
	}
	switch {
	case ops == 0:
		return errors.New("no operation")
	case ops > 1:
		return errors.New("more than one operation")
	}

	switch {
	case st.Add != nil:
		if _, err := model.ParseComponentType(st.Add.Type); err != nil {
			return err
		}
	case st.Update != nil:
		if st.Update.ID == "" {
			return errors.New("update needs an id")
		}
		if st.Update.ComponentPatch.IsEmpty() {
			return fmt.Errorf("update of %q changes nothing", st.Update.ID)
		}
	case st.Theme != "" && st.Theme != ThemeToggle:
		if _, err := model.PaletteByName(st.Theme); err != nil {
			return err
		}
	}
	return nil
}

// Run validates the scenario and applies its steps to store in order. It
// returns the alias table. References that are not aliases are passed to
// the store unchanged, so an unknown name behaves like an unknown ID.
func (s *Scenario) Run(store *scene.Store) (Aliases, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Theme != "" {
		p, _ := model.PaletteByName(s.Theme)
		store.SetPalette(p)
	}

	aliases := Aliases{}
	for _, step := range s.Steps {
		switch {
		case step.Add != nil:
			t, _ := model.ParseComponentType(step.Add.Type)
			c := store.Add(t, step.Add.At)
			if step.Add.As != "" {
				aliases[step.Add.As] = c.ID
			}
		case step.Select != nil:
			store.Select(aliases.Resolve(*step.Select))
		case step.Update != nil:
			store.Update(aliases.Resolve(step.Update.ID), step.Update.ComponentPatch)
		case step.Remove != "":
			store.Remove(aliases.Resolve(step.Remove))
		case step.Undo:
			store.Undo()
		case step.Redo:
			store.Redo()
		case step.Theme == ThemeToggle:
			store.ToggleTheme()
		case step.Theme != "":
			p, _ := model.PaletteByName(step.Theme)
			store.SetPalette(p)
		}
	}
	return aliases, nil
}
