package machine

import (
	"fmt"

	"github.com/enetx/g"
)

// State is a labeled node of an automaton. States are shared and
// immutable once created; engines reference them, they never own them.
type State struct {
	label     string
	accepting bool
}

func (s *State) Label() string { return s.label }

func (s *State) IsAccepting() bool { return s.accepting }

func (s *State) String() string {
	if s.accepting {
		return s.label + "*"
	}
	return s.label
}

// StateTable holds the states of one machine, keyed by label, with one
// designated initial state.
type StateTable struct {
	states  g.Map[string, *State]
	order   g.Slice[string]
	initial *State
}

func NewStateTable() *StateTable {
	return &StateTable{states: make(g.Map[string, *State])}
}

// Add registers a new labeled state. Labels are unique per table.
func (t *StateTable) Add(label string, accepting bool) (*State, error) {
	if label == "" {
		return nil, fmt.Errorf("add state: empty label")
	}
	if _, ok := t.states[label]; ok {
		return nil, fmt.Errorf("add state: duplicate label %q", label)
	}
	s := &State{label: label, accepting: accepting}
	t.states[label] = s
	t.order = append(t.order, label)
	return s, nil
}

// SetInitial designates the state every run starts from.
func (t *StateTable) SetInitial(label string) error {
	s, ok := t.states[label]
	if !ok {
		return fmt.Errorf("set initial: %w: %q", ErrUnknownState, label)
	}
	t.initial = s
	return nil
}

func (t *StateTable) Initial() *State { return t.initial }

func (t *StateTable) GetStateByLabel(label string) (*State, bool) {
	s, ok := t.states[label]
	return s, ok
}

// Labels returns state labels in insertion order.
func (t *StateTable) Labels() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t *StateTable) Size() int { return len(t.states) }
