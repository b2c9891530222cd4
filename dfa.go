package machine

import "fmt"

// DFA drives step-by-step execution over a tape and a transition
// function, no auxiliary storage. Halting is due when the cursor has
// reached the end of the tape and the current state has no epsilon
// transition; acceptance is by accepting state.
type DFA struct {
	automaton
}

// Config carries machine construction options. StackAlphabet and
// InitialStackSymbol apply to the DPDA only.
type Config struct {
	Alphabet           *Alphabet
	States             *StateTable
	StackAlphabet      *Alphabet
	InitialStackSymbol Symbol
}

func NewDFA(cfg Config) (*DFA, error) {
	core, err := newAutomaton(cfg.Alphabet, cfg.States)
	if err != nil {
		return nil, err
	}
	return &DFA{automaton: core}, nil
}

var _ Machine = (*DFA)(nil)

func (m *DFA) Kind() Kind { return KindDFA }

func (m *DFA) Reset() { m.resetCore() }

func (m *DFA) Step() bool { return m.stepWith(m) }

func (m *DFA) Run(maxSteps int) bool { return m.runWith(m, maxSteps) }

// AddTransition registers `from --input--> to`.
func (m *DFA) AddTransition(from *State, input Symbol, to *State) error {
	return m.delta.Add(NewCondition(from, input), NewCommand(to))
}

func (m *DFA) AddTransitionByLabels(from string, input Symbol, to string) error {
	src, ok := m.states.GetStateByLabel(from)
	if !ok {
		return fmt.Errorf("add transition: %w: %q", ErrUnknownState, from)
	}
	dst, ok := m.states.GetStateByLabel(to)
	if !ok {
		return fmt.Errorf("add transition: %w: %q", ErrUnknownState, to)
	}
	return m.AddTransition(src, input, dst)
}

func (m *DFA) RemoveTransitionByLabels(from string, input Symbol) error {
	src, ok := m.states.GetStateByLabel(from)
	if !ok {
		return fmt.Errorf("remove transition: %w: %q", ErrUnknownState, from)
	}
	m.delta.Remove(NewCondition(src, input))
	return nil
}

func (m *DFA) haltDue() bool {
	return m.head >= m.tape.Length() && !m.delta.HasEpsilonTransition(m.current.Label())
}

// activeCondition prefers the state's epsilon transition; such a step
// consumes no input and leaves the cursor in place.
func (m *DFA) activeCondition() (Condition, bool) {
	if c, ok := m.delta.EpsilonCondition(m.current.Label()); ok {
		return c, false
	}
	return Condition{State: m.current.Label(), Input: m.tape.CharAt(m.head), StackTop: Epsilon}, true
}

func (m *DFA) apply(_ Condition, _ Command, consumesInput bool) {
	if consumesInput {
		m.advance()
	}
}

func (m *DFA) acceptNow() bool { return m.current.IsAccepting() }
