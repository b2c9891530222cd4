package machine

import "fmt"

// DTM is a deterministic Turing machine over the same core: commands
// may write the cell under the head and move it left or right, and the
// tape extends rightward with blanks. The run halts on entering an
// accepting state or on a missing transition; pushing the head past
// the left edge rejects.
type DTM struct {
	automaton
}

func NewDTM(cfg Config) (*DTM, error) {
	core, err := newAutomaton(cfg.Alphabet, cfg.States)
	if err != nil {
		return nil, err
	}
	return &DTM{automaton: core}, nil
}

var _ Machine = (*DTM)(nil)

func (m *DTM) Kind() Kind { return KindDTM }

func (m *DTM) Reset() { m.resetCore() }

func (m *DTM) Step() bool { return m.stepWith(m) }

func (m *DTM) Run(maxSteps int) bool { return m.runWith(m, maxSteps) }

// AddTransition registers `from --input--> to`, writing `write` over
// the read cell (empty leaves it alone) and moving the head.
func (m *DTM) AddTransition(from *State, input Symbol, to *State, write Symbol, move Move) error {
	return m.delta.Add(NewCondition(from, input), NewTapeCommand(to, write, move))
}

func (m *DTM) AddTransitionByLabels(from string, input Symbol, to string, write Symbol, move Move) error {
	src, ok := m.states.GetStateByLabel(from)
	if !ok {
		return fmt.Errorf("add transition: %w: %q", ErrUnknownState, from)
	}
	dst, ok := m.states.GetStateByLabel(to)
	if !ok {
		return fmt.Errorf("add transition: %w: %q", ErrUnknownState, to)
	}
	return m.AddTransition(src, input, dst, write, move)
}

func (m *DTM) RemoveTransitionByLabels(from string, input Symbol) error {
	src, ok := m.states.GetStateByLabel(from)
	if !ok {
		return fmt.Errorf("remove transition: %w: %q", ErrUnknownState, from)
	}
	m.delta.Remove(NewCondition(src, input))
	return nil
}

func (m *DTM) haltDue() bool {
	return m.current.IsAccepting() || m.head < 0
}

func (m *DTM) activeCondition() (Condition, bool) {
	if c, ok := m.delta.EpsilonCondition(m.current.Label()); ok {
		return c, false
	}
	return Condition{State: m.current.Label(), Input: m.tape.CharAt(m.head), StackTop: Epsilon}, true
}

// apply writes, then moves. The head moves on every transition,
// epsilon or not.
func (m *DTM) apply(_ Condition, cmd Command, _ bool) {
	if cmd.Write != "" {
		pos := m.head
		m.tape.WriteAt(pos, cmd.Write)
		m.notify(func(o Observer) { o.OnTapeWrite(pos, cmd.Write) })
	}
	m.moveHead(m.head + int(cmd.Move))
}

func (m *DTM) acceptNow() bool {
	return m.head >= 0 && m.current.IsAccepting()
}
