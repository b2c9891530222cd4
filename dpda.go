package machine

import "fmt"

// DPDA extends the DFA's step/halt shape with a stack. A transition
// consumes exactly one stack element unless its condition's stack
// field is Epsilon, and may push one unit afterwards. Acceptance is
// by-state first, by-stack (empty stack) second.
type DPDA struct {
	automaton
	stackAlphabet *Alphabet
	initialSymbol Symbol
	stack         *Stack
	mode          AcceptanceMode
}

func NewDPDA(cfg Config) (*DPDA, error) {
	core, err := newAutomaton(cfg.Alphabet, cfg.States)
	if err != nil {
		return nil, err
	}
	if cfg.StackAlphabet == nil {
		return nil, fmt.Errorf("new dpda: %w", ErrMissingStackAlphabet)
	}
	if cfg.InitialStackSymbol == "" || !cfg.StackAlphabet.IsCompatibleWith(string(cfg.InitialStackSymbol)) {
		return nil, fmt.Errorf("new dpda: %w: %q", ErrInvalidInitialStackSymbol, cfg.InitialStackSymbol)
	}
	m := &DPDA{
		automaton:     core,
		stackAlphabet: cfg.StackAlphabet,
		initialSymbol: cfg.InitialStackSymbol,
		stack:         NewStack(),
	}
	m.stack.Push(m.initialSymbol)
	return m, nil
}

var _ Machine = (*DPDA)(nil)

func (m *DPDA) Kind() Kind { return KindDPDA }

func (m *DPDA) Reset() {
	m.resetCore()
	m.stack.Clear()
	m.stack.Push(m.initialSymbol)
	m.mode = AcceptNone
}

func (m *DPDA) Step() bool { return m.stepWith(m) }

func (m *DPDA) Run(maxSteps int) bool { return m.runWith(m, maxSteps) }

// AcceptanceMode reports how the machine accepted; AcceptNone unless
// halted accepted.
func (m *DPDA) AcceptanceMode() AcceptanceMode { return m.mode }

// Stack accessors. The engine keeps at least the initial symbol
// present except transiently inside a pop-then-push pair.

func (m *DPDA) StackPush(sym Symbol) error {
	if sym == Epsilon || !m.stackAlphabet.IsCompatibleWith(string(sym)) {
		return fmt.Errorf("stack push %q: %w", sym, ErrInvalidStackSymbol)
	}
	m.push(sym)
	return nil
}

func (m *DPDA) StackPop() Symbol { return m.pop() }

func (m *DPDA) StackPeek() Symbol { return m.stack.Peek() }

func (m *DPDA) StackSize() int { return m.stack.Size() }

func (m *DPDA) push(sym Symbol) {
	m.stack.Push(sym)
	m.notify(func(o Observer) { o.OnStackPush(sym) })
}

func (m *DPDA) pop() Symbol {
	sym := m.stack.Pop()
	m.notify(func(o Observer) { o.OnStackPop(sym) })
	return sym
}

// AddTransition registers `from --input, stackTop--> to` with no push:
// the matched transition pops stackTop and leaves the stack otherwise
// alone. A stackTop of Epsilon gates on the empty stack and skips the
// pop.
func (m *DPDA) AddTransition(from *State, input, stackTop Symbol, to *State) error {
	return m.delta.Add(NewStackCondition(from, input, stackTop), NewCommand(to))
}

// AddStackTransition additionally pushes `push` (as one unit) after
// the pop.
func (m *DPDA) AddStackTransition(from *State, input, stackTop Symbol, to *State, push Symbol) error {
	if push != Epsilon && !m.stackAlphabet.IsCompatibleWith(string(push)) {
		return fmt.Errorf("add transition: push %q: %w", push, ErrInvalidStackSymbol)
	}
	return m.delta.Add(NewStackCondition(from, input, stackTop), NewStackCommand(to, push))
}

func (m *DPDA) AddTransitionByLabels(from string, input, stackTop Symbol, to string, push Symbol) error {
	src, ok := m.states.GetStateByLabel(from)
	if !ok {
		return fmt.Errorf("add transition: %w: %q", ErrUnknownState, from)
	}
	dst, ok := m.states.GetStateByLabel(to)
	if !ok {
		return fmt.Errorf("add transition: %w: %q", ErrUnknownState, to)
	}
	if push == Epsilon {
		return m.AddTransition(src, input, stackTop, dst)
	}
	return m.AddStackTransition(src, input, stackTop, dst, push)
}

func (m *DPDA) RemoveTransitionByLabels(from string, input, stackTop Symbol) error {
	src, ok := m.states.GetStateByLabel(from)
	if !ok {
		return fmt.Errorf("remove transition: %w: %q", ErrUnknownState, from)
	}
	m.delta.Remove(NewStackCondition(src, input, stackTop))
	return nil
}

// haltDue: end of tape, and either no epsilon transition for the
// current state or an epsilon stack top — an empty stack blocks
// further epsilon-triggered moves.
func (m *DPDA) haltDue() bool {
	if m.head < m.tape.Length() {
		return false
	}
	if !m.delta.HasEpsilonTransition(m.current.Label()) {
		return true
	}
	return m.stack.Peek() == Epsilon
}

func (m *DPDA) activeCondition() (Condition, bool) {
	if c, ok := m.delta.EpsilonCondition(m.current.Label()); ok {
		return c, false
	}
	return Condition{
		State:    m.current.Label(),
		Input:    m.tape.CharAt(m.head),
		StackTop: m.stack.Peek(),
	}, true
}

// apply pops one element unless the matched condition's stack field is
// Epsilon — gating is on the declared condition, not the live top —
// then pushes the command's argument, then advances the cursor for
// input-consuming steps.
func (m *DPDA) apply(cond Condition, cmd Command, consumesInput bool) {
	if cond.StackTop != Epsilon {
		m.pop()
	}
	if cmd.Action == StackChange && cmd.Argument != Epsilon {
		m.push(cmd.Argument)
	}
	if consumesInput {
		m.advance()
	}
}

// acceptNow checks by-state first; by-stack applies only when the
// state check fails.
func (m *DPDA) acceptNow() bool {
	if m.current.IsAccepting() {
		m.mode = AcceptByState
		return true
	}
	if m.stack.IsEmpty() {
		m.mode = AcceptByStack
		return true
	}
	return false
}
