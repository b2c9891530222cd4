package machine

import (
	"fmt"

	"github.com/enetx/g"
)

type Kind int

const (
	KindDFA Kind = iota
	KindDPDA
	KindDTM
)

func (k Kind) String() string {
	switch k {
	case KindDFA:
		return "dfa"
	case KindDPDA:
		return "dpda"
	case KindDTM:
		return "dtm"
	default:
		return "unknown"
	}
}

// AcceptanceMode records how a DPDA accepted. It is set only upon
// acceptance.
type AcceptanceMode int

const (
	AcceptNone AcceptanceMode = iota
	AcceptByState
	AcceptByStack
)

func (m AcceptanceMode) String() string {
	switch m {
	case AcceptByState:
		return "by-state"
	case AcceptByStack:
		return "by-stack"
	default:
		return "none"
	}
}

// Observer receives run events. Delivery is synchronous, in
// registration order, during the triggering Step/Run call; observers
// must read, never mutate, machine state and must not re-enter
// Step/Run on the same machine.
type Observer interface {
	OnStep(cond Condition, cmd Command, step, head int)
	OnAccept()
	OnReject()
	OnHalt()
	OnPointerChange(from, to int)
	OnStackPush(sym Symbol)
	OnStackPop(sym Symbol)
	OnTapeWrite(pos int, sym Symbol)
}

// BaseObserver is a no-op Observer for embedding.
type BaseObserver struct{}

func (BaseObserver) OnStep(Condition, Command, int, int) {}
func (BaseObserver) OnAccept()                           {}
func (BaseObserver) OnReject()                           {}
func (BaseObserver) OnHalt()                             {}
func (BaseObserver) OnPointerChange(int, int)            {}
func (BaseObserver) OnStackPush(Symbol)                  {}
func (BaseObserver) OnStackPop(Symbol)                   {}
func (BaseObserver) OnTapeWrite(int, Symbol)             {}

// Machine is the shared surface of the engines.
type Machine interface {
	Kind() Kind
	SetInputString(text string) error
	Reset()
	Step() bool
	Run(maxSteps int) bool
	CurrentState() *State
	Pointer() int
	StepCount() int
	Halted() bool
	Accepted() bool
	States() *StateTable
	Transitions() *TransitionFunction
	Tape() *Tape
	AddObserver(o Observer)
}

// variant supplies the per-engine pieces of the step algorithm: when a
// halt is due, which condition is active (and whether it consumes
// input), and how a command mutates the auxiliary storage.
type variant interface {
	haltDue() bool
	activeCondition() (cond Condition, consumesInput bool)
	apply(cond Condition, cmd Command, consumesInput bool)
	acceptNow() bool
}

// automaton is the state/transition bookkeeping shared by every
// engine: composition instead of a base-class hierarchy.
type automaton struct {
	alphabet  *Alphabet
	states    *StateTable
	delta     *TransitionFunction
	tape      *Tape
	current   *State
	head      int
	steps     int
	halted    bool
	accepted  bool
	observers g.Slice[Observer]
	history   g.Slice[string]
}

func newAutomaton(alphabet *Alphabet, states *StateTable) (automaton, error) {
	if alphabet == nil {
		return automaton{}, fmt.Errorf("new machine: %w", ErrMissingAlphabet)
	}
	if states == nil {
		return automaton{}, fmt.Errorf("new machine: %w", ErrMissingStates)
	}
	if states.Initial() == nil {
		return automaton{}, fmt.Errorf("new machine: %w", ErrMissingInitialState)
	}
	a := automaton{
		alphabet: alphabet,
		states:   states,
		delta:    NewTransitionFunction(),
		tape:     NewTape(alphabet.Blank()),
	}
	a.resetCore()
	return a, nil
}

func (a *automaton) resetCore() {
	a.current = a.states.Initial()
	a.head = 0
	a.steps = 0
	a.halted = false
	a.accepted = false
	a.history = a.history[:0]
	a.history = append(a.history, a.current.Label())
}

// SetInputString rebinds the tape and resets the cursor. The current
// state is untouched; callers typically Reset first.
func (a *automaton) SetInputString(text string) error {
	if !a.alphabet.IsCompatibleWith(text) {
		return fmt.Errorf("set input %q: %w", text, ErrIncompatibleInput)
	}
	chars := make([]Symbol, 0, len(text))
	for _, r := range text {
		chars = append(chars, Symbol(r))
	}
	a.tape.SetChars(chars)
	a.head = 0
	return nil
}

func (a *automaton) CurrentState() *State { return a.current }

func (a *automaton) Pointer() int { return a.head }

func (a *automaton) StepCount() int { return a.steps }

func (a *automaton) Halted() bool { return a.halted }

func (a *automaton) Accepted() bool { return a.accepted }

func (a *automaton) States() *StateTable { return a.states }

func (a *automaton) Transitions() *TransitionFunction { return a.delta }

func (a *automaton) Tape() *Tape { return a.tape }

func (a *automaton) AddObserver(o Observer) {
	if o != nil {
		a.observers = append(a.observers, o)
	}
}

// History returns the labels of visited states, initial state first.
func (a *automaton) History() []string {
	out := make([]string, len(a.history))
	copy(out, a.history)
	return out
}

func (a *automaton) notify(f func(Observer)) {
	for _, o := range a.observers {
		f(o)
	}
}

func (a *automaton) moveHead(to int) {
	from := a.head
	a.head = to
	a.notify(func(o Observer) { o.OnPointerChange(from, to) })
}

func (a *automaton) advance() { a.moveHead(a.head + 1) }

func (a *automaton) setState(s *State) {
	a.current = s
	a.history = append(a.history, s.Label())
}

// finalize settles acceptance and fires accept/reject then halt.
func (a *automaton) finalize(v variant) {
	a.halted = true
	a.accepted = v.acceptNow()
	if a.accepted {
		a.notify(func(o Observer) { o.OnAccept() })
	} else {
		a.notify(func(o Observer) { o.OnReject() })
	}
	a.notify(func(o Observer) { o.OnHalt() })
}

func (a *automaton) finishIfDue(v variant) bool {
	if !v.haltDue() {
		return false
	}
	a.finalize(v)
	return true
}

// haltRejected ends the run on a missing transition. That is a normal
// outcome of the automaton model, not an error.
func (a *automaton) haltRejected() {
	a.halted = true
	a.accepted = false
	a.notify(func(o Observer) { o.OnReject() })
	a.notify(func(o Observer) { o.OnHalt() })
}

// stepWith runs one step of the shared algorithm. Returns true when
// the machine is halted. Once halted it is an idempotent no-op.
func (a *automaton) stepWith(v variant) bool {
	if a.halted {
		return true
	}
	a.steps++
	if a.finishIfDue(v) {
		return true
	}
	cond, consumes := v.activeCondition()
	cmd, ok := a.delta.Lookup(cond)
	if !ok {
		a.haltRejected()
		return true
	}
	v.apply(cond, cmd, consumes)
	a.setState(cmd.Target)
	step, head := a.steps, a.head
	a.notify(func(o Observer) { o.OnStep(cond, cmd, step, head) })
	// A transition can land on an exhausted tape with no further
	// moves; the halting predicate is re-checked after applying it.
	return a.finishIfDue(v)
}

// runWith steps at most maxSteps times, stopping at the first halt.
// Reports whether the machine ended halted.
func (a *automaton) runWith(v variant, maxSteps int) bool {
	for i := 0; i < maxSteps; i++ {
		if a.stepWith(v) {
			break
		}
	}
	return a.halted
}
