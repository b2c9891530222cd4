package machine

import (
	"fmt"

	"github.com/enetx/g"
)

// Condition is the transition key: what must be true for a command to
// fire. Equality is by value of all fields. DFA and DTM conditions
// carry Epsilon in StackTop.
type Condition struct {
	State    string
	Input    Symbol
	StackTop Symbol
}

func NewCondition(state *State, input Symbol) Condition {
	return Condition{State: state.Label(), Input: input, StackTop: Epsilon}
}

func NewStackCondition(state *State, input, stackTop Symbol) Condition {
	return Condition{State: state.Label(), Input: input, StackTop: stackTop}
}

func (c Condition) String() string {
	if c.StackTop == Epsilon {
		return fmt.Sprintf("(%s, %s)", c.State, c.Input)
	}
	return fmt.Sprintf("(%s, %s, %s)", c.State, c.Input, c.StackTop)
}

// StackAction says whether a command rewrites the stack after the
// implicit pop.
type StackAction int

const (
	StackNone StackAction = iota
	StackChange
)

// Move is a DTM head direction.
type Move int8

const (
	L Move = -1
	R Move = +1
)

func (m Move) String() string {
	if m == L {
		return "L"
	}
	return "R"
}

// Command is the transition value: the destination state plus the
// optional stack mutation (DPDA) or tape write and head move (DTM).
type Command struct {
	Target   *State
	Action   StackAction
	Argument Symbol // pushed as one unit when Action is StackChange
	Write    Symbol // DTM cell write; empty means leave the cell alone
	Move     Move   // DTM head direction
}

func NewCommand(target *State) Command {
	return Command{Target: target}
}

func NewStackCommand(target *State, push Symbol) Command {
	return Command{Target: target, Action: StackChange, Argument: push}
}

func NewTapeCommand(target *State, write Symbol, move Move) Command {
	return Command{Target: target, Write: write, Move: move}
}

func (c Command) String() string {
	out := "→" + c.Target.Label()
	if c.Action == StackChange && c.Argument != Epsilon {
		out += fmt.Sprintf(" push %s", c.Argument)
	}
	if c.Write != "" {
		out += fmt.Sprintf(" write %s", c.Write)
	}
	return out
}

// TransitionFunction maps Conditions to Commands and indexes, per
// state, the at-most-one epsilon transition.
type TransitionFunction struct {
	rules g.Map[Condition, Command]
	eps   g.Map[string, Condition]
	order g.Slice[Condition]
}

func NewTransitionFunction() *TransitionFunction {
	return &TransitionFunction{
		rules: make(g.Map[Condition, Command]),
		eps:   make(g.Map[string, Condition]),
	}
}

// Add registers a Condition→Command pair. Re-adding an identical pair
// is a no-op; a different command for an equal condition fails with
// ErrDuplicateTransition, and a second epsilon transition for a state
// fails with ErrMultipleEpsilonTransitions. Failed adds leave the
// function unchanged.
func (f *TransitionFunction) Add(cond Condition, cmd Command) error {
	if existing, ok := f.rules[cond]; ok {
		if existing == cmd {
			return nil
		}
		return fmt.Errorf("add transition %s: %w", cond, ErrDuplicateTransition)
	}
	if cond.Input == Epsilon {
		if prev, ok := f.eps[cond.State]; ok && prev != cond {
			return fmt.Errorf("add transition %s: %w", cond, ErrMultipleEpsilonTransitions)
		}
		f.eps[cond.State] = cond
	}
	f.rules[cond] = cmd
	f.order = append(f.order, cond)
	return nil
}

// Remove erases the pair for cond if present, no-op otherwise.
func (f *TransitionFunction) Remove(cond Condition) {
	if _, ok := f.rules[cond]; !ok {
		return
	}
	delete(f.rules, cond)
	if prev, ok := f.eps[cond.State]; ok && prev == cond {
		delete(f.eps, cond.State)
	}
	for i, c := range f.order {
		if c == cond {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Lookup is an exact-match query.
func (f *TransitionFunction) Lookup(cond Condition) (Command, bool) {
	cmd, ok := f.rules[cond]
	return cmd, ok
}

func (f *TransitionFunction) HasEpsilonTransition(stateLabel string) bool {
	_, ok := f.eps[stateLabel]
	return ok
}

func (f *TransitionFunction) EpsilonCondition(stateLabel string) (Condition, bool) {
	c, ok := f.eps[stateLabel]
	return c, ok
}

// Conditions returns registered conditions in insertion order.
func (f *TransitionFunction) Conditions() []Condition {
	out := make([]Condition, len(f.order))
	copy(out, f.order)
	return out
}

func (f *TransitionFunction) Size() int { return len(f.rules) }
