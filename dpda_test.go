package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newCountingDPDA accepts a^n b^n by empty stack: the a-count lives in
// a single growing stack unit.
func newCountingDPDA(t *testing.T) *DPDA {
	t.Helper()

	states := NewStateTable()
	_, err := states.Add("q0", false)
	assert.NoError(t, err)
	assert.NoError(t, states.SetInitial("q0"))

	m, err := NewDPDA(Config{
		Alphabet:           NewAlphabet("#", "a", "b"),
		States:             states,
		StackAlphabet:      NewAlphabet("#", "Z", "a"),
		InitialStackSymbol: "Z",
	})
	assert.NoError(t, err)

	assert.NoError(t, m.AddTransitionByLabels("q0", "a", "Z", "q0", "a"))
	assert.NoError(t, m.AddTransitionByLabels("q0", "a", "a", "q0", "aa"))
	assert.NoError(t, m.AddTransitionByLabels("q0", "b", "aa", "q0", "a"))
	assert.NoError(t, m.AddTransitionByLabels("q0", "b", "a", "q0", Epsilon))
	return m
}

func TestDPDAAcceptsByStack(t *testing.T) {
	m := newCountingDPDA(t)
	assert.NoError(t, m.SetInputString("aabb"))

	assert.True(t, m.Run(100))
	assert.True(t, m.Accepted())
	assert.Equal(t, AcceptByStack, m.AcceptanceMode())
	assert.True(t, m.StackPeek() == Epsilon)
	assert.Equal(t, 4, m.StepCount())
	assert.Equal(t, 4, m.Pointer())
}

func TestDPDARejectsUnbalancedInput(t *testing.T) {
	for _, input := range []string{"aab", "abb", "ba", "a"} {
		m := newCountingDPDA(t)
		assert.NoError(t, m.SetInputString(input))
		assert.True(t, m.Run(100), "input %q", input)
		assert.False(t, m.Accepted(), "input %q", input)
		assert.Equal(t, AcceptNone, m.AcceptanceMode(), "input %q", input)
	}
}

// By-state acceptance is checked first and wins when both modes hold.
func TestDPDAByStatePriority(t *testing.T) {
	states := NewStateTable()
	q0, _ := states.Add("q0", false)
	qf, _ := states.Add("qf", true)
	assert.NoError(t, states.SetInitial("q0"))

	m, err := NewDPDA(Config{
		Alphabet:           NewAlphabet("#", "a"),
		States:             states,
		StackAlphabet:      NewAlphabet("#", "Z"),
		InitialStackSymbol: "Z",
	})
	assert.NoError(t, err)
	// Pops Z and moves to the accepting state: at halt the state is
	// accepting AND the stack is empty.
	assert.NoError(t, m.AddTransition(q0, "a", "Z", qf))

	assert.NoError(t, m.SetInputString("a"))
	assert.True(t, m.Run(10))
	assert.True(t, m.Accepted())
	assert.Equal(t, AcceptByState, m.AcceptanceMode())
	assert.True(t, m.stack.IsEmpty())
}

// The implicit pop is gated on the matched condition's declared stack
// field, not on the live stack top.
func TestDPDAEpsilonGatedConditionSkipsPop(t *testing.T) {
	states := NewStateTable()
	q0, _ := states.Add("q0", false)
	assert.NoError(t, states.SetInitial("q0"))

	m, err := NewDPDA(Config{
		Alphabet:           NewAlphabet("#", "a", "b"),
		States:             states,
		StackAlphabet:      NewAlphabet("#", "Z", "X"),
		InitialStackSymbol: "Z",
	})
	assert.NoError(t, err)
	// First move empties the stack; second matches on the empty stack
	// (top = Epsilon), skips the pop and pushes X.
	assert.NoError(t, m.AddTransition(q0, "a", "Z", q0))
	assert.NoError(t, m.AddStackTransition(q0, "b", Epsilon, q0, "X"))

	rec := &recorder{}
	m.AddObserver(rec)
	assert.NoError(t, m.SetInputString("ab"))

	assert.False(t, m.Step())
	assert.True(t, m.stack.IsEmpty())

	assert.True(t, m.Step())
	assert.Equal(t, Symbol("X"), m.StackPeek())
	assert.True(t, m.Halted())
	// Not accepting: state q0 is plain and the stack holds X.
	assert.False(t, m.Accepted())

	assert.Contains(t, rec.events, "pop Z")
	assert.Contains(t, rec.events, "push X")
	assert.NotContains(t, rec.events, "pop "+string(Epsilon))
}

// An epsilon transition can drain the stack after the input runs out;
// an epsilon stack top then blocks further epsilon moves and the
// machine accepts by stack.
func TestDPDAEpsilonDrainThenByStackAccept(t *testing.T) {
	states := NewStateTable()
	q0, _ := states.Add("q0", false)
	q1, _ := states.Add("q1", false)
	assert.NoError(t, states.SetInitial("q0"))

	m, err := NewDPDA(Config{
		Alphabet:           NewAlphabet("#", "a"),
		States:             states,
		StackAlphabet:      NewAlphabet("#", "Z", "A"),
		InitialStackSymbol: "Z",
	})
	assert.NoError(t, err)
	assert.NoError(t, m.AddStackTransition(q0, "a", "Z", q0, "A"))
	assert.NoError(t, m.AddTransition(q0, Epsilon, "A", q1))
	assert.NoError(t, m.AddTransition(q1, Epsilon, "A", q1)) // never fires for this input

	assert.NoError(t, m.SetInputString("a"))

	// Consumes the "a", replacing Z with A.
	assert.False(t, m.Step())
	assert.Equal(t, Symbol("A"), m.StackPeek())
	assert.Equal(t, 1, m.Pointer())

	// Tape exhausted, but q0 still has an epsilon move and a live
	// stack top: pops A without touching the cursor, and the halting
	// re-check then sees q1's epsilon move blocked by the empty stack.
	assert.True(t, m.Step())
	assert.Equal(t, 1, m.Pointer())
	assert.True(t, m.Accepted())
	assert.Equal(t, AcceptByStack, m.AcceptanceMode())
}

func TestDPDAStackOpsValidateAlphabet(t *testing.T) {
	m := newCountingDPDA(t)

	assert.ErrorIs(t, m.StackPush("q"), ErrInvalidStackSymbol)
	assert.ErrorIs(t, m.StackPush(Epsilon), ErrInvalidStackSymbol)
	assert.NoError(t, m.StackPush("aa"))
	assert.Equal(t, Symbol("aa"), m.StackPeek())
	assert.Equal(t, Symbol("aa"), m.StackPop())

	assert.ErrorIs(t, m.AddStackTransition(m.CurrentState(), "a", "Z", m.CurrentState(), "q"),
		ErrInvalidStackSymbol)
}

func TestDPDAInvalidInitialStackSymbol(t *testing.T) {
	states := NewStateTable()
	_, err := states.Add("q0", false)
	assert.NoError(t, err)
	assert.NoError(t, states.SetInitial("q0"))

	cfg := Config{
		Alphabet:           NewAlphabet("#", "a"),
		States:             states,
		StackAlphabet:      NewAlphabet("#", "Z"),
		InitialStackSymbol: "Q",
	}
	_, err = NewDPDA(cfg)
	assert.ErrorIs(t, err, ErrInvalidInitialStackSymbol)

	cfg.InitialStackSymbol = ""
	_, err = NewDPDA(cfg)
	assert.ErrorIs(t, err, ErrInvalidInitialStackSymbol)

	cfg.StackAlphabet = nil
	_, err = NewDPDA(cfg)
	assert.ErrorIs(t, err, ErrMissingStackAlphabet)
}

func TestDPDAResetRestoresInitialStack(t *testing.T) {
	m := newCountingDPDA(t)
	assert.NoError(t, m.SetInputString("aabb"))
	assert.True(t, m.Run(100))
	assert.Equal(t, AcceptByStack, m.AcceptanceMode())

	m.Reset()
	assert.Equal(t, AcceptNone, m.AcceptanceMode())
	assert.Equal(t, Symbol("Z"), m.StackPeek())
	assert.Equal(t, 1, m.StackSize())
	assert.False(t, m.Halted())

	assert.NoError(t, m.SetInputString("aabb"))
	assert.True(t, m.Run(100))
	assert.True(t, m.Accepted())
	assert.Equal(t, AcceptByStack, m.AcceptanceMode())
}
