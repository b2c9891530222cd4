package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newFlipperDTM flips every bit and accepts on the first blank.
func newFlipperDTM(t *testing.T) *DTM {
	t.Helper()

	states := NewStateTable()
	q0, err := states.Add("q0", false)
	assert.NoError(t, err)
	halt, err := states.Add("halt", true)
	assert.NoError(t, err)
	assert.NoError(t, states.SetInitial("q0"))

	m, err := NewDTM(Config{Alphabet: NewAlphabet("#", "0", "1"), States: states})
	assert.NoError(t, err)
	assert.NoError(t, m.AddTransition(q0, "0", q0, "1", R))
	assert.NoError(t, m.AddTransition(q0, "1", q0, "0", R))
	assert.NoError(t, m.AddTransition(q0, "#", halt, "", R))
	return m
}

func TestDTMWritesAndAccepts(t *testing.T) {
	m := newFlipperDTM(t)
	assert.NoError(t, m.SetInputString("0110"))

	assert.True(t, m.Run(100))
	assert.True(t, m.Accepted())
	assert.Equal(t, 5, m.StepCount())

	// The input region was flipped in place; position 4 still reads as
	// the blank fill.
	assert.Equal(t, Symbol("1"), m.Tape().CharAt(0))
	assert.Equal(t, Symbol("0"), m.Tape().CharAt(1))
	assert.Equal(t, Symbol("0"), m.Tape().CharAt(2))
	assert.Equal(t, Symbol("1"), m.Tape().CharAt(3))
}

func TestDTMRejectsOnMissingTransition(t *testing.T) {
	states := NewStateTable()
	q0, _ := states.Add("q0", false)
	assert.NoError(t, states.SetInitial("q0"))

	m, err := NewDTM(Config{Alphabet: NewAlphabet("#", "0", "1"), States: states})
	assert.NoError(t, err)
	assert.NoError(t, m.AddTransition(q0, "0", q0, "", R))

	assert.NoError(t, m.SetInputString("01"))
	assert.True(t, m.Run(100))
	assert.False(t, m.Accepted())
	assert.Equal(t, 2, m.StepCount())
}

func TestDTMRejectsPastLeftEdge(t *testing.T) {
	states := NewStateTable()
	q0, _ := states.Add("q0", false)
	q1, _ := states.Add("q1", true)
	assert.NoError(t, states.SetInitial("q0"))

	m, err := NewDTM(Config{Alphabet: NewAlphabet("#", "0"), States: states})
	assert.NoError(t, err)
	assert.NoError(t, m.AddTransition(q0, "0", q1, "", L))

	assert.NoError(t, m.SetInputString("0"))
	assert.True(t, m.Step())
	assert.True(t, m.Halted())
	// The move landed on an accepting state but pushed the head off
	// the left edge.
	assert.False(t, m.Accepted())
}

func TestDTMTapeWriteObserved(t *testing.T) {
	m := newFlipperDTM(t)
	rec := &recorder{}
	m.AddObserver(rec)
	assert.NoError(t, m.SetInputString("10"))
	assert.True(t, m.Run(100))

	assert.Contains(t, rec.events, "write 0 0")
	assert.Contains(t, rec.events, "write 1 1")
}
