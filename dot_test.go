package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteDOT(t *testing.T) {
	m := newBinaryDFA(t)

	var b strings.Builder
	assert.NoError(t, WriteDOT(m, &b))
	out := b.String()

	assert.Contains(t, out, "digraph FSM {")
	assert.Contains(t, out, `"q1" [shape=doublecircle, color="green"];`)
	assert.Contains(t, out, `"q0" [shape=circle];`)
	assert.Contains(t, out, `start -> "q0";`)
	assert.Contains(t, out, `"q0" -> "q1" [label="1"];`)
	assert.Contains(t, out, `"q1" -> "q1" [label="1"];`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
}

func TestWriteDOTStackEdges(t *testing.T) {
	m := newCountingDPDA(t)

	var b strings.Builder
	assert.NoError(t, WriteDOT(m, &b))
	out := b.String()

	assert.Contains(t, out, `[label="a, Z/a"];`)
	assert.Contains(t, out, `[label="b, a/ε"];`)
}
