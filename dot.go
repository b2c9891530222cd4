package machine

import (
	"fmt"
	"io"
	"os"
)

// WriteDOT renders a machine's transition graph as Graphviz DOT.
// Accepting states are doublecircles; edges carry the input symbol
// plus, where present, the stack gate and push or the tape write and
// move. Read-only: never mutates machine state.
func WriteDOT(m Machine, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph FSM {"); err != nil {
		return err
	}
	fmt.Fprintln(w, `  rankdir=LR; node [shape=circle, fontname="Arial"];`)

	states := m.States()
	initial := states.Initial()
	for _, label := range states.Labels() {
		s, _ := states.GetStateByLabel(label)
		shape := "circle"
		color := ""
		if s.IsAccepting() {
			shape = "doublecircle"
			color = `, color="green"`
		}
		fmt.Fprintf(w, "  %q [shape=%s%s];\n", label, shape, color)
		if initial != nil && label == initial.Label() {
			fmt.Fprintf(w, "  start [shape=point]; start -> %q;\n", label)
		}
	}

	delta := m.Transitions()
	for _, cond := range delta.Conditions() {
		cmd, ok := delta.Lookup(cond)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %q -> %q [label=%q];\n", cond.State, cmd.Target.Label(), edgeLabel(cond, cmd))
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// WriteDOTFile is WriteDOT against a created file.
func WriteDOTFile(m Machine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteDOT(m, f)
}

func edgeLabel(cond Condition, cmd Command) string {
	label := string(cond.Input)
	if cond.StackTop != Epsilon || cmd.Action == StackChange {
		push := cmd.Argument
		if cmd.Action != StackChange || push == "" {
			push = Epsilon
		}
		label = fmt.Sprintf("%s, %s/%s", cond.Input, cond.StackTop, push)
	}
	if cmd.Write != "" || cmd.Move != 0 {
		write := cmd.Write
		if write == "" {
			write = cond.Input
		}
		label = fmt.Sprintf("%s/%s,%s", cond.Input, write, cmd.Move)
	}
	return label
}
