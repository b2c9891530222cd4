package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/pdaniell/machine"
)

var (
	kindFlag  = flag.String("machine", "dfa", "machine kind [dfa|dpda|dtm]")
	inputFlag = flag.String("input", "", "input string to run the machine over")
	maxFlag   = flag.Int("max", 1000, "maximum number of steps")
	dotFlag   = flag.String("dot", "", "write the transition graph to this DOT file")
	levelFlag = flag.String("loglevel", "info", "log level [debug|info|warn|error]")
)

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if lvl, err := log.ParseLevel(*levelFlag); err == nil {
		logger.SetLevel(lvl)
	}

	m, desc, err := buildMachine(*kindFlag)
	if err != nil {
		logger.Fatal("build machine", "err", err)
	}
	logger.Info("machine ready", "kind", m.Kind(), "language", desc)

	if *dotFlag != "" {
		if err := machine.WriteDOTFile(m, *dotFlag); err != nil {
			logger.Fatal("write dot", "err", err)
		}
		logger.Info("wrote transition graph", "path", *dotFlag)
	}

	if *inputFlag == "" {
		return
	}
	if err := m.SetInputString(*inputFlag); err != nil {
		logger.Fatal("set input", "err", err)
	}

	m.AddObserver(&tracer{m: m, log: logger})

	if !m.Run(*maxFlag) {
		logger.Warn("step budget exhausted before halt", "max", *maxFlag)
		os.Exit(2)
	}
	if m.Accepted() {
		verdict := "ACCEPTED"
		if d, ok := m.(*machine.DPDA); ok {
			verdict = fmt.Sprintf("ACCEPTED (%s)", d.AcceptanceMode())
		}
		logger.Info(verdict, "steps", m.StepCount(), "head", m.Pointer())
		return
	}
	logger.Info("REJECTED", "steps", m.StepCount(), "head", m.Pointer())
	os.Exit(1)
}

// tracer prints each configuration the way the library's observers see
// it: synchronously, in step order.
type tracer struct {
	machine.BaseObserver
	m   machine.Machine
	log *log.Logger
}

func (t *tracer) OnStep(cond machine.Condition, cmd machine.Command, step, head int) {
	fmt.Printf("tape : %s\n", machine.HighlightHead(t.m.Tape(), head))
	t.log.Info("step", "n", step, "cond", cond.String(), "cmd", cmd.String(), "head", head)
}

func (t *tracer) OnStackPush(sym machine.Symbol) { t.log.Debug("stack push", "sym", sym) }

func (t *tracer) OnStackPop(sym machine.Symbol) { t.log.Debug("stack pop", "sym", sym) }

func (t *tracer) OnTapeWrite(pos int, sym machine.Symbol) {
	t.log.Debug("tape write", "pos", pos, "sym", sym)
}

func (t *tracer) OnHalt() { t.log.Debug("halt", "state", t.m.CurrentState().Label()) }

func buildMachine(kind string) (machine.Machine, string, error) {
	switch kind {
	case "dfa":
		return buildDFA()
	case "dpda":
		return buildDPDA()
	case "dtm":
		return buildDTM()
	default:
		return nil, "", fmt.Errorf("unknown machine kind %q (use: dfa|dpda|dtm)", kind)
	}
}

// buildDFA accepts binary strings of the form 0*1+.
func buildDFA() (machine.Machine, string, error) {
	states := machine.NewStateTable()
	q0, _ := states.Add("q0", false)
	q1, _ := states.Add("q1", true)
	if err := states.SetInitial("q0"); err != nil {
		return nil, "", err
	}

	m, err := machine.NewDFA(machine.Config{
		Alphabet: machine.NewAlphabet("#", "0", "1"),
		States:   states,
	})
	if err != nil {
		return nil, "", err
	}
	for _, t := range []struct {
		from  *machine.State
		input machine.Symbol
		to    *machine.State
	}{
		{q0, "0", q0},
		{q0, "1", q1},
		{q1, "1", q1},
	} {
		if err := m.AddTransition(t.from, t.input, t.to); err != nil {
			return nil, "", err
		}
	}
	return m, "0*1+", nil
}

// buildDPDA accepts a^n b^n (n ≥ 1) by empty stack.
func buildDPDA() (machine.Machine, string, error) {
	states := machine.NewStateTable()
	if _, err := states.Add("q0", false); err != nil {
		return nil, "", err
	}
	if err := states.SetInitial("q0"); err != nil {
		return nil, "", err
	}

	m, err := machine.NewDPDA(machine.Config{
		Alphabet:           machine.NewAlphabet("#", "a", "b"),
		States:             states,
		StackAlphabet:      machine.NewAlphabet("#", "Z", "a"),
		InitialStackSymbol: "Z",
	})
	if err != nil {
		return nil, "", err
	}
	for _, t := range []struct {
		input, top machine.Symbol
		push       machine.Symbol
	}{
		{"a", "Z", "a"},             // first a: replace Z with the count
		{"a", "a", "aa"},            // grow the count unit
		{"b", "aa", "a"},            // shrink it again
		{"b", "a", machine.Epsilon}, // last b empties the stack
	} {
		if err := m.AddTransitionByLabels("q0", t.input, t.top, "q0", t.push); err != nil {
			return nil, "", err
		}
	}
	return m, "a^n b^n (empty-stack accept)", nil
}

// buildDTM flips every bit and accepts on the first blank.
func buildDTM() (machine.Machine, string, error) {
	states := machine.NewStateTable()
	q0, _ := states.Add("q0", false)
	halt, _ := states.Add("halt", true)
	if err := states.SetInitial("q0"); err != nil {
		return nil, "", err
	}

	m, err := machine.NewDTM(machine.Config{
		Alphabet: machine.NewAlphabet("#", "0", "1"),
		States:   states,
	})
	if err != nil {
		return nil, "", err
	}
	if err := m.AddTransition(q0, "0", q0, "1", machine.R); err != nil {
		return nil, "", err
	}
	if err := m.AddTransition(q0, "1", q0, "0", machine.R); err != nil {
		return nil, "", err
	}
	if err := m.AddTransition(q0, "#", halt, "", machine.R); err != nil {
		return nil, "", err
	}
	return m, "bit flipper", nil
}
