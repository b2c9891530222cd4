package machine

import (
	"strings"

	"github.com/enetx/g"
)

// Tape is an ordered sequence of input symbols. DFA and DPDA treat it
// as read-only once set; the DTM additionally writes cells and the tape
// extends rightward with blanks on demand.
type Tape struct {
	cells g.Slice[Symbol]
	blank Symbol
}

func NewTape(blank Symbol) *Tape {
	if blank == "" {
		blank = DefaultBlank
	}
	return &Tape{blank: blank}
}

// SetChars replaces the tape contents. Cursor handling belongs to the
// machine, not the tape.
func (t *Tape) SetChars(chars []Symbol) {
	t.cells = make(g.Slice[Symbol], len(chars))
	copy(t.cells, chars)
}

// CharAt returns the symbol at i, or the blank when i is outside the
// written region. The DFA/DPDA halting predicate keeps their reads
// inside [0, Length()); the DTM relies on the blank fill.
func (t *Tape) CharAt(i int) Symbol {
	if i < 0 || i >= len(t.cells) {
		return t.blank
	}
	return t.cells[i]
}

// WriteAt sets cell i, extending the tape with blanks as needed.
// Negative positions are ignored.
func (t *Tape) WriteAt(i int, s Symbol) {
	if i < 0 {
		return
	}
	for len(t.cells) <= i {
		t.cells = append(t.cells, t.blank)
	}
	t.cells[i] = s
}

func (t *Tape) Length() int { return len(t.cells) }

func (t *Tape) String() string {
	var b strings.Builder
	for _, c := range t.cells {
		b.WriteString(string(c))
	}
	return b.String()
}
