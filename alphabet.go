package machine

import "github.com/enetx/g"

// Symbol is an atomic unit drawn from an Alphabet. Stack elements are
// also Symbols; a multi-character Symbol pushed onto a Stack stays one
// element and is popped whole.
type Symbol string

// Epsilon is the reserved no-input marker. It never appears on a tape;
// transitions keyed on it fire without consuming input, and stack
// conditions declaring it skip the pop.
const Epsilon Symbol = "ε"

// DefaultBlank is the fill symbol used when none is configured.
const DefaultBlank Symbol = "#"

// Alphabet is a finite symbol set with a designated blank. The blank is
// always a member; Epsilon never is.
type Alphabet struct {
	symbols g.Map[Symbol, struct{}]
	blank   Symbol
}

func NewAlphabet(blank Symbol, symbols ...Symbol) *Alphabet {
	if blank == "" || blank == Epsilon {
		blank = DefaultBlank
	}
	a := &Alphabet{
		symbols: make(g.Map[Symbol, struct{}], len(symbols)+1),
		blank:   blank,
	}
	a.symbols[blank] = struct{}{}
	for _, s := range symbols {
		if s == Epsilon {
			continue
		}
		a.symbols[s] = struct{}{}
	}
	return a
}

func (a *Alphabet) Contains(s Symbol) bool {
	_, ok := a.symbols[s]
	return ok
}

// IsCompatibleWith reports whether every character of text is a member.
// Multi-symbol stack arguments are validated with this.
func (a *Alphabet) IsCompatibleWith(text string) bool {
	for _, r := range text {
		if !a.Contains(Symbol(r)) {
			return false
		}
	}
	return true
}

func (a *Alphabet) Blank() Symbol { return a.blank }

func (a *Alphabet) Size() int { return len(a.symbols) }
