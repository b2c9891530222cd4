package machine

import (
	"strings"

	"github.com/enetx/g"
)

// Stack is a LIFO of symbol units. A pushed multi-character Symbol is
// one element and comes back off whole.
type Stack struct {
	elems g.Slice[Symbol]
}

func NewStack() *Stack { return &Stack{} }

func (s *Stack) Push(sym Symbol) {
	s.elems = append(s.elems, sym)
}

// Pop removes and returns the top element, or Epsilon when empty.
func (s *Stack) Pop() Symbol {
	n := len(s.elems)
	if n == 0 {
		return Epsilon
	}
	top := s.elems[n-1]
	s.elems = s.elems[:n-1]
	return top
}

// Peek returns the top element without removing it, or Epsilon when
// empty. The DPDA halting predicate leans on the Epsilon sentinel.
func (s *Stack) Peek() Symbol {
	n := len(s.elems)
	if n == 0 {
		return Epsilon
	}
	return s.elems[n-1]
}

func (s *Stack) Clear() { s.elems = s.elems[:0] }

func (s *Stack) IsEmpty() bool { return len(s.elems) == 0 }

func (s *Stack) Size() int { return len(s.elems) }

// String renders bottom→top, e.g. "Z a aa".
func (s *Stack) String() string {
	if len(s.elems) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(s.elems))
	for i, e := range s.elems {
		parts[i] = string(e)
	}
	return strings.Join(parts, " ")
}
