package pda

import "strings"

// Stack is the pushdown store of a configuration, stored bottom first. The methods that
// change a Stack work in place; configurations Clone before rewriting so that a Stack
// reachable from a Configuration is never modified.
type Stack struct {
	data []Symbol
}

func NewStack(symbols ...Symbol) *Stack {
	data := make([]Symbol, len(symbols))
	copy(data, symbols)
	return &Stack{
		data: data,
	}
}

// Push pushes the symbols in order, so the last one ends on top.
func (s *Stack) Push(symbols ...Symbol) {
	s.data = append(s.data, symbols...)
}

func (s *Stack) Pop(count int) {
	if count > len(s.data) {
		count = len(s.data)
	}
	if len(s.data) > 0 {
		s.data = s.data[:len(s.data)-count]
	}
	return
}

func (s Stack) Top() (sym Symbol) {
	if len(s.data) > 0 {
		sym = s.data[len(s.data)-1]
	}
	return
}

func (s Stack) Len() int {
	return len(s.data)
}

func (s Stack) Clone() *Stack {
	data := make([]Symbol, len(s.data), len(s.data)+4)
	copy(data, s.data)
	return &Stack{
		data: data,
	}
}

// Replace returns a new stack with the top symbol popped and push pushed in its place.
// The receiver is left unchanged.
func (s Stack) Replace(push []Symbol) *Stack {
	n := s.Clone()
	n.Pop(1)
	n.Push(push...)
	return n
}

// Symbols returns a copy of the stack contents, bottom first.
func (s Stack) Symbols() []Symbol {
	out := make([]Symbol, len(s.data))
	copy(out, s.data)
	return out
}

// IsFloor reports whether the stack holds exactly the bottom marker.
func (s Stack) IsFloor(bottom Symbol) bool {
	return len(s.data) == 1 && s.data[0] == bottom
}

func (s Stack) Equal(o *Stack) bool {
	if s.Len() != o.Len() {
		return false
	}

	for i, e := range s.data {
		if e != o.data[i] {
			return false
		}
	}

	return true
}

func (s Stack) String() string {
	parts := make([]string, len(s.data))
	for i, e := range s.data {
		parts[i] = string(e)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
