package pda

import (
	"fmt"
	"strings"
)

// Outcome is one right-hand side of the transition relation: the next state and the
// sequence that replaces the popped stack top. The last symbol of Push ends on top.
type Outcome struct {
	State State
	Push  []Symbol
}

func (o Outcome) equal(p Outcome) bool {
	if o.State != p.State || len(o.Push) != len(p.Push) {
		return false
	}
	for i, s := range o.Push {
		if s != p.Push[i] {
			return false
		}
	}
	return true
}

// Transition is one entry (From, Input, Top) -> Outcome of the relation. Input is Epsilon
// for moves that consume nothing.
type Transition struct {
	From  State
	Input Symbol
	Top   Symbol
	Outcome
}

func (t Transition) key() transitionKey {
	return transitionKey{t.From, t.Input, t.Top}
}

func (t Transition) String() string {
	push := make([]string, len(t.Push))
	for i, s := range t.Push {
		push[i] = string(s)
	}
	return fmt.Sprintf("(%s, %s, %s) -> (%s, [%s])", t.From, t.Input, t.Top, t.State, strings.Join(push, " "))
}

type transitionKey struct {
	state State
	input Symbol
	top   Symbol
}

type topKey struct {
	state State
	top   Symbol
}
