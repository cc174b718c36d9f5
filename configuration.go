package pda

import (
	"fmt"
	"strconv"
	"strings"
)

// Configuration is a snapshot of a run: the control state, the number of input symbols
// consumed and the stack. A Configuration is never modified once created; moves produce
// new ones.
type Configuration struct {
	State State
	Pos   int
	Stack *Stack
}

func (c Configuration) Equal(o Configuration) bool {
	return c.State == o.State && c.Pos == o.Pos && c.Stack.Equal(o.Stack)
}

// next returns the configuration reached by applying o after consuming consumed symbols.
func (c Configuration) next(o Outcome, consumed int) Configuration {
	return Configuration{
		State: o.State,
		Pos:   c.Pos + consumed,
		Stack: c.Stack.Replace(o.Push),
	}
}

// key identifies the configuration in a visited set. Symbols are length prefixed so that
// distinct stacks never share a key.
func (c Configuration) key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(c.State)))
	b.WriteByte(':')
	b.WriteString(string(c.State))
	b.WriteByte('@')
	b.WriteString(strconv.Itoa(c.Pos))
	for _, s := range c.Stack.data {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(string(s))
	}
	return b.String()
}

func (c Configuration) String() string {
	return fmt.Sprintf("(%s, %d, %s)", c.State, c.Pos, c.Stack)
}

// Step is one element of a trace: a configuration and the transition that produced it.
// Via is nil for the initial configuration.
type Step struct {
	Config Configuration
	Via    *Transition
}

func (s Step) String() string {
	if s.Via == nil {
		return s.Config.String()
	}
	return fmt.Sprintf("%s via %s", s.Config, s.Via)
}
