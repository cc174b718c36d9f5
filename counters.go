package pda

import (
	"fmt"
	"sort"
	"strings"
)

// CounterRules are the final conditions of a counting automaton. A counter holds the
// number of times an input symbol was consumed.
type CounterRules struct {
	// Equal lists groups of input symbols whose counters must all be equal.
	Equal [][]Symbol
	// Min holds the smallest acceptable value of a counter.
	Min map[Symbol]int
}

func (c *CounterRules) clone() *CounterRules {
	n := &CounterRules{Min: make(map[Symbol]int, len(c.Min))}
	for _, g := range c.Equal {
		n.Equal = append(n.Equal, append([]Symbol(nil), g...))
	}
	for s, v := range c.Min {
		n.Min[s] = v
	}
	return n
}

func (c *CounterRules) validate(m *Model, probs *problems) {
	missing := map[string]struct{}{}
	check := func(s Symbol) {
		if _, ok := m.inputs[s]; !ok {
			missing[string(s)] = struct{}{}
		}
	}

	for _, g := range c.Equal {
		if len(g) < 2 {
			probs.addf("counter group %v needs at least two symbols", g)
		}
		for _, s := range g {
			check(s)
		}
	}
	for s, v := range c.Min {
		check(s)
		if v < 0 {
			probs.addf("counter minimum for %s is negative", s)
		}
	}

	probs.addMissing("counted symbols", missing)
}

// count tallies the consumed input symbols.
func count(consumed []Symbol) map[Symbol]int {
	counts := make(map[Symbol]int)
	for _, s := range consumed {
		counts[s]++
	}
	return counts
}

// failures returns a description of every rule the counts break, or nil.
func (c *CounterRules) failures(counts map[Symbol]int) (reasons []string) {
	for _, g := range c.Equal {
		for _, s := range g[1:] {
			if counts[s] != counts[g[0]] {
				reasons = append(reasons, fmt.Sprintf("counts differ: %s", formatCounts(g, counts)))
				break
			}
		}
	}

	syms := make([]string, 0, len(c.Min))
	for s := range c.Min {
		syms = append(syms, string(s))
	}
	sort.Strings(syms)
	for _, s := range syms {
		if want := c.Min[Symbol(s)]; counts[Symbol(s)] < want {
			reasons = append(reasons, fmt.Sprintf("at least %d %s required, got %d", want, s, counts[Symbol(s)]))
		}
	}

	return
}

func formatCounts(group []Symbol, counts map[Symbol]int) string {
	parts := make([]string, len(group))
	for i, s := range group {
		parts[i] = fmt.Sprintf("%s=%d", s, counts[s])
	}
	return strings.Join(parts, " ")
}
