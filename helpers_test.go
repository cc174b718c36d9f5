package pda

import "testing"

func zerosDoubleOnes() Definition {
	return Definition{
		Name:         "zeros-double-ones",
		States:       []State{"q0", "q1", "q2"},
		Inputs:       []Symbol{"0", "1"},
		StackSymbols: []Symbol{"Z0", "X"},
		Start:        "q0",
		Bottom:       "Z0",
		Accepting:    []State{"q2"},
		Accept:       FinalState,
		Transitions: []Transition{
			{"q0", "0", "Z0", Outcome{"q0", []Symbol{"Z0", "X", "X"}}},
			{"q0", "0", "X", Outcome{"q0", []Symbol{"X", "X", "X"}}},
			{"q0", "1", "X", Outcome{"q1", nil}},
			{"q1", "1", "X", Outcome{"q1", nil}},
			{"q1", Epsilon, "Z0", Outcome{"q2", []Symbol{"Z0"}}},
		},
	}
}

func abcdBlocks() Definition {
	return Definition{
		Name:          "ab-cd-blocks",
		States:        []State{"q0", "q1", "q2", "q3"},
		Inputs:        []Symbol{"a", "b", "c", "d"},
		StackSymbols:  []Symbol{"Z0", "A", "B"},
		Start:         "q0",
		Bottom:        "Z0",
		Accepting:     []State{"q3"},
		Accept:        FinalState,
		Deterministic: true,
		Counters: &CounterRules{
			Equal: [][]Symbol{{"a", "b"}, {"c", "d"}},
			Min:   map[Symbol]int{"a": 1, "c": 1},
		},
		Transitions: []Transition{
			{"q0", "a", "Z0", Outcome{"q0", []Symbol{"Z0", "A"}}},
			{"q0", "a", "A", Outcome{"q0", []Symbol{"A", "A"}}},
			{"q0", "b", "A", Outcome{"q1", nil}},
			{"q1", "b", "A", Outcome{"q1", nil}},
			{"q1", "c", "Z0", Outcome{"q2", []Symbol{"Z0", "B"}}},
			{"q2", "c", "B", Outcome{"q2", []Symbol{"B", "B"}}},
			{"q2", "d", "B", Outcome{"q3", nil}},
			{"q3", "d", "B", Outcome{"q3", nil}},
		},
	}
}

// abcdPhases matches a and b on the stack but tracks the c and d blocks by state only, so
// the c=d condition rests on the counters.
func abcdPhases() Definition {
	return Definition{
		Name:          "ab-cd-phases",
		States:        []State{"q0", "q1", "q2", "q3"},
		Inputs:        []Symbol{"a", "b", "c", "d"},
		StackSymbols:  []Symbol{"Z0", "A"},
		Start:         "q0",
		Bottom:        "Z0",
		Accepting:     []State{"q3"},
		Accept:        FinalState,
		Deterministic: true,
		Counters: &CounterRules{
			Equal: [][]Symbol{{"a", "b"}, {"c", "d"}},
			Min:   map[Symbol]int{"a": 1, "c": 1},
		},
		Transitions: []Transition{
			{"q0", "a", "Z0", Outcome{"q0", []Symbol{"Z0", "A"}}},
			{"q0", "a", "A", Outcome{"q0", []Symbol{"A", "A"}}},
			{"q0", "b", "A", Outcome{"q1", nil}},
			{"q1", "b", "A", Outcome{"q1", nil}},
			{"q1", "c", "Z0", Outcome{"q2", []Symbol{"Z0"}}},
			{"q2", "c", "Z0", Outcome{"q2", []Symbol{"Z0"}}},
			{"q2", "d", "Z0", Outcome{"q3", []Symbol{"Z0"}}},
			{"q3", "d", "Z0", Outcome{"q3", []Symbol{"Z0"}}},
		},
	}
}

// mirroredBits is S -> 0 S 1 | 1 S 0 | ε in Greibach normal form.
func mirroredBits() Grammar {
	return Grammar{Productions: []Production{
		{Head: "S", Terminal: "0", Vars: []Symbol{"S", "B"}},
		{Head: "S", Terminal: "1", Vars: []Symbol{"S", "A"}},
		{Head: "S"},
		{Head: "A", Terminal: "0"},
		{Head: "B", Terminal: "1"},
	}}
}

func mustModel(t *testing.T, def Definition) *Model {
	t.Helper()
	m, err := NewModel(def)
	if err != nil {
		t.Fatalf("NewModel returned error: %v", err)
	}
	return m
}

func mustCompile(t *testing.T, g Grammar) *Model {
	t.Helper()
	m, err := CompileGrammar(g, "S", DefaultBottom)
	if err != nil {
		t.Fatalf("CompileGrammar returned error: %v", err)
	}
	return m
}

// allWords returns every word over alphabet of length 0 to maxLen.
func allWords(alphabet string, maxLen int) []string {
	words := []string{""}
	level := []string{""}
	for l := 1; l <= maxLen; l++ {
		var next []string
		for _, w := range level {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		words = append(words, next...)
		level = next
	}
	return words
}
