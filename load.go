package pda

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeffwilliams/pda/internal/config"
)

// NewModelFromXMLFile creates a model from a file containing an XML automaton description.
func NewModelFromXMLFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewModelFromXML(f)
}

// NewModelFromXMLFS creates a model from an XML automaton description opened from fsys.
func NewModelFromXMLFS(fsys fs.FS, path string) (*Model, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewModelFromXML(f)
}

// NewModelFromXML creates a model from an XML automaton description.
func NewModelFromXML(rdr io.Reader) (*Model, error) {
	a, err := config.DecodeAutomaton(rdr)
	if err != nil {
		return nil, err
	}
	return newModelFromConfig(a)
}

// NewModelFromYAMLFile creates a model from a file containing a YAML automaton description.
func NewModelFromYAMLFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewModelFromYAML(f)
}

// NewModelFromYAML creates a model from a YAML automaton description.
func NewModelFromYAML(rdr io.Reader) (*Model, error) {
	a, err := config.DecodeAutomatonYAML(rdr)
	if err != nil {
		return nil, err
	}
	return newModelFromConfig(a)
}

// NewModelFromFile picks the decoder from the file extension: .yaml and .yml files are
// YAML, everything else XML.
func NewModelFromFile(path string) (*Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewModelFromYAMLFile(path)
	default:
		return NewModelFromXMLFile(path)
	}
}

func newModelFromConfig(a *config.Automaton) (*Model, error) {
	var def Definition
	var err error

	if a.Grammar != nil {
		if len(a.Transitions) > 0 {
			return nil, fmt.Errorf("%w: automaton %s has both a grammar and transitions", ErrMalformedModel, a.Config.Name)
		}
		def, err = definitionFromGrammar(a.Grammar)
	} else {
		def, err = definitionFromTable(a)
	}
	if err != nil {
		return nil, fmt.Errorf("automaton %s: %w", a.Config.Name, err)
	}

	def.Name = a.Config.Name
	def.Aliases = a.Config.Aliases
	def.Description = strings.TrimSpace(a.Config.Description)
	def.SymbolPattern = a.Config.SymbolPattern

	return NewModel(def)
}

func definitionFromGrammar(cg *config.Grammar) (Definition, error) {
	g, err := ParseGrammar(cg.Rules)
	if err != nil {
		return Definition{}, err
	}

	for _, cp := range cg.Productions {
		p := Production{Head: Symbol(cp.Head), Terminal: symbol(cp.Terminal)}
		p.Vars = symbols(cp.Vars)
		g.Productions = append(g.Productions, p)
	}

	bottom := Symbol(cg.Bottom)
	if bottom == Epsilon {
		bottom = DefaultBottom
	}
	start := Symbol(cg.Start)
	if start == Epsilon {
		vars := g.Variables()
		if len(vars) > 0 {
			start = vars[0]
		}
	}

	return grammarDefinition(g, start, bottom)
}

func definitionFromTable(a *config.Automaton) (Definition, error) {
	def := Definition{
		Inputs:        symbols(a.Inputs),
		StackSymbols:  symbols(a.Stack.Symbols),
		Start:         State(a.States.Start),
		Bottom:        Symbol(a.Stack.Bottom),
		Initial:       symbols(a.Stack.Initial),
		Deterministic: a.Deterministic,
	}

	if a.States.Accept != "" {
		mode, err := AcceptModeString(a.States.Accept)
		if err != nil {
			return Definition{}, fmt.Errorf("%w: %v", ErrMalformedModel, err)
		}
		def.Accept = mode
	} else {
		def.Accept = FinalState
	}

	for _, s := range a.States.States {
		def.States = append(def.States, State(s.Name))
		if s.Accepting {
			def.Accepting = append(def.Accepting, State(s.Name))
		}
	}

	for _, t := range a.Transitions {
		def.Transitions = append(def.Transitions, Transition{
			From:    State(t.From),
			Input:   symbol(t.Input),
			Top:     Symbol(t.Top),
			Outcome: Outcome{State: State(t.To), Push: symbols(t.Push)},
		})
	}

	if a.Counters != nil {
		rules := &CounterRules{Min: map[Symbol]int{}}
		for _, e := range a.Counters.Equal {
			rules.Equal = append(rules.Equal, symbols(e.Symbols))
		}
		for _, mn := range a.Counters.Min {
			rules.Min[Symbol(mn.Symbol)] = mn.Count
		}
		def.Counters = rules
	}

	return def, nil
}

// symbol maps the textual epsilon to Epsilon.
func symbol(s string) Symbol {
	s = strings.TrimSpace(s)
	if s == EpsilonText {
		return Epsilon
	}
	return Symbol(s)
}

func symbols(s string) []Symbol {
	var out []Symbol
	for _, f := range strings.Fields(s) {
		out = append(out, Symbol(f))
	}
	return out
}
