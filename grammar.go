package pda

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// GrammarState is the only control state of a model compiled from a grammar. The
// grammar's variables live on the stack.
const GrammarState State = "q"

// DefaultBottom is the bottom marker used by CompileProductions.
const DefaultBottom Symbol = "$"

// Production is a rule Head -> Terminal Vars... of a grammar in Greibach normal form. The
// empty production has Terminal == Epsilon and no Vars.
type Production struct {
	Head     Symbol
	Terminal Symbol
	Vars     []Symbol
}

func (p Production) IsEmpty() bool {
	return p.Terminal == Epsilon && len(p.Vars) == 0
}

// Body returns the right side as text, "ε" for the empty production.
func (p Production) Body() string {
	if p.IsEmpty() {
		return EpsilonText
	}
	parts := []string{string(p.Terminal)}
	for _, v := range p.Vars {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, " ")
}

func (p Production) String() string {
	return fmt.Sprintf("%s -> %s", p.Head, p.Body())
}

// Grammar is a context-free grammar given as a list of productions. The variables are the
// symbols that head at least one production.
type Grammar struct {
	Productions []Production
}

func (g Grammar) clone() Grammar {
	var c Grammar
	for _, p := range g.Productions {
		p.Vars = append([]Symbol(nil), p.Vars...)
		c.Productions = append(c.Productions, p)
	}
	return c
}

// Variables returns the heads in order of first appearance.
func (g Grammar) Variables() []Symbol {
	var vars []Symbol
	seen := map[Symbol]bool{}
	for _, p := range g.Productions {
		if !seen[p.Head] {
			seen[p.Head] = true
			vars = append(vars, p.Head)
		}
	}
	return vars
}

// Terminals returns the leading terminals in order of first appearance.
func (g Grammar) Terminals() []Symbol {
	var terms []Symbol
	seen := map[Symbol]bool{}
	for _, p := range g.Productions {
		if p.Terminal != Epsilon && !seen[p.Terminal] {
			seen[p.Terminal] = true
			terms = append(terms, p.Terminal)
		}
	}
	return terms
}

// String prints one line per variable with its alternatives separated by "|".
func (g Grammar) String() string {
	var buf bytes.Buffer
	for _, v := range g.Variables() {
		var alts []string
		for _, p := range g.Productions {
			if p.Head == v {
				alts = append(alts, p.Body())
			}
		}
		fmt.Fprintf(&buf, "%s -> %s\n", v, strings.Join(alts, " | "))
	}
	return buf.String()
}

var ruleLine = func() *regexp2.Regexp {
	re := regexp2.MustCompile(`^\s*(\S+?)\s*(?:->|→|::=)\s*(.*?)\s*$`, regexp2.None)
	re.MatchTimeout = time.Millisecond * 250
	return re
}()

// ParseGrammar reads rules written one variable per line, as in
//
//	S -> 0 S B | 1 S A | ε
//	A -> 0
//
// Symbols are separated by whitespace. An alternative that is empty or "ε" is the empty
// production; a leading "ε" followed by more symbols is kept as a production without a
// terminal. Blank lines and lines starting with '#' are ignored. The first symbol of an
// alternative is taken as its terminal; CompileGrammar checks that it really is one.
func ParseGrammar(text string) (Grammar, error) {
	var g Grammar

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m, err := ruleLine.FindStringMatch(line)
		if err != nil {
			return Grammar{}, err
		}
		if m == nil {
			return Grammar{}, fmt.Errorf("%w: line %d: expected 'Variable -> alternatives', got %q", ErrInvalidGrammarForm, i+1, trimmed)
		}

		head := Symbol(m.GroupByNumber(1).String())
		for _, alt := range strings.Split(m.GroupByNumber(2).String(), "|") {
			fields := strings.Fields(alt)
			if len(fields) == 0 || (len(fields) == 1 && fields[0] == EpsilonText) {
				g.Productions = append(g.Productions, Production{Head: head})
				continue
			}

			p := Production{Head: head, Terminal: Symbol(fields[0])}
			if fields[0] == EpsilonText {
				p.Terminal = Epsilon
			}
			for _, f := range fields[1:] {
				p.Vars = append(p.Vars, Symbol(f))
			}
			g.Productions = append(g.Productions, p)
		}
	}

	return g, nil
}

// CompileGrammar builds the one-state model that simulates leftmost derivations of g: the
// stack starts as [bottom, start]; a production V -> a V1..Vk pops V on input a and pushes
// Vk..V1 so that V1 ends on top; V -> ε pops V without reading input. The model accepts by
// emptying the stack down to bottom at the end of the input.
func CompileGrammar(g Grammar, start, bottom Symbol) (*Model, error) {
	def, err := grammarDefinition(g, start, bottom)
	if err != nil {
		return nil, err
	}
	return NewModel(def)
}

// CompileProductions is CompileGrammar with DefaultBottom as the bottom marker.
func CompileProductions(productions []Production, start Symbol) (*Model, error) {
	return CompileGrammar(Grammar{Productions: productions}, start, DefaultBottom)
}

func grammarDefinition(g Grammar, start, bottom Symbol) (Definition, error) {
	err := checkGreibach(g, start, bottom)
	if err != nil {
		return Definition{}, err
	}

	vars := g.Variables()
	def := Definition{
		States:       []State{GrammarState},
		Inputs:       g.Terminals(),
		StackSymbols: append([]Symbol{bottom}, vars...),
		Start:        GrammarState,
		Bottom:       bottom,
		Initial:      []Symbol{start},
		Accept:       EmptyStack,
		Grammar:      &g,
	}

	for _, p := range g.Productions {
		push := make([]Symbol, len(p.Vars))
		for i, v := range p.Vars {
			push[len(p.Vars)-1-i] = v
		}
		def.Transitions = append(def.Transitions, Transition{
			From:    GrammarState,
			Input:   p.Terminal,
			Top:     p.Head,
			Outcome: Outcome{State: GrammarState, Push: push},
		})
	}

	debugf("grammarDefinition: compiled grammar with start %s:\n%s", start, g)

	return def, nil
}

func checkGreibach(g Grammar, start, bottom Symbol) error {
	var probs problems

	isVar := map[Symbol]bool{}
	for _, v := range g.Variables() {
		if v != Epsilon {
			isVar[v] = true
		}
	}

	if len(g.Productions) == 0 {
		probs.addf("the grammar has no productions")
	}
	if !isVar[start] {
		probs.addf("start variable %s has no productions", start)
	}
	if bottom == Epsilon {
		probs.addf("no bottom marker is defined")
	}
	if isVar[bottom] {
		probs.addf("bottom marker %s is also a variable", bottom)
	}

	undefined := map[string]struct{}{}
	for _, p := range g.Productions {
		switch {
		case p.Head == Epsilon:
			probs.addf("a production has no head")
		case p.Terminal == bottom && bottom != Epsilon:
			probs.addf("%s uses the bottom marker as a terminal", p)
		case p.Terminal == Epsilon && len(p.Vars) > 0:
			probs.addf("%s does not begin with a terminal", p)
		case isVar[p.Terminal]:
			probs.addf("%s begins with the variable %s instead of a terminal", p, p.Terminal)
		}

		for _, v := range p.Vars {
			if !isVar[v] {
				undefined[string(v)] = struct{}{}
			}
		}
	}
	probs.addMissing("variables (only variables may follow the leading terminal)", undefined)

	return probs.err(ErrInvalidGrammarForm)
}
