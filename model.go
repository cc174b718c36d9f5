// Package pda simulates pushdown automata.
//
// A Model is an immutable description of an automaton: its states, input and stack
// alphabets, bottom marker and a transition relation that may be nondeterministic and may
// contain epsilon moves. Model.Accepts answers whether a sequence of input symbols is in
// the automaton's language by a breadth-first search over configurations that never visits
// the same configuration twice.
//
// Models are built from a Definition, loaded from an XML or YAML description, or compiled
// from a grammar in Greibach normal form with CompileGrammar. Ready made models are
// available from the automata subpackage:
//
//	import "github.com/jeffwilliams/pda/automata"
//
//	m := automata.Get("zeros-double-ones")
//	res := m.Accepts(pda.SymbolsOf("011"), 0)
package pda

import (
	"bytes"
	"fmt"
)

// Definition is the language independent description a Model is built from.
type Definition struct {
	Name        string
	Aliases     []string
	Description string

	States       []State
	Inputs       []Symbol
	StackSymbols []Symbol

	Start State
	// Bottom is pushed once when a run starts and marks the floor of the stack.
	Bottom Symbol
	// Initial symbols are pushed above Bottom when a run starts, bottom first.
	Initial []Symbol

	// Accepting states are only allowed with the FinalState accept mode. The zero
	// AcceptMode is EmptyStack, so tables with accepting states must set Accept.
	Accepting []State
	Accept    AcceptMode

	// Deterministic requires every lookup to yield at most one move. Such models can be
	// run in single-path mode.
	Deterministic bool

	// SymbolPattern, when set, is the pattern Model.Symbols uses to cut a word into input
	// symbols. By default every rune is a symbol.
	SymbolPattern string

	// Counters adds final count conditions. Models with counters must be deterministic.
	Counters *CounterRules

	// Grammar is the grammar the transitions were compiled from, if any.
	Grammar *Grammar

	Transitions []Transition
}

// Model is a validated pushdown automaton. It is read-only and safe for concurrent use.
type Model struct {
	name        string
	aliases     []string
	description string

	states       map[State]struct{}
	inputs       map[Symbol]struct{}
	stackSymbols map[Symbol]struct{}
	accepting    map[State]struct{}

	start   State
	bottom  Symbol
	initial []Symbol
	accept  AcceptMode

	deterministic bool
	splitter      *splitter
	counters      *CounterRules
	grammar       *Grammar

	delta       map[transitionKey][]Outcome
	transitions []Transition
}

// NewModel validates def and builds a Model from it. Any inconsistency is reported as an
// error wrapping ErrMalformedModel.
func NewModel(def Definition) (*Model, error) {
	bld := newModelBuilder(def)
	m, err := bld.Build()
	if err != nil {
		return nil, err
	}

	debugf("NewModel: model %s transitions:\n%s\n", m.name, m)

	return m, nil
}

func (m *Model) Name() string {
	return m.name
}

func (m *Model) Aliases() []string {
	return append([]string(nil), m.aliases...)
}

func (m *Model) Description() string {
	return m.description
}

func (m *Model) Start() State {
	return m.start
}

func (m *Model) Bottom() Symbol {
	return m.bottom
}

func (m *Model) AcceptMode() AcceptMode {
	return m.accept
}

func (m *Model) Deterministic() bool {
	return m.deterministic
}

// Grammar returns the grammar a compiled model was built from. The second result is false
// for models given as a transition table.
func (m *Model) Grammar() (Grammar, bool) {
	if m.grammar == nil {
		return Grammar{}, false
	}
	return m.grammar.clone(), true
}

// Transitions returns the transition table in declaration order.
func (m *Model) Transitions() []Transition {
	return append([]Transition(nil), m.transitions...)
}

// Lookup returns the outcomes for state, input symbol (or Epsilon) and stack top. It
// returns nil when no transition matches. The result must not be modified.
func (m *Model) Lookup(state State, input Symbol, top Symbol) []Outcome {
	return m.delta[transitionKey{state, input, top}]
}

// InAlphabet reports whether sym is an input symbol of the model.
func (m *Model) InAlphabet(sym Symbol) bool {
	_, ok := m.inputs[sym]
	return ok
}

// IsAccepting reports whether s is an accepting state.
func (m *Model) IsAccepting(s State) bool {
	_, ok := m.accepting[s]
	return ok
}

// Symbols splits a word into input symbols.
func (m *Model) Symbols(text string) ([]Symbol, error) {
	if m.splitter == nil {
		return SymbolsOf(text), nil
	}
	return m.splitter.split(text)
}

func (m *Model) String() string {
	var buf bytes.Buffer
	for _, t := range m.transitions {
		fmt.Fprintf(&buf, "  %s\n", t)
	}
	return buf.String()
}

type modelBuilder struct {
	def   Definition
	model *Model
}

func newModelBuilder(def Definition) modelBuilder {
	return modelBuilder{
		def: def,
		model: &Model{
			name:         def.Name,
			aliases:      append([]string(nil), def.Aliases...),
			description:  def.Description,
			states:       make(map[State]struct{}),
			inputs:       make(map[Symbol]struct{}),
			stackSymbols: make(map[Symbol]struct{}),
			accepting:    make(map[State]struct{}),
			start:        def.Start,
			bottom:       def.Bottom,
			initial:      append([]Symbol(nil), def.Initial...),
			accept:       def.Accept,
			delta:        make(map[transitionKey][]Outcome),
		},
	}
}

func (mb *modelBuilder) Build() (*Model, error) {
	mb.collectAlphabets()

	err := mb.validate()
	if err != nil {
		return nil, err
	}

	err = mb.build()
	if err != nil {
		return nil, err
	}

	return mb.model, nil
}

func (mb *modelBuilder) collectAlphabets() {
	for _, s := range mb.def.States {
		mb.model.states[s] = struct{}{}
	}
	for _, s := range mb.def.Inputs {
		mb.model.inputs[s] = struct{}{}
	}
	for _, s := range mb.def.StackSymbols {
		mb.model.stackSymbols[s] = struct{}{}
	}
	for _, s := range mb.def.Accepting {
		mb.model.accepting[s] = struct{}{}
	}
}

func (mb *modelBuilder) validate() error {
	var probs problems
	m := mb.model

	if len(m.states) == 0 {
		probs.addf("no states are defined")
	}
	if !m.accept.IsAAcceptMode() {
		probs.addf("unknown accept mode %d", m.accept)
	}
	if _, ok := m.inputs[Epsilon]; ok {
		probs.addf("the input alphabet contains the empty symbol")
	}
	if m.bottom == Epsilon {
		probs.addf("no bottom marker is defined")
	}
	if m.accept == EmptyStack && len(m.accepting) > 0 {
		probs.addf("accepting states are listed but the accept mode is %s", m.accept)
	}

	missingStates := map[string]struct{}{}
	missingStack := map[string]struct{}{}
	missingInputs := map[string]struct{}{}

	checkState := func(s State) {
		if _, ok := m.states[s]; !ok {
			missingStates[string(s)] = struct{}{}
		}
	}
	checkStack := func(s Symbol) {
		if _, ok := m.stackSymbols[s]; !ok {
			missingStack[string(s)] = struct{}{}
		}
	}

	checkState(m.start)
	for s := range m.accepting {
		checkState(s)
	}
	if m.bottom != Epsilon {
		checkStack(m.bottom)
	}
	for _, s := range m.initial {
		checkStack(s)
		if s == m.bottom {
			probs.addf("the bottom marker %s is repeated in the initial stack", s)
		}
	}

	for _, t := range mb.def.Transitions {
		checkState(t.From)
		checkState(t.State)
		checkStack(t.Top)
		if t.Input != Epsilon {
			if _, ok := m.inputs[t.Input]; !ok {
				missingInputs[string(t.Input)] = struct{}{}
			}
		}
		for i, s := range t.Push {
			checkStack(s)
			if s == m.bottom && (i != 0 || t.Top != m.bottom) {
				probs.addf("transition %s pushes the bottom marker above the stack floor", t)
			}
		}
	}

	probs.addMissing("states", missingStates)
	probs.addMissing("stack symbols", missingStack)
	probs.addMissing("input symbols", missingInputs)

	if mb.def.Deterministic {
		mb.checkDeterministic(&probs)
	}
	if mb.def.Counters != nil {
		if !mb.def.Deterministic {
			probs.addf("a model with counters must be deterministic")
		}
		mb.def.Counters.validate(m, &probs)
	}

	return probs.err(ErrMalformedModel)
}

func (mb *modelBuilder) checkDeterministic(probs *problems) {
	outcomes := map[transitionKey][]Outcome{}
	epsilonTops := map[topKey]bool{}
	inputTops := map[topKey]bool{}

	for _, t := range mb.def.Transitions {
		k := t.key()
		outcomes[k] = appendOutcome(outcomes[k], t.Outcome)
		tk := topKey{t.From, t.Top}
		if t.Input == Epsilon {
			epsilonTops[tk] = true
		} else {
			inputTops[tk] = true
		}
	}

	for _, t := range mb.def.Transitions {
		k := t.key()
		if len(outcomes[k]) > 1 {
			probs.addf("(%s, %s, %s) has %d outcomes in a deterministic model", k.state, k.input, k.top, len(outcomes[k]))
			// Report each key once.
			outcomes[k] = outcomes[k][:1]
		}
	}

	for tk := range epsilonTops {
		if inputTops[tk] {
			probs.addf("state %s with %s on top has both an epsilon move and an input move in a deterministic model", tk.state, tk.top)
		}
	}
}

func (mb *modelBuilder) build() error {
	m := mb.model
	for _, t := range mb.def.Transitions {
		t.Push = append([]Symbol(nil), t.Push...)
		k := t.key()
		before := len(m.delta[k])
		m.delta[k] = appendOutcome(m.delta[k], t.Outcome)
		if len(m.delta[k]) > before {
			m.transitions = append(m.transitions, t)
		}
	}

	m.deterministic = mb.def.Deterministic
	if mb.def.Grammar != nil {
		g := mb.def.Grammar.clone()
		m.grammar = &g
	}
	if mb.def.Counters != nil {
		m.counters = mb.def.Counters.clone()
	}

	if mb.def.SymbolPattern != "" {
		sp, err := newSplitter(mb.def.SymbolPattern)
		if err != nil {
			return fmt.Errorf("%w: symbol pattern %q: %v", ErrMalformedModel, mb.def.SymbolPattern, err)
		}
		m.splitter = sp
	}

	return nil
}

// appendOutcome adds o unless an equal outcome is already present; the right side of the
// relation is a set.
func appendOutcome(list []Outcome, o Outcome) []Outcome {
	for _, e := range list {
		if e.equal(o) {
			return list
		}
	}
	return append(list, o)
}
