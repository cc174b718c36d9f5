package pda

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zerosDoubleOnesXML = `
<automaton>
  <config>
    <name>zeros-double-ones</name>
    <alias>0n12n</alias>
    <description>
      0^n 1^2n
    </description>
  </config>
  <states start="q0" accept="FinalState">
    <state name="q0"/>
    <state name="q1"/>
    <state name="q2" accepting="true"/>
  </states>
  <inputs>0 1</inputs>
  <stack bottom="Z0">Z0 X</stack>
  <deterministic>true</deterministic>
  <transitions>
    <transition from="q0" input="0" top="Z0" to="q0" push="Z0 X X"/>
    <transition from="q0" input="0" top="X" to="q0" push="X X X"/>
    <transition from="q0" input="1" top="X" to="q1" push=""/>
    <transition from="q1" input="1" top="X" to="q1"/>
    <transition from="q1" input="ε" top="Z0" to="q2" push="Z0"/>
  </transitions>
</automaton>
`

const keywordsYAML = `
config:
  name: keywords
  symbol_pattern: if|then|x
states:
  start: q
  accept: EmptyStack
  list:
    - name: q
inputs: if then x
stack:
  bottom: $
  initial: E
  symbols: $ E T X
transitions:
  - {from: q, input: if, top: E, to: q, push: T X}
  - {from: q, input: x, top: X, to: q}
  - {from: q, input: then, top: T, to: q}
`

const mirroredBitsYAML = `
config:
  name: mirrored-bits
grammar:
  rules: |
    S -> 0 S B | 1 S A | ε
  productions:
    - {head: A, terminal: "0"}
    - {head: B, terminal: "1"}
`

func TestNewModelFromXML(t *testing.T) {
	assert := assert.New(t)

	m, err := NewModelFromXML(strings.NewReader(zerosDoubleOnesXML))
	require.NoError(t, err)

	assert.Equal("zeros-double-ones", m.Name())
	assert.Equal([]string{"0n12n"}, m.Aliases())
	assert.Equal("0^n 1^2n", m.Description())
	assert.Equal(FinalState, m.AcceptMode())
	assert.True(m.Deterministic())
	assert.Equal(Symbol("Z0"), m.Bottom())
	assert.Equal([]Outcome{{"q2", []Symbol{"Z0"}}}, m.Lookup("q1", Epsilon, "Z0"))

	expected := mustModel(t, zerosDoubleOnes())
	assert.Equal(expected.Transitions(), m.Transitions())

	for _, w := range allWords("01", 7) {
		assert.Equal(expected.Accepts(SymbolsOf(w), 0).Verdict, m.Accepts(SymbolsOf(w), 0).Verdict, "word %q", w)
	}
}

func TestNewModelFromYAML(t *testing.T) {
	assert := assert.New(t)

	m, err := NewModelFromYAML(strings.NewReader(keywordsYAML))
	require.NoError(t, err)
	assert.Equal(EmptyStack, m.AcceptMode())

	syms, err := m.Symbols("ifxthen")
	require.NoError(t, err)
	assert.Equal([]Symbol{"if", "x", "then"}, syms)

	res, err := m.AcceptsString("ifxthen", 0)
	require.NoError(t, err)
	assert.True(res.Accepted())

	res, err = m.AcceptsString("ifthenx", 0)
	require.NoError(t, err)
	assert.False(res.Accepted())

	_, err = m.AcceptsString("ifelse", 0)
	assert.Error(err)
}

func TestNewModelFromGrammarDescription(t *testing.T) {
	m, err := NewModelFromYAML(strings.NewReader(mirroredBitsYAML))
	require.NoError(t, err)

	assert.Equal(t, "mirrored-bits", m.Name())
	assert.Equal(t, DefaultBottom, m.Bottom())
	assert.Equal(t, EmptyStack, m.AcceptMode())

	reference := mustCompile(t, mirroredBits())
	assert.Equal(t, reference.Transitions(), m.Transitions())

	g, ok := m.Grammar()
	assert.True(t, ok)
	assert.Equal(t, "S -> 0 S B | 1 S A | ε\nA -> 0\nB -> 1\n", g.String())
}

func TestNewModelFromDescriptionErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		kind    error
		message string
	}{
		{
			"grammar and transitions",
			"config: {name: both}\ngrammar: {rules: 'S -> a'}\ntransitions:\n  - {from: q, input: a, top: S, to: q}\n",
			ErrMalformedModel,
			"automaton both has both a grammar and transitions",
		},
		{
			"bad grammar",
			"config: {name: left}\ngrammar: {rules: 'S -> S a | b'}\n",
			ErrInvalidGrammarForm,
			"automaton left: ",
		},
		{
			"bad accept mode",
			"config: {name: odd}\nstates: {start: q, accept: Sometimes, list: [{name: q}]}\nstack: {bottom: $, symbols: $}\n",
			ErrMalformedModel,
			"Sometimes does not belong to AcceptMode values",
		},
		{
			"dangling state",
			"config: {name: lost}\nstates: {start: q, list: [{name: q}]}\ninputs: a\nstack: {bottom: $, symbols: $}\ntransitions:\n  - {from: q, input: a, top: $, to: r, push: $}\n",
			ErrMalformedModel,
			"[r]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewModelFromYAML(strings.NewReader(tc.yaml))
			assert.Nil(t, m)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "error %v", err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestNewModelFromXMLSyntaxError(t *testing.T) {
	_, err := NewModelFromXML(strings.NewReader("<automaton><config>"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformedModel))
}

func TestNewModelFromFile(t *testing.T) {
	dir := t.TempDir()

	xmlPath := filepath.Join(dir, "zeros.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte(zerosDoubleOnesXML), 0o644))
	yamlPath := filepath.Join(dir, "keywords.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte(keywordsYAML), 0o644))

	m, err := NewModelFromFile(xmlPath)
	require.NoError(t, err)
	assert.Equal(t, "zeros-double-ones", m.Name())

	m, err = NewModelFromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "keywords", m.Name())

	_, err = NewModelFromFile(filepath.Join(dir, "missing.xml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	defer SetDebugOutput(nil)

	m := mustModel(t, zerosDoubleOnes())
	m.Accepts(SymbolsOf("011"), 0)

	out := buf.String()
	assert.Contains(t, out, "pda: NewModel: model zeros-double-ones transitions:")
	assert.Contains(t, out, "(q1, ε, Z0) -> (q2, [Z0])")
	assert.Contains(t, out, "Accepted after 5 steps")
}
