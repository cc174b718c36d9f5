package config

import (
	"encoding/xml"
	"io"
)

// Automaton is the decoded description of a pushdown automaton. Either Transitions or
// Grammar is expected to be set. Symbol lists are whitespace separated.
type Automaton struct {
	XMLName       xml.Name     `xml:"automaton" yaml:"-"`
	Config        Config       `xml:"config" yaml:"config"`
	States        States       `xml:"states" yaml:"states"`
	Inputs        string       `xml:"inputs" yaml:"inputs"`
	Stack         Stack        `xml:"stack" yaml:"stack"`
	Deterministic bool         `xml:"deterministic" yaml:"deterministic"`
	Transitions   []Transition `xml:"transitions>transition" yaml:"transitions"`
	Counters      *Counters    `xml:"counters" yaml:"counters"`
	Grammar       *Grammar     `xml:"grammar" yaml:"grammar"`
}

type Config struct {
	Name          string   `xml:"name" yaml:"name"`
	Aliases       []string `xml:"alias" yaml:"aliases"`
	Description   string   `xml:"description" yaml:"description"`
	SymbolPattern string   `xml:"symbol_pattern" yaml:"symbol_pattern"`
}

type States struct {
	Start  string  `xml:"start,attr" yaml:"start"`
	Accept string  `xml:"accept,attr" yaml:"accept"`
	States []State `xml:"state" yaml:"list"`
}

type State struct {
	Name      string `xml:"name,attr" yaml:"name"`
	Accepting bool   `xml:"accepting,attr" yaml:"accepting"`
}

type Stack struct {
	Bottom  string `xml:"bottom,attr" yaml:"bottom"`
	Initial string `xml:"initial,attr" yaml:"initial"`
	Symbols string `xml:",chardata" yaml:"symbols"`
}

// Transition is one entry of the transition table. An empty Input, or "ε", is an epsilon
// move.
type Transition struct {
	From  string `xml:"from,attr" yaml:"from"`
	Input string `xml:"input,attr" yaml:"input"`
	Top   string `xml:"top,attr" yaml:"top"`
	To    string `xml:"to,attr" yaml:"to"`
	Push  string `xml:"push,attr" yaml:"push"`
}

type Counters struct {
	Equal []Equal `xml:"equal" yaml:"equal"`
	Min   []Min   `xml:"min" yaml:"min"`
}

type Equal struct {
	Symbols string `xml:"symbols,attr" yaml:"symbols"`
}

type Min struct {
	Symbol string `xml:"symbol,attr" yaml:"symbol"`
	Count  int    `xml:"count,attr" yaml:"count"`
}

// Grammar describes a grammar in Greibach normal form, either as text rules
// ("S -> 0 S B | ε"), as individual productions, or both.
type Grammar struct {
	Start       string       `xml:"start,attr" yaml:"start"`
	Bottom      string       `xml:"bottom,attr" yaml:"bottom"`
	Rules       string       `xml:"rules" yaml:"rules"`
	Productions []Production `xml:"production" yaml:"productions"`
}

type Production struct {
	Head     string `xml:"head,attr" yaml:"head"`
	Terminal string `xml:"terminal,attr" yaml:"terminal"`
	Vars     string `xml:"vars,attr" yaml:"vars"`
}

func DecodeAutomaton(rdr io.Reader) (a *Automaton, err error) {
	dec := xml.NewDecoder(rdr)

	err = dec.Decode(&a)
	return
}
