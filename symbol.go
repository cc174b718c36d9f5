package pda

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// State names a control state of an automaton.
type State string

// Symbol names an input symbol or a stack symbol.
type Symbol string

// Epsilon is the input symbol of a move that consumes no input.
const Epsilon Symbol = ""

// EpsilonText is how Epsilon is written in grammar text and on the command line.
const EpsilonText = "ε"

func (s Symbol) String() string {
	if s == Epsilon {
		return EpsilonText
	}
	return string(s)
}

// SymbolsOf splits text into one symbol per rune.
func SymbolsOf(text string) []Symbol {
	syms := make([]Symbol, 0, len(text))
	for _, r := range text {
		syms = append(syms, Symbol(r))
	}
	return syms
}

// splitter cuts a word into input symbols using a pattern that is matched repeatedly
// at the start of the remaining text.
type splitter struct {
	pattern *regexp2.Regexp
}

func newSplitter(pattern string) (*splitter, error) {
	re, err := regexp2.Compile(`\A(?:`+pattern+`)`, regexp2.None)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = time.Millisecond * 250

	return &splitter{pattern: re}, nil
}

func (s *splitter) split(text string) ([]Symbol, error) {
	rs := []rune(text)
	var syms []Symbol

	for i := 0; i < len(rs); {
		m, err := s.pattern.FindRunesMatch(rs[i:])
		if err != nil {
			return nil, err
		}
		if m == nil || m.Length == 0 {
			return nil, fmt.Errorf("no input symbol matches at offset %d of %q", i, text)
		}
		syms = append(syms, Symbol(m.String()))
		i += m.Length
	}

	return syms, nil
}
