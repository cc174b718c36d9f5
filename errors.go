package pda

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMalformedModel is wrapped by every error that rejects an automaton definition.
	ErrMalformedModel = errors.New("malformed model")
	// ErrInvalidGrammarForm is wrapped by every error that rejects a grammar which is not in
	// Greibach normal form.
	ErrInvalidGrammarForm = errors.New("grammar is not in Greibach normal form")
	// ErrStepLimitExceeded is returned by Result.Err when the search gave up.
	ErrStepLimitExceeded = errors.New("step limit exceeded")
)

// problems collects the reasons a definition is rejected so that they can all be reported
// in one error.
type problems []string

func (p *problems) addf(format string, args ...interface{}) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p *problems) addMissing(what string, missing map[string]struct{}) {
	if len(missing) == 0 {
		return
	}
	names := make([]string, 0, len(missing))
	for n := range missing {
		names = append(names, n)
	}
	sort.Strings(names)
	p.addf("the following %s are referred to, but aren't defined: %v", what, names)
}

func (p problems) err(kind error) error {
	if len(p) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", kind, strings.Join(p, "; "))
}
