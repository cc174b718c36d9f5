// Package automata contains ready made pushdown automata and a registry to look them up.
package automata

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/jeffwilliams/pda"
)

//go:embed embedded
var embedded embed.FS

// GlobalRegistry is the registry of the embedded automata.
var GlobalRegistry = func() *pda.ModelRegistry {
	reg := pda.NewModelRegistry()
	paths, err := fs.Glob(embedded, "embedded/*.xml")
	if err != nil {
		panic(err)
	}
	for _, path := range paths {
		m, err := pda.NewModelFromXMLFS(embedded, path)
		if err != nil {
			GlobalLoadErrors = append(GlobalLoadErrors, fmt.Errorf("Error loading automaton %s: %s", path, err))
			continue
		}
		reg.Register(m)
	}
	return reg
}()

var GlobalLoadErrors []error

// Names of all automata, optionally including aliases.
func Names(withAliases bool) []string {
	return GlobalRegistry.Names(withAliases)
}

// Get an automaton by name or alias. Returns nil when no automaton matches.
func Get(name string) *pda.Model {
	return GlobalRegistry.Get(name)
}
