package pda

import (
	"sort"
	"strings"
	"sync"
)

// ModelRegistry holds models by name and alias. Lookups ignore case.
type ModelRegistry struct {
	mu     sync.RWMutex
	models []*Model
	byName map[string]*Model
}

func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{
		byName: make(map[string]*Model),
	}
}

// Register adds m under its name and aliases. A later model replaces an earlier one with
// the same name, aliases included.
func (r *ModelRegistry) Register(m *Model) *Model {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, old := range r.models {
		if !strings.EqualFold(old.Name(), m.Name()) {
			continue
		}
		r.models = append(r.models[:i], r.models[i+1:]...)
		for k, v := range r.byName {
			if v == old {
				delete(r.byName, k)
			}
		}
		break
	}

	r.models = append(r.models, m)
	r.byName[strings.ToLower(m.Name())] = m
	for _, a := range m.Aliases() {
		r.byName[strings.ToLower(a)] = m
	}
	return m
}

// Get returns the model registered under name, or nil.
func (r *ModelRegistry) Get(name string) *Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byName[strings.ToLower(name)]
}

// Names returns the sorted model names, optionally including aliases.
func (r *ModelRegistry) Names(withAliases bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for _, m := range r.models {
		names = append(names, m.Name())
		if withAliases {
			names = append(names, m.Aliases()...)
		}
	}
	sort.Strings(names)
	return names
}
