package config

import (
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeAutomatonYAML decodes the YAML form of an automaton description. Unknown keys are
// rejected so that misspelt sections don't silently disappear.
func DecodeAutomatonYAML(rdr io.Reader) (a *Automaton, err error) {
	dec := yaml.NewDecoder(rdr)
	dec.KnownFields(true)

	err = dec.Decode(&a)
	return
}
