package main

import (
	"io/ioutil"
	"os"

	"github.com/lytics/confl"
)

// Config holds the settings of a pdacheck run. Command line flags override the values
// read from a config file.
type Config struct {
	Model      string `json:"model"`       // name or alias of an embedded automaton
	ModelFile  string `json:"model_file"`  // XML or YAML description, takes precedence over model
	StepLimit  int    `json:"step_limit"`  // search ceiling, 0 for the library default
	LogLevel   string `json:"log_level"`   // [debug,info,warn,error]
	Trace      bool   `json:"trace"`       // print the path of every verdict
	SinglePath bool   `json:"single_path"` // follow one move at a time
}

func defaultConfig() Config {
	return Config{
		Model:    "mirrored-bits",
		LogLevel: "warn",
	}
}

// LoadConfigFromFile reads a confl formatted config file; environment variables in it are
// expanded.
func LoadConfigFromFile(filename string) (*Config, error) {
	confBytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadConfig(string(confBytes))
}

// LoadConfig reads confl formatted settings on top of the defaults.
func LoadConfig(conf string) (*Config, error) {
	c := defaultConfig()
	if _, err := confl.Decode(os.ExpandEnv(conf), &c); err != nil {
		return nil, err
	}
	return &c, nil
}
