// pdacheck decides membership of words in the language of a pushdown automaton.
//
// Usage:
//
//	pdacheck [-config file] [-model name | -file path] [-limit n] [-trace] [-single] word...
//
// Use "ε" for the empty word. -list prints the embedded automata, -show prints the
// grammar, if any, and the transition table of the selected one.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	u "github.com/araddon/gou"
	"github.com/jeffwilliams/pda"
	"github.com/jeffwilliams/pda/automata"
)

var (
	configFile = flag.String("config", "", "confl config file")
	modelName  = flag.String("model", "", "embedded automaton name or alias")
	modelFile  = flag.String("file", "", "XML or YAML automaton description")
	stepLimit  = flag.Int("limit", 0, "step ceiling, 0 for the default")
	trace      = flag.Bool("trace", false, "print the configurations leading to each verdict")
	singlePath = flag.Bool("single", false, "follow one move at a time")
	logLevel   = flag.String("logging", "", "log level [debug|info|warn|error]")
	list       = flag.Bool("list", false, "list embedded automata and exit")
	show       = flag.Bool("show", false, "print the grammar and transition table before checking")
)

func main() {
	flag.Parse()

	conf, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load config: %v\n", err)
		os.Exit(2)
	}

	u.SetupLogging(conf.LogLevel)
	u.SetColorIfTerminal()
	if conf.LogLevel == "debug" {
		pda.SetDebugOutput(os.Stderr)
	}

	for _, e := range automata.GlobalLoadErrors {
		u.Warnf("%v", e)
	}

	if *list {
		for _, name := range automata.Names(false) {
			m := automata.Get(name)
			fmt.Printf("%-20s %s\n", name, m.Description())
		}
		return
	}

	m, err := selectModel(conf)
	if err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
	u.Infof("using automaton %q", m.Name())

	if *show {
		printModel(os.Stdout, m)
	}

	opts := pda.Options{StepLimit: conf.StepLimit, Trace: conf.Trace, SinglePath: conf.SinglePath}
	rejected := 0
	for _, word := range flag.Args() {
		if word == pda.EpsilonText {
			word = ""
		}
		input, err := m.Symbols(word)
		if err != nil {
			u.Errorf("%v", err)
			os.Exit(1)
		}

		res := m.Search(input, opts)
		report(word, res)
		if !res.Accepted() {
			rejected++
		}
	}

	u.Debugf("%d of %d words rejected", rejected, flag.NArg())
}

func loadConfig() (*Config, error) {
	conf := defaultConfig()
	if *configFile != "" {
		c, err := LoadConfigFromFile(*configFile)
		if err != nil {
			return nil, err
		}
		conf = *c
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			conf.Model = *modelName
			conf.ModelFile = ""
		case "file":
			conf.ModelFile = *modelFile
		case "limit":
			conf.StepLimit = *stepLimit
		case "trace":
			conf.Trace = *trace
		case "single":
			conf.SinglePath = *singlePath
		case "logging":
			conf.LogLevel = *logLevel
		}
	})

	return &conf, nil
}

func selectModel(conf *Config) (*pda.Model, error) {
	if conf.ModelFile != "" {
		return pda.NewModelFromFile(conf.ModelFile)
	}

	m := automata.Get(conf.Model)
	if m == nil {
		return nil, fmt.Errorf("no automaton named %q; available: %s", conf.Model, strings.Join(automata.Names(true), ", "))
	}
	return m, nil
}

// printModel writes the grammar of a compiled model, then the transition table.
func printModel(w io.Writer, m *pda.Model) {
	if g, ok := m.Grammar(); ok {
		fmt.Fprintf(w, "Grammar:\n%s", g)
	}
	fmt.Fprintf(w, "Transitions:\n%s", m)
}

func report(word string, res pda.Result) {
	shown := word
	if shown == "" {
		shown = pda.EpsilonText
	}

	var verdict string
	switch res.Verdict {
	case pda.Accepted:
		verdict = "ACCEPTED"
	case pda.StepLimitExceeded:
		verdict = "UNDECIDED"
		u.Warnf("%q: %v", shown, res.Err())
	default:
		verdict = "REJECTED"
	}

	line := fmt.Sprintf("Input: '%s' -> %s", shown, verdict)
	if res.Failure != nil {
		line += " | " + res.Failure.String()
	}
	if len(res.Reasons) > 0 {
		line += " | " + strings.Join(res.Reasons, " ")
	}
	fmt.Println(line)

	for _, st := range res.Path {
		fmt.Printf("    %s\n", st)
	}
}
