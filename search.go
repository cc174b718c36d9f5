package pda

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/jeffwilliams/pda/internal/queue"
)

// DefaultStepLimit is the step ceiling used when none is given.
const DefaultStepLimit = 20000

// Options control a search.
type Options struct {
	// StepLimit is the number of configurations the search may examine before it gives up.
	// Zero or less selects DefaultStepLimit.
	StepLimit int
	// Trace requests the path of configurations leading to the verdict.
	Trace bool
	// SinglePath follows one move at a time instead of exploring every branch. A
	// nondeterministic model follows the first outcome in declaration order. Models with
	// counters always run this way.
	SinglePath bool
}

func (o Options) stepLimit() int {
	if o.StepLimit <= 0 {
		return DefaultStepLimit
	}
	return o.StepLimit
}

// Failure describes where a rejected run got stuck. For a breadth-first search it is the
// dead end that consumed the most input.
type Failure struct {
	Config Configuration
	// Symbol is the next input symbol, or Epsilon when all input was consumed.
	Symbol Symbol
	Reason string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s at %s", f.Reason, f.Config)
}

// Result is the outcome of a membership query.
type Result struct {
	Verdict Verdict
	// Steps is the number of configurations examined.
	Steps int
	// Final is the accepting configuration, or the one Failure refers to.
	Final Configuration
	// Path leads from the initial configuration to Final. It is only set when tracing.
	Path []Step
	// Failure is set for Rejected verdicts.
	Failure *Failure
	// Counts holds the counters of a counting automaton at Final.
	Counts map[Symbol]int
	// Reasons explains why a counting automaton rejected.
	Reasons []string
}

func (r Result) Accepted() bool {
	return r.Verdict == Accepted
}

// Err returns an error wrapping ErrStepLimitExceeded when the search was inconclusive, and
// nil otherwise. A plain rejection is an answer, not an error.
func (r Result) Err() error {
	if r.Verdict == StepLimitExceeded {
		return fmt.Errorf("%w after %d steps", ErrStepLimitExceeded, r.Steps)
	}
	return nil
}

// Accepts decides whether input is in the language of the model, examining at most
// stepLimit configurations (DefaultStepLimit if stepLimit <= 0).
func (m *Model) Accepts(input []Symbol, stepLimit int) Result {
	return m.Search(input, Options{StepLimit: stepLimit})
}

// AcceptsString splits text with Symbols and calls Accepts.
func (m *Model) AcceptsString(text string, stepLimit int) (Result, error) {
	input, err := m.Symbols(text)
	if err != nil {
		return Result{}, err
	}
	return m.Accepts(input, stepLimit), nil
}

// Search runs a membership query with the given options.
func (m *Model) Search(input []Symbol, opts Options) Result {
	s := newSearch(m, input, opts)

	var res Result
	if opts.SinglePath || m.counters != nil {
		res = s.runSinglePath()
	} else {
		res = s.runBreadthFirst()
	}

	if res.Verdict == StepLimitExceeded {
		debugf("Model.Search(%s): step limit %d exceeded, treating input as rejected", m.name, s.limit)
	}
	debugf("Model.Search(%s): %s after %d steps", m.name, res.Verdict, res.Steps)

	return res
}

// AcceptsAll runs one independent query per input in parallel. Results are in input order.
func (m *Model) AcceptsAll(inputs [][]Symbol, opts Options) []Result {
	results := make([]Result, len(inputs))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(inputs) {
		workers = len(inputs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = m.Search(inputs[i], opts)
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// Initial returns the configuration every run starts from.
func (m *Model) Initial() Configuration {
	st := NewStack(m.bottom)
	st.Push(m.initial...)
	return Configuration{State: m.start, Pos: 0, Stack: st}
}

type move struct {
	to  Configuration
	via Transition
}

// successors lists the moves out of c: input moves first, when input remains, then
// epsilon moves. c must have a non-empty stack.
func (m *Model) successors(c Configuration, input []Symbol) []move {
	top := c.Stack.Top()
	var moves []move

	if c.Pos < len(input) {
		sym := input[c.Pos]
		for _, o := range m.Lookup(c.State, sym, top) {
			moves = append(moves, move{c.next(o, 1), Transition{c.State, sym, top, o}})
		}
	}

	for _, o := range m.Lookup(c.State, Epsilon, top) {
		moves = append(moves, move{c.next(o, 0), Transition{c.State, Epsilon, top, o}})
	}

	return moves
}

// atFloor is the acceptance test without counters: all input consumed, only the bottom
// marker left and, for FinalState models, an accepting state.
func (m *Model) atFloor(c Configuration, inputLen int) bool {
	if c.Pos != inputLen || !c.Stack.IsFloor(m.bottom) {
		return false
	}
	return m.accept != FinalState || m.IsAccepting(c.State)
}

type searchNode struct {
	conf   Configuration
	parent int
	via    Transition
}

type search struct {
	model *Model
	input []Symbol
	opts  Options
	limit int

	nodes   []searchNode
	failure *Failure
	failIdx int
}

func newSearch(m *Model, input []Symbol, opts Options) *search {
	return &search{
		model:   m,
		input:   input,
		opts:    opts,
		limit:   opts.stepLimit(),
		failIdx: -1,
	}
}

func (s *search) add(c Configuration, parent int, via Transition) int {
	s.nodes = append(s.nodes, searchNode{conf: c, parent: parent, via: via})
	return len(s.nodes) - 1
}

// deadEnd records c as the failure point if it got further into the input than the
// current one.
func (s *search) deadEnd(idx int) {
	c := s.nodes[idx].conf
	if s.failure != nil && c.Pos <= s.failure.Config.Pos {
		return
	}

	f := &Failure{Config: c}
	if c.Pos < len(s.input) {
		f.Symbol = s.input[c.Pos]
	}

	switch {
	case c.Stack.Len() == 0:
		f.Reason = "stack exhausted"
	case c.Pos < len(s.input) && !s.model.InAlphabet(f.Symbol):
		f.Reason = fmt.Sprintf("symbol %s is not in the input alphabet", f.Symbol)
	case c.Pos < len(s.input):
		f.Reason = fmt.Sprintf("no transition for (%s, %s, %s)", c.State, f.Symbol, c.Stack.Top())
	default:
		f.Reason = "input consumed without reaching an accepting configuration"
	}

	s.failure = f
	s.failIdx = idx
}

func (s *search) runBreadthFirst() Result {
	m := s.model
	start := s.add(m.Initial(), -1, Transition{})

	frontier := queue.New(start)
	visited := map[string]struct{}{s.nodes[start].conf.key(): {}}
	steps := 0

	for {
		idx, ok := frontier.First()
		if !ok {
			break
		}

		steps++
		if steps > s.limit {
			return s.result(StepLimitExceeded, steps-1, idx)
		}

		c := s.nodes[idx].conf
		if c.Stack.Len() == 0 {
			s.deadEnd(idx)
			continue
		}
		if m.atFloor(c, len(s.input)) {
			return s.result(Accepted, steps, idx)
		}

		moves := m.successors(c, s.input)
		if len(moves) == 0 {
			s.deadEnd(idx)
			continue
		}

		for _, mv := range moves {
			k := mv.to.key()
			if _, seen := visited[k]; seen {
				continue
			}
			visited[k] = struct{}{}
			frontier.Append(s.add(mv.to, idx, mv.via))
		}
	}

	if s.failIdx < 0 {
		// Every branch ended in a configuration that was already explored.
		s.failIdx = start
		s.failure = &Failure{Config: s.nodes[start].conf, Reason: "every move leads back to an explored configuration"}
	}
	return s.result(Rejected, steps, s.failIdx)
}

// runSinglePath executes a deterministic run: the same successor and rewrite logic as the
// breadth-first search, following a single move per step.
func (s *search) runSinglePath() Result {
	m := s.model
	idx := s.add(m.Initial(), -1, Transition{})
	steps := 0

	for {
		steps++
		if steps > s.limit {
			return s.result(StepLimitExceeded, steps-1, idx)
		}

		c := s.nodes[idx].conf
		if c.Stack.Len() == 0 {
			s.deadEnd(idx)
			break
		}
		if m.atFloor(c, len(s.input)) && m.counterFailures(c, s.input) == nil {
			return s.result(Accepted, steps, idx)
		}

		moves := m.successors(c, s.input)
		if len(moves) == 0 {
			s.deadEnd(idx)
			break
		}
		if len(moves) > 1 {
			debugf("search.runSinglePath: %d moves from %s, following %s", len(moves), c, moves[0].via)
		}
		idx = s.add(moves[0].to, idx, moves[0].via)
	}

	// In a single run the last configuration is the failure point, even if an earlier
	// one was recorded.
	s.failure = nil
	s.deadEnd(idx)
	return s.result(Rejected, steps, idx)
}

func (s *search) result(v Verdict, steps int, idx int) Result {
	res := Result{
		Verdict: v,
		Steps:   steps,
		Final:   s.nodes[idx].conf,
	}

	if v == Rejected {
		res.Failure = s.failure
	}
	if s.opts.Trace {
		res.Path = s.path(idx)
	}
	if s.model.counters != nil {
		res.Counts = count(s.input[:res.Final.Pos])
		if v != Accepted {
			res.Reasons = s.model.rejectionReasons(res.Final, s.input)
		}
	}

	return res
}

// path follows predecessor links from idx back to the initial configuration.
func (s *search) path(idx int) []Step {
	var rev []Step
	for i := idx; i >= 0; i = s.nodes[i].parent {
		n := s.nodes[i]
		st := Step{Config: n.conf}
		if n.parent >= 0 {
			via := n.via
			st.Via = &via
		}
		rev = append(rev, st)
	}

	steps := make([]Step, len(rev))
	for i, st := range rev {
		steps[len(rev)-1-i] = st
	}
	return steps
}

func (m *Model) counterFailures(c Configuration, input []Symbol) []string {
	if m.counters == nil {
		return nil
	}
	return m.counters.failures(count(input[:c.Pos]))
}

// rejectionReasons explains why c is not an accepting configuration of a counting model.
func (m *Model) rejectionReasons(c Configuration, input []Symbol) (reasons []string) {
	if c.Pos < len(input) {
		sym := input[c.Pos]
		if !m.InAlphabet(sym) {
			reasons = append(reasons, fmt.Sprintf("symbol %s at %d is not in the input alphabet", sym, c.Pos))
		} else {
			reasons = append(reasons, fmt.Sprintf("no transition in state %s for %s with %s on top", c.State, sym, c.Stack.Top()))
		}
	}
	reasons = append(reasons, m.counterFailures(c, input)...)
	if !c.Stack.IsFloor(m.bottom) {
		reasons = append(reasons, fmt.Sprintf("stack %s did not return to %s", c.Stack, m.bottom))
	}
	if m.accept == FinalState && !m.IsAccepting(c.State) {
		reasons = append(reasons, fmt.Sprintf("state %s is not accepting", c.State))
	}
	return
}
