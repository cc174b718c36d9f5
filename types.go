package pda

//go:generate go run github.com/dmarkham/enumer -text -type Verdict
//go:generate go run github.com/dmarkham/enumer -text -type AcceptMode

// Verdict is the answer to a membership query.
type Verdict int

const (
	// Rejected means every reachable configuration was explored and none accepts the input.
	Rejected Verdict = iota
	// Accepted means an accepting configuration was reached.
	Accepted
	// StepLimitExceeded means the search ran out of steps before it could decide. It counts
	// as a rejection, but not as proof that the input is outside the language.
	StepLimitExceeded
)

// IsRejection reports whether the verdict is one of the two rejecting verdicts.
func (v Verdict) IsRejection() bool {
	return v != Accepted
}

// AcceptMode selects the test applied to a configuration once all input is consumed.
type AcceptMode int

const (
	// EmptyStack accepts when only the bottom marker is left on the stack, whatever the state.
	// A model with accepting states can't use it.
	EmptyStack AcceptMode = iota
	// FinalState additionally requires the current state to be an accepting state.
	FinalState
)
