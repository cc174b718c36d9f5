package pda

import (
	"io"
	"log"
)

// DebugLogger, when set, receives the transition tables of new models and a line per
// search. It is read without locking; set it before running searches concurrently.
var DebugLogger *log.Logger = nil

// SetDebugOutput directs debug output to w, or turns it off when w is nil.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		DebugLogger = nil
		return
	}
	DebugLogger = log.New(w, "pda: ", 0)
}

func debugf(format string, args ...interface{}) {
	if DebugLogger == nil {
		return
	}

	DebugLogger.Printf(format, args...)
}
