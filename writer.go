package here

import (
	"fmt"
)

// WriteFunc emits a single formatted notice.
type WriteFunc func(msg string)

// NewWriter returns a WriteFunc which routes notices per the settings: first
// to the console, if console output is on, and then to the sink, if logging
// is on and a sink was resolved.
func NewWriter(s *Settings) WriteFunc {
	var (
		out     = s.out
		console = s.console
		log     = s.log && s.sink != nil
		sink    = s.sink
	)
	return func(msg string) {
		if out {
			fmt.Fprintln(console, msg)
		}
		if log {
			sink.Debug(message(msg))
		}
	}
}

// message is an already-rendered notice.
type message string

func (m message) String() string { return string(m) }
