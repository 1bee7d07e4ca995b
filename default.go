package here

import (
	"github.com/peterbourgon/here/internal/hereutil"
)

var defaultTracer = hereutil.NewAtomic(NewTracer(Config{}))

// Default returns the tracer used by the package-level functions.
func Default() *Tracer {
	return defaultTracer.Get()
}

// SetDefault replaces the tracer used by the package-level functions, and
// returns the previous one. A nil tracer is ignored.
func SetDefault(t *Tracer) *Tracer {
	if t == nil {
		return Default()
	}
	return defaultTracer.Swap(t)
}

// Timestamp emits a timestamp notice via the default tracer.
// See [Tracer.Timestamp].
func Timestamp(opts ...Option) error {
	return Default().timestamp(1, opts)
}

// Value emits a value notice via the default tracer.
// See [Tracer.Value].
func Value(argument any, opts ...Option) error {
	return Default().value(1, argument, opts)
}

var (
	// TS is shorthand for Timestamp.
	TS = Timestamp

	// Val is shorthand for Value.
	Val = Value
)
