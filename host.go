package here

// HostEnvironment is the program hosting the notices. It decides whether the
// process is running in a production-like state, in which notices are
// suppressed unless explicitly forced, and may provide a log sink that's used
// whenever a notice is logged without an explicit logger.
type HostEnvironment interface {
	IsProduction() bool
	LogSink() Sink
}

// NoHost is the default host environment: never production, no log sink.
type NoHost struct{}

// IsProduction implements HostEnvironment.
func (NoHost) IsProduction() bool { return false }

// LogSink implements HostEnvironment.
func (NoHost) LogSink() Sink { return nil }

// StaticHost is a host environment with fixed answers.
type StaticHost struct {
	Production bool
	Sink       Sink
}

// IsProduction implements HostEnvironment.
func (h StaticHost) IsProduction() bool { return h.Production }

// LogSink implements HostEnvironment.
func (h StaticHost) LogSink() Sink { return h.Sink }
