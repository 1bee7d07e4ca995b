package here

import (
	"io"
	"os"
)

// Options are the raw, per-notice output options. Every field accepts loosely
// typed input, and nil always means the option wasn't given.
//
// Log and Production are interpreted via [Cast]. Logger must be a [Sink], an
// hclog.Logger, a *slog.Logger, or a *log.Logger. Logdev must be a [Device], a
// file path, an io.Writer, or os.DevNull. Out must be a bool, a string or
// integer (interpreted via Cast), an io.Writer (true), or os.DevNull (false).
type Options struct {
	Log        any
	Logger     any
	Logdev     any
	Out        any
	Production any
}

// DefaultOptions returns the options used by notices when none are given:
// console output on, everything else absent.
func DefaultOptions() Options {
	return Options{Out: true}
}

// Settings is the resolved form of Options. It decides whether a notice is
// emitted at all, whether it's printed to the console, and whether and where
// it's logged. Settings are immutable once constructed.
type Settings struct {
	enabled    bool
	production bool
	log        bool
	out        bool
	sink       Sink
	logdev     Device
	console    io.Writer
}

// NewSettings resolves the options against the host environment. The console
// is where notices are printed; if nil, os.Stdout is used. Malformed options
// produce a [ConfigurationError].
//
// When logging is wanted and no logger is given, the host's log sink is used
// if it has one, otherwise a sink writing bare records to Logdev (or the
// console) is constructed. If logging is on and Logdev is the console stream,
// console output is turned off to avoid doubled lines. If console output ends
// up off and Log wasn't given explicitly, logging is turned on so the notice
// isn't silently dropped.
func NewSettings(host HostEnvironment, console io.Writer, opts Options) (*Settings, error) {
	if host == nil {
		host = NoHost{}
	}
	if console == nil {
		console = os.Stdout
	}

	var (
		logExplicit = opts.Log != nil
		s           = &Settings{
			production: Cast(opts.Production),
			log:        Cast(opts.Log),
			console:    console,
		}
	)

	s.enabled = s.production || !host.IsProduction()
	if !s.enabled {
		s.log = false
		return s, nil
	}

	sink, err := parseLogger(opts.Logger)
	if err != nil {
		return nil, err
	}
	if sink != nil && !logExplicit {
		s.log = true
	}
	s.sink = sink

	logdev, err := parseDevice(opts.Logdev, console)
	if err != nil {
		return nil, err
	}
	s.logdev = logdev

	out, err := parseOut(opts.Out)
	if err != nil {
		return nil, err
	}

	loggingToConsole := s.log && isConsole(s.logdev, console)
	s.out = out && !loggingToConsole
	if !s.out && !logExplicit {
		s.log = true
	}

	if s.log && s.sink == nil {
		if hostSink := host.LogSink(); hostSink != nil {
			s.sink = hostSink
		} else {
			s.sink = newDeviceSink(s.logdev, console)
		}
	}

	return s, nil
}

// parseOut interprets a raw Out option.
func parseOut(raw any) (bool, error) {
	switch x := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case nullDevice:
		return false, nil
	case string:
		if x == os.DevNull {
			return false, nil
		}
		return Cast(x), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Cast(x), nil
	case io.Writer:
		return Cast(x), nil
	default:
		return false, newConfigurationError("out", raw, ErrInvalidOutOption)
	}
}

// Enabled returns true if the notice should be emitted.
func (s *Settings) Enabled() bool { return s.enabled }

// Disabled is the inverse of Enabled.
func (s *Settings) Disabled() bool { return !s.enabled }

// Production returns true if notices were forced on in production.
func (s *Settings) Production() bool { return s.production }

// Log returns true if the notice is written to the sink.
func (s *Settings) Log() bool { return s.log }

// Out returns true if the notice is printed to the console.
func (s *Settings) Out() bool { return s.out }

// Sink returns the resolved log sink, which is nil when not logging, unless
// a logger was given explicitly.
func (s *Settings) Sink() Sink { return s.sink }

// Logdev returns the log device given as an option, or nil.
func (s *Settings) Logdev() Device { return s.logdev }

// Console returns the console writer.
func (s *Settings) Console() io.Writer { return s.console }
