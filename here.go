package here

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Config parameterizes a Tracer. Zero values are replaced by defaults.
type Config struct {
	// Host is consulted by every notice. Default [NoHost].
	Host HostEnvironment

	// Pulses is the counter used by timestamp notices. Tracers may share a
	// counter. Default is a new counter.
	Pulses *PulseCounter

	// Console is where notices are printed. Default os.Stdout.
	Console io.Writer

	// Styler renders notice text. Default [AutoStyler] of Console.
	Styler Styler
}

// Tracer emits timestamp and value notices. Tracers are safe for concurrent
// use. Most programs use the package-level functions, which use the default
// tracer, rather than constructing their own.
type Tracer struct {
	host    HostEnvironment
	pulses  *PulseCounter
	console io.Writer
	styler  Styler
}

// NewTracer returns a tracer with the given config.
func NewTracer(cfg Config) *Tracer {
	if cfg.Host == nil {
		cfg.Host = NoHost{}
	}
	if cfg.Pulses == nil {
		cfg.Pulses = NewPulseCounter()
	}
	if cfg.Console == nil {
		cfg.Console = os.Stdout
	}
	if cfg.Styler == nil {
		cfg.Styler = AutoStyler(cfg.Console)
	}
	return &Tracer{
		host:    cfg.Host,
		pulses:  cfg.Pulses,
		console: cfg.Console,
		styler:  cfg.Styler,
	}
}

// Pulses returns the tracer's pulse counter.
func (t *Tracer) Pulses() *PulseCounter { return t.pulses }

// Timestamp emits a timestamp notice: a sequence number, the time elapsed
// since the previous timestamp notice, the current time, and the call site.
//
//	[TIMESTAMP] #=0002, diff=0.000463, at=1451615389.505411    	(in /path/to/file.go:12:in 'Hello')
//
// The only errors returned are configuration errors. If the notice itself
// can't be produced, a failure notice is emitted instead.
func (t *Tracer) Timestamp(opts ...Option) error {
	return t.timestamp(1, opts)
}

// TS is shorthand for Timestamp.
func (t *Tracer) TS(opts ...Option) error {
	return t.timestamp(1, opts)
}

// Value emits a value notice: the enclosing type and method, a label, the
// value, and the call site.
//
//	[Greeter#Hello] name: Charlie    	(in /path/to/file.go:12:in 'Hello')
//
// The argument may be a literal value, or an [Arg] built with [Ref] or
// [Scope.Ref], which provides a label by default. Configuration errors and
// reference resolution errors are returned.
func (t *Tracer) Value(argument any, opts ...Option) error {
	return t.value(1, argument, opts)
}

// Val is shorthand for Value.
func (t *Tracer) Val(argument any, opts ...Option) error {
	return t.value(1, argument, opts)
}

// timestamp is called with skip equal to the number of frames between it and
// the user's call site.
func (t *Tracer) timestamp(skip int, opts []Option) error {
	cfg := newNoticeConfig(opts)

	s, err := NewSettings(t.host, t.console, cfg.Options)
	if err != nil {
		return err
	}
	if s.Disabled() {
		return nil
	}

	var (
		write  = NewWriter(s)
		source = Locate(skip + 1).Source()
	)
	write(t.timestampNotice(source))
	return nil
}

// timestampNotice pulses the counter and renders the notice. Any panic is
// rendered as a failure notice instead.
func (t *Tracer) timestampNotice(source string) (msg string) {
	defer func() {
		if x := recover(); x != nil {
			msg = t.styler.Style(fmt.Sprintf("[TIMESTAMP] #=FAIL, in=%s, err=%v", source, x), failStyle)
		}
	}()

	p := t.pulses.Pulse()

	var sb strings.Builder
	sb.WriteString(t.styler.Style("[TIMESTAMP]", stampStyle))
	sb.WriteString(t.styler.Style(" #=", keyStyle))
	fmt.Fprintf(&sb, "%04d", p.Number)
	sb.WriteString(t.styler.Style(", diff=", keyStyle))
	fmt.Fprintf(&sb, "%.6f", p.Change.Seconds())
	sb.WriteString(t.styler.Style(", at=", keyStyle))
	fmt.Fprintf(&sb, "%.6f", epochSeconds(p.Now))
	sb.WriteString(t.styler.Style("    \t(in "+source+")", sourceStyle))
	return sb.String()
}

// value is called with skip equal to the number of frames between it and the
// user's call site.
func (t *Tracer) value(skip int, argument any, opts []Option) error {
	cfg := newNoticeConfig(opts)

	s, err := NewSettings(t.host, t.console, cfg.Options)
	if err != nil {
		return err
	}
	if s.Disabled() {
		return nil
	}

	write := NewWriter(s)

	label, display, err := Resolve(toArg(argument), cfg.label, cfg.inspect)
	if err != nil {
		return err
	}

	loc := Locate(skip + 1)
	write(t.valueNotice(ValueNotice{
		Tag:     loc.Tag(),
		Source:  loc.Source(),
		Label:   label,
		Display: display,
	}))
	return nil
}

// ValueNotice is the resolved content of a value notice.
type ValueNotice struct {
	Tag     string
	Source  string
	Label   string
	Display string
}

func (t *Tracer) valueNotice(n ValueNotice) string {
	return t.styler.Style(n.Tag+" ", tagStyle) +
		t.styler.Style(n.Label+" ", labelStyle) +
		n.Display +
		t.styler.Style("    \t(in "+n.Source+")", sourceStyle)
}
