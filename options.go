package here

// Option configures a single notice.
type Option func(*noticeConfig)

type noticeConfig struct {
	Options
	label   any
	inspect bool
}

func newNoticeConfig(opts []Option) *noticeConfig {
	cfg := &noticeConfig{
		Options: DefaultOptions(),
		inspect: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Production forces the notice on even when the host is in production. The
// value is interpreted via [Cast].
func Production(v any) Option {
	return func(cfg *noticeConfig) { cfg.Production = v }
}

// Log forces writing the notice to the log sink on or off. The value is
// interpreted via [Cast]. By default, notices are logged only when a logger is
// given or console output is off.
func Log(v any) Option {
	return func(cfg *noticeConfig) { cfg.Log = v }
}

// Logger sets the log sink, overriding any host sink. See [Options].
func Logger(v any) Option {
	return func(cfg *noticeConfig) { cfg.Logger = v }
}

// Logdev sets the device written by the default log sink. It's ignored if a
// logger is given, or if the host provides a sink. See [Options].
func Logdev(v any) Option {
	return func(cfg *noticeConfig) { cfg.Logdev = v }
}

// Out turns console output on or off. It's on by default. See [Options].
func Out(v any) Option {
	return func(cfg *noticeConfig) { cfg.Out = v }
}

// Label sets an explicit label for a value notice. Non-string labels are
// ignored.
func Label(v any) Option {
	return func(cfg *noticeConfig) { cfg.label = v }
}

// Inspect selects the Go-syntax representation (true, the default) or the
// default format (false) for the value of a value notice.
func Inspect(inspect bool) Option {
	return func(cfg *noticeConfig) { cfg.inspect = inspect }
}
