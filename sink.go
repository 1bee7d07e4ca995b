package here

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Sink durably records notices, typically by forwarding them to a logger owned
// by the host program. Messages are provided as a fmt.Stringer so that sinks
// which won't record a message at debug level never need to render it.
//
// Implementations are expected to be safe for concurrent use.
type Sink interface {
	Debug(msg fmt.Stringer)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(msg fmt.Stringer)

// Debug implements Sink.
func (f SinkFunc) Debug(msg fmt.Stringer) { f(msg) }

// LoggerSink writes every message to a standard library logger.
func LoggerSink(l *log.Logger) Sink {
	return SinkFunc(func(msg fmt.Stringer) {
		l.Print(msg.String())
	})
}

// SlogSink writes messages to the slog logger at debug level.
func SlogSink(l *slog.Logger) Sink {
	return SinkFunc(func(msg fmt.Stringer) {
		ctx := context.Background()
		if !l.Enabled(ctx, slog.LevelDebug) {
			return
		}
		l.DebugContext(ctx, msg.String())
	})
}

// HCLogSink writes messages to the hclog logger at debug level.
func HCLogSink(l hclog.Logger) Sink {
	return SinkFunc(func(msg fmt.Stringer) {
		if !l.IsDebug() {
			return
		}
		l.Debug(msg.String())
	})
}

// parseLogger normalizes a raw Logger option. A nil sink means absent.
func parseLogger(raw any) (Sink, error) {
	if raw == nil {
		return nil, nil
	}

	if isNil(raw) {
		return nil, newConfigurationError("logger", raw, ErrInvalidLoggerOption)
	}

	switch x := raw.(type) {
	case Sink:
		return x, nil
	case hclog.Logger:
		return HCLogSink(x), nil
	case *slog.Logger:
		return SlogSink(x), nil
	case *log.Logger:
		return LoggerSink(x), nil
	default:
		return nil, newConfigurationError("logger", raw, ErrInvalidLoggerOption)
	}
}

// deviceMtx serializes writes by every device sink, which are constructed per
// notice but may share a file or stream.
var deviceMtx sync.Mutex

// deviceSink is the sink built when logging is wanted but neither the caller
// nor the host provided one. It writes bare records, without any severity,
// timestamp, or program name decoration.
type deviceSink struct {
	device  Device
	console io.Writer
}

func newDeviceSink(d Device, console io.Writer) *deviceSink {
	return &deviceSink{
		device:  d,
		console: console,
	}
}

// Debug implements Sink.
func (s *deviceSink) Debug(msg fmt.Stringer) {
	deviceMtx.Lock()
	defer deviceMtx.Unlock()

	io.WriteString(deviceWriter(s.device, s.console), formatRecord(msg.String()))
}
