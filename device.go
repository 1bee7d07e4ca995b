package here

import (
	"io"
	"os"
	"reflect"

	"github.com/peterbourgon/here/internal/hereutil"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Device is where a locally constructed log sink writes. It's a closed set:
// [PathDevice], [StreamDevice], and [NullDevice].
type Device interface {
	device()
}

// PathDevice is a log file path. Writes append to the file, which is rotated
// once it grows past [PathDeviceMaxSizeMB].
type PathDevice string

// StreamDevice is an already-open stream, e.g. os.Stderr.
type StreamDevice struct{ io.Writer }

type nullDevice struct{}

// NullDevice discards everything written to it.
var NullDevice Device = nullDevice{}

func (PathDevice) device()   {}
func (StreamDevice) device() {}
func (nullDevice) device()   {}

// PathDeviceMaxSizeMB is the size at which a PathDevice log file is rotated.
var PathDeviceMaxSizeMB = 100

// stdoutName is accepted as a Logdev alias for the console stream.
const stdoutName = "$stdout"

// parseDevice normalizes a raw Logdev option. A nil device means absent.
func parseDevice(raw any, console io.Writer) (Device, error) {
	switch x := raw.(type) {
	case nil:
		return nil, nil
	case Device:
		return x, nil
	case string:
		switch x {
		case os.DevNull:
			return NullDevice, nil
		case stdoutName:
			return StreamDevice{console}, nil
		default:
			return PathDevice(x), nil
		}
	case io.Writer:
		if isNil(x) {
			return nil, newConfigurationError("logdev", raw, ErrInvalidLogdevOption)
		}
		return StreamDevice{x}, nil
	default:
		return nil, newConfigurationError("logdev", raw, ErrInvalidLogdevOption)
	}
}

// pathLogs holds one log file writer per path for the life of the process.
// Each lumberjack.Logger owns a background goroutine once written to, so
// writers are never constructed per notice.
var pathLogs = hereutil.NewRegistry(func(p PathDevice) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename: string(p),
		MaxSize:  PathDeviceMaxSizeMB,
	}
})

// deviceWriter returns the writer for the device. An absent device writes to
// the console.
func deviceWriter(d Device, console io.Writer) io.Writer {
	switch x := d.(type) {
	case PathDevice:
		return pathLogs.Get(x)
	case StreamDevice:
		return x.Writer
	case nullDevice:
		return io.Discard
	default:
		return console
	}
}

// isConsole returns true if the device writes to the console stream.
func isConsole(d Device, console io.Writer) bool {
	sd, ok := d.(StreamDevice)
	if !ok {
		return false
	}
	return sameWriter(sd.Writer, console) || sameWriter(sd.Writer, os.Stdout)
}

func sameWriter(a, b io.Writer) bool {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
