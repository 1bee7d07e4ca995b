package here

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// recordSeparator terminates every record written by a device sink.
const recordSeparator = "\n"

// formatRecord renders a single log record. Strings are written verbatim,
// errors as "message (type)" followed by their stack trace when one was
// captured, and anything else via its Go-syntax representation.
func formatRecord(msg any) string {
	switch x := msg.(type) {
	case string:
		return x + recordSeparator
	case error:
		return formatErrorRecord(x) + recordSeparator
	default:
		return fmt.Sprintf("%#v", x) + recordSeparator
	}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func formatErrorRecord(err error) string {
	result := fmt.Sprintf("%s (%T)", err.Error(), err)

	var st stackTracer
	if !errors.As(err, &st) {
		return result
	}

	trace := strings.TrimPrefix(fmt.Sprintf("%+v", st.StackTrace()), "\n")
	if trace == "" {
		return result
	}

	return result + "\n" + trace
}
