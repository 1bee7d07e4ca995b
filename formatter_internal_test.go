package here

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	t.Run("string", func(t *testing.T) {
		assertEqual(t, "test\n", formatRecord("test"))
	})

	t.Run("integer", func(t *testing.T) {
		assertEqual(t, "55\n", formatRecord(55))
	})

	t.Run("error without stack", func(t *testing.T) {
		err := stderrors.New("test@message")
		assertEqual(t, "test@message (*errors.errorString)\n", formatRecord(err))
	})

	t.Run("error with stack", func(t *testing.T) {
		err := errors.New("test@message")
		have := formatRecord(err)
		if want := "test@message (*errors.fundamental)\n"; !strings.HasPrefix(have, want) {
			t.Fatalf("want prefix %q, have %q", want, have)
		}
		if want := "formatter_internal_test.go"; !strings.Contains(have, want) {
			t.Errorf("want %q in backtrace, have %q", want, have)
		}
		if !strings.HasSuffix(have, "\n") || strings.HasSuffix(have, "\n\n") {
			t.Errorf("want single trailing newline, have %q", have)
		}
	})

	t.Run("wrapped error with stack", func(t *testing.T) {
		err := stderrors.Join(errors.WithStack(stderrors.New("inner")))
		have := formatRecord(err)
		if want := "inner (*errors.joinError)\n"; !strings.HasPrefix(have, want) {
			t.Fatalf("want prefix %q, have %q", want, have)
		}
	})
}
