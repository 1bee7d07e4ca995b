package here

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidLoggerOption is returned when the Logger option is neither
	// absent nor a recognized logger. See [NewSettings].
	ErrInvalidLoggerOption = errors.New("invalid logger option")

	// ErrInvalidLogdevOption is returned when the Logdev option is not a path,
	// a stream, the null device, or absent.
	ErrInvalidLogdevOption = errors.New("invalid logdev option")

	// ErrInvalidOutOption is returned when the Out option can't be interpreted
	// as a console output toggle.
	ErrInvalidOutOption = errors.New("invalid out option")

	// ErrUnresolvedReference is returned when a reference argument can't be
	// evaluated.
	ErrUnresolvedReference = errors.New("unresolved reference")
)

// ConfigurationError describes a malformed option given to a notice. Use
// errors.Is with one of the ErrInvalid sentinels to discriminate the kind.
type ConfigurationError struct {
	Option string
	Value  any
	Err    error
}

func newConfigurationError(option string, value any, err error) *ConfigurationError {
	return &ConfigurationError{
		Option: option,
		Value:  value,
		Err:    errors.WithStack(err),
	}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s (%T)", e.Option, errors.Cause(e.Err), e.Value)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ResolutionError describes a reference argument that couldn't be evaluated.
// It usually means the reference was built against the wrong scope.
type ResolutionError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}
