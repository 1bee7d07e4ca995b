package here

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	unknownLabel = "[unknown value]:"
	nilDisplay   = "-nil-"
)

// Arg is the argument of a value notice. It's a closed set: a [Literal]
// value, or a reference built with [Ref] or [Scope.Ref]. References carry a
// name, which becomes the default label, and are evaluated only when the
// notice is actually emitted.
type Arg interface {
	arg()
}

type literal struct {
	v any
}

func (literal) arg() {}

// Literal wraps a concrete value. Literals have no inferred label.
func Literal(v any) Arg {
	return literal{v: v}
}

type reference struct {
	name string
	eval func() (any, error)
}

func (reference) arg() {}

// Ref builds a reference to a value visible to the caller, typically a local
// variable captured by the closure. The name is used as the default label.
//
//	here.Value(here.Ref("name", func() any { return name }))
func Ref(name string, get func() any) Arg {
	return reference{
		name: name,
		eval: func() (any, error) {
			if get == nil {
				return nil, errors.Wrap(ErrUnresolvedReference, "nil accessor")
			}
			return get(), nil
		},
	}
}

// Scope is a set of named bindings, against which references can be
// resolved by name.
type Scope map[string]any

// Ref returns a reference to the named binding in the scope. If the binding
// doesn't exist when the notice is emitted, the notice fails with a
// [ResolutionError]. Bindings which are func() any are called to produce the
// value.
func (s Scope) Ref(name string) Arg {
	return reference{
		name: name,
		eval: func() (any, error) {
			v, ok := s[name]
			if !ok {
				return nil, errors.Wrap(ErrUnresolvedReference, "no such binding")
			}
			if f, ok := v.(func() any); ok {
				return f(), nil
			}
			return v, nil
		},
	}
}

// nilRef is used in place of a nil argument, so it still gets a label.
var nilRef = reference{
	name: "nil",
	eval: func() (any, error) { return nil, nil },
}

// toArg converts a facade argument to an Arg.
func toArg(argument any) Arg {
	switch x := argument.(type) {
	case nil:
		return nilRef
	case Arg:
		return x
	default:
		return Literal(x)
	}
}

// Resolve produces the label and display string of a value notice.
//
// An explicit label, if it's a string, is trimmed and suffixed with ":" if it
// doesn't already end with one. Otherwise, references are labeled with their
// name and a ":", and literals with "[unknown value]:".
//
// With inspect, the value is rendered in Go syntax (%#v) with one layer of
// surrounding quotes removed, so plain strings print unquoted. Without it, the
// value's default format (%v) is used. Nil, including typed nil pointers, maps,
// slices, funcs, and channels, renders as "-nil-".
//
// A reference that can't be evaluated produces a [ResolutionError].
func Resolve(a Arg, label any, inspect bool) (labelText, display string, err error) {
	labelText = resolveLabel(a, label)

	var v any
	switch x := a.(type) {
	case literal:
		v = x.v
	case reference:
		if v, err = x.eval(); err != nil {
			return "", "", &ResolutionError{Name: x.name, Err: err}
		}
	case nil:
		return "", "", &ResolutionError{Name: "", Err: errors.Wrap(ErrUnresolvedReference, "nil argument")}
	}

	return labelText, render(v, inspect), nil
}

func resolveLabel(a Arg, label any) string {
	if s, ok := label.(string); ok {
		s = strings.TrimSpace(s)
		if !strings.HasSuffix(s, ":") {
			s += ":"
		}
		return s
	}

	if ref, ok := a.(reference); ok {
		return ref.name + ":"
	}

	return unknownLabel
}

func render(v any, inspect bool) string {
	if isNil(v) {
		return nilDisplay
	}
	if inspect {
		return StripOuterQuotes(fmt.Sprintf("%#v", v))
	}
	return fmt.Sprintf("%v", v)
}

// StripOuterQuotes removes one layer of double quotes surrounding s. If s
// isn't quoted at both ends, it's returned unchanged.
func StripOuterQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
