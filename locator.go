package here

import (
	"strconv"
	"strings"

	"github.com/go-stack/stack"
)

const (
	anonymousClass  = "<anonymous class>"
	anonymousMethod = "<anonymous method>"
	unknownSource   = "<unknown>"
)

// Location identifies a call site: the enclosing type (or package) and method
// (or function), and the file and line.
//
// Methods are reported in an instance context, with the receiver's type name
// as the class. Plain functions are reported in a static context, with the
// package name as the class. Closures report the named function or method
// that encloses them.
type Location struct {
	Class    string
	Method   string
	Static   bool
	Function string // fully qualified, as reported by the runtime
	File     string
	Line     int
}

// Locate returns the location of a caller on the current goroutine's stack.
// Depth 0 is the caller of Locate, depth 1 is its caller, and so on. Locate
// never fails: frames that can't be read produce placeholder names.
func Locate(depth int) Location {
	fr := stack.Caller(depth + 1).Frame()
	if fr.Function == "" {
		return Location{
			Class:  anonymousClass,
			Method: anonymousMethod,
		}
	}

	class, method, static := parseFunction(fr.Function)
	if class == "" {
		class = anonymousClass
	}
	if method == "" {
		method = anonymousMethod
	}

	return Location{
		Class:    class,
		Method:   method,
		Static:   static,
		Function: fr.Function,
		File:     fr.File,
		Line:     fr.Line,
	}
}

// Tag renders the location as "[Class#Method]" in an instance context, or
// "[Class.Method]" in a static context.
func (loc Location) Tag() string {
	delim := "#"
	if loc.Static {
		delim = "."
	}
	return "[" + loc.Class + delim + loc.Method + "]"
}

// Source renders the location as "file:line:in 'method'".
func (loc Location) Source() string {
	if loc.File == "" {
		return unknownSource
	}
	return loc.File + ":" + strconv.Itoa(loc.Line) + ":in '" + loc.Method + "'"
}

// String implements fmt.Stringer.
func (loc Location) String() string {
	return loc.Tag() + " " + loc.Source()
}

// parseFunction splits a fully qualified runtime function name, e.g.
// "github.com/a/b.(*T).M.func1", into class, method, and static context.
func parseFunction(function string) (class, method string, static bool) {
	name := function
	if i := strings.LastIndex(name, "/"); i != -1 {
		name = name[i+1:]
	}

	dot := strings.Index(name, ".")
	if dot == -1 {
		return "", name, true
	}

	pkg, rest := name[:dot], stripTypeParams(name[dot+1:])

	// Pointer receivers, and generic value receivers, are parenthesized.
	if strings.HasPrefix(rest, "(") {
		end := strings.Index(rest, ")")
		if end == -1 {
			return pkg, "", true
		}
		recv := strings.TrimPrefix(rest[1:end], "*")
		segs := strings.Split(strings.TrimPrefix(rest[end+1:], "."), ".")
		return recv, namedSegment(segs[0]), false
	}

	segs := strings.Split(rest, ".")
	switch {
	case segs[0] == "glob":
		return pkg, "", true // package-level func literal
	case len(segs) >= 2 && !isClosureSegment(segs[1]):
		return segs[0], namedSegment(segs[1]), false // value receiver
	default:
		return pkg, namedSegment(segs[0]), true
	}
}

func stripTypeParams(s string) string {
	return strings.ReplaceAll(s, "[...]", "")
}

func namedSegment(s string) string {
	if isClosureSegment(s) {
		return ""
	}
	return s
}

// isClosureSegment returns true for compiler-generated name segments like
// "func1", "gowrap2", "deferwrap1", or the "2" in "func1.2".
func isClosureSegment(s string) bool {
	if s == "" {
		return true
	}
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok && isDigits(rest) {
			return true
		}
	}
	return isDigits(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
