package here

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color is a terminal color.
type Color uint8

// Supported colors.
const (
	NoColor Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	HiBlack
	HiGreen
)

// Style describes how a span of notice text is rendered.
type Style struct {
	Foreground Color
	Background Color
}

// Styler renders text in a style.
type Styler interface {
	Style(text string, s Style) string
}

// Styles used by notices.
var (
	stampStyle  = Style{Foreground: Black, Background: HiBlack}
	keyStyle    = Style{Foreground: Yellow}
	sourceStyle = Style{Foreground: HiBlack}
	failStyle   = Style{Foreground: Red}
	tagStyle    = Style{Foreground: Green}
	labelStyle  = Style{Foreground: HiGreen}
)

// PlainStyler renders text without any styling.
type PlainStyler struct{}

// Style implements Styler.
func (PlainStyler) Style(text string, _ Style) string { return text }

// ColorStyler renders text with ANSI escape sequences, regardless of where
// the text is ultimately written.
type ColorStyler struct{}

// Style implements Styler.
func (ColorStyler) Style(text string, s Style) string {
	var attrs []color.Attribute
	if a, ok := foregrounds[s.Foreground]; ok {
		attrs = append(attrs, a)
	}
	if a, ok := backgrounds[s.Background]; ok {
		attrs = append(attrs, a)
	}
	if len(attrs) <= 0 {
		return text
	}

	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// AutoStyler returns a ColorStyler if w is a terminal, and a PlainStyler
// otherwise. The NO_COLOR environment variable forces a PlainStyler.
func AutoStyler(w io.Writer) Styler {
	if os.Getenv("NO_COLOR") != "" {
		return PlainStyler{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return PlainStyler{}
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return PlainStyler{}
	}
	return ColorStyler{}
}

var foregrounds = map[Color]color.Attribute{
	Black:   color.FgBlack,
	Red:     color.FgRed,
	Green:   color.FgGreen,
	Yellow:  color.FgYellow,
	Blue:    color.FgBlue,
	Magenta: color.FgMagenta,
	Cyan:    color.FgCyan,
	White:   color.FgWhite,
	HiBlack: color.FgHiBlack,
	HiGreen: color.FgHiGreen,
}

var backgrounds = map[Color]color.Attribute{
	Black:   color.BgBlack,
	Red:     color.BgRed,
	Green:   color.BgGreen,
	Yellow:  color.BgYellow,
	Blue:    color.BgBlue,
	Magenta: color.BgMagenta,
	Cyan:    color.BgCyan,
	White:   color.BgWhite,
	HiBlack: color.BgHiBlack,
	HiGreen: color.BgHiGreen,
}
