package calpdf

import (
	"sort"
	"strings"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiDim       = "\x1b[2m"
	ansiUnderline = "\x1b[4m"
	ansiReverse   = "\x1b[7m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Render wraps s in the style, resetting attributes afterwards.
func (s Style) Render(text string) string {
	if s.Prefix == "" {
		return text
	}
	return s.Prefix + text + ansiReset
}

// Styles groups the styles of the text calendar.
type Styles struct {
	Title     Style
	MonthName Style
	Weekday   Style
	Day       Style
	Weekend   Style
	Today     Style
}

// Theme provides named styles for the text calendar.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

func fg256(n string) string { return "\x1b[38;5;" + n + "m" }
func bg256(n string) string { return "\x1b[48;5;" + n + "m" }

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Title:     style(ansiBold),
		MonthName: style(ansiBold, bg256("254"), fg256("232")),
		Weekday:   style(ansiDim),
		Today:     style(ansiReverse),
	}},
	"boring": theme{name: "boring"},
	"underline": theme{name: "underline", styles: Styles{
		Title:     style(ansiBold, ansiUnderline),
		MonthName: style(ansiUnderline),
		Today:     style(ansiBold, ansiUnderline),
	}},
	"solarized-dark": theme{name: "solarized-dark", styles: Styles{
		Title:     style(ansiBold, fg256("136")),
		MonthName: style(ansiBold, bg256("235"), fg256("33")),
		Weekday:   style(fg256("245")),
		Day:       style(fg256("250")),
		Weekend:   style(fg256("166")),
		Today:     style(ansiReverse, fg256("37")),
	}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
