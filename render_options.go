package calpdf

import "time"

// DefaultFooter holds the two captions printed at the bottom right of a page.
var DefaultFooter = [2]string{
	"Year view by calpdf, based on Solaris/CDE Calendar Manager",
	"calpdf by Brian Handscomb",
}

// ComposeOption configures Compose.
type ComposeOption func(*composeConfig)

type composeConfig struct {
	footer [2]string
}

// WithFooter replaces the footer captions.
func WithFooter(lines [2]string) ComposeOption {
	return func(cfg *composeConfig) {
		cfg.footer = lines
	}
}

// TextOption configures RenderText.
type TextOption func(*textConfig)

type textConfig struct {
	today   time.Time
	columns int
}

// WithToday highlights the given date when it falls in the rendered year.
func WithToday(t time.Time) TextOption {
	return func(cfg *textConfig) {
		cfg.today = t
	}
}

// WithColumns fixes the number of months per row (1-3). Zero derives it
// from the request width.
func WithColumns(n int) TextOption {
	return func(cfg *textConfig) {
		cfg.columns = n
	}
}
