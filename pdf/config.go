package pdf

import "time"

// Config holds PDF document settings. The page layout itself is fixed.
type Config struct {
	// Creator is written to the document information dictionary.
	Creator string
	// Title defaults to "Calendar <year>".
	Title string
	// Uncompressed disables zlib compression of content streams.
	Uncompressed bool
	// CreationDate pins the document dates for reproducible output. The
	// zero value uses the current time.
	CreationDate time.Time
	// Footer replaces the two captions at the bottom of the page when set.
	Footer [2]string
}

// DefaultCreator is the creator recorded in every document.
const DefaultCreator = "calpdf"

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		Creator: DefaultCreator,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.Creator != "" {
		dst.Creator = src.Creator
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Uncompressed {
		dst.Uncompressed = src.Uncompressed
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
	if src.Footer != [2]string{} {
		dst.Footer = src.Footer
	}
}
