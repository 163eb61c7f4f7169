package raster

// Config holds raster preview settings.
type Config struct {
	// Scale is the number of pixels per point. The default of 1 renders a
	// 595 x 842 image.
	Scale float64
	// Footer replaces the two captions at the bottom of the page when set.
	Footer [2]string
}

// MaxScale bounds Scale to keep the image size reasonable.
const MaxScale = 8

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{Scale: 1}
}

func applyConfig(dst *Config, src Config) {
	if src.Scale > 0 {
		dst.Scale = src.Scale
	}
	if src.Footer != [2]string{} {
		dst.Footer = src.Footer
	}
}
