package pdf

import (
	"math"

	"pkt.systems/calpdf"
)

type pdfStyle struct {
	fontFamily string
	fontStyle  string
}

// Both faces are PDF core fonts, so nothing is embedded.
var fontStyles = map[calpdf.Font]pdfStyle{
	calpdf.FontBody: {fontFamily: "Times", fontStyle: "B"},
	calpdf.FontGrid: {fontFamily: "Courier", fontStyle: ""},
}

func styleForFont(font calpdf.Font) (pdfStyle, bool) {
	s, ok := fontStyles[font]
	return s, ok
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Times", "Symbol", "ZapfDingbats":
		return true
	default:
		return false
	}
}

// grayLevel converts a gray value in [0, 1] to the 0-255 component fpdf
// expects. fpdf writes it back with three decimals, so 0.95 survives as
// 0.949.
func grayLevel(g float64) int {
	switch {
	case math.IsNaN(g) || g <= 0:
		return 0
	case g >= 1:
		return 255
	}
	return int(math.Round(g * 255))
}
