package calpdf

// Font selects one of the two typefaces a calendar page uses.
type Font uint8

const (
	// FontBody is the bold serif face used for the title, month names, day
	// numbers and footer (Times-Bold in PDF output).
	FontBody Font = iota
	// FontGrid is the fixed-width face used for the weekday letters
	// (Courier in PDF output).
	FontGrid
)

func (f Font) String() string {
	switch f {
	case FontBody:
		return "body"
	case FontGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// Matrix is a text matrix [a b c d e f] as defined by the PDF Tm operator.
type Matrix [6]float64

// Canvas is the drawing surface a page is composed onto. All coordinates are
// in PDF user space: points, origin at the bottom left corner of the page.
//
// Implementations keep the first error that occurs and turn every later call
// into a no-op; Err reports that error.
type Canvas interface {
	SetFillGray(g float64)
	FillRect(x, y, w, h float64)
	SaveState()
	RestoreState()

	// BeginText and EndText bracket all text operations.
	BeginText()
	EndText()
	SetFont(font Font, size float64)
	TextWidth(s string) float64
	TextOut(x, y float64, s string)
	SetTextMatrix(m Matrix)
	ShowText(s string)

	Err() error
}
