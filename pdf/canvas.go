package pdf

import (
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
	"pkt.systems/calpdf"
)

var (
	errNotInText   = errors.New("text operation outside BeginText/EndText")
	errNestedText  = errors.New("BeginText inside a text object")
	errStateInText = errors.New("graphics state change inside a text object")
	errNoFont      = errors.New("no font selected")
	errUnbalanced  = errors.New("RestoreState without SaveState")
)

// canvas draws onto a single fpdf page. fpdf places text and rectangles
// from the top left corner of the page, so every PDF user space coordinate
// is inverted once more on the way in.
type canvas struct {
	doc *fpdf.Fpdf
	err error

	inText  bool
	hasFont bool
	fill    int
	saved   []int
	matrix  calpdf.Matrix
}

var _ calpdf.Canvas = (*canvas)(nil)

func newCanvas(doc *fpdf.Fpdf) *canvas {
	return &canvas{doc: doc, matrix: calpdf.Matrix{1, 0, 0, 1, 0, 0}}
}

func (c *canvas) failed() bool {
	if c.err != nil {
		return true
	}
	if err := c.doc.Error(); err != nil {
		c.err = err
		return true
	}
	return false
}

func (c *canvas) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *canvas) Err() error {
	c.failed()
	return c.err
}

func (c *canvas) SetFillGray(g float64) {
	if c.failed() {
		return
	}
	if c.inText {
		c.fail(errStateInText)
		return
	}
	c.fill = grayLevel(g)
	c.doc.SetFillColor(c.fill, c.fill, c.fill)
}

func (c *canvas) FillRect(x, y, w, h float64) {
	if c.failed() {
		return
	}
	if c.inText {
		c.fail(errStateInText)
		return
	}
	c.doc.Rect(x, calpdf.Invert(y+h), w, h, "F")
}

func (c *canvas) SaveState() {
	if c.failed() {
		return
	}
	if c.inText {
		c.fail(errStateInText)
		return
	}
	c.saved = append(c.saved, c.fill)
	c.doc.TransformBegin()
}

func (c *canvas) RestoreState() {
	if c.failed() {
		return
	}
	if c.inText {
		c.fail(errStateInText)
		return
	}
	if len(c.saved) == 0 {
		c.fail(errUnbalanced)
		return
	}
	c.doc.TransformEnd()
	fill := c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
	if fill != c.fill {
		// Q already restored the fill colour; keep fpdf's copy in sync.
		c.fill = fill
		c.doc.SetFillColor(fill, fill, fill)
	}
}

func (c *canvas) BeginText() {
	if c.failed() {
		return
	}
	if c.inText {
		c.fail(errNestedText)
		return
	}
	c.inText = true
	c.matrix = calpdf.Matrix{1, 0, 0, 1, 0, 0}
}

func (c *canvas) EndText() {
	if c.failed() {
		return
	}
	if !c.inText {
		c.fail(errNotInText)
		return
	}
	c.inText = false
}

func (c *canvas) SetFont(font calpdf.Font, size float64) {
	if c.failed() {
		return
	}
	s, ok := styleForFont(font)
	if !ok {
		c.fail(fmt.Errorf("unknown font %s", font))
		return
	}
	if size <= 0 {
		c.fail(fmt.Errorf("invalid font size %v", size))
		return
	}
	c.doc.SetFont(s.fontFamily, s.fontStyle, size)
	c.hasFont = true
}

func (c *canvas) TextWidth(s string) float64 {
	if c.failed() || !c.hasFont {
		return 0
	}
	return c.doc.GetStringWidth(s)
}

func (c *canvas) TextOut(x, y float64, s string) {
	if !c.textReady() {
		return
	}
	c.doc.Text(x, calpdf.Invert(y), s)
}

func (c *canvas) SetTextMatrix(m calpdf.Matrix) {
	if !c.textReady() {
		return
	}
	c.matrix = m
}

// ShowText draws s at the origin of the current text matrix. fpdf has no
// Tm operator, so the matrix is applied as a transformation around a text
// placed at the user space origin.
func (c *canvas) ShowText(s string) {
	if !c.textReady() {
		return
	}
	m := c.matrix
	c.doc.TransformBegin()
	c.doc.Transform(fpdf.TransformMatrix{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]})
	c.doc.Text(0, calpdf.PageHeight, s)
	c.doc.TransformEnd()
}

func (c *canvas) textReady() bool {
	if c.failed() {
		return false
	}
	if !c.inText {
		c.fail(errNotInText)
		return false
	}
	if !c.hasFont {
		c.fail(errNoFont)
		return false
	}
	return true
}

// close reports a state left open at the end of the page.
func (c *canvas) close() error {
	if c.failed() {
		return c.err
	}
	if c.inText {
		c.fail(errors.New("text object left open"))
	} else if len(c.saved) > 0 {
		c.fail(fmt.Errorf("%d graphics states left open", len(c.saved)))
	}
	return c.err
}
