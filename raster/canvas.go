package raster

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"pkt.systems/calpdf"
)

var (
	errNotInText  = errors.New("text operation outside BeginText/EndText")
	errNestedText = errors.New("BeginText inside a text object")
	errNoFont     = errors.New("no font selected")
	errUnbalanced = errors.New("RestoreState without SaveState")
)

// canvas draws a page onto a gg context. Coordinates arrive in PDF user
// space and are flipped and scaled to device pixels here; gg draws text
// without applying its own transform.
type canvas struct {
	ctx   *gg.Context
	fonts *fontSet
	scale float64
	err   error

	inText bool
	face   text.Face
	fill   float64
	saved  []float64
	matrix calpdf.Matrix
}

var _ calpdf.Canvas = (*canvas)(nil)

func newCanvas(ctx *gg.Context, fonts *fontSet, scale float64) *canvas {
	return &canvas{
		ctx:    ctx,
		fonts:  fonts,
		scale:  scale,
		matrix: calpdf.Matrix{1, 0, 0, 1, 0, 0},
	}
}

func (c *canvas) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *canvas) Err() error { return c.err }

// device maps a point in PDF user space to pixels.
func (c *canvas) device(x, y float64) (float64, float64) {
	return x * c.scale, calpdf.Invert(y) * c.scale
}

func (c *canvas) SetFillGray(g float64) {
	if c.err != nil {
		return
	}
	c.fill = math.Max(0, math.Min(1, g))
}

func (c *canvas) FillRect(x, y, w, h float64) {
	if c.err != nil {
		return
	}
	// (x, y) is the lower left corner
	dx, dy := c.device(x, y+h)
	c.ctx.SetRGB(c.fill, c.fill, c.fill)
	c.ctx.DrawRectangle(dx, dy, w*c.scale, h*c.scale)
	if err := c.ctx.Fill(); err != nil {
		c.fail(fmt.Errorf("fill rectangle: %w", err))
	}
}

func (c *canvas) SaveState() {
	if c.err != nil {
		return
	}
	c.saved = append(c.saved, c.fill)
	c.ctx.Push()
}

func (c *canvas) RestoreState() {
	if c.err != nil {
		return
	}
	if len(c.saved) == 0 {
		c.fail(errUnbalanced)
		return
	}
	c.ctx.Pop()
	c.fill = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

func (c *canvas) BeginText() {
	if c.err != nil {
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
	if c.err != nil {
		return
	}
	if !c.inText {
		c.fail(errNotInText)
		return
	}
	c.inText = false
}

func (c *canvas) SetFont(font calpdf.Font, size float64) {
	if c.err != nil {
		return
	}
	if size <= 0 {
		c.fail(fmt.Errorf("invalid font size %v", size))
		return
	}
	face, err := c.fonts.face(font, size*c.scale)
	if err != nil {
		c.fail(err)
		return
	}
	c.face = face
}

// TextWidth returns the advance of s in points.
func (c *canvas) TextWidth(s string) float64 {
	if c.err != nil || c.face == nil {
		return 0
	}
	return c.face.Advance(s) / c.scale
}

func (c *canvas) TextOut(x, y float64, s string) {
	if !c.textReady() {
		return
	}
	dx, dy := c.device(x, y)
	c.ctx.SetRGB(0, 0, 0)
	c.ctx.SetFont(c.face)
	c.ctx.DrawString(s, dx, dy)
}

func (c *canvas) SetTextMatrix(m calpdf.Matrix) {
	if !c.textReady() {
		return
	}
	if m[1] != 0 || m[2] != 0 || m[0] <= 0 || m[3] <= 0 {
		c.fail(fmt.Errorf("unsupported text matrix %v", m))
		return
	}
	c.matrix = m
}

// ShowText draws s at the origin of the text matrix. Scaled text is drawn
// once at its natural size and stretched onto the page as an image.
func (c *canvas) ShowText(s string) {
	if !c.textReady() || s == "" {
		return
	}
	m := c.matrix
	if m[0] == 1 && m[3] == 1 {
		c.TextOut(m[4], m[5], s)
		return
	}
	metrics := c.face.Metrics()
	w := math.Ceil(c.face.Advance(s))
	h := math.Ceil(metrics.Ascent + metrics.Descent)
	if w <= 0 || h <= 0 {
		return
	}
	scratch := gg.NewContext(int(w), int(h))
	defer func() { _ = scratch.Close() }()
	scratch.SetRGB(0, 0, 0)
	scratch.SetFont(c.face)
	scratch.DrawString(s, 0, metrics.Ascent)

	dx, dy := c.device(m[4], m[5])
	c.ctx.DrawImageEx(gg.ImageBufFromImage(scratch.Image()), gg.DrawImageOptions{
		X:             dx,
		Y:             dy - metrics.Ascent*m[3],
		DstWidth:      w * m[0],
		DstHeight:     h * m[3],
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

func (c *canvas) textReady() bool {
	if c.err != nil {
		return false
	}
	if !c.inText {
		c.fail(errNotInText)
		return false
	}
	if c.face == nil {
		c.fail(errNoFont)
		return false
	}
	return true
}

func (c *canvas) close() error {
	if c.err != nil {
		return c.err
	}
	if c.inText {
		c.fail(errors.New("text object left open"))
	} else if len(c.saved) > 0 {
		c.fail(fmt.Errorf("%d graphics states left open", len(c.saved)))
	}
	return c.err
}
