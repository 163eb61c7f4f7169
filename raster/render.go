package raster

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"pkt.systems/calpdf"
)

// RenderRequest contains inputs for raster rendering.
type RenderRequest struct {
	Writer io.Writer
	Year   int
	Config Config
}

// Render draws the calendar page of req.Year and writes it as PNG.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("raster render: writer is nil")
	}
	ctx, err := draw(req.Year, req.Config)
	if err != nil {
		return fmt.Errorf("raster render: %w", err)
	}
	defer func() { _ = ctx.Close() }()
	if err := ctx.EncodePNG(req.Writer); err != nil {
		return fmt.Errorf("raster render: %w", calpdf.NewRenderError(calpdf.StageOutput, err))
	}
	return nil
}

func draw(year int, reqCfg Config) (*gg.Context, error) {
	if err := calpdf.ValidateYear(year); err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, reqCfg)
	if cfg.Scale > MaxScale || math.IsNaN(cfg.Scale) {
		return nil, fmt.Errorf("scale %v out of range (0, %d]", cfg.Scale, MaxScale)
	}

	fonts, err := loadFonts()
	if err != nil {
		return nil, calpdf.NewRenderError(calpdf.StageSetup, err)
	}
	defer func() { _ = fonts.Close() }()

	width := int(math.Round(calpdf.PageWidth * cfg.Scale))
	height := int(math.Round(calpdf.PageHeight * cfg.Scale))
	ctx := gg.NewContext(width, height)
	ctx.ClearWithColor(gg.White)
	calpdf.Logger().Debug("raster page created", "year", year, "width", width, "height", height)

	c := newCanvas(ctx, fonts, cfg.Scale)
	var opts []calpdf.ComposeOption
	if cfg.Footer != [2]string{} {
		opts = append(opts, calpdf.WithFooter(cfg.Footer))
	}
	if err := calpdf.Compose(c, year, opts...); err != nil {
		_ = ctx.Close()
		return nil, err
	}
	if err := c.close(); err != nil {
		_ = ctx.Close()
		return nil, calpdf.NewRenderError(calpdf.StageOutput, err)
	}
	return ctx, nil
}
