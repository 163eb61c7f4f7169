package pdf

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
	"pkt.systems/calpdf"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Writer io.Writer
	Year   int
	Config Config
}

// Render writes the one-page calendar of req.Year as a PDF document. Nothing
// is written to req.Writer unless the whole page was composed.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	if err := calpdf.ValidateYear(req.Year); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if cfg.Title == "" {
		cfg.Title = "Calendar " + strconv.Itoa(req.Year)
	}
	log := calpdf.Logger()

	doc := newDocument(cfg)
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", calpdf.NewRenderError(calpdf.StageSetup, err))
	}
	log.Debug("pdf document created", "year", req.Year, "compressed", !cfg.Uncompressed)

	c := newCanvas(doc)
	var opts []calpdf.ComposeOption
	if cfg.Footer != [2]string{} {
		opts = append(opts, calpdf.WithFooter(cfg.Footer))
	}
	if err := calpdf.Compose(c, req.Year, opts...); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := c.close(); err != nil {
		return fmt.Errorf("pdf render: %w", calpdf.NewRenderError(calpdf.StageOutput, err))
	}
	if err := doc.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: %w", calpdf.NewRenderError(calpdf.StageOutput, err))
	}
	log.Debug("pdf document written", "year", req.Year)
	return nil
}

func newDocument(cfg Config) *fpdf.Fpdf {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: calpdf.PageWidth, Ht: calpdf.PageHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCompression(!cfg.Uncompressed)
	doc.SetCreator(cfg.Creator, false)
	doc.SetTitle(cfg.Title, false)
	if !cfg.CreationDate.IsZero() {
		doc.SetCreationDate(cfg.CreationDate)
		doc.SetModificationDate(cfg.CreationDate)
	}
	doc.AddPage()
	return doc
}
