package raster

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"pkt.systems/calpdf"
)

// The Go fonts stand in for Times-Bold and Courier. Metrics differ from the
// PDF core fonts, so centring is computed with the raster metrics.
var fontData = map[calpdf.Font][]byte{
	calpdf.FontBody: gobold.TTF,
	calpdf.FontGrid: gomono.TTF,
}

type faceKey struct {
	font calpdf.Font
	size float64
}

type fontSet struct {
	sources map[calpdf.Font]*text.FontSource
	faces   map[faceKey]text.Face
}

func loadFonts() (*fontSet, error) {
	fs := &fontSet{
		sources: make(map[calpdf.Font]*text.FontSource, len(fontData)),
		faces:   make(map[faceKey]text.Face),
	}
	for font, data := range fontData {
		src, err := text.NewFontSource(data)
		if err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("load %s font: %w", font, err)
		}
		fs.sources[font] = src
	}
	return fs, nil
}

// face returns the face of font at size pixels, creating it once.
func (fs *fontSet) face(font calpdf.Font, size float64) (text.Face, error) {
	key := faceKey{font: font, size: size}
	if f, ok := fs.faces[key]; ok {
		return f, nil
	}
	src, ok := fs.sources[font]
	if !ok {
		return nil, fmt.Errorf("unknown font %s", font)
	}
	f := src.Face(size)
	fs.faces[key] = f
	return f, nil
}

func (fs *fontSet) Close() error {
	var first error
	for font, src := range fs.sources {
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
		delete(fs.sources, font)
	}
	clear(fs.faces)
	return first
}
