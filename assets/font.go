package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg/text"
)

// Font errors.
var (
	// ErrEmptyText is returned when there is nothing to rasterize.
	ErrEmptyText = errors.New("assets: empty text")
)

// Font is a TrueType/OpenType font opened at a fixed point size.
// It satisfies the controller's Font interface.
type Font struct {
	source *text.FontSource
	face   text.Face
}

// OpenFont opens a TTF or OTF file at the given point size.
func OpenFont(path string, points float64) (*Font, error) {
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open font %s: %w", path, err)
	}
	return &Font{
		source: source,
		face:   source.Face(points),
	}, nil
}

// Name returns the font's name as recorded in the font file.
func (f *Font) Name() string { return f.source.Name() }

// Render rasterizes s in col onto a surface sized to fit the text.
// The surface is a plain CPU image; the caller uploads it as a texture
// and lets it be collected.
func (f *Font) Render(s string, col color.Color) (image.Image, error) {
	w, h := text.Measure(s, f.face)
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyText
	}

	surface := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h))))

	// Draw positions text at the baseline, so offset by the ascent to
	// keep the full glyph extent inside the surface.
	ascent := f.face.Metrics().Ascent
	text.Draw(surface, s, f.face, 0, ascent, col)

	return surface, nil
}

// Close releases the font source.
func (f *Font) Close() error {
	return f.source.Close()
}
