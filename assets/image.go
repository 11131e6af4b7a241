package assets

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	// Raster formats decodable through image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image errors.
var (
	// ErrEmptyViewBox is returned for an SVG with a degenerate view box.
	ErrEmptyViewBox = errors.New("assets: svg has an empty view box")
)

// DecodeImage decodes an image file into a CPU surface. SVG files are
// rasterized at their view-box size; raster files go through
// image.Decode with PNG, JPEG, GIF, BMP, TIFF and WebP registered.
func DecodeImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("assets: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return decodeSVG(f)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// decodeSVG parses an SVG document and rasterizes it to an RGBA surface
// at the document's view-box size.
func decodeSVG(r io.Reader) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("assets: parse svg: %w", err)
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyViewBox
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	surface := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, surface, surface.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return surface, nil
}
