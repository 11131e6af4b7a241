package assets

import (
	"image/color"
	"os"
	"testing"
)

// testFontPath returns a TTF to test with, or skips. TTC collections
// are not supported by the font parser.
func testFontPath(t *testing.T) string {
	t.Helper()

	candidates := []string{
		// Windows
		"C:\\Windows\\Fonts\\arial.ttf",
		"C:\\Windows\\Fonts\\calibri.ttf",
		// macOS - Supplemental fonts are TTF
		"/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/System/Library/Fonts/Monaco.ttf",
		// Linux
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skip("no TTF font available")
	return ""
}

func TestOpenFontMissing(t *testing.T) {
	if _, err := OpenFont("/nonexistent/font.ttf", 28); err == nil {
		t.Fatal("expected an error for a missing font file")
	}
}

func TestFontName(t *testing.T) {
	font, err := OpenFont(testFontPath(t), 28)
	if err != nil {
		t.Fatalf("OpenFont failed: %v", err)
	}
	defer func() { _ = font.Close() }()

	if font.Name() == "" {
		t.Error("font name is empty")
	}
}

func TestFontRender(t *testing.T) {
	font, err := OpenFont(testFontPath(t), 28)
	if err != nil {
		t.Fatalf("OpenFont failed: %v", err)
	}
	defer func() { _ = font.Close() }()

	surface, err := font.Render("Cute Tiger!", color.RGBA{R: 200, G: 100, B: 100, A: 255})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	b := surface.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		t.Fatalf("surface is %dx%d, want positive dimensions", b.Dx(), b.Dy())
	}

	// At least one glyph pixel must have been drawn.
	opaque := false
	for y := b.Min.Y; y < b.Max.Y && !opaque; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := surface.At(x, y).RGBA(); a > 0 {
				opaque = true
				break
			}
		}
	}
	if !opaque {
		t.Error("rendered surface is fully transparent")
	}
}

func TestFontRenderEmpty(t *testing.T) {
	font, err := OpenFont(testFontPath(t), 28)
	if err != nil {
		t.Fatalf("OpenFont failed: %v", err)
	}
	defer func() { _ = font.Close() }()

	if _, err := font.Render("", color.Black); err == nil {
		t.Fatal("expected an error for empty text")
	}
}
