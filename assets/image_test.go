package assets

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 48">
	<rect x="0" y="0" width="64" height="48" fill="#c86464"/>
</svg>`

func TestDecodeSVG(t *testing.T) {
	img, err := decodeSVG(strings.NewReader(testSVG))
	if err != nil {
		t.Fatalf("decodeSVG failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("rasterized to %dx%d, want view-box size 64x48", b.Dx(), b.Dy())
	}

	// The filled rect must actually have been rasterized.
	_, _, _, a := img.At(32, 24).RGBA()
	if a == 0 {
		t.Error("center pixel is transparent; nothing was rasterized")
	}
}

func TestDecodeSVGEmptyViewBox(t *testing.T) {
	const empty = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 0 0"></svg>`
	if _, err := decodeSVG(strings.NewReader(empty)); err == nil {
		t.Fatal("expected an error for a degenerate view box")
	}
}

func TestDecodeImageSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiger.svg")
	if err := os.WriteFile(path, []byte(testSVG), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeImage(path)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("decoded to %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}

func TestDecodeImageRasterFile(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 7))); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "tiger.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeImage(path)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 7 {
		t.Errorf("decoded to %dx%d, want 10x7", b.Dx(), b.Dy())
	}
}

func TestDecodeImageMissingFile(t *testing.T) {
	if _, err := DecodeImage(filepath.Join(t.TempDir(), "nope.svg")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeImage(path); err == nil {
		t.Fatal("expected an error for undecodable data")
	}
}
