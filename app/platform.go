package app

import (
	"image"
	"image/color"
)

// Rect is a destination rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// WindowConfig describes the window Init asks the platform to open.
type WindowConfig struct {
	Title            string
	Width, Height    int
	Resizable        bool
	HighPixelDensity bool
}

// Window is the opaque window handle. The controller owns it from
// successful Init until Close.
type Window interface {
	// Show makes the window visible.
	Show()

	// Size returns the window size in logical units.
	Size() (w, h int)

	// PixelSize returns the backbuffer size in pixels. On high-DPI
	// displays this differs from Size.
	PixelSize() (w, h int)

	// Close releases the window.
	Close() error
}

// Texture is renderer-resident image data uploaded from a CPU surface.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (w, h int)

	// Close releases the texture.
	Close() error
}

// Canvas is the drawing context bound to a window. Draw commands use
// the painter's algorithm: later draws occlude earlier ones.
type Canvas interface {
	// CreateTexture uploads a CPU surface as a texture.
	CreateTexture(img image.Image) (Texture, error)

	// Clear fills the backbuffer with a solid color.
	Clear(c color.Color)

	// DrawTexture draws t into dst. A nil dst stretches the texture
	// over the whole render target.
	DrawTexture(t Texture, dst *Rect) error

	// Present flips the composited backbuffer to the window.
	Present() error

	// SetVSync synchronizes presentation with the display refresh.
	// adaptive requests late-swap tearing avoidance where supported.
	SetVSync(adaptive bool) error

	// Close releases the drawing context.
	Close() error
}

// Platform creates and tears down the windowing environment.
type Platform interface {
	// Init initializes the video subsystems.
	Init() error

	// OpenWindow creates a window.
	OpenWindow(cfg WindowConfig) (Window, error)

	// OpenCanvas creates a drawing context bound to w.
	OpenCanvas(w Window) (Canvas, error)

	// Shutdown tears the subsystems down. Called after all handles
	// are released; must be safe to call even if Init failed.
	Shutdown()
}

// Font rasterizes strings into CPU surfaces.
type Font interface {
	// Render draws s in col onto a surface sized to fit the text.
	Render(s string, col color.Color) (image.Image, error)

	// Close releases the font.
	Close() error
}

// Assets resolves and loads the bundled files Init needs. The concrete
// implementations live in the assets package; tests substitute
// failing or recording functions step by step.
type Assets struct {
	// ResolveBase returns the directory asset paths are joined to.
	ResolveBase func() (string, error)

	// OpenFont opens a TTF/OTF file at the given point size.
	OpenFont func(path string, points float64) (Font, error)

	// DecodeImage decodes an image file into a CPU surface.
	DecodeImage func(path string) (image.Image, error)
}
