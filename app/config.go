package app

import (
	"image/color"
	"log"
)

// Config carries the fixed parameters of the sample. There is no config
// file and no flags; the defaults are the application.
type Config struct {
	// Title is the window title.
	Title string

	// Width, Height are the starting window size in logical units.
	Width, Height int

	// FontFile is the bundled font, relative to the asset base path.
	FontFile string

	// FontSize is the point size the font is opened at.
	FontSize float64

	// Message is the string rasterized at startup.
	Message string

	// MessageColor is the text color.
	MessageColor color.Color

	// ImageFile is the bundled image, relative to the asset base path.
	ImageFile string
}

// DefaultConfig returns the sample's fixed parameters.
func DefaultConfig() Config {
	return Config{
		Title:        "Tiger Sample",
		Width:        600,
		Height:       600,
		FontFile:     "bitcount.ttf",
		FontSize:     28,
		Message:      "Cute Tiger!",
		MessageColor: color.RGBA{R: 200, G: 100, B: 100, A: 255},
		ImageFile:    "gs_tiger.svg",
	}
}

// Option configures optional controller seams.
type Option func(*options)

type options struct {
	clock  Clock
	logger *log.Logger
}

// WithClock replaces the time source used by the per-second diagnostic.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger replaces the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func applyOptions(opts []Option) options {
	o := options{
		clock:  realClock{},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
