// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuapp

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/gogpu/tiger/app"
	"github.com/gogpu/tiger/assets"
)

// platform adapts the gogpu application to the controller's Platform
// interface. gogpu owns the real window and surface inside App.Run, so
// the handles returned here are views onto the driver's current frame
// state rather than independently created resources.
type platform struct {
	d *driver
}

// audioSampleRate is the rate the speaker is opened at. The sample
// plays no sound; the audio subsystem is brought up alongside video
// the way the windowing library's init flags do.
const audioSampleRate = beep.SampleRate(44100)

// Init brings up the audio subsystem. Video comes up inside
// gogpu.App.Run before the first frame callback.
func (p *platform) Init() error {
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("gpuapp: init audio: %w", err)
	}
	return nil
}

func (p *platform) OpenWindow(cfg app.WindowConfig) (app.Window, error) {
	// The gogpu window was configured from the same cfg at NewApp time
	// and is already open by the first frame.
	return &window{d: p.d}, nil
}

func (p *platform) OpenCanvas(w app.Window) (app.Canvas, error) {
	provider := p.d.gpu.GPUContextProvider()
	if provider == nil {
		return nil, ErrNoProvider
	}
	c, err := ggcanvas.New(provider, p.d.logicalW, p.d.logicalH)
	if err != nil {
		return nil, fmt.Errorf("gpuapp: create canvas: %w", err)
	}
	p.d.canvas = c
	return &canvas{d: p.d}, nil
}

// Shutdown releases the audio device. Video teardown is owned by
// gogpu.App.Run, which finishes before Shutdown is reached.
func (p *platform) Shutdown() {
	speaker.Close()
}

// window is the controller's view of the gogpu window.
type window struct {
	d *driver
}

// Show is a no-op: gogpu shows the window when Run starts.
func (w *window) Show() {}

func (w *window) Size() (int, int) { return w.d.logicalW, w.d.logicalH }

func (w *window) PixelSize() (int, int) { return w.d.pixelW, w.d.pixelH }

// Close is a no-op: the window is owned by gogpu.App.Run.
func (w *window) Close() error { return nil }

// canvas implements the controller's Canvas on the gg context of the
// current frame. Draw commands are only valid while the driver is
// inside ggcanvas.Draw.
type canvas struct {
	d *driver
}

func (c *canvas) CreateTexture(img image.Image) (app.Texture, error) {
	if img == nil {
		return nil, ErrNilSurface
	}
	b := img.Bounds()
	return &texture{
		buf: gg.ImageBufFromImage(img),
		w:   b.Dx(),
		h:   b.Dy(),
	}, nil
}

func (c *canvas) Clear(col color.Color) {
	cc := c.d.cc
	if cc == nil {
		return
	}
	cc.SetColor(col)
	cc.Clear()
}

func (c *canvas) DrawTexture(t app.Texture, dst *app.Rect) error {
	cc := c.d.cc
	if cc == nil {
		return ErrNoFrame
	}
	tex, ok := t.(*texture)
	if !ok {
		return ErrForeignTexture
	}

	opts := gg.DrawImageOptions{
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	}
	if dst != nil {
		opts.X, opts.Y = dst.X, dst.Y
		opts.DstWidth, opts.DstHeight = dst.W, dst.H
	} else {
		// nil destination stretches over the whole render target.
		opts.DstWidth = float64(cc.Width())
		opts.DstHeight = float64(cc.Height())
	}

	cc.DrawImageEx(tex.buf, opts)
	return nil
}

// Present marks the frame complete. The actual flip happens when the
// driver hands the canvas to the window surface via RenderDirect right
// after the frame callback returns.
func (c *canvas) Present() error {
	c.d.presented = true
	return nil
}

// SetVSync records the request. gogpu presents at the display refresh
// in continuous-render mode; there is no separate swap-interval knob.
func (c *canvas) SetVSync(adaptive bool) error { return nil }

func (c *canvas) Close() error {
	if c.d.canvas == nil {
		return nil
	}
	err := c.d.canvas.Close()
	c.d.canvas = nil
	return err
}

// texture holds the CPU-side pixels uploaded for drawing. ggcanvas
// uploads the composited frame to the GPU as a whole, so per-texture
// GPU state lives there, not here.
type texture struct {
	buf  *gg.ImageBuf
	w, h int
}

func (t *texture) Size() (int, int) { return t.w, t.h }

func (t *texture) Close() error {
	t.buf = nil
	return nil
}

// defaultAssets wires the assets package into the controller's seam.
func defaultAssets() app.Assets {
	return app.Assets{
		ResolveBase: assets.Base,
		OpenFont: func(path string, points float64) (app.Font, error) {
			f, err := assets.OpenFont(path, points)
			if err != nil {
				return nil, err
			}
			log.Printf("Loaded font: %s", f.Name())
			return f, nil
		},
		DecodeImage: assets.DecodeImage,
	}
}
