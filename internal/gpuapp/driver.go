// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuapp runs the tiger sample on a gogpu window. It adapts
// gogpu's callback API (OnDraw at vsync, OnKeyPress, OnClose) to the
// controller's Event/Iterate/Quit contract and bridges gg drawing to
// the window surface through ggcanvas.
package gpuapp

import (
	"fmt"
	"log"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/tiger/app"
)

// driver owns the gogpu application and the per-frame state shared
// with the platform adapters. All fields are touched only from gogpu's
// single callback goroutine.
type driver struct {
	cfg app.Config
	gpu *gogpu.App

	a      *app.App
	canvas *ggcanvas.Canvas

	// cc is the gg context of the frame being drawn. It is non-nil
	// only inside ggcanvas.Draw.
	cc *gg.Context

	logicalW, logicalH int
	pixelW, pixelH     int

	events    []app.Event
	presented bool

	initErr error
	result  app.Result
}

// Run opens the window described by cfg and drives the controller until
// it reports a non-continue result or the user closes the window.
// It returns nil on a successful quit, the initialization error when
// startup failed, and ErrAppFailure when the controller failed at
// runtime.
func Run(cfg app.Config) error {
	d := &driver{cfg: cfg, result: app.ResultContinue}

	d.gpu = gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height))

	d.gpu.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if ev, ok := translateKey(key); ok {
			d.events = append(d.events, ev)
		}
	})

	d.gpu.OnDraw(d.onDraw)

	d.gpu.OnClose(func() {
		// Window close is a quit signal for the controller.
		if d.a != nil {
			d.a.HandleEvent(app.QuitEvent{})
		}
		if d.result == app.ResultContinue {
			d.result = app.ResultSuccess
		}
	})

	runErr := d.gpu.Run()

	app.Quit(d.a, &platform{d: d})

	if runErr != nil {
		return fmt.Errorf("gpuapp: run: %w", runErr)
	}
	if d.initErr != nil {
		return d.initErr
	}
	if d.result == app.ResultFailure {
		return ErrAppFailure
	}
	return nil
}

// onDraw runs once per display refresh: finish initialization on the
// first frame, drain queued input, render through the controller and
// hand the composited canvas to the window surface.
func (d *driver) onDraw(dc *gogpu.Context) {
	w, h := dc.Width(), dc.Height()
	if w <= 0 || h <= 0 {
		return
	}
	d.logicalW, d.logicalH = w, h
	pw, ph := dc.SurfaceSize()
	d.pixelW, d.pixelH = int(pw), int(ph)

	if d.a == nil {
		if d.initErr != nil {
			return
		}
		a, err := app.Init(&platform{d: d}, defaultAssets(), d.cfg)
		if err != nil {
			d.initErr = err
			d.result = app.ResultFailure
			log.Printf("Error: %v", err)
			d.gpu.Quit()
			return
		}
		d.a = a
	}

	if cw, ch := d.canvas.Size(); cw != w || ch != h {
		if err := d.canvas.Resize(w, h); err != nil {
			log.Printf("gpuapp: resize canvas: %v", err)
		}
	}

	pending := d.events
	d.events = nil
	for _, ev := range pending {
		d.a.HandleEvent(ev)
	}

	var res app.Result
	d.presented = false
	if err := d.canvas.Draw(func(cc *gg.Context) {
		d.cc = cc
		res = d.a.Iterate()
		d.cc = nil
	}); err != nil {
		log.Printf("gpuapp: draw: %v", err)
		res = app.ResultFailure
	}

	if d.presented {
		sv := dc.SurfaceView()
		sw, sh := dc.SurfaceSize()
		if err := d.canvas.RenderDirect(sv, sw, sh); err != nil {
			log.Printf("gpuapp: render to surface: %v", err)
		}
	}

	if res != app.ResultContinue {
		d.result = res
		d.gpu.Quit()
	}
}

// translateKey maps gogpu key codes onto controller events. Only keys
// the controller reacts to are translated.
func translateKey(key gpucontext.Key) (app.Event, bool) {
	switch key {
	case gpucontext.KeyEscape:
		return app.KeyDownEvent{Key: app.KeyEscape}, true
	default:
		return nil, false
	}
}
