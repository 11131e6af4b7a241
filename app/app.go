package app

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"path/filepath"
	"time"
)

// backgroundColor is the opaque white the backbuffer is cleared to.
var backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// App is the application state: every handle the sample owns, the
// diagnostic second counter and the pending result the run loop
// consults after each frame.
//
// An App is either fully constructed by Init or not exposed at all;
// there is no partially-initialized state.
type App struct {
	window Window
	canvas Canvas

	textTex  Texture
	imageTex Texture
	textDest Rect

	seconds int
	pending Result

	clock  Clock
	start  time.Time
	logger *log.Logger

	closed bool
}

// Init acquires every resource the sample needs, in order: subsystems,
// window, drawing context, asset base path, font, text texture, image
// texture. Each step is a hard failure: the error is returned with the
// failed step named, everything acquired before it is released, and no
// App is exposed.
func Init(p Platform, as Assets, cfg Config, opts ...Option) (*App, error) {
	o := applyOptions(opts)

	if err := p.Init(); err != nil {
		return nil, fmt.Errorf("app: init subsystems: %w", err)
	}

	window, err := p.OpenWindow(WindowConfig{
		Title:            cfg.Title,
		Width:            cfg.Width,
		Height:           cfg.Height,
		Resizable:        true,
		HighPixelDensity: true,
	})
	if err != nil {
		return nil, fmt.Errorf("app: open window: %w", err)
	}

	canvas, err := p.OpenCanvas(window)
	if err != nil {
		_ = window.Close()
		return nil, fmt.Errorf("app: open canvas: %w", err)
	}

	// Release order on failure mirrors acquisition order in reverse.
	fail := func(step string, err error) (*App, error) {
		_ = canvas.Close()
		_ = window.Close()
		return nil, fmt.Errorf("app: %s: %w", step, err)
	}

	base, err := as.ResolveBase()
	if err != nil {
		return fail("resolve asset base path", err)
	}

	font, err := as.OpenFont(filepath.Join(base, cfg.FontFile), cfg.FontSize)
	if err != nil {
		return fail("open font", err)
	}

	surface, err := font.Render(cfg.Message, cfg.MessageColor)
	if err != nil {
		_ = font.Close()
		return fail("render text", err)
	}

	textTex, err := canvas.CreateTexture(surface)
	// The font and the intermediate surface are not needed once the
	// text is uploaded.
	_ = font.Close()
	if err != nil {
		return fail("upload text texture", err)
	}

	imageSurface, err := as.DecodeImage(filepath.Join(base, cfg.ImageFile))
	if err != nil {
		_ = textTex.Close()
		return fail("decode image", err)
	}

	imageTex, err := canvas.CreateTexture(imageSurface)
	if err != nil {
		_ = textTex.Close()
		return fail("upload image texture", err)
	}

	// The destination rectangle is derived once from the text
	// texture's actual pixel size and never recomputed.
	tw, th := textTex.Size()
	textDest := Rect{X: 0, Y: 0, W: float64(tw), H: float64(th)}

	window.Show()
	logWindowInfo(o.logger, window)

	if err := canvas.SetVSync(true); err != nil {
		_ = imageTex.Close()
		_ = textTex.Close()
		return fail("enable vsync", err)
	}

	o.logger.Printf("Application started successfully!")

	return &App{
		window:   window,
		canvas:   canvas,
		textTex:  textTex,
		imageTex: imageTex,
		textDest: textDest,
		pending:  ResultContinue,
		clock:    o.clock,
		start:    o.clock.Now(),
		logger:   o.logger,
	}, nil
}

func logWindowInfo(l *log.Logger, w Window) {
	width, height := w.Size()
	bbWidth, bbHeight := w.PixelSize()
	l.Printf("Window size: %dx%d", width, height)
	l.Printf("Backbuffer size: %dx%d", bbWidth, bbHeight)
	if width != bbWidth {
		l.Printf("This is a highdpi environment.")
	}
}

// HandleEvent applies one input event to the pending result. A quit
// signal or an Escape key-down requests a successful exit; every other
// event is ignored. HandleEvent never fails and is idempotent for
// repeated quit events.
func (a *App) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case QuitEvent:
		a.pending = ResultSuccess
	case KeyDownEvent:
		if e.Key == KeyEscape {
			a.pending = ResultSuccess
		}
	}
}

// Iterate renders one frame and returns the pending result for the run
// loop to act on. Called once per display refresh.
func (a *App) Iterate() Result {
	elapsed := a.clock.Now().Sub(a.start).Seconds()
	if s := int(math.Round(elapsed)); s > a.seconds {
		a.logger.Printf("time: %d", s)
		a.seconds++
	}

	a.canvas.Clear(backgroundColor)

	// Painter's algorithm: the image fills the target first so the
	// text drawn after it stays on top.
	if err := a.canvas.DrawTexture(a.imageTex, nil); err != nil {
		return a.fatal("draw image", err)
	}
	if err := a.canvas.DrawTexture(a.textTex, &a.textDest); err != nil {
		return a.fatal("draw text", err)
	}
	if err := a.canvas.Present(); err != nil {
		return a.fatal("present", err)
	}

	return a.pending
}

// fatal records an internal rendering failure. There is no recovery:
// the run loop observes ResultFailure and shuts down.
func (a *App) fatal(step string, err error) Result {
	a.logger.Printf("Error: %s: %v", step, err)
	a.pending = ResultFailure
	return a.pending
}

// TextDest returns the destination rectangle of the text texture.
func (a *App) TextDest() Rect { return a.textDest }

// Close releases every owned handle exactly once, in dependency order:
// textures, then the drawing context, then the window. Safe to call on
// a nil App and safe to call repeatedly.
func (a *App) Close() {
	if a == nil || a.closed {
		return
	}
	a.closed = true
	_ = a.textTex.Close()
	_ = a.imageTex.Close()
	_ = a.canvas.Close()
	_ = a.window.Close()
}

// Quit releases the application state, shuts the platform down and logs
// the final confirmation. a may be nil: the resource release is then a
// no-op but the subsystem shutdown still happens.
func Quit(a *App, p Platform, opts ...Option) {
	o := applyOptions(opts)
	if a != nil {
		o.logger = a.logger
	}
	a.Close()
	if p != nil {
		p.Shutdown()
	}
	o.logger.Printf("Application quit successfully!")
}
