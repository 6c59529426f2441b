package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spheretrace/hal"
	"spheretrace/internal/logging"
	"spheretrace/internal/tracer"
)

// ErrFramebuffer is returned by New when the display cannot hold the camera image.
var ErrFramebuffer = errors.New("app: framebuffer does not match camera")

type Config struct {
	Camera tracer.Options

	// Parallel renders rows on up to Workers goroutines (0 = GOMAXPROCS).
	Parallel bool
	Workers  int

	// Step is the origin move per key event; 0 means DefaultStep.
	Step float32
	HUD  bool
}

// App redraws the sphere whenever the camera moves.
type App struct {
	cfg   Config
	fb    hal.Framebuffer
	kbd   hal.Keyboard
	state *CameraState
	hud   *hud

	events   []hal.KeyEvent
	drawn    bool
	drawnRev uint64
	frames   uint64
}

func New(h hal.HAL, cfg Config) (*App, error) {
	if cfg.Step == 0 {
		cfg.Step = DefaultStep
	}
	cam, err := tracer.NewCamera(cfg.Camera)
	if err != nil {
		return nil, err
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, fmt.Errorf("%w: no framebuffer", ErrFramebuffer)
	}
	if fb.Format() != hal.PixelFormatRGBA8888 ||
		fb.Width() != cam.ImageWidth || fb.Height() != cam.ImageHeight ||
		fb.StrideBytes() != cam.ImageWidth*4 || len(fb.Buffer()) != cam.FrameBytes() {
		return nil, fmt.Errorf("%w: have %dx%d format %d, want %dx%d RGBA",
			ErrFramebuffer, fb.Width(), fb.Height(), fb.Format(), cam.ImageWidth, cam.ImageHeight)
	}

	a := &App{
		cfg:   cfg,
		fb:    fb,
		state: NewCameraState(cam),
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	if cfg.HUD {
		a.hud = newHUD(fb)
	}
	return a, nil
}

// State exposes the camera state for callers that drive input themselves.
func (a *App) State() *CameraState { return a.state }

// Frames returns the number of frames rendered and presented so far.
func (a *App) Frames() uint64 { return a.frames }

func (a *App) Step() error { return a.StepContext(context.Background()) }

// StepContext handles pending input and redraws if the camera moved since
// the last presented frame. It returns hal.ErrQuit when Escape was pressed.
//
// A pass abandoned through ctx is not presented.
func (a *App) StepContext(ctx context.Context) (err error) {
	defer a.recoverPanic(&err)

	a.events = drainKeys(a.kbd, a.events[:0])
	if quitRequested(a.events) {
		return hal.ErrQuit
	}
	ApplyInput(a.state, a.events, a.cfg.Step)

	cam, rev := a.state.Snapshot()
	if a.drawn && rev == a.drawnRev {
		return nil
	}

	start := time.Now()
	buf := a.fb.Buffer()
	if a.cfg.Parallel {
		err = cam.RenderParallel(ctx, buf, a.cfg.Workers)
	} else {
		err = cam.Render(buf)
	}
	if err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	if a.hud != nil {
		a.hud.draw(cam.Origin)
	}
	if err := a.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	a.drawn, a.drawnRev = true, rev
	a.frames++
	logging.L().Debug("frame presented",
		"frame", a.frames, "origin_y", cam.Origin.Y, "elapsed", time.Since(start))
	return nil
}
