//go:build cgo

package hal

import (
	"errors"

	"spheretrace/internal/buildinfo"
	"spheretrace/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes, Escape is handled by the app, or step fails.
func RunWindow(cfg WindowConfig, newApp func(HAL) (func() error, error)) error {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.TPS < 1 {
		cfg.TPS = 60
	}

	h := newHost(cfg.Width, cfg.Height)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("spheretrace (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	logging.L().Info("window starting",
		"width", h.fb.width, "height", h.fb.height, "scale", cfg.Scale, "tps", cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	drawn   uint64
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step == nil {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.width || g.fbImg.Bounds().Dy() != fb.height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.scratch = make([]byte, len(fb.front))
		g.drawn = 0
	}

	// Only upload when a new frame has been presented.
	if n := fb.snapshot(g.scratch); n != g.drawn {
		g.fbImg.WritePixels(g.scratch)
		g.drawn = n
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
