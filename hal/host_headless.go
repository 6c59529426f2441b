package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spheretrace/internal/logging"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	// Ticks stops the run after that many steps (0 = run until cancelled).
	Ticks uint64
}

// RunHeadless runs the app step on a ticker without opening a window.
//
// It returns nil after cfg.Ticks steps or when the app returns ErrQuit, and
// ctx.Err() when ctx is cancelled first.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	step, err := newApp(newHost(cfg.Width, cfg.Height))
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						logging.L().Info("headless quit", "ticks", tick)
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				logging.L().Info("headless done", "ticks", tick)
				return nil
			}
		}
	}
}
