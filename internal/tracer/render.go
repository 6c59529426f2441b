package tracer

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"spheretrace/internal/geom"

	"golang.org/x/sync/errgroup"
)

// ErrBufferSize is returned when a frame buffer is not W*H*4 bytes long.
var ErrBufferSize = errors.New("tracer: frame buffer size mismatch")

func (c Camera) checkBuffer(buf []byte) error {
	if want := c.FrameBytes(); len(buf) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(buf), want)
	}
	return nil
}

// Render fills buf with one frame, row-major RGBA.
func (c Camera) Render(buf []byte) error {
	if err := c.checkBuffer(buf); err != nil {
		return err
	}
	corner := c.corner()
	for row := 0; row < c.ImageHeight; row++ {
		c.renderRow(buf, corner, row)
	}
	return nil
}

// RenderParallel renders like Render but shades rows concurrently on up to
// workers goroutines (GOMAXPROCS when workers <= 0).
//
// If ctx is cancelled the pass is abandoned and ctx.Err() is returned; buf is
// then partially written and must not be presented.
func (c Camera) RenderParallel(ctx context.Context, buf []byte, workers int) error {
	if err := c.checkBuffer(buf); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	corner := c.corner()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for row := 0; row < c.ImageHeight; row++ {
		if gctx.Err() != nil {
			break
		}
		row := row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.renderRow(buf, corner, row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (c Camera) renderRow(buf []byte, corner geom.Vec3, row int) {
	w := c.ImageWidth
	off := row * w * 4
	for x := 0; x < w; x++ {
		PutColor(buf[off+x*4:], RayColor(c.rayAt(corner, x, row)))
	}
}
