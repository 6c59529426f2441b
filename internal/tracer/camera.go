package tracer

import (
	"errors"
	"fmt"

	"spheretrace/internal/geom"
)

// DefaultRowAnchor is the constant the frame driver subtracts row indices from.
const DefaultRowAnchor = 256

// ErrOptions reports camera options that cannot describe an image.
var ErrOptions = errors.New("tracer: invalid camera options")

// Options describes the camera. Zero fields take the defaults of
// DefaultOptions.
type Options struct {
	AspectRatio    float32
	ImageWidth     int
	ViewportHeight float32
	FocalLength    float32
	Origin         geom.Vec3

	// RowAnchor is the viewport row of the first buffer row. 0 means
	// DefaultRowAnchor; a negative value means ImageHeight-1.
	RowAnchor int

	// FollowOrigin recomputes the lower-left corner from the current origin
	// on every pass instead of keeping the one derived from the initial origin.
	FollowOrigin bool
}

func DefaultOptions() Options {
	return Options{
		AspectRatio:    16.0 / 9.0,
		ImageWidth:     400,
		ViewportHeight: 2,
		FocalLength:    1,
		RowAnchor:      DefaultRowAnchor,
	}
}

// Camera holds the viewport geometry of a pinhole camera.
//
// Only Origin is meant to change after NewCamera. Horizontal, Vertical and
// LowerLeftCorner are fixed offsets and are not recomputed when Origin moves
// (unless FollowOrigin is set).
type Camera struct {
	AspectRatio    float32
	ImageWidth     int
	ImageHeight    int
	ViewportHeight float32
	ViewportWidth  float32
	FocalLength    float32

	Origin          geom.Vec3
	Horizontal      geom.Vec3
	Vertical        geom.Vec3
	LowerLeftCorner geom.Vec3

	RowAnchor    int
	FollowOrigin bool
}

func NewCamera(opts Options) (Camera, error) {
	def := DefaultOptions()
	if opts.AspectRatio == 0 {
		opts.AspectRatio = def.AspectRatio
	}
	if opts.ImageWidth == 0 {
		opts.ImageWidth = def.ImageWidth
	}
	if opts.ViewportHeight == 0 {
		opts.ViewportHeight = def.ViewportHeight
	}
	if opts.FocalLength == 0 {
		opts.FocalLength = def.FocalLength
	}
	if opts.AspectRatio < 0 || opts.ViewportHeight < 0 || opts.FocalLength < 0 {
		return Camera{}, fmt.Errorf("%w: negative aspect, viewport or focal length", ErrOptions)
	}

	height := int(float32(opts.ImageWidth) / opts.AspectRatio)
	if opts.ImageWidth < 2 || height < 2 {
		return Camera{}, fmt.Errorf("%w: image %dx%d, need at least 2x2", ErrOptions, opts.ImageWidth, height)
	}

	anchor := opts.RowAnchor
	switch {
	case anchor == 0:
		anchor = DefaultRowAnchor
	case anchor < 0:
		anchor = height - 1
	}

	vw := opts.AspectRatio * opts.ViewportHeight
	c := Camera{
		AspectRatio:    opts.AspectRatio,
		ImageWidth:     opts.ImageWidth,
		ImageHeight:    height,
		ViewportHeight: opts.ViewportHeight,
		ViewportWidth:  vw,
		FocalLength:    opts.FocalLength,
		Origin:         opts.Origin,
		Horizontal:     geom.V3(vw, 0, 0),
		Vertical:       geom.V3(0, opts.ViewportHeight, 0),
		RowAnchor:      anchor,
		FollowOrigin:   opts.FollowOrigin,
	}
	c.LowerLeftCorner = c.cornerFrom(c.Origin)
	return c, nil
}

func (c Camera) cornerFrom(origin geom.Vec3) geom.Vec3 {
	return origin.
		Sub(c.Horizontal.Div(2)).
		Sub(c.Vertical.Div(2)).
		Sub(geom.V3(0, 0, c.FocalLength))
}

func (c Camera) corner() geom.Vec3 {
	if c.FollowOrigin {
		return c.cornerFrom(c.Origin)
	}
	return c.LowerLeftCorner
}

// FrameBytes is the RGBA buffer length for one frame.
func (c Camera) FrameBytes() int { return c.ImageWidth * c.ImageHeight * 4 }

// RayAt returns the primary ray for buffer pixel (x, row).
func (c Camera) RayAt(x, row int) geom.Ray {
	return c.rayAt(c.corner(), x, row)
}

func (c Camera) rayAt(corner geom.Vec3, x, row int) geom.Ray {
	y := c.RowAnchor - row
	u := float32(x) / float32(c.ImageWidth-1)
	v := float32(y) / float32(c.ImageHeight-1)
	dir := corner.
		Add(c.Horizontal.Mul(u)).
		Add(c.Vertical.Mul(v)).
		Sub(c.Origin)
	return geom.NewRay(c.Origin, dir)
}
