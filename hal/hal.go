package hal

import "errors"

var ErrNotImplemented = errors.New("not implemented")

// ErrQuit is returned by an app step to end the run loop without error.
var ErrQuit = errors.New("quit requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp: R, G, B, A bytes in that order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// BytesPerPixel returns the pixel size of f, or 0 for an unknown format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGBA8888:
		return 4
	}
	return 0
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	// KeyUp moves the camera up (W on the host keyboard).
	KeyUp
	// KeyDown moves the camera down (R on the host keyboard).
	KeyDown
	KeyEscape
)

func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEscape:
		return "escape"
	}
	return "unknown"
}

// KeyEvent is a keyboard event.
//
// Held is set on the repeated press events sent while a key stays down.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Held  bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the viewer and the outside world.
type HAL interface {
	Display() Display
	Input() Input
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Width  int
	Height int
	// Scale multiplies the framebuffer size to get the initial window size.
	Scale int
	TPS   int
}
