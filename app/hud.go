package app

import (
	"fmt"
	"image/color"

	"spheretrace/hal"
	"spheretrace/internal/fonts/tiny3x5"
	"spheretrace/internal/geom"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	hudScale = 2
	hudPad   = 2
)

var (
	hudFG = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudBG = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// fbDisplay adapts an RGBA framebuffer to the tinyfont drawing interface.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	off := iy*d.fb.StrideBytes() + ix*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (d fbDisplay) Display() error { return nil }

func (d fbDisplay) fillRect(x0, y0, w, h int16, c color.RGBA) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			d.SetPixel(x, y, c)
		}
	}
}

// hud draws the camera position in the top-left corner.
type hud struct {
	d    fbDisplay
	font tinyfont.Fonter
}

func newHUD(fb hal.Framebuffer) *hud {
	return &hud{d: fbDisplay{fb: fb}, font: tiny3x5.New(hudScale)}
}

func statusLine(origin geom.Vec3) string {
	return fmt.Sprintf("y=%+.3f", origin.Y)
}

func (h *hud) draw(origin geom.Vec3) {
	h.text(0, 0, statusLine(origin))
}

// text draws s on a solid box whose top-left corner is (x, y) and returns the
// box height.
func (h *hud) text(x, y int16, s string) int16 {
	_, w := tinyfont.LineWidth(h.font, s)
	lineH := int16(h.font.GetYAdvance())
	h.d.fillRect(x, y, int16(w)+2*hudPad, lineH+2*hudPad, hudBG)
	baseline := y + hudPad + lineH - hudScale
	tinyfont.WriteLine(h.d, h.font, x+hudPad, baseline, s, hudFG)
	return lineH + 2*hudPad
}
