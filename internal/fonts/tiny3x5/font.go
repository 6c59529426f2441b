// Package tiny3x5 is a 3x5 pixel bitmap font covering digits, upper-case
// letters and the punctuation used by on-screen status lines.
//
// It implements tinyfont.Fonter. Lower-case letters are drawn upper-case;
// anything else without a glyph is drawn as '?'.
package tiny3x5

import (
	"image/color"
	"unicode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	glyphW = 3
	glyphH = 5
)

// New returns the font with every pixel drawn as a scale x scale block.
//
// Concurrent access is not safe due to internal glyph reuse.
func New(scale int) tinyfont.Fonter {
	if scale < 1 {
		scale = 1
	}
	return &font{g: glyph{scale: int16(scale)}}
}

type font struct {
	g glyph
}

func (f *font) GetYAdvance() uint8 { return uint8((glyphH + 1) * f.g.scale) }

func (f *font) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	f.g.rows = lookup(r)
	return &f.g
}

type glyph struct {
	r     rune
	rows  [glyphH]uint8
	scale int16
}

// Draw paints the glyph with its baseline at y.
func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	top := y - glyphH*g.scale
	for row := int16(0); row < glyphH; row++ {
		bits := g.rows[row]
		for col := int16(0); col < glyphW; col++ {
			if bits&(0b100>>col) == 0 {
				continue
			}
			for dy := int16(0); dy < g.scale; dy++ {
				for dx := int16(0); dx < g.scale; dx++ {
					display.SetPixel(x+col*g.scale+dx, top+row*g.scale+dy, c)
				}
			}
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    uint8(glyphW * g.scale),
		Height:   uint8(glyphH * g.scale),
		XAdvance: uint8((glyphW + 1) * g.scale),
		XOffset:  0,
		YOffset:  int8(-glyphH * g.scale),
	}
}

func lookup(r rune) [glyphH]uint8 {
	r = unicode.ToUpper(r)
	if rows, ok := glyphs[r]; ok {
		return rows
	}
	return glyphs['?']
}

var glyphs = map[rune][glyphH]uint8{
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b001, 0b001},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b101, 0b110, 0b101, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b111, 0b101, 0b101},
	'N': {0b110, 0b101, 0b101, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b110, 0b011},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b111, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	',': {0b000, 0b000, 0b000, 0b010, 0b100},
	'=': {0b000, 0b111, 0b000, 0b111, 0b000},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	'(': {0b001, 0b010, 0b010, 0b010, 0b001},
	')': {0b100, 0b010, 0b010, 0b010, 0b100},
	'/': {0b001, 0b001, 0b010, 0b100, 0b100},
	'_': {0b000, 0b000, 0b000, 0b000, 0b111},
	'%': {0b101, 0b001, 0b010, 0b100, 0b101},
	'?': {0b111, 0b001, 0b010, 0b000, 0b010},
}
