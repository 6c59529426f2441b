package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"spheretrace/internal/logging"

	"tinygo.org/x/tinyfont"
)

// recoverPanic turns a panic inside a step into an error after logging it
// and painting it on the display. The caller is expected to stop.
func (a *App) recoverPanic(err *error) {
	r := recover()
	if r == nil {
		return
	}
	stack := debug.Stack()
	logging.L().Error("step panicked", "panic", r, "stack", string(stack))
	a.drawPanic(r)
	*err = fmt.Errorf("app panic: %v", r)
}

func (a *App) drawPanic(v any) {
	if a.fb == nil {
		return
	}
	a.fb.ClearRGB(0x80, 0, 0)

	h := a.hud
	if h == nil {
		h = newHUD(a.fb)
	}
	lines := []string{"PANIC", fmt.Sprint(v)}

	_, glyphW := tinyfont.LineWidth(h.font, "0")
	if glyphW == 0 {
		glyphW = 1
	}
	cols := int16((a.fb.Width() - 2*hudPad) / int(glyphW))
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y) >= a.fb.Height() {
				break
			}
			chunk, rest := takeRunes(line, cols)
			y += h.text(0, y, chunk)
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = a.fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
