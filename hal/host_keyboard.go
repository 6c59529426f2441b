//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

// poll runs once per window tick. Movement keys report a press on every tick
// they stay down; Escape reports only the initial press.
func (k *hostKeyboard) poll() {
	held := func(key ebiten.Key, code KeyCode) {
		if ebiten.IsKeyPressed(key) {
			k.emit(KeyEvent{Code: code, Press: true, Held: !inpututil.IsKeyJustPressed(key)})
			return
		}
		if inpututil.IsKeyJustReleased(key) {
			k.emit(KeyEvent{Code: code, Press: false})
		}
	}
	held(ebiten.KeyW, KeyUp)
	held(ebiten.KeyR, KeyDown)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.emit(KeyEvent{Code: KeyEscape, Press: true})
	}
}
