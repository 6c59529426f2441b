package app

import "spheretrace/hal"

// DefaultStep is how far one key event moves the camera.
const DefaultStep = float32(0.01)

// ApplyInput moves the camera origin by +step for every KeyUp press and by
// -step for every KeyDown press in events. Releases and other keys are
// ignored. It reports whether the origin was touched.
func ApplyInput(s *CameraState, events []hal.KeyEvent, step float32) bool {
	changed := false
	for _, ev := range events {
		if !ev.Press {
			continue
		}
		switch ev.Code {
		case hal.KeyUp:
			s.Nudge(step)
			changed = true
		case hal.KeyDown:
			s.Nudge(-step)
			changed = true
		}
	}
	return changed
}

func quitRequested(events []hal.KeyEvent) bool {
	for _, ev := range events {
		if ev.Code == hal.KeyEscape && ev.Press {
			return true
		}
	}
	return false
}

// drainKeys appends every pending event without blocking.
func drainKeys(kbd hal.Keyboard, dst []hal.KeyEvent) []hal.KeyEvent {
	if kbd == nil {
		return dst
	}
	ch := kbd.Events()
	if ch == nil {
		return dst
	}
	for {
		select {
		case ev := <-ch:
			dst = append(dst, ev)
		default:
			return dst
		}
	}
}
