package tracer

import "spheretrace/internal/geom"

// WriteColor encodes c as opaque RGBA.
//
// Each channel is c*256 truncated toward zero and saturated to 0..255, so
// 1.0 encodes as 255 and 0.5 as 128. Negative values and NaN encode as 0.
func WriteColor(c geom.Vec3) [4]byte {
	return [4]byte{channel(c.X), channel(c.Y), channel(c.Z), 0xFF}
}

// PutColor writes WriteColor(c) into dst[0:4].
func PutColor(dst []byte, c geom.Vec3) {
	_ = dst[3]
	dst[0] = channel(c.X)
	dst[1] = channel(c.Y)
	dst[2] = channel(c.Z)
	dst[3] = 0xFF
}

func channel(v float32) byte {
	s := v * 256
	switch {
	case !(s > 0): // also catches NaN
		return 0
	case s >= 255:
		return 255
	}
	return byte(s)
}
