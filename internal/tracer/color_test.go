package tracer

import (
	"math"
	"testing"

	"spheretrace/internal/geom"
)

func TestWriteColor(t *testing.T) {
	tests := []struct {
		in   geom.Vec3
		want [4]byte
	}{
		{geom.V3(1, 0, 0.5), [4]byte{255, 0, 128, 255}},
		{geom.V3(0, 0, 0), [4]byte{0, 0, 0, 255}},
		{geom.V3(0.25, 0.999, 0.75), [4]byte{64, 255, 192, 255}},
		{geom.V3(0.5, 0.7, 1.0), [4]byte{128, 179, 255, 255}},
		{geom.V3(-0.1, 2, 1e9), [4]byte{0, 255, 255, 255}},
		{geom.V3(0.0039, 0.004, 0.9961), [4]byte{0, 1, 255, 255}},
	}
	for _, tt := range tests {
		if got := WriteColor(tt.in); got != tt.want {
			t.Fatalf("WriteColor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWriteColorNaN(t *testing.T) {
	nan := float32(math.NaN())
	if got, want := WriteColor(geom.V3(nan, 0.5, nan)), [4]byte{0, 128, 0, 255}; got != want {
		t.Fatalf("WriteColor(NaN) = %v, want %v", got, want)
	}
}

func TestPutColor(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	PutColor(buf[4:], geom.V3(1, 0, 0.5))
	want := []byte{1, 2, 3, 4, 255, 0, 128, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}
