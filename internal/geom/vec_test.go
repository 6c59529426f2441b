package geom

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-5

func near(a, b float32) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), tol)
}

func nearVec(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestVecArithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 0.5, 2)

	if got, want := a.Add(b), V3(-3, 2.5, 5); got != want {
		t.Fatalf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), V3(5, 1.5, 1); got != want {
		t.Fatalf("Sub = %v, want %v", got, want)
	}
	if got, want := a.Mul(2), V3(2, 4, 6); got != want {
		t.Fatalf("Mul = %v, want %v", got, want)
	}
	if got, want := a.Div(2), V3(0.5, 1, 1.5); got != want {
		t.Fatalf("Div = %v, want %v", got, want)
	}
	if got, want := a.Neg(), V3(-1, -2, -3); got != want {
		t.Fatalf("Neg = %v, want %v", got, want)
	}
	if got, want := Dot(a, b), float32(-4+1+6); got != want {
		t.Fatalf("Dot = %v, want %v", got, want)
	}
	if got, want := a.LengthSquared(), float32(14); got != want {
		t.Fatalf("LengthSquared = %v, want %v", got, want)
	}
	if got := V3(3, 4, 0).Length(); got != 5 {
		t.Fatalf("Length = %v, want 5", got)
	}
}

func TestUnitHasLengthOne(t *testing.T) {
	vs := []Vec3{
		V3(1, 0, 0),
		V3(0, -3, 0),
		V3(1, 2, 3),
		V3(-0.001, 0.002, 0.0005),
		V3(1e4, -2e4, 3e3),
		V3(-1.7777778, 1.1428572, -1),
	}
	for _, v := range vs {
		u := v.Unit()
		if !near(u.LengthSquared(), 1) {
			t.Fatalf("|Unit(%v)|^2 = %v, want 1", v, u.LengthSquared())
		}
		if Dot(u, v) <= 0 {
			t.Fatalf("Unit(%v) = %v flips direction", v, u)
		}
	}
}

func TestUnitZeroPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrZeroVector) {
			t.Fatalf("recover() = %v, want ErrZeroVector", r)
		}
	}()
	_ = Vec3{}.Unit()
}

func TestLerp(t *testing.T) {
	white := One
	blue := V3(0.5, 0.7, 1)

	if got := Lerp(white, blue, 0); got != white {
		t.Fatalf("Lerp(t=0) = %v, want %v", got, white)
	}
	if got := Lerp(white, blue, 1); got != blue {
		t.Fatalf("Lerp(t=1) = %v, want %v", got, blue)
	}
	if got, want := Lerp(white, blue, 0.5), V3(0.75, 0.85, 1); !nearVec(got, want) {
		t.Fatalf("Lerp(t=0.5) = %v, want %v", got, want)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(V3(1, 1, 1), V3(0, 0, -2))
	if got := r.At(0); got != r.Origin {
		t.Fatalf("At(0) = %v, want origin", got)
	}
	if got, want := r.At(0.5), V3(1, 1, 0); got != want {
		t.Fatalf("At(0.5) = %v, want %v", got, want)
	}
	if got, want := r.At(-1), V3(1, 1, 3); got != want {
		t.Fatalf("At(-1) = %v, want %v", got, want)
	}
}
