package geom

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrZeroVector is the panic value of Unit when called on a zero-length vector.
var ErrZeroVector = errors.New("geom: unit vector of zero-length vector")

// Vec3 is a 3D vector. It is used for points, directions and colors alike.
type Vec3 struct {
	X, Y, Z float32
}

// One is (1, 1, 1).
var One = Vec3{1, 1, 1}

func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Neg() Vec3       { return Vec3{-v.X, -v.Y, -v.Z} }

// Mul scales v by s.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{float32(v.X * s), float32(v.Y * s), float32(v.Z * s)}
}

// Div divides every component by s.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{float32(v.X / s), float32(v.Y / s), float32(v.Z / s)}
}

func Dot(a, b Vec3) float32 {
	return float32(a.X*b.X) + float32(a.Y*b.Y) + float32(a.Z*b.Z)
}

func (v Vec3) LengthSquared() float32 { return Dot(v, v) }

func (v Vec3) Length() float32 { return math32.Sqrt(v.LengthSquared()) }

// Unit returns v scaled to length 1.
//
// v must not be the zero vector; Unit panics with ErrZeroVector otherwise.
func (v Vec3) Unit() Vec3 {
	l := v.Length()
	if l == 0 {
		panic(ErrZeroVector)
	}
	return v.Div(l)
}

// Lerp blends a into b: (1-t)*a + t*b.
func Lerp(a, b Vec3, t float32) Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
