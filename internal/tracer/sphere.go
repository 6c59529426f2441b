package tracer

import (
	"spheretrace/internal/geom"

	"github.com/chewxy/math32"
)

// The scene is one fixed sphere.
var (
	SphereCenter = geom.V3(0, 0, -1)
	SphereRadius = float32(0.5)
)

// HitSphere intersects r with the sphere at center.
//
// When the ray's line meets the sphere it returns the near root of
// |O + tD - C|^2 = radius^2 and hit = true. The root is not checked for sign;
// a ray starting inside or past the sphere yields t <= 0. A zero discriminant
// (tangent ray) counts as a hit.
func HitSphere(center geom.Vec3, radius float32, r geom.Ray) (t float32, hit bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.LengthSquared()
	halfB := geom.Dot(oc, r.Direction)
	c := oc.LengthSquared() - float32(radius*radius)
	disc := float32(halfB*halfB) - float32(a*c)
	if disc < 0 {
		return 0, false
	}
	return (-halfB - math32.Sqrt(disc)) / a, true
}
