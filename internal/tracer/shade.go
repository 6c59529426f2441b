package tracer

import "spheretrace/internal/geom"

var (
	skyWhite = geom.One
	skyBlue  = geom.V3(0.5, 0.7, 1.0)
)

// RayColor shades r.
//
// Rays hitting the front of the sphere get their surface normal mapped from
// [-1,1] to [0,1]. Everything else gets a white-to-blue vertical gradient.
func RayColor(r geom.Ray) geom.Vec3 {
	if t, hit := HitSphere(SphereCenter, SphereRadius, r); hit && t > 0 {
		n := r.At(t).Sub(SphereCenter).Unit()
		return n.Add(geom.One).Mul(0.5)
	}
	dir := r.Direction.Unit()
	t := 0.5 * (dir.Y + 1)
	return geom.Lerp(skyWhite, skyBlue, t)
}
