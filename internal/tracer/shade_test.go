package tracer

import (
	"testing"

	"spheretrace/internal/geom"

	"gonum.org/v1/gonum/floats/scalar"
)

func nearVec(a, b geom.Vec3) bool {
	const tol = 1e-5
	return scalar.EqualWithinAbs(float64(a.X), float64(b.X), tol) &&
		scalar.EqualWithinAbs(float64(a.Y), float64(b.Y), tol) &&
		scalar.EqualWithinAbs(float64(a.Z), float64(b.Z), tol)
}

func gradient(dir geom.Vec3) geom.Vec3 {
	u := dir.Unit()
	t := 0.5 * (u.Y + 1)
	return geom.One.Mul(1 - t).Add(geom.V3(0.5, 0.7, 1.0).Mul(t))
}

func TestRayColorSky(t *testing.T) {
	dirs := []geom.Vec3{
		geom.V3(0, 1, 0),
		geom.V3(1, 1, 0),
		geom.V3(0, 0, 1),
		geom.V3(-3, -2, 5),
	}
	for _, d := range dirs {
		got := RayColor(geom.NewRay(geom.Vec3{}, d))
		if want := gradient(d); !nearVec(got, want) {
			t.Fatalf("RayColor(dir=%v) = %v, want %v", d, got, want)
		}
	}

	if got, want := RayColor(geom.NewRay(geom.Vec3{}, geom.V3(0, 1, 0))), geom.V3(0.5, 0.7, 1); !nearVec(got, want) {
		t.Fatalf("straight up = %v, want %v", got, want)
	}
}

func TestRayColorHeadOn(t *testing.T) {
	got := RayColor(geom.NewRay(geom.Vec3{}, geom.V3(0, 0, -1)))
	if want := geom.V3(0.5, 0.5, 1); !nearVec(got, want) {
		t.Fatalf("RayColor = %v, want %v", got, want)
	}
}

func TestRayColorNormalRange(t *testing.T) {
	for _, d := range []geom.Vec3{
		geom.V3(0.2, 0, -1),
		geom.V3(-0.2, 0.3, -1),
		geom.V3(0.1, -0.4, -1),
	} {
		r := geom.NewRay(geom.Vec3{}, d)
		if _, hit := HitSphere(SphereCenter, SphereRadius, r); !hit {
			t.Fatalf("dir %v misses the sphere", d)
		}
		c := RayColor(r)
		for _, v := range []float32{c.X, c.Y, c.Z} {
			if v < 0 || v > 1 {
				t.Fatalf("RayColor(dir=%v) = %v, component outside [0,1]", d, c)
			}
		}
		// The visible hemisphere faces +z.
		if c.Z <= 0.5 {
			t.Fatalf("RayColor(dir=%v) = %v, want z > 0.5", d, c)
		}
	}
}

func TestRayColorInsideSphereIsSky(t *testing.T) {
	d := geom.V3(0, 0, -1)
	got := RayColor(geom.NewRay(SphereCenter, d))
	if want := gradient(d); !nearVec(got, want) {
		t.Fatalf("RayColor = %v, want sky %v", got, want)
	}
}
