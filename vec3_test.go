package brep

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	diff(t, Vec3D(0, 0, 1), Vec3D(1, 0, 0).Cross(Vec3D(0, 1, 0)))
	diff(t, Vec3D(0, 0, -1), Vec3D(0, 1, 0).Cross(Vec3D(1, 0, 0)))

	a := Vec3D(1, -2, 3)
	b := Vec3D(-4, 0.5, 2)
	c := a.Cross(b)
	if c.Dot(a) != 0 || c.Dot(b) != 0 {
		t.Errorf("cross product %v isn't orthogonal to its factors", c)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3D(3, -4, 12).Normalize()
	if d := math.Abs(n.Hypot() - 1); d > 1e-15 {
		t.Errorf("normalized magnitude off by %g", d)
	}
	if !Vec3D(0, 0, 0).Normalize().IsNaN() {
		t.Error("normalizing the zero vector should produce NaN")
	}
}
