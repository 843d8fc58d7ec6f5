package brep

import (
	"errors"
	"math"
	"testing"
)

func TestParameterDivisionLine(t *testing.T) {
	line := Segment[Vec3]{Vec3D(0, 0, 0), Vec3D(4, -1, 2)}
	params, pts, err := ParameterDivision[Vec3](line, 0, 1, 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{0, 1}, params)
	diff(t, []Vec3{line.A, line.B}, pts)
}

func TestParameterDivisionCircle(t *testing.T) {
	c := unitCircle{}
	const tol = 1e-3
	t0, t1 := 0.0, math.Pi
	params, pts, err := ParameterDivision[Vec2](c, t0, t1, tol)
	if err != nil {
		t.Fatal(err)
	}

	if len(params) != len(pts) {
		t.Fatalf("%d parameters but %d points", len(params), len(pts))
	}
	if params[0] != t0 || params[len(params)-1] != t1 {
		t.Errorf("range is [%g, %g], want [%g, %g]", params[0], params[len(params)-1], t0, t1)
	}
	for i := range params[:len(params)-1] {
		if params[i] >= params[i+1] {
			t.Fatalf("parameters not strictly ascending at %d: %g >= %g", i, params[i], params[i+1])
		}
	}
	for i, ts := range params {
		if pts[i] != c.Eval(ts) {
			t.Errorf("point %d is %v, want %v", i, pts[i], c.Eval(ts))
		}
	}

	// Each chord stays within tolerance of the curve between its endpoints.
	// The flatness probe samples one jittered interior point per range, so
	// allow twice the tolerance for the deviation it may underestimate.
	for i := range params[:len(params)-1] {
		for j := 1; j < 10; j++ {
			s := float64(j) / 10.0
			ts := params[i] + s*(params[i+1]-params[i])
			d := c.Eval(ts).Sub(pts[i].Lerp(pts[i+1], s)).Hypot()
			if d > 2*tol {
				t.Fatalf("chord %d deviates by %g at s=%g, want at most %g", i, d, s, 2*tol)
			}
		}
	}
}

func TestParameterDivisionUnreachableTolerance(t *testing.T) {
	line := Segment[Vec2]{Vec(0, 0), Vec(1, 0)}
	_, _, err := ParameterDivision[Vec2](line, 0, 1, 0)
	if !errors.Is(err, ErrSubdivision) {
		t.Fatalf("got %v, want ErrSubdivision", err)
	}
}
