package brep

import (
	"fmt"
	"math"
)

// Presearch divides [t0, t1] into division equal parts, evaluates the curve
// at every boundary, and returns the parameter whose value is closest to pt.
// The result is a useful hint for [SearchNearestParameter], seeding the
// Newton iteration away from local-minimum traps.
//
// The cost is division+1 curve evaluations. division must be at least 1;
// Presearch panics otherwise.
func Presearch[V Vector[V]](c Curve[V], pt V, t0, t1 float64, division int) float64 {
	if division < 1 {
		panic(fmt.Sprintf("brep: Presearch division must be >= 1, got %d", division))
	}
	res := t0
	minDist := math.Inf(1)
	for i := 0; i <= division; i++ {
		p := float64(i) / float64(division)
		t := t0*(1.0-p) + t1*p
		if dist := c.Eval(t).Sub(pt).Hypot2(); dist < minDist {
			minDist = dist
			res = t
		}
	}
	return res
}

// SearchNearestParameter finds a parameter at which the curve is nearest to
// pt, by Newton iteration from hint on the stationarity condition
//
//	g(t) = Deriv(t) · (Eval(t) − pt) = 0
//
// which holds where the curve's tangent is orthogonal to the vector toward
// pt. Convergence is judged by the scale-invariant residual
// |g(t)| < tol·min(|Deriv(t)|, 1). If the Newton denominator
// Deriv2(t)·(Eval(t)−pt) + |Deriv(t)|² is smaller than tol in magnitude, the
// current iterate is returned rather than divided by it.
//
// At most trials Newton steps are taken. If the residual test still fails
// after that, the second return value is false and the caller must widen the
// search (a broader [Presearch], a larger budget) or accept failure.
func SearchNearestParameter[V Vector[V]](c Curve[V], pt V, hint float64, trials int, tol float64) (float64, bool) {
	t := hint
	for i := 0; ; i++ {
		diff := c.Eval(t).Sub(pt)
		der := c.Deriv(t)
		g := der.Dot(diff)
		gprime := c.Deriv2(t).Dot(diff) + der.Hypot2()
		if math.Abs(g) < tol*math.Min(der.Hypot(), 1.0) || SoSmall(gprime, tol) {
			return t, true
		}
		if i >= trials {
			return 0, false
		}
		t -= g / gprime
	}
}

// SearchParameter finds the parameter at which the curve passes through pt.
// It runs [SearchNearestParameter] and then requires the curve's value there
// to coincide with pt within tol, distinguishing "closest point regardless of
// distance" from "pt lies on the curve, and where". The second return value
// is false if either step fails.
func SearchParameter[V Vector[V]](c Curve[V], pt V, hint float64, trials int, tol float64) (float64, bool) {
	t, ok := SearchNearestParameter(c, pt, hint, trials, tol)
	if !ok || !Near(c.Eval(t), pt, tol) {
		return 0, false
	}
	return t, true
}
