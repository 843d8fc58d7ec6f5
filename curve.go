package brep

import "math"

// DefaultTolerance is a default value for functions that take a tolerance
// argument. It is suitable for coincidence checks in model space.
const DefaultTolerance = 1.0e-7

// Vector is the set of vector-space operations the numerical algorithms
// need. [Vec2] and [Vec3] satisfy it; so does any coordinate type with the
// same operations, which keeps the algorithms generic over the curve's
// dimensionality.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(float64) V
	Dot(V) float64
	Hypot() float64
	Hypot2() float64
}

// Curve describes a curve parametrized by a scalar over a caller-supplied
// domain [t0, t1], evaluating to its value and first two derivatives.
//
// Concrete curve representations (splines, conics, and so on) are supplied by
// the surrounding kernel; this package only consumes the interface.
type Curve[V Vector[V]] interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) V
	// Deriv evaluates the curve's first derivative at parameter t.
	Deriv(t float64) V
	// Deriv2 evaluates the curve's second derivative at parameter t.
	Deriv2(t float64) V
}

// SoSmall reports whether v's magnitude is below the tolerance.
func SoSmall(v, tol float64) bool {
	return math.Abs(v) < tol
}

// Near reports whether two values coincide within the tolerance.
func Near[V Vector[V]](a, b V, tol float64) bool {
	return a.Sub(b).Hypot() < tol
}
