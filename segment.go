package brep

// Segment is the straight-line curve A + t(B−A), parametrized over [0, 1].
// It is the simplest [Curve].
type Segment[V Vector[V]] struct {
	A V
	B V
}

var _ Curve[Vec2] = Segment[Vec2]{}
var _ Curve[Vec3] = Segment[Vec3]{}

// Length returns the length of the segment.
func (s Segment[V]) Length() float64 {
	return s.B.Sub(s.A).Hypot()
}

func (s Segment[V]) Eval(t float64) V {
	return s.A.Add(s.B.Sub(s.A).Mul(t))
}

func (s Segment[V]) Deriv(t float64) V {
	return s.B.Sub(s.A)
}

func (s Segment[V]) Deriv2(t float64) V {
	return s.A.Sub(s.A)
}

func (s Segment[V]) Subsegment(t0, t1 float64) Segment[V] {
	return Segment[V]{s.Eval(t0), s.Eval(t1)}
}
