package brep

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	fn()
}

// unitCircle traces the unit circle, parametrized by angle.
type unitCircle struct{}

func (unitCircle) Eval(t float64) Vec2   { return Vec(math.Cos(t), math.Sin(t)) }
func (unitCircle) Deriv(t float64) Vec2  { return Vec(-math.Sin(t), math.Cos(t)) }
func (unitCircle) Deriv2(t float64) Vec2 { return Vec(-math.Cos(t), -math.Sin(t)) }

// stuckCurve evaluates to a single point everywhere. Its Newton denominator
// is identically zero.
type stuckCurve struct {
	at Vec2
}

func (c stuckCurve) Eval(t float64) Vec2   { return c.at }
func (c stuckCurve) Deriv(t float64) Vec2  { return Vec2{} }
func (c stuckCurve) Deriv2(t float64) Vec2 { return Vec2{} }
