package brep

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrSubdivision reports that [ParameterDivision] hit its subdivision depth
// limit without reaching the requested tolerance, as happens for degenerate
// curves or an unreachably small tolerance.
var ErrSubdivision = errors.New("brep: curve subdivision cannot reach the requested tolerance")

// maxSubdivisionDepth bounds how often ParameterDivision may halve the
// parameter range. At 32 halvings the subranges are ~2e-10 of the original
// range; a curve that is not chord-flat at that scale is degenerate for
// tessellation purposes.
const maxSubdivisionDepth = 32

// ParameterDivision approximates the curve over [t0, t1] by an ordered
// polyline whose deviation from the curve stays within tol. It returns
// strictly ascending parameters, starting exactly at t0 and ending exactly
// at t1, and the curve's values at those parameters.
//
// Flatness of a range is probed at a randomly jittered interior fraction,
// comparing the curve against the chord between the range's endpoints. The
// jitter avoids probing exactly at symmetric or periodic points of a curve,
// where a fixed probe could be fooled; it makes the output non-deterministic
// across runs, though every output honors the tolerance bound. Ranges that
// fail the probe are split at their exact midpoint, so adjacent pieces share
// exactly one boundary point.
//
// Curves whose ranges never flatten (a discontinuous derivative, tol = 0)
// are reported as a recoverable error wrapping [ErrSubdivision] once the
// range has been halved maxSubdivisionDepth times.
func ParameterDivision[V Vector[V]](c Curve[V], t0, t1, tol float64) ([]float64, []V, error) {
	return subParameterDivision(c, t0, t1, c.Eval(t0), c.Eval(t1), tol, 0)
}

func subParameterDivision[V Vector[V]](c Curve[V], t0, t1 float64, p0, p1 V, tol float64, depth int) ([]float64, []V, error) {
	p := 0.5 + (0.2*rand.Float64() - 0.1)
	t := t0*(1.0-p) + t1*p
	chord := p0.Add(p1.Sub(p0).Mul(p))
	if c.Eval(t).Sub(chord).Hypot() < tol {
		return []float64{t0, t1}, []V{p0, p1}, nil
	}
	if depth >= maxSubdivisionDepth {
		return nil, nil, fmt.Errorf("%w: range [%g, %g] at depth %d", ErrSubdivision, t0, t1, depth)
	}
	tm := 0.5 * (t0 + t1)
	pm := c.Eval(tm)
	params, pts, err := subParameterDivision(c, t0, tm, p0, pm, tol, depth+1)
	if err != nil {
		return nil, nil, err
	}
	rparams, rpts, err := subParameterDivision(c, tm, t1, pm, p1, tol, depth+1)
	if err != nil {
		return nil, nil, err
	}
	// The midpoint ends the left half and starts the right half; keep it once.
	params = append(params[:len(params)-1], rparams...)
	pts = append(pts[:len(pts)-1], rpts...)
	return params, pts, nil
}
