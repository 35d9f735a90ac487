package nurbs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

// params returns n+1 evenly spaced parameters covering [min, max].
func params(min, max float64, n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = min + (max-min)*float64(i)/float64(n)
	}
	out[n] = max
	return out
}

func mustCurve3(t *testing.T, pts []Point3[float64], weights, knots []float64, degree int) *Curve3[float64] {
	t.Helper()
	c, err := NewCurve3(pts, weights, knots, degree)
	require.NoError(t, err)
	return c
}

// quarterCircle is the unit quarter circle in the xy plane from (1,0,0) to
// (0,1,0) as a rational quadratic Bezier curve.
func quarterCircle(t *testing.T) *Curve3[float64] {
	return mustCurve3(t,
		[]Point3[float64]{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]float64{1, 1 / sqrt2, 1},
		[]float64{0, 0, 0, 1, 1, 1}, 2)
}

const sqrt2 = 1.4142135623730951

// freeform is a non-rational cubic with an interior knot of multiplicity
// two.
func freeform(t *testing.T) *Curve3[float64] {
	return mustCurve3(t,
		[]Point3[float64]{{0, 0, 0}, {1, 2, 0}, {2, -1, 1}, {3, 3, 2}, {4, 0, 1}, {5, 1, 0}},
		nil,
		[]float64{0, 0, 0, 0, 1, 1, 2, 2, 2, 2}, 3)
}

// rationalFreeform is freeform with non-uniform weights.
func rationalFreeform(t *testing.T) *Curve3[float64] {
	return mustCurve3(t,
		[]Point3[float64]{{0, 0, 0}, {1, 2, 0}, {2, -1, 1}, {3, 3, 2}, {4, 0, 1}, {5, 1, 0}},
		[]float64{1, 0.5, 2, 1.5, 0.8, 1},
		[]float64{0, 0, 0, 0, 1, 1, 2, 2, 2, 2}, 3)
}

func requireSameCurve(t *testing.T, want, got *Curve3[float64], tol float64) {
	t.Helper()
	min, max := want.Domain()
	gmin, gmax := got.Domain()
	diff(t, []float64{min, max}, []float64{gmin, gmax}, approx(1e-12))

	for _, u := range params(min, max, 60) {
		p, q := want.PointAt(u), got.PointAt(u)
		if d := p.Distance(q); d > tol {
			t.Fatalf("at u = %v: got %v, want %v (distance %g)", u, q, p, d)
		}
	}
}
