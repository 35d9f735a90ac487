package nurbs

import (
	"github.com/alexozer/nurbs/internal/homo"
	"github.com/pkg/errors"
)

// DefaultSubdivisions is the number of chords Length sums when measuring
// a curve.
const DefaultSubdivisions = 256

// CurveData is the raw description of a NURBS curve: the flat coordinate
// buffer of its control points, optional weights, knots and degree. It is
// the input and output of the transform algorithms.
//
// Control point i occupies Points[i*Dim : (i+1)*Dim]. A nil Weights slice
// denotes a non-rational curve.
type CurveData[T Scalar] struct {
	Dim     int
	Points  []T
	Weights []T
	Knots   []T
	Degree  int
}

// ControlPointCount returns the number of control points in d.
func (d CurveData[T]) ControlPointCount() int {
	if d.Dim <= 0 {
		return 0
	}
	return len(d.Points) / d.Dim
}

// CurveSample is a point on a curve and the parameter it was evaluated at.
type CurveSample[T Scalar, P any] struct {
	U  T
	Pt P
}

// curve is the dimension-agnostic core shared by Curve2 and Curve3.
type curve[T Scalar] struct {
	dim     int
	points  []T
	weights Weights[T]
	knots   KnotVector[T]
}

// Validate a curve description and build a curve that owns copies of all
// of its slices.
func newCurve[T Scalar](d CurveData[T]) (curve[T], error) {
	if d.Degree < 0 {
		return curve[T]{}, errors.Wrapf(ErrInvalidKnotVector, "negative degree %d", d.Degree)
	}
	if d.Dim <= 0 || len(d.Points)%d.Dim != 0 {
		return curve[T]{}, errors.Wrapf(ErrDimensionMismatch,
			"%d coordinates do not form %d-dimensional points", len(d.Points), d.Dim)
	}

	n := len(d.Points) / d.Dim
	if n < d.Degree+1 {
		return curve[T]{}, errors.Wrapf(ErrInsufficientControlPoints,
			"%d control points for degree %d, need at least %d", n, d.Degree, d.Degree+1)
	}

	weights, err := newWeights(d.Weights, n)
	if err != nil {
		return curve[T]{}, err
	}

	knots, err := NewKnotVector(d.Knots, d.Degree)
	if err != nil {
		return curve[T]{}, err
	}
	if want := n + d.Degree + 1; knots.Len() != want {
		return curve[T]{}, errors.Wrapf(ErrInvalidKnotVector,
			"%d knots for %d control points of degree %d, want %d", knots.Len(), n, d.Degree, want)
	}

	return curve[T]{
		dim:     d.Dim,
		points:  append([]T(nil), d.Points...),
		weights: weights,
		knots:   knots,
	}, nil
}

func (c *curve[T]) degree() int { return c.knots.degree }

func (c *curve[T]) count() int { return len(c.points) / c.dim }

// controlPoint returns a read-only view of control point i.
func (c *curve[T]) controlPoint(i int) []T {
	off := i * c.dim
	return c.points[off : off+c.dim : off+c.dim]
}

func (c *curve[T]) data() CurveData[T] {
	return CurveData[T]{
		Dim:     c.dim,
		Points:  append([]T(nil), c.points...),
		Weights: c.weights.Values(),
		Knots:   c.knots.Values(),
		Degree:  c.degree(),
	}
}

func (c *curve[T]) checkParam(t T) error {
	if !c.knots.IsParameterValid(t) {
		min, max := c.knots.Domain()
		return errors.Wrapf(ErrParameterOutOfRange, "parameter %v outside [%v, %v]", t, min, max)
	}
	return nil
}

func (c *curve[T]) checkDerivatives(t T, n int) error {
	if n < 0 {
		return errors.Wrapf(ErrParameterOutOfRange, "derivative count %d is negative", n)
	}
	return c.checkParam(t)
}

// Compute a point on a NURBS curve as the weighted average of the
// contributing control points. Parameters outside the domain are clamped.
func (c *curve[T]) point(t T) []T {
	b := BasisFunctions(c.knots, t)
	out := make([]T, c.dim)

	if !c.weights.IsRational() {
		for k, nk := range b.Values {
			homo.AddScaled(out, c.controlPoint(b.First()+k), nk)
		}
		return out
	}

	var den T
	for k, nk := range b.Values {
		i := b.First() + k
		nw := nk * c.weights.At(i)
		homo.AddScaled(out, c.controlPoint(i), nw)
		den += nw
	}
	for k := range out {
		out[k] /= den
	}

	return out
}

// Compute the point and first derivative of the curve. For rational curves
// the quotient rule C' = (A' - w'C) / w is applied to the weighted sums
// A = sum N_k w_k P_k and w = sum N_k w_k.
func (c *curve[T]) firstDerivative(t T) (pt, der []T) {
	b := BasisFunctionsWithDerivatives(c.knots, t)
	a := make([]T, c.dim)
	da := make([]T, c.dim)
	var w, dw T

	for k := range b.Values {
		i := b.First() + k
		wi := c.weights.At(i)
		homo.AddScaled(a, c.controlPoint(i), b.Values[k]*wi)
		homo.AddScaled(da, c.controlPoint(i), b.Derivatives[k]*wi)
		w += b.Values[k] * wi
		dw += b.Derivatives[k] * wi
	}

	if !c.weights.IsRational() {
		return a, da
	}

	for k := range a {
		a[k] /= w
		da[k] = (da[k] - dw*a[k]) / w
	}

	return a, da
}

// Determine the derivatives of a NURBS curve at a given parameter
// (corresponds to algorithms 3.2 and 4.2 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + parameter on the curve at which the derivatives are evaluated
// + number of derivatives to evaluate
//
// **returns**
// + numDerivs+1 vectors; the first is the point itself
func (c *curve[T]) derivatives(t T, numDerivs int) [][]T {
	t = c.knots.Clamp(t)
	p := c.degree()
	span := c.knots.SpanIndex(t)
	du := min(numDerivs, p)
	nders := derivativeBasis(c.knots.knots, span, t, p, du)

	// derivatives of the homogeneous curve (w*C, w)
	aders := zeros2d[T](numDerivs+1, c.dim+1)
	for k := 0; k <= du; k++ {
		for j := 0; j <= p; j++ {
			i := span - p + j
			nw := nders[k][j] * c.weights.At(i)
			homo.AddScaled(aders[k][:c.dim], c.controlPoint(i), nw)
			aders[k][c.dim] += nw
		}
	}

	ck := make([][]T, numDerivs+1)
	for k := 0; k <= numDerivs; k++ {
		v := append([]T(nil), aders[k][:c.dim]...)

		for i := 1; i <= k; i++ {
			homo.AddScaled(v, ck[k-i], -T(binomial(k, i))*aders[i][c.dim])
		}
		for x := range v {
			v[x] /= aders[0][c.dim]
		}

		ck[k] = v
	}

	return ck
}

// Sample the curve at numSamples equally spaced parameters, including both
// ends of the domain.
func (c *curve[T]) regularSample(numSamples int) (params []T, pts [][]T) {
	if numSamples < 2 {
		numSamples = 2
	}

	start, end := c.knots.Domain()
	span := (end - start) / T(numSamples-1)
	params = make([]T, numSamples)
	pts = make([][]T, numSamples)

	for i := range params {
		u := start + span*T(i)
		if i == numSamples-1 {
			u = end
		}
		params[i] = u
		pts[i] = c.point(u)
	}

	return params, pts
}

// Approximate the arc length by the length of the polyline through
// subdivisions+1 evenly spaced points.
func (c *curve[T]) approximateLength(subdivisions int) T {
	if subdivisions < 1 {
		subdivisions = 1
	}

	_, pts := c.regularSample(subdivisions + 1)
	diff := make([]T, c.dim)

	var sum T
	for i := 1; i < len(pts); i++ {
		for k := range diff {
			diff[k] = pts[i][k] - pts[i-1][k]
		}
		sum += norm(diff)
	}

	return sum
}

func (c *curve[T]) reversed() curve[T] {
	n := c.count()
	pts := make([]T, 0, len(c.points))
	for i := n - 1; i >= 0; i-- {
		pts = append(pts, c.controlPoint(i)...)
	}

	weights := c.weights
	if ws := c.weights.Values(); ws != nil {
		for i, j := 0, len(ws)-1; i < j; i, j = i+1, j-1 {
			ws[i], ws[j] = ws[j], ws[i]
		}
		weights = Weights[T]{individual: ws}
	}

	return curve[T]{
		dim:     c.dim,
		points:  pts,
		weights: weights,
		knots:   c.knots.Reversed(),
	}
}
