package nurbs

import "github.com/pkg/errors"

// Curve2 is a NURBS curve in the plane. Curves are immutable: every structural
// edit returns a new, independent curve. A Curve2 is safe for concurrent
// use.
type Curve2[T Scalar] struct {
	c curve[T]
}

// NewCurve2 returns the curve of the given degree defined by control points,
// weights and knots. A nil weights slice makes the curve non-rational.
//
// The number of knots must equal len(points) + degree + 1, and at least
// degree+1 control points are required.
func NewCurve2[T Scalar](points []Point2[T], weights []T, knots []T, degree int) (*Curve2[T], error) {
	return NewCurve2FromData(CurveData[T]{
		Dim:     2,
		Points:  flatten2(points),
		Weights: weights,
		Knots:   knots,
		Degree:  degree,
	})
}

// NewCurve2FromData validates d, which must be two-dimensional, and
// returns the curve it describes.
func NewCurve2FromData[T Scalar](d CurveData[T]) (*Curve2[T], error) {
	if d.Dim != 2 {
		return nil, errors.Wrapf(ErrDimensionMismatch, "curve data is %d-dimensional, want 2", d.Dim)
	}
	c, err := newCurve(d)
	if err != nil {
		return nil, err
	}
	return &Curve2[T]{c}, nil
}

func (c *Curve2[T]) Degree() int { return c.c.degree() }
func (c *Curve2[T]) Knots() KnotVector[T] { return c.c.knots }
func (c *Curve2[T]) IsRational() bool { return c.c.weights.IsRational() }
func (c *Curve2[T]) ControlPointCount() int { return c.c.count() }
func (c *Curve2[T]) WeightAt(i int) T { return c.c.weights.At(i) }
func (c *Curve2[T]) Weights() []T { return c.c.weights.Values() }
func (c *Curve2[T]) Data() CurveData[T] { return c.c.data() }
func (c *Curve2[T]) Domain() (min, max T) { return c.c.knots.Domain() }
func (c *Curve2[T]) ControlPoint(i int) Point2[T] { return Point2[T](c.c.controlPoint(i)) }

// ControlPoints returns a copy of the control points.
func (c *Curve2[T]) ControlPoints() []Point2[T] {
	pts := make([]Point2[T], c.c.count())
	for i := range pts {
		pts[i] = c.ControlPoint(i)
	}
	return pts
}

// EvaluateAt returns the point at parameter t. It fails with
// [ErrParameterOutOfRange] if t is outside the domain.
func (c *Curve2[T]) EvaluateAt(t T) (Point2[T], error) {
	if err := c.c.checkParam(t); err != nil {
		return Point2[T]{}, err
	}
	return Point2[T](c.c.point(t)), nil
}

// PointAt returns the point at parameter t, clamping t to the domain.
func (c *Curve2[T]) PointAt(t T) Point2[T] {
	return Point2[T](c.c.point(t))
}

// DerivativeAt returns the first derivative with respect to the parameter at
// t. It fails with [ErrParameterOutOfRange] if t is outside the domain.
func (c *Curve2[T]) DerivativeAt(t T) (Point2[T], error) {
	if err := c.c.checkParam(t); err != nil {
		return Point2[T]{}, err
	}
	_, der := c.c.firstDerivative(t)
	return Point2[T](der), nil
}

// Derivatives returns the point at t followed by its first n derivatives.
// It fails with [ErrParameterOutOfRange] if t is outside the domain or n is
// negative.
func (c *Curve2[T]) Derivatives(t T, n int) ([]Point2[T], error) {
	if err := c.c.checkDerivatives(t, n); err != nil {
		return nil, err
	}
	ders := c.c.derivatives(t, n)
	out := make([]Point2[T], len(ders))
	for i, d := range ders {
		out[i] = Point2[T](d)
	}
	return out, nil
}

// TangentAt returns the unit tangent at t. It fails with
// [ErrDegenerateGeometry] where the derivative vanishes.
func (c *Curve2[T]) TangentAt(t T) (Point2[T], error) {
	der, err := c.DerivativeAt(t)
	if err != nil {
		return Point2[T]{}, err
	}
	l := der.Length()
	if l < Tolerance[T]() {
		return Point2[T]{}, errors.Wrapf(ErrDegenerateGeometry, "vanishing derivative at %v", t)
	}
	return der.Scale(1 / l), nil
}

// ApproximateLength returns the length of the polyline through
// subdivisions+1 points at evenly spaced parameters. The approximation
// never overestimates the arc length and improves as subdivisions grows.
func (c *Curve2[T]) ApproximateLength(subdivisions int) T {
	return c.c.approximateLength(subdivisions)
}

// Length approximates the arc length with [DefaultSubdivisions] chords.
func (c *Curve2[T]) Length() T {
	return c.c.approximateLength(DefaultSubdivisions)
}

// Sample evaluates the curve at n evenly spaced parameters covering the
// whole domain. n is raised to 2 if smaller.
func (c *Curve2[T]) Sample(n int) []CurveSample[T, Point2[T]] {
	params, pts := c.c.regularSample(n)
	samples := make([]CurveSample[T, Point2[T]], len(params))
	for i := range samples {
		samples[i] = CurveSample[T, Point2[T]]{params[i], Point2[T](pts[i])}
	}
	return samples
}

// InsertKnot returns the same curve with u inserted once into its knot
// vector. See [InsertKnot].
func (c *Curve2[T]) InsertKnot(u T) (*Curve2[T], error) {
	d, err := InsertKnot(c.c.data(), u)
	if err != nil {
		return nil, err
	}
	return NewCurve2FromData(d)
}

// RefineKnots returns the same curve with every value in us inserted into
// its knot vector. See [RefineKnots].
func (c *Curve2[T]) RefineKnots(us []T) (*Curve2[T], error) {
	d, err := RefineKnots(c.c.data(), us)
	if err != nil {
		return nil, err
	}
	return NewCurve2FromData(d)
}

// ElevateDegree returns the same curve with its degree raised by one. See
// [ElevateDegree].
func (c *Curve2[T]) ElevateDegree() (*Curve2[T], error) {
	d, err := ElevateDegree(c.c.data())
	if err != nil {
		return nil, err
	}
	return NewCurve2FromData(d)
}

// SplitAt divides the curve at u. See [Split].
func (c *Curve2[T]) SplitAt(u T) (left, right *Curve2[T], err error) {
	l, r, err := Split(c.c.data(), u)
	if err != nil {
		return nil, nil, err
	}
	if left, err = NewCurve2FromData(l); err != nil {
		return nil, nil, err
	}
	if right, err = NewCurve2FromData(r); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// Reverse returns the curve traversed in the opposite direction over a
// domain of the same length, starting at the same parameter.
func (c *Curve2[T]) Reverse() *Curve2[T] {
	return &Curve2[T]{c.c.reversed()}
}
