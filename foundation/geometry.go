// Package foundation provides shape-level queries over curves and surfaces:
// bounding boxes, coarse classification, measurement and approximate
// comparison.
package foundation

import (
	"github.com/alexozer/nurbs"
)

// Geometry is the common view of curves and surfaces.
type Geometry[T nurbs.Scalar] interface {
	Kind() Kind
	// BoundingBox returns a box containing the geometry. It is the box of
	// the control points, which contains the geometry because every point
	// is a convex combination of control points.
	BoundingBox() BoundingBox[T]
	// Measure returns the approximate length of a curve or area of a
	// surface.
	Measure() T
}

// Option configures a Geometry wrapper.
type Option func(*options)

type options struct {
	subdivisions int
}

func defaultOptions() options {
	return options{subdivisions: nurbs.DefaultSubdivisions}
}

// WithSubdivisions sets the number of chords per curve, or cells per
// surface direction, that Measure uses.
func WithSubdivisions(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.subdivisions = n
		}
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type curve2[T nurbs.Scalar] struct {
	c    *nurbs.Curve2[T]
	opts options
}

// WrapCurve2 returns the Geometry view of a planar curve. The bounding box
// lies in the z = 0 plane.
func WrapCurve2[T nurbs.Scalar](c *nurbs.Curve2[T], opts ...Option) Geometry[T] {
	return curve2[T]{c, applyOptions(opts)}
}

func (g curve2[T]) Kind() Kind { return ClassifyCurve2(g.c) }
func (g curve2[T]) Measure() T { return g.c.ApproximateLength(g.opts.subdivisions) }

func (g curve2[T]) BoundingBox() BoundingBox[T] {
	var bb BoundingBox[T]
	for _, p := range g.c.ControlPoints() {
		bb.Add(nurbs.Point3[T]{p[0], p[1], 0})
	}
	return bb
}

type curve3[T nurbs.Scalar] struct {
	c    *nurbs.Curve3[T]
	opts options
}

// WrapCurve3 returns the Geometry view of a space curve.
func WrapCurve3[T nurbs.Scalar](c *nurbs.Curve3[T], opts ...Option) Geometry[T] {
	return curve3[T]{c, applyOptions(opts)}
}

func (g curve3[T]) Kind() Kind { return ClassifyCurve3(g.c) }
func (g curve3[T]) Measure() T { return g.c.ApproximateLength(g.opts.subdivisions) }

func (g curve3[T]) BoundingBox() BoundingBox[T] {
	var bb BoundingBox[T]
	bb.AddRange(g.c.ControlPoints())
	return bb
}

type surface[T nurbs.Scalar] struct {
	s    *nurbs.Surface[T]
	opts options
}

// WrapSurface returns the Geometry view of a surface.
func WrapSurface[T nurbs.Scalar](s *nurbs.Surface[T], opts ...Option) Geometry[T] {
	return surface[T]{s, applyOptions(opts)}
}

func (g surface[T]) Kind() Kind { return ClassifySurface(g.s) }

func (g surface[T]) Measure() T {
	n := g.opts.subdivisions
	return g.s.ApproximateArea(n, n)
}

func (g surface[T]) BoundingBox() BoundingBox[T] {
	var bb BoundingBox[T]
	for i := 0; i < g.s.CountU(); i++ {
		for j := 0; j < g.s.CountV(); j++ {
			bb.Add(g.s.ControlPoint(i, j))
		}
	}
	return bb
}

// comparisonSamples is the number of points ApproxEqualCurves compares when
// the control data differs.
const comparisonSamples = 33

// ApproxEqualCurves reports whether a and b describe the same curve within
// tol. Curves with the same degree and control data within tol are equal;
// otherwise both are sampled at the same normalized parameters, which
// recognizes the same shape after knot insertion or degree elevation.
func ApproxEqualCurves[T nurbs.Scalar](a, b *nurbs.Curve3[T], tol T) bool {
	if sameData(a.Data(), b.Data(), tol) {
		return true
	}

	amin, amax := a.Domain()
	bmin, bmax := b.Domain()
	for i := 0; i < comparisonSamples; i++ {
		s := T(i) / T(comparisonSamples-1)
		pa := a.PointAt(amin + s*(amax-amin))
		pb := b.PointAt(bmin + s*(bmax-bmin))
		if pa.Distance(pb) > tol {
			return false
		}
	}
	return true
}

func sameData[T nurbs.Scalar](a, b nurbs.CurveData[T], tol T) bool {
	if a.Degree != b.Degree || a.Dim != b.Dim ||
		len(a.Points) != len(b.Points) || len(a.Knots) != len(b.Knots) ||
		(a.Weights == nil) != (b.Weights == nil) {
		return false
	}
	return within(a.Points, b.Points, tol) && within(a.Weights, b.Weights, tol) && within(a.Knots, b.Knots, tol)
}

func within[T nurbs.Scalar](a, b []T, tol T) bool {
	for i := range a {
		if d := a[i] - b[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}
