package make

import (
	"github.com/alexozer/nurbs"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// Line returns the straight segment from first to last as a degree 1 curve
// parameterized over [0, 1].
func Line(first, last *vec3.T) (*nurbs.Curve3[float64], error) {
	return Polyline([]vec3.T{*first, *last})
}

// Polyline returns the degree 1 curve through pts. The knots are the
// cumulative chord lengths normalized to [0, 1], so the parameter is
// proportional to arc length.
func Polyline(pts []vec3.T) (*nurbs.Curve3[float64], error) {
	if len(pts) < 2 {
		return nil, errors.Wrapf(nurbs.ErrInsufficientControlPoints, "polyline with %d points", len(pts))
	}

	knots := make([]float64, len(pts)+2)

	var lsum float64
	for i := 0; i < len(pts)-1; i++ {
		lsum += vec3.Distance(&pts[i], &pts[i+1])
		knots[i+2] = lsum
	}
	knots[len(knots)-1] = lsum

	if lsum == 0 {
		return nil, errors.Wrap(nurbs.ErrDegenerateGeometry, "polyline has zero length")
	}

	// normalize the knot array
	for i := range knots {
		knots[i] /= lsum
	}

	return nurbs.NewCurve3(points(pts), nil, knots, 1)
}

func points(pts []vec3.T) []nurbs.Point3[float64] {
	out := make([]nurbs.Point3[float64], len(pts))
	for i, p := range pts {
		out[i] = nurbs.Point3[float64](p)
	}
	return out
}

func vecs(pts []nurbs.Point3[float64]) []vec3.T {
	out := make([]vec3.T, len(pts))
	for i, p := range pts {
		out[i] = vec3.T(p)
	}
	return out
}
