package make

import (
	"github.com/alexozer/nurbs"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// FourPointSurface returns the bilinear patch through the corners p1, p2,
// p3, p4, given counter-clockwise, represented as a surface of the given
// degree in both directions.
func FourPointSurface(p1, p2, p3, p4 *vec3.T, degree int) (*nurbs.Surface[float64], error) {
	if degree < 1 {
		return nil, errors.Wrapf(nurbs.ErrInvalidKnotVector, "four point surface of degree %d", degree)
	}
	degreeFloat := float64(degree)

	pts := make([][]nurbs.Point3[float64], degree+1)
	for i := range pts {
		l := 1 - float64(i)/degreeFloat
		p1p2 := vec3.Interpolate(p1, p2, l)
		p4p3 := vec3.Interpolate(p4, p3, l)

		row := make([]nurbs.Point3[float64], degree+1)
		for j := range row {
			row[j] = nurbs.Point3[float64](vec3.Interpolate(&p1p2, &p4p3, 1-float64(j)/degreeFloat))
		}
		pts[i] = row
	}

	knots := make([]float64, 2*(degree+1))
	for i := degree + 1; i < len(knots); i++ {
		knots[i] = 1
	}

	return nurbs.NewSurface(pts, nil, knots, knots, degree, degree)
}
