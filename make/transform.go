package make

import (
	"github.com/alexozer/nurbs"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// TransformCurve applies the affine map mat to the control points of c.
// Weights and knots are unchanged, so the result is exactly the transformed
// curve.
func TransformCurve(c *nurbs.Curve3[float64], mat *mat4.T) (*nurbs.Curve3[float64], error) {
	pts := vecs(c.ControlPoints())
	for i := range pts {
		pts[i] = mat.MulVec3(&pts[i])
	}
	return nurbs.NewCurve3(points(pts), c.Weights(), c.Knots().Values(), c.Degree())
}

// TransformSurface applies the affine map mat to the control points of s.
func TransformSurface(s *nurbs.Surface[float64], mat *mat4.T) (*nurbs.Surface[float64], error) {
	d := s.Data()
	for i := 0; i < len(d.Points); i += 3 {
		p := vec3.T{d.Points[i], d.Points[i+1], d.Points[i+2]}
		p = mat.MulVec3(&p)
		copy(d.Points[i:i+3], p[:])
	}
	return nurbs.NewSurfaceFromData(d)
}
