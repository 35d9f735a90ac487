package make

import (
	"github.com/alexozer/nurbs"
	"github.com/ungerik/go3d/float64/vec3"
)

// ExtrudedSurface sweeps profile along axis scaled by length. The u
// direction runs from the translated profile back to the original one; v
// follows the profile.
func ExtrudedSurface(axis *vec3.T, length float64, profile *nurbs.Curve3[float64]) (*nurbs.Surface[float64], error) {
	profControlPoints := vecs(profile.ControlPoints())
	n := len(profControlPoints)

	controlPoints, weights := make([][]nurbs.Point3[float64], 3), make([][]float64, 3)
	for i := range controlPoints {
		controlPoints[i] = make([]nurbs.Point3[float64], n)
		weights[i] = make([]float64, n)
	}

	translation := axis.Scaled(length)
	halfTranslation := translation.Scaled(0.5)

	for j, p := range profControlPoints {
		controlPoints[2][j] = nurbs.Point3[float64](p)
		controlPoints[1][j] = nurbs.Point3[float64](vec3.Add(&halfTranslation, &p))
		controlPoints[0][j] = nurbs.Point3[float64](vec3.Add(&translation, &p))

		w := profile.WeightAt(j)
		weights[0][j], weights[1][j], weights[2][j] = w, w, w
	}

	if !profile.IsRational() {
		weights = nil
	}

	return nurbs.NewSurface(controlPoints, weights,
		[]float64{0, 0, 0, 1, 1, 1}, profile.Knots().Values(),
		2, profile.Degree())
}

// CylindricalSurface returns the side of the cylinder with the given unit
// axis, base center, height and radius. xaxis is the unit vector in the
// base plane where the parameterization starts.
func CylindricalSurface(axis, xaxis *vec3.T, base *vec3.T, height, radius float64) (*nurbs.Surface[float64], error) {
	yaxis := vec3.Cross(axis, xaxis)
	circ, err := Circle(base, xaxis, &yaxis, radius)
	if err != nil {
		return nil, err
	}
	return ExtrudedSurface(axis, height, circ)
}
