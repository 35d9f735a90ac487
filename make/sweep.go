package make

import (
	"github.com/alexozer/nurbs"
	"github.com/ungerik/go3d/float64/vec3"
)

// SweptSurface translates profile along rail so that the profile's
// placement follows the rail's displacement from its start point:
//
//	S(u, v) = rail(u) - rail(umin) + profile(v)
//
// The control grid is the sum of both control polygons with the products of
// their weights, which represents the translational surface exactly.
func SweptSurface(profile, rail *nurbs.Curve3[float64]) (*nurbs.Surface[float64], error) {
	railPts := vecs(rail.ControlPoints())
	profPts := vecs(profile.ControlPoints())
	start := rail.PointAt(rail.Knots().At(rail.Degree()))
	origin := vec3.T(start)

	rational := rail.IsRational() || profile.IsRational()

	controlPoints := make([][]nurbs.Point3[float64], len(railPts))
	var weights [][]float64
	if rational {
		weights = make([][]float64, len(railPts))
	}

	for i := range railPts {
		offset := vec3.Sub(&railPts[i], &origin)
		controlPoints[i] = make([]nurbs.Point3[float64], len(profPts))
		if rational {
			weights[i] = make([]float64, len(profPts))
		}

		for j := range profPts {
			controlPoints[i][j] = nurbs.Point3[float64](vec3.Add(&profPts[j], &offset))
			if rational {
				weights[i][j] = rail.WeightAt(i) * profile.WeightAt(j)
			}
		}
	}

	return nurbs.NewSurface(controlPoints, weights,
		rail.Knots().Values(), profile.Knots().Values(),
		rail.Degree(), profile.Degree())
}
