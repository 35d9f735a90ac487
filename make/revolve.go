package make

import (
	"math"

	"github.com/alexozer/nurbs"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// RevolvedSurface revolves profile by theta radians around the line through
// center with the unit direction axis
// (corresponds to algorithm 8.1 from The NURBS book, Piegl & Tiller 2nd edition).
//
// The u direction runs around the axis as a rational quadratic arc; v
// follows the profile.
func RevolvedSurface(profile *nurbs.Curve3[float64], center *vec3.T, axis *vec3.T, theta float64) (*nurbs.Surface[float64], error) {
	if !(theta > 0) {
		return nil, errors.Wrapf(nurbs.ErrDegenerateGeometry, "revolution by %v radians", theta)
	}

	profControlPoints := vecs(profile.ControlPoints())

	var narcs int
	switch {
	case theta <= math.Pi/2:
		narcs = 1
	case theta <= math.Pi:
		narcs = 2
	case theta <= 3*math.Pi/2:
		narcs = 3
	default:
		narcs = 4
	}

	knotsU := make([]float64, 2*narcs+4)
	fillArcKnots(knotsU, narcs)

	dtheta := theta / float64(narcs)
	wm := math.Cos(dtheta / 2)

	sines, cosines := make([]float64, narcs+1), make([]float64, narcs+1)
	var angle float64
	for i := 1; i <= narcs; i++ {
		angle += dtheta
		cosines[i] = math.Cos(angle)
		sines[i] = math.Sin(angle)
	}

	controlPoints := make([][]nurbs.Point3[float64], 2*narcs+1)
	weights := make([][]float64, 2*narcs+1)
	for i := range controlPoints {
		controlPoints[i] = make([]nurbs.Point3[float64], len(profControlPoints))
		weights[i] = make([]float64, len(profControlPoints))
	}

	// one column of the grid per profile control point
	for j, P0 := range profControlPoints {
		pw := profile.WeightAt(j)

		// O is the foot of the profile point on the axis
		O := rayClosestPoint(&P0, center, axis)
		X := vec3.Sub(&P0, &O)
		r := X.Length()
		Y := vec3.Cross(axis, &X)

		if r > nurbs.Epsilon[float64]() {
			X.Scale(1 / r)
			Y.Scale(1 / r)
		}

		controlPoints[0][j] = nurbs.Point3[float64](P0)
		weights[0][j] = pw

		T0 := Y
		index := 0

		for i := 1; i <= narcs; i++ {
			P2 := O
			if r > nurbs.Epsilon[float64]() {
				xCompon := X.Scaled(r * cosines[i])
				yCompon := Y.Scaled(r * sines[i])
				offset := vec3.Add(&xCompon, &yCompon)
				P2 = vec3.Add(&O, &offset)
			}

			controlPoints[index+2][j] = nurbs.Point3[float64](P2)
			weights[index+2][j] = pw

			// tangent of the rotation at P2
			temp0 := Y.Scaled(cosines[i])
			temp1 := X.Scaled(sines[i])
			T2 := vec3.Sub(&temp0, &temp1)

			P1 := O
			if r > nurbs.Epsilon[float64]() {
				T0Norm := T0.Normalized()
				T2Norm := T2.Normalized()
				u0, _, ok := rayIntersection(&P0, &T0Norm, &P2, &T2Norm)
				if !ok {
					return nil, errors.Wrapf(nurbs.ErrDegenerateGeometry, "parallel tangents revolving control point %d", j)
				}
				T0Scaled := T0Norm.Scaled(u0)
				P1 = vec3.Add(&P0, &T0Scaled)
			}

			controlPoints[index+1][j] = nurbs.Point3[float64](P1)
			weights[index+1][j] = wm * pw

			index += 2
			P0, T0 = P2, T2
		}
	}

	return nurbs.NewSurface(controlPoints, weights, knotsU, profile.Knots().Values(), 2, profile.Degree())
}

// SphericalSurface returns the sphere of the given radius around center.
// axis is the unit polar axis and xaxis a unit vector perpendicular to it
// where the parameterization starts.
func SphericalSurface(center *vec3.T, axis, xaxis *vec3.T, radius float64) (*nurbs.Surface[float64], error) {
	invAxis := axis.Inverted()
	arc, err := Arc(center, &invAxis, xaxis, radius, 0, math.Pi)
	if err != nil {
		return nil, err
	}
	return RevolvedSurface(arc, center, axis, 2*math.Pi)
}

// ConicalSurface returns the side of the cone with the given unit axis, base
// center, height from base to tip and base radius.
func ConicalSurface(axis, xaxis *vec3.T, base *vec3.T, height, radius float64) (*nurbs.Surface[float64], error) {
	heightCompon := axis.Scaled(height)
	radiusCompon := xaxis.Scaled(radius)
	profile, err := nurbs.NewCurve3([]nurbs.Point3[float64]{
		nurbs.Point3[float64](vec3.Add(base, &heightCompon)),
		nurbs.Point3[float64](vec3.Add(base, &radiusCompon)),
	}, nil, []float64{0, 0, 1, 1}, 1)
	if err != nil {
		return nil, err
	}
	return RevolvedSurface(profile, base, axis, 2*math.Pi)
}
