// Package make builds common curves and surfaces as NURBS: lines, conics,
// Bezier curves and the classic swept, extruded and revolved surfaces.
package make

import (
	"math"

	"github.com/alexozer/nurbs"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// Arc returns a circular arc around center in the plane spanned by the unit
// vectors xaxis and yaxis. Angles are in radians measured from xaxis
// towards yaxis.
func Arc(center *vec3.T, xaxis, yaxis *vec3.T, radius float64, startAngle, endAngle float64) (*nurbs.Curve3[float64], error) {
	xaxisScaled, yaxisScaled := xaxis.Scaled(radius), yaxis.Scaled(radius)
	return EllipseArc(center, &xaxisScaled, &yaxisScaled, startAngle, endAngle)
}

// Circle returns the full circle of the given radius around center.
func Circle(center *vec3.T, xaxis, yaxis *vec3.T, radius float64) (*nurbs.Curve3[float64], error) {
	return Arc(center, xaxis, yaxis, radius, 0, 2*math.Pi)
}

// Ellipse returns the full ellipse with semi-axes xaxis and yaxis.
func Ellipse(center *vec3.T, xaxis, yaxis *vec3.T) (*nurbs.Curve3[float64], error) {
	return EllipseArc(center, xaxis, yaxis, 0, 2*math.Pi)
}

// EllipseArc returns an elliptical arc as a rational quadratic curve made
// of at most four segments of no more than 90 degrees each
// (corresponds to algorithm 7.1 from The NURBS book, Piegl & Tiller 2nd edition).
//
// The lengths of xaxis and yaxis are the semi-axes. If endAngle is less
// than startAngle, the full ellipse starting at startAngle is returned.
func EllipseArc(center *vec3.T, xaxis, yaxis *vec3.T, startAngle, endAngle float64) (*nurbs.Curve3[float64], error) {
	xradius, yradius := xaxis.Length(), yaxis.Length()
	if xradius < nurbs.Epsilon[float64]() || yradius < nurbs.Epsilon[float64]() {
		return nil, errors.Wrapf(nurbs.ErrDegenerateGeometry, "ellipse radii %v, %v", xradius, yradius)
	}

	xaxisNorm, yaxisNorm := xaxis.Normalized(), yaxis.Normalized()

	// if the end angle is less than the start angle, do a full turn
	if endAngle < startAngle {
		endAngle = 2.0*math.Pi + startAngle
	}

	theta := endAngle - startAngle
	if theta == 0 {
		return nil, errors.Wrap(nurbs.ErrDegenerateGeometry, "arc spans no angle")
	}

	var numArcs int
	switch {
	case theta <= math.Pi/2:
		numArcs = 1
	case theta <= math.Pi:
		numArcs = 2
	case theta <= 3*math.Pi/2:
		numArcs = 3
	default:
		numArcs = 4
	}

	dtheta := theta / float64(numArcs)
	w1 := math.Cos(dtheta / 2)

	onEllipse := func(angle float64) vec3.T {
		xCompon := xaxisNorm.Scaled(xradius * math.Cos(angle))
		yCompon := yaxisNorm.Scaled(yradius * math.Sin(angle))
		offset := vec3.Add(&xCompon, &yCompon)
		return vec3.Add(center, &offset)
	}
	tangent := func(angle float64) vec3.T {
		temp0 := yaxisNorm.Scaled(yradius * math.Cos(angle))
		temp1 := xaxisNorm.Scaled(xradius * math.Sin(angle))
		return vec3.Sub(&temp0, &temp1)
	}

	P0 := onEllipse(startAngle)
	T0 := tangent(startAngle)

	controlPoints := make([]vec3.T, 2*numArcs+1)
	weights := make([]float64, 2*numArcs+1)
	knots := make([]float64, 2*numArcs+4)

	controlPoints[0] = P0
	weights[0] = 1.0

	index := 0
	angle := startAngle
	for i := 1; i <= numArcs; i++ {
		angle += dtheta
		P2 := onEllipse(angle)
		T2 := tangent(angle)

		weights[index+2] = 1
		controlPoints[index+2] = P2

		T0Norm := T0.Normalized()
		T2Norm := T2.Normalized()
		u0, _, ok := rayIntersection(&P0, &T0Norm, &P2, &T2Norm)
		if !ok {
			return nil, errors.Wrapf(nurbs.ErrDegenerateGeometry, "parallel tangents on arc segment %d", i)
		}

		T0Scaled := T0Norm.Scaled(u0)
		controlPoints[index+1] = vec3.Add(&P0, &T0Scaled)
		weights[index+1] = w1

		index += 2
		P0, T0 = P2, T2
	}

	fillArcKnots(knots, numArcs)
	return nurbs.NewCurve3(points(controlPoints), weights, knots, 2)
}

// fillArcKnots writes the clamped quadratic knot vector of an arc made of
// numArcs segments, with every interior knot doubled.
func fillArcKnots(knots []float64, numArcs int) {
	j := 2*numArcs + 1
	for i := 0; i < 3; i++ {
		knots[i] = 0
		knots[i+j] = 1
	}
	for i := 1; i < numArcs; i++ {
		k := float64(i) / float64(numArcs)
		knots[1+2*i] = k
		knots[2+2*i] = k
	}
}

// BezierCurve returns the Bezier curve with the given control points; its
// degree is one less than the number of points.
func BezierCurve(controlPoints []vec3.T) (*nurbs.Curve3[float64], error) {
	if len(controlPoints) == 0 {
		return nil, errors.Wrap(nurbs.ErrInsufficientControlPoints, "bezier curve with no control points")
	}
	degree := len(controlPoints) - 1

	knots := make([]float64, 2*degree+2)
	for i := degree + 1; i < len(knots); i++ {
		knots[i] = 1
	}

	return nurbs.NewCurve3(points(controlPoints), nil, knots, degree)
}
