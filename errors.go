package nurbs

import "github.com/pkg/errors"

// The error kinds reported by constructors, evaluation and transforms. Errors
// returned by this package wrap exactly one of them; use [errors.Is] to tell
// them apart.
var (
	// ErrInsufficientControlPoints is returned when a curve or a surface
	// direction has fewer than degree+1 control points.
	ErrInsufficientControlPoints = errors.New("insufficient control points")

	// ErrInvalidKnotVector is returned for knot vectors that are not
	// non-decreasing, contain non-finite values, or whose length does not
	// equal control point count + degree + 1. Transforms return it when an
	// insertion would push a knot's multiplicity past degree+1.
	ErrInvalidKnotVector = errors.New("invalid knot vector")

	// ErrInvalidWeight is returned for non-positive or non-finite weights.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrParameterOutOfRange is returned by strict evaluation entry points and
	// by transforms for parameters outside the domain.
	ErrParameterOutOfRange = errors.New("parameter out of range")

	// ErrDimensionMismatch is returned when the shape of point or weight data
	// does not agree with the stated counts.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDegenerateGeometry is returned when a tangent or normal is requested
	// where a derivative vanishes.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
