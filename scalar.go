package nurbs

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint satisfied by the coordinate, weight and
// parameter types of curves and surfaces.
type Scalar interface {
	constraints.Float
}

func is32[T Scalar]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Epsilon returns the tolerance used to compare knots and parameters.
func Epsilon[T Scalar]() T {
	if is32[T]() {
		return 1e-5
	}
	return 1e-10
}

// Tolerance returns the geometric tolerance used to decide whether a
// derivative vector or an area has vanished.
func Tolerance[T Scalar]() T {
	if is32[T]() {
		return 1e-3
	}
	return 1e-6
}

func isFinite[T Scalar](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func sqrt[T Scalar](v T) T {
	return T(math.Sqrt(float64(v)))
}

func abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
