package nurbs

import "github.com/pkg/errors"

// Weights is the weight model of a curve or surface. It is either Uniform,
// in which case every control point has the implicit weight 1 and the
// geometry is non-rational, or Individual, with one strictly positive
// weight per control point.
//
// The zero value is Uniform.
type Weights[T Scalar] struct {
	// nil for Uniform
	individual []T
}

// UniformWeights returns the Uniform weight model.
func UniformWeights[T Scalar]() Weights[T] {
	return Weights[T]{}
}

// IndividualWeights returns an Individual weight model holding a copy of ws.
// It fails with [ErrInvalidWeight] if any weight is non-positive or not
// finite, or if ws is empty.
func IndividualWeights[T Scalar](ws []T) (Weights[T], error) {
	if len(ws) == 0 {
		return Weights[T]{}, errors.Wrap(ErrInvalidWeight, "no weights given")
	}
	for i, w := range ws {
		if !isFinite(w) || w <= 0 {
			return Weights[T]{}, errors.Wrapf(ErrInvalidWeight, "weight %d is %v", i, w)
		}
	}

	return Weights[T]{individual: append([]T(nil), ws...)}, nil
}

// At returns the weight of the i-th control point.
func (w Weights[T]) At(i int) T {
	if w.individual == nil {
		return 1
	}
	return w.individual[i]
}

// IsRational reports whether the weights are Individual.
func (w Weights[T]) IsRational() bool {
	return w.individual != nil
}

// Len returns the number of stored weights, which is 0 for Uniform.
func (w Weights[T]) Len() int {
	return len(w.individual)
}

// Values returns a copy of the individual weights, or nil for Uniform.
func (w Weights[T]) Values() []T {
	if w.individual == nil {
		return nil
	}
	return append([]T(nil), w.individual...)
}

// newWeights maps a nil slice to Uniform and validates everything else
// against the number of control points.
func newWeights[T Scalar](ws []T, count int) (Weights[T], error) {
	if ws == nil {
		return UniformWeights[T](), nil
	}
	if len(ws) != count {
		return Weights[T]{}, errors.Wrapf(ErrDimensionMismatch,
			"%d weights for %d control points", len(ws), count)
	}
	return IndividualWeights(ws)
}
