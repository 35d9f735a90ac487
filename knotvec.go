package nurbs

import (
	"github.com/pkg/errors"
)

// KnotVector is a non-decreasing sequence of knot values, paired with the
// degree of the basis functions defined over it. The zero value is not
// usable; construct knot vectors with [NewKnotVector].
//
// A KnotVector never changes after construction. Transforms produce new knot
// vectors instead of editing existing ones.
type KnotVector[T Scalar] struct {
	knots  []T
	degree int
}

// KnotMultiplicity is a distinct knot value and the number of times it
// occurs.
type KnotMultiplicity[T Scalar] struct {
	Knot T
	Mult int
}

// NewKnotVector validates values and returns a knot vector for basis
// functions of the given degree. The values are copied.
//
// It fails with [ErrInvalidKnotVector] if the degree is negative, if there
// are fewer than 2*(degree+1) values, if any value is not finite, if the
// sequence decreases, if a knot occurs more than degree+1 times, or if the
// domain is empty.
func NewKnotVector[T Scalar](values []T, degree int) (KnotVector[T], error) {
	if err := checkKnots(values, degree); err != nil {
		return KnotVector[T]{}, err
	}

	return KnotVector[T]{knots: append([]T(nil), values...), degree: degree}, nil
}

func checkKnots[T Scalar](values []T, degree int) error {
	if degree < 0 {
		return errors.Wrapf(ErrInvalidKnotVector, "negative degree %d", degree)
	}
	if len(values) < 2*(degree+1) {
		return errors.Wrapf(ErrInvalidKnotVector,
			"%d knots is too few for degree %d, need at least %d", len(values), degree, 2*(degree+1))
	}

	run := 0
	for i, knot := range values {
		if !isFinite(knot) {
			return errors.Wrapf(ErrInvalidKnotVector, "knot %d is not finite", i)
		}
		if i == 0 {
			run = 1
			continue
		}

		switch prev := values[i-1]; {
		case knot < prev:
			return errors.Wrapf(ErrInvalidKnotVector, "knot %d (%v) is less than knot %d (%v)", i, knot, i-1, prev)
		case knot == prev:
			run++
		default:
			run = 1
		}

		if run > degree+1 {
			return errors.Wrapf(ErrInvalidKnotVector, "knot %v occurs more than %d times", knot, degree+1)
		}
	}

	if values[degree] >= values[len(values)-degree-1] {
		return errors.Wrapf(ErrInvalidKnotVector, "empty domain [%v, %v]", values[degree], values[len(values)-degree-1])
	}

	return nil
}

// Len returns the number of knots.
func (kv KnotVector[T]) Len() int { return len(kv.knots) }

// At returns the i-th knot.
func (kv KnotVector[T]) At(i int) T { return kv.knots[i] }

// Degree returns the degree the knot vector was validated for.
func (kv KnotVector[T]) Degree() int { return kv.degree }

// Values returns a copy of the knots.
func (kv KnotVector[T]) Values() []T {
	return append([]T(nil), kv.knots...)
}

// Domain returns the valid parameter range [u_p, u_{m-p}], where p is the
// degree and m+1 the number of knots.
func (kv KnotVector[T]) Domain() (min, max T) {
	return kv.knots[kv.degree], kv.knots[len(kv.knots)-kv.degree-1]
}

// IsParameterValid reports whether t lies within the domain, endpoints
// included.
func (kv KnotVector[T]) IsParameterValid(t T) bool {
	min, max := kv.Domain()
	return t >= min && t <= max
}

// Clamp returns t limited to the domain.
func (kv KnotVector[T]) Clamp(t T) T {
	min, max := kv.Domain()
	switch {
	case t < min:
		return min
	case t > max:
		return max
	default:
		return t
	}
}

// SpanIndex returns the index i of the knot span [u_i, u_{i+1}) containing t
// (algorithm A2.1 from The NURBS Book, Piegl & Tiller 2nd edition).
//
// Parameters outside the domain are clamped to it. The domain maximum maps
// to the last non-empty span, so the returned span is never empty.
func (kv KnotVector[T]) SpanIndex(t T) int {
	knots, p := kv.knots, kv.degree
	n := len(knots) - p - 2

	if t >= knots[n+1] {
		i := n
		for knots[i] == knots[i+1] {
			i--
		}
		return i
	}

	if t <= knots[p] {
		i := p
		for knots[i] == knots[i+1] {
			i++
		}
		return i
	}

	low, high := p, n+1
	mid := (low + high) / 2

	for t < knots[mid] || t >= knots[mid+1] {
		if t < knots[mid] {
			high = mid
		} else {
			low = mid
		}

		mid = (low + high) / 2
	}

	return mid
}

// MultiplicityAt returns how many knots are exactly equal to value.
func (kv KnotVector[T]) MultiplicityAt(value T) int {
	return multiplicity(kv.knots, value)
}

func multiplicity[T Scalar](knots []T, value T) int {
	var n int
	for _, knot := range knots {
		if knot == value {
			n++
		} else if knot > value {
			break
		}
	}
	return n
}

// Multiplicities returns the distinct knot values in increasing order along
// with their multiplicities.
func (kv KnotVector[T]) Multiplicities() []KnotMultiplicity[T] {
	mults := []KnotMultiplicity[T]{{kv.knots[0], 0}}

	var cur int
	for _, knot := range kv.knots {
		if knot != mults[cur].Knot {
			mults = append(mults, KnotMultiplicity[T]{knot, 0})
			cur++
		}

		mults[cur].Mult++
	}

	return mults
}

// IsClamped reports whether the first and the last degree+1 knots are equal,
// in which case the curve interpolates its end control points.
func (kv KnotVector[T]) IsClamped() bool {
	p, knots := kv.degree, kv.knots
	for i := 1; i <= p; i++ {
		if knots[i] != knots[0] || knots[len(knots)-1-i] != knots[len(knots)-1] {
			return false
		}
	}
	return true
}

// IsUniform reports whether the knots bounding the spans of the domain are
// evenly spaced.
func (kv KnotVector[T]) IsUniform() bool {
	p, knots := kv.degree, kv.knots
	first, last := p, len(knots)-p-1
	if last-first < 2 {
		return true
	}

	step := knots[first+1] - knots[first]
	tol := Epsilon[T]() * (knots[last] - knots[first])
	for i := first + 1; i < last; i++ {
		if abs(knots[i+1]-knots[i]-step) > tol {
			return false
		}
	}
	return true
}

// Reversed returns the knot vector of the reversed parametrization, which
// starts at the same value and has mirrored spacing.
func (kv KnotVector[T]) Reversed() KnotVector[T] {
	return KnotVector[T]{knots: reversedKnots(kv.knots), degree: kv.degree}
}

func reversedKnots[T Scalar](knots []T) []T {
	l := make([]T, len(knots))
	l[0] = knots[0]

	length := len(knots)
	for i := 1; i < length; i++ {
		l[i] = l[i-1] + (knots[length-i] - knots[length-i-1])
	}

	return l
}
