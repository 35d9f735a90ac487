package nurbs

import (
	"slices"

	"github.com/alexozer/nurbs/internal/homo"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// hcurve is a curve in homogeneous space: control point i is the stride
// values (w*P, w) starting at pts[i*stride]. All structural edits operate
// on hcurves, where they are affine and treat weights like coordinates.
type hcurve[T Scalar] struct {
	stride int
	pts    []T
	knots  []T
	degree int
}

func (h hcurve[T]) count() int { return len(h.pts) / h.stride }

func (h hcurve[T]) point(i int) []T { return homo.Point(h.pts, h.stride, i) }

func (c *curve[T]) homogeneous() hcurve[T] {
	return hcurve[T]{
		stride: c.dim + 1,
		pts:    homo.Homogenize(c.dim, c.points, c.weights.Values()),
		knots:  c.knots.Values(),
		degree: c.degree(),
	}
}

func (h hcurve[T]) curveData(rational bool) CurveData[T] {
	dim := h.stride - 1
	pts, weights := homo.Dehomogenize(dim, h.pts, rational)
	return CurveData[T]{
		Dim:     dim,
		Points:  pts,
		Weights: weights,
		Knots:   h.knots,
		Degree:  h.degree,
	}
}

// Check that u may be inserted once more: it must lie in the domain and
// occur at most degree times.
func checkInsertion[T Scalar](knots []T, degree int, u T) error {
	min, max := knots[degree], knots[len(knots)-degree-1]
	if !(u >= min && u <= max) {
		return errors.Wrapf(ErrParameterOutOfRange, "knot %v outside [%v, %v]", u, min, max)
	}
	if s := multiplicity(knots, u); s >= degree+1 {
		return errors.Wrapf(ErrInvalidKnotVector,
			"knot %v already has multiplicity %d, the maximum for degree %d", u, s, degree)
	}
	return nil
}

// Insert the knot u once using Boehm's algorithm. The new control points are
//
//	Q_i = a_i P_i + (1 - a_i) P_{i-1},  a_i = (u - u_i) / (u_{i+p} - u_i)
//
// with a_i clamped to 1 where u_{i+p} <= u and to 0 where u <= u_i, which
// leaves all but degree control points untouched.
//
// The caller must have validated u with checkInsertion.
func (h hcurve[T]) insertKnot(u T) hcurve[T] {
	p, knots := h.degree, h.knots
	n := h.count() - 1

	out := hcurve[T]{
		stride: h.stride,
		pts:    make([]T, (n+2)*h.stride),
		knots:  make([]T, 0, len(knots)+1),
		degree: p,
	}

	for i := 0; i <= n+1; i++ {
		q := out.point(i)

		var alpha T
		switch {
		case i == 0:
			alpha = 1
		case i == n+1:
			alpha = 0
		case u <= knots[i]:
			alpha = 0
		case u >= knots[i+p]:
			alpha = 1
		default:
			alpha = (u - knots[i]) / (knots[i+p] - knots[i])
		}

		switch alpha {
		case 1:
			copy(q, h.point(i))
		case 0:
			copy(q, h.point(i-1))
		default:
			homo.Lerp(q, h.point(i-1), h.point(i), alpha)
		}
	}

	// u goes after every knot that is <= u
	at, _ := slices.BinarySearchFunc(knots, u, func(k, u T) int {
		if k <= u {
			return -1
		}
		return 1
	})
	out.knots = append(out.knots, knots[:at]...)
	out.knots = append(out.knots, u)
	out.knots = append(out.knots, knots[at:]...)

	return out
}

// Split a curve whose knot vector already contains u with multiplicity
// degree+1 into the parts before and after u.
func (h hcurve[T]) partition(u T) (left, right hcurve[T]) {
	p := h.degree
	at, _ := slices.BinarySearch(h.knots, u)

	left = hcurve[T]{
		stride: h.stride,
		pts:    slices.Clone(h.pts[:at*h.stride]),
		knots:  slices.Clone(h.knots[:at+p+1]),
		degree: p,
	}
	right = hcurve[T]{
		stride: h.stride,
		pts:    slices.Clone(h.pts[at*h.stride:]),
		knots:  slices.Clone(h.knots[at:]),
		degree: p,
	}
	return left, right
}

// Insert u until its multiplicity reaches degree+1 and partition the
// result. u must lie strictly inside the domain.
func (h hcurve[T]) split(u T) (left, right hcurve[T]) {
	for s := multiplicity(h.knots, u); s <= h.degree; s++ {
		h = h.insertKnot(u)
	}
	return h.partition(u)
}

func checkSplit[T Scalar](knots KnotVector[T], u T) error {
	min, max := knots.Domain()
	if !(u > min && u < max) {
		return errors.Wrapf(ErrParameterOutOfRange, "split parameter %v not inside (%v, %v)", u, min, max)
	}
	return nil
}

// InsertKnot inserts the knot u once into the curve described by d and
// returns the description of the same curve with the refined knot vector.
// d is not modified.
//
// It fails with [ErrParameterOutOfRange] if u is outside the domain and with
// [ErrInvalidKnotVector] if u already has multiplicity degree+1.
func InsertKnot[T Scalar](d CurveData[T], u T) (CurveData[T], error) {
	return RefineKnots(d, []T{u})
}

// RefineKnots inserts every knot in us into the curve described by d, in
// ascending order. Repeated values are inserted repeatedly.
func RefineKnots[T Scalar](d CurveData[T], us []T) (CurveData[T], error) {
	c, err := newCurve(d)
	if err != nil {
		return CurveData[T]{}, err
	}

	us = slices.Clone(us)
	slices.Sort(us)

	h := c.homogeneous()
	for _, u := range us {
		if err := checkInsertion(h.knots, h.degree, u); err != nil {
			return CurveData[T]{}, err
		}
		h = h.insertKnot(u)
	}

	if glog.V(2) {
		glog.Infof("inserted %d knots: %d -> %d control points", len(us), c.count(), h.count())
	}

	return validated(h.curveData(c.weights.IsRational()))
}

// Split divides the curve described by d at u into two independent curves
// covering [domain min, u] and [u, domain max]. The first control point of
// the right curve equals the last control point of the left curve.
//
// It fails with [ErrParameterOutOfRange] unless u lies strictly inside the
// domain.
func Split[T Scalar](d CurveData[T], u T) (left, right CurveData[T], err error) {
	c, err := newCurve(d)
	if err != nil {
		return CurveData[T]{}, CurveData[T]{}, err
	}
	if err := checkSplit(c.knots, u); err != nil {
		return CurveData[T]{}, CurveData[T]{}, err
	}

	l, r := c.homogeneous().split(u)
	glog.V(2).Infof("split at %v: %d + %d control points", u, l.count(), r.count())

	rational := c.weights.IsRational()
	if left, err = validated(l.curveData(rational)); err != nil {
		return CurveData[T]{}, CurveData[T]{}, err
	}
	if right, err = validated(r.curveData(rational)); err != nil {
		return CurveData[T]{}, CurveData[T]{}, err
	}
	return left, right, nil
}

// validated runs a transform result through curve validation so that no
// transform can hand out data a constructor would reject.
func validated[T Scalar](d CurveData[T]) (CurveData[T], error) {
	if _, err := newCurve(d); err != nil {
		return CurveData[T]{}, errors.Wrap(err, "transform produced an invalid curve")
	}
	return d, nil
}
