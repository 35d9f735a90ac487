package nurbs

import (
	"github.com/alexozer/nurbs/internal/homo"
	"github.com/pkg/errors"
)

// Direction selects one of the two parametric directions of a surface.
type Direction int

const (
	U Direction = iota
	V
)

func (d Direction) String() string {
	if d == U {
		return "u"
	}
	return "v"
}

// SurfaceData is the raw description of a NURBS surface. The control grid
// has CountU rows of CountV points; point (i, j) occupies
// Points[(i*CountV+j)*3 : (i*CountV+j)*3+3] and has weight
// Weights[i*CountV+j]. A nil Weights slice denotes a non-rational surface.
type SurfaceData[T Scalar] struct {
	CountU, CountV   int
	Points           []T
	Weights          []T
	KnotsU, KnotsV   []T
	DegreeU, DegreeV int
}

// Surface is a tensor-product NURBS surface in space. Surfaces are immutable
// and safe for concurrent use.
type Surface[T Scalar] struct {
	countU, countV int
	points         []T
	weights        Weights[T]
	knotsU, knotsV KnotVector[T]
}

// NewSurface returns the surface defined by a grid of control points, an
// optional grid of weights of the same shape, and a knot vector and degree
// per direction. points[i][j] is the control point with u index i and v
// index j.
func NewSurface[T Scalar](points [][]Point3[T], weights [][]T, knotsU, knotsV []T, degreeU, degreeV int) (*Surface[T], error) {
	d := SurfaceData[T]{
		CountU:  len(points),
		KnotsU:  knotsU,
		KnotsV:  knotsV,
		DegreeU: degreeU,
		DegreeV: degreeV,
	}
	if len(points) > 0 {
		d.CountV = len(points[0])
	}

	d.Points = make([]T, 0, d.CountU*d.CountV*3)
	for i, row := range points {
		if len(row) != d.CountV {
			return nil, errors.Wrapf(ErrDimensionMismatch, "row %d has %d control points, row 0 has %d", i, len(row), d.CountV)
		}
		d.Points = append(d.Points, flatten3(row)...)
	}

	if weights != nil {
		if len(weights) != d.CountU {
			return nil, errors.Wrapf(ErrDimensionMismatch, "%d weight rows for %d control point rows", len(weights), d.CountU)
		}
		d.Weights = make([]T, 0, d.CountU*d.CountV)
		for i, row := range weights {
			if len(row) != d.CountV {
				return nil, errors.Wrapf(ErrDimensionMismatch, "weight row %d has %d weights, want %d", i, len(row), d.CountV)
			}
			d.Weights = append(d.Weights, row...)
		}
	}

	return NewSurfaceFromData(d)
}

// NewSurfaceFromData validates d and returns the surface it describes.
func NewSurfaceFromData[T Scalar](d SurfaceData[T]) (*Surface[T], error) {
	s, err := newSurface(d)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func newSurface[T Scalar](d SurfaceData[T]) (Surface[T], error) {
	if d.DegreeU < 0 || d.DegreeV < 0 {
		return Surface[T]{}, errors.Wrapf(ErrInvalidKnotVector, "negative degree (%d, %d)", d.DegreeU, d.DegreeV)
	}
	if d.CountU < 0 || d.CountV < 0 || len(d.Points) != d.CountU*d.CountV*3 {
		return Surface[T]{}, errors.Wrapf(ErrDimensionMismatch,
			"%d coordinates for a %dx%d grid", len(d.Points), d.CountU, d.CountV)
	}
	if d.CountU < d.DegreeU+1 {
		return Surface[T]{}, errors.Wrapf(ErrInsufficientControlPoints,
			"%d control points in u for degree %d", d.CountU, d.DegreeU)
	}
	if d.CountV < d.DegreeV+1 {
		return Surface[T]{}, errors.Wrapf(ErrInsufficientControlPoints,
			"%d control points in v for degree %d", d.CountV, d.DegreeV)
	}

	weights, err := newWeights(d.Weights, d.CountU*d.CountV)
	if err != nil {
		return Surface[T]{}, err
	}

	knotsU, err := directionKnots(d.KnotsU, d.DegreeU, d.CountU, U)
	if err != nil {
		return Surface[T]{}, err
	}
	knotsV, err := directionKnots(d.KnotsV, d.DegreeV, d.CountV, V)
	if err != nil {
		return Surface[T]{}, err
	}

	return Surface[T]{
		countU:  d.CountU,
		countV:  d.CountV,
		points:  append([]T(nil), d.Points...),
		weights: weights,
		knotsU:  knotsU,
		knotsV:  knotsV,
	}, nil
}

func directionKnots[T Scalar](knots []T, degree, count int, dir Direction) (KnotVector[T], error) {
	kv, err := NewKnotVector(knots, degree)
	if err != nil {
		return KnotVector[T]{}, errors.Wrapf(err, "%v knots", dir)
	}
	if want := count + degree + 1; kv.Len() != want {
		return KnotVector[T]{}, errors.Wrapf(ErrInvalidKnotVector,
			"%d %v knots for %d control points of degree %d, want %d", kv.Len(), dir, count, degree, want)
	}
	return kv, nil
}

func (s *Surface[T]) DegreeU() int { return s.knotsU.degree }
func (s *Surface[T]) DegreeV() int { return s.knotsV.degree }
func (s *Surface[T]) KnotsU() KnotVector[T] { return s.knotsU }
func (s *Surface[T]) KnotsV() KnotVector[T] { return s.knotsV }
func (s *Surface[T]) DomainU() (min, max T) { return s.knotsU.Domain() }
func (s *Surface[T]) DomainV() (min, max T) { return s.knotsV.Domain() }
func (s *Surface[T]) CountU() int { return s.countU }
func (s *Surface[T]) CountV() int { return s.countV }
func (s *Surface[T]) ControlPointCount() int { return s.countU * s.countV }
func (s *Surface[T]) IsRational() bool { return s.weights.IsRational() }
func (s *Surface[T]) WeightAt(i, j int) T { return s.weights.At(i*s.countV + j) }

// ControlPoint returns the control point with u index i and v index j.
func (s *Surface[T]) ControlPoint(i, j int) Point3[T] {
	return Point3[T](s.controlPoint(i, j))
}

func (s *Surface[T]) controlPoint(i, j int) []T {
	off := (i*s.countV + j) * 3
	return s.points[off : off+3 : off+3]
}

// Data returns a copy of the surface's raw description.
func (s *Surface[T]) Data() SurfaceData[T] {
	return SurfaceData[T]{
		CountU:  s.countU,
		CountV:  s.countV,
		Points:  append([]T(nil), s.points...),
		Weights: s.weights.Values(),
		KnotsU:  s.knotsU.Values(),
		KnotsV:  s.knotsV.Values(),
		DegreeU: s.DegreeU(),
		DegreeV: s.DegreeV(),
	}
}

func (s *Surface[T]) checkParams(u, v T) error {
	if !s.knotsU.IsParameterValid(u) {
		min, max := s.knotsU.Domain()
		return errors.Wrapf(ErrParameterOutOfRange, "u = %v outside [%v, %v]", u, min, max)
	}
	if !s.knotsV.IsParameterValid(v) {
		min, max := s.knotsV.Domain()
		return errors.Wrapf(ErrParameterOutOfRange, "v = %v outside [%v, %v]", v, min, max)
	}
	return nil
}

// EvaluateAt returns the surface point at (u, v). It fails with
// [ErrParameterOutOfRange] if either parameter is outside its domain.
func (s *Surface[T]) EvaluateAt(u, v T) (Point3[T], error) {
	if err := s.checkParams(u, v); err != nil {
		return Point3[T]{}, err
	}
	return s.PointAt(u, v), nil
}

// PointAt returns the surface point at (u, v), clamping both parameters to
// their domains.
//
//	S(u,v) = sum N_i(u) N_j(v) w_ij P_ij / sum N_i(u) N_j(v) w_ij
func (s *Surface[T]) PointAt(u, v T) Point3[T] {
	bu := BasisFunctions(s.knotsU, u)
	bv := BasisFunctions(s.knotsV, v)

	var pt Point3[T]
	var den T
	for k, nu := range bu.Values {
		i := bu.First() + k
		for l, nv := range bv.Values {
			j := bv.First() + l
			nw := nu * nv * s.weights.At(i*s.countV+j)
			homo.AddScaled(pt[:], s.controlPoint(i, j), nw)
			den += nw
		}
	}

	if s.weights.IsRational() {
		pt = pt.Scale(1 / den)
	}
	return pt
}

// PartialDerivatives returns dS/du and dS/dv at (u, v). It fails with
// [ErrParameterOutOfRange] if either parameter is outside its domain.
func (s *Surface[T]) PartialDerivatives(u, v T) (su, sv Point3[T], err error) {
	if err := s.checkParams(u, v); err != nil {
		return Point3[T]{}, Point3[T]{}, err
	}
	_, su, sv = s.partials(u, v)
	return su, sv, nil
}

// Apply the quotient rule to the homogeneous sums A, Au, Av and w, wu, wv.
func (s *Surface[T]) partials(u, v T) (pt, su, sv Point3[T]) {
	bu := BasisFunctionsWithDerivatives(s.knotsU, u)
	bv := BasisFunctionsWithDerivatives(s.knotsV, v)

	var w, wu, wv T
	for k := range bu.Values {
		i := bu.First() + k
		for l := range bv.Values {
			j := bv.First() + l
			wij := s.weights.At(i*s.countV + j)
			cp := s.controlPoint(i, j)

			n := bu.Values[k] * bv.Values[l] * wij
			nu := bu.Derivatives[k] * bv.Values[l] * wij
			nv := bu.Values[k] * bv.Derivatives[l] * wij

			homo.AddScaled(pt[:], cp, n)
			homo.AddScaled(su[:], cp, nu)
			homo.AddScaled(sv[:], cp, nv)
			w += n
			wu += nu
			wv += nv
		}
	}

	if !s.weights.IsRational() {
		return pt, su, sv
	}

	pt = pt.Scale(1 / w)
	su = su.Sub(pt.Scale(wu)).Scale(1 / w)
	sv = sv.Sub(pt.Scale(wv)).Scale(1 / w)
	return pt, su, sv
}

// NormalAt returns the cross product dS/du × dS/dv at (u, v). The normal is
// not normalized. It fails with [ErrDegenerateGeometry] where a partial
// derivative vanishes or the partials are parallel, and with
// [ErrParameterOutOfRange] outside the domain.
func (s *Surface[T]) NormalAt(u, v T) (Point3[T], error) {
	su, sv, err := s.PartialDerivatives(u, v)
	if err != nil {
		return Point3[T]{}, err
	}
	return normal(su, sv, u, v)
}

func normal[T Scalar](su, sv Point3[T], u, v T) (Point3[T], error) {
	tol := Tolerance[T]()
	lu, lv := su.Length(), sv.Length()
	if lu < tol || lv < tol {
		return Point3[T]{}, errors.Wrapf(ErrDegenerateGeometry,
			"vanishing partial derivative at (%v, %v): |Su| = %v, |Sv| = %v", u, v, lu, lv)
	}

	n := su.Cross(sv)
	if n.Length() < tol*lu*lv {
		return Point3[T]{}, errors.Wrapf(ErrDegenerateGeometry, "parallel partial derivatives at (%v, %v)", u, v)
	}
	return n, nil
}
