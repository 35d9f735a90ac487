package nurbs

import (
	"slices"

	"github.com/alexozer/nurbs/internal/homo"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const surfaceStride = 4

func (s *Surface[T]) knots(dir Direction) KnotVector[T] {
	if dir == U {
		return s.knotsU
	}
	return s.knotsV
}

// lines returns the homogeneous curves of the control grid that run along
// dir: one per column for U, one per row for V.
func (s *Surface[T]) lines(dir Direction) []hcurve[T] {
	grid := homo.Homogenize(3, s.points, s.weights.Values())
	kv := s.knots(dir)
	knots := kv.Values()

	if dir == V {
		out := make([]hcurve[T], s.countU)
		for i := range out {
			row := grid[i*s.countV*surfaceStride : (i+1)*s.countV*surfaceStride]
			out[i] = hcurve[T]{stride: surfaceStride, pts: slices.Clone(row), knots: knots, degree: kv.degree}
		}
		return out
	}

	out := make([]hcurve[T], s.countV)
	for j := range out {
		pts := make([]T, 0, s.countU*surfaceStride)
		for i := 0; i < s.countU; i++ {
			pts = append(pts, homo.Point(grid, surfaceStride, i*s.countV+j)...)
		}
		out[j] = hcurve[T]{stride: surfaceStride, pts: pts, knots: knots, degree: kv.degree}
	}
	return out
}

// assemble rebuilds a surface from lines along dir produced by one of the
// curve algorithms. Every line must share the same knots and degree; the
// other direction is taken from s.
func (s *Surface[T]) assemble(dir Direction, lines []hcurve[T]) (SurfaceData[T], error) {
	first := lines[0]
	d := SurfaceData[T]{
		KnotsU:  s.knotsU.Values(),
		KnotsV:  s.knotsV.Values(),
		DegreeU: s.DegreeU(),
		DegreeV: s.DegreeV(),
	}

	var grid []T
	switch dir {
	case U:
		d.CountU, d.CountV = first.count(), len(lines)
		d.KnotsU, d.DegreeU = first.knots, first.degree

		grid = make([]T, d.CountU*d.CountV*surfaceStride)
		for j, l := range lines {
			for i := 0; i < d.CountU; i++ {
				copy(homo.Point(grid, surfaceStride, i*d.CountV+j), l.point(i))
			}
		}
	case V:
		d.CountU, d.CountV = len(lines), first.count()
		d.KnotsV, d.DegreeV = first.knots, first.degree

		grid = make([]T, 0, d.CountU*d.CountV*surfaceStride)
		for _, l := range lines {
			grid = append(grid, l.pts...)
		}
	}

	d.Points, d.Weights = homo.Dehomogenize(3, grid, s.weights.IsRational())
	if _, err := newSurface(d); err != nil {
		return SurfaceData[T]{}, errors.Wrap(err, "transform produced an invalid surface")
	}
	return d, nil
}

func mapLines[T Scalar](lines []hcurve[T], f func(hcurve[T]) hcurve[T]) []hcurve[T] {
	out := make([]hcurve[T], len(lines))
	for i, l := range lines {
		out[i] = f(l)
	}
	return out
}

// InsertSurfaceKnot inserts t once into the knot vector of direction dir of
// the surface described by d. Errors follow [InsertKnot].
func InsertSurfaceKnot[T Scalar](d SurfaceData[T], t T, dir Direction) (SurfaceData[T], error) {
	s, err := newSurface(d)
	if err != nil {
		return SurfaceData[T]{}, err
	}

	kv := s.knots(dir)
	if err := checkInsertion(kv.knots, kv.degree, t); err != nil {
		return SurfaceData[T]{}, errors.Wrapf(err, "%v direction", dir)
	}

	lines := mapLines(s.lines(dir), func(h hcurve[T]) hcurve[T] { return h.insertKnot(t) })
	glog.V(2).Infof("inserted %v knot %v into %dx%d surface", dir, t, s.countU, s.countV)

	return s.assemble(dir, lines)
}

// ElevateSurfaceDegree raises the degree of direction dir of the surface
// described by d by one. As in [ElevateDegree], an unclamped direction is
// clamped to its domain first.
func ElevateSurfaceDegree[T Scalar](d SurfaceData[T], dir Direction) (SurfaceData[T], error) {
	s, err := newSurface(d)
	if err != nil {
		return SurfaceData[T]{}, err
	}

	kv := s.knots(dir)
	lines := mapLines(s.lines(dir), func(h hcurve[T]) hcurve[T] { return h.elevate(1) })
	glog.V(2).Infof("elevated %v degree %d -> %d", dir, kv.degree, lines[0].degree)

	return s.assemble(dir, lines)
}

// SplitSurface divides the surface described by d at parameter t of
// direction dir. lo covers parameters up to t and hi the rest. Errors follow
// [Split].
func SplitSurface[T Scalar](d SurfaceData[T], t T, dir Direction) (lo, hi SurfaceData[T], err error) {
	s, err := newSurface(d)
	if err != nil {
		return SurfaceData[T]{}, SurfaceData[T]{}, err
	}
	if err := checkSplit(s.knots(dir), t); err != nil {
		return SurfaceData[T]{}, SurfaceData[T]{}, errors.Wrapf(err, "%v direction", dir)
	}

	lines := s.lines(dir)
	left := make([]hcurve[T], len(lines))
	right := make([]hcurve[T], len(lines))
	for i, l := range lines {
		left[i], right[i] = l.split(t)
	}
	glog.V(2).Infof("split %dx%d surface at %v = %v", s.countU, s.countV, dir, t)

	if lo, err = s.assemble(dir, left); err != nil {
		return SurfaceData[T]{}, SurfaceData[T]{}, err
	}
	if hi, err = s.assemble(dir, right); err != nil {
		return SurfaceData[T]{}, SurfaceData[T]{}, err
	}
	return lo, hi, nil
}

// InsertKnot returns the surface with t inserted once into the knots of
// direction dir.
func (s *Surface[T]) InsertKnot(t T, dir Direction) (*Surface[T], error) {
	d, err := InsertSurfaceKnot(s.Data(), t, dir)
	if err != nil {
		return nil, err
	}
	return NewSurfaceFromData(d)
}

// ElevateDegree returns the surface with the degree of direction dir raised
// by one.
func (s *Surface[T]) ElevateDegree(dir Direction) (*Surface[T], error) {
	d, err := ElevateSurfaceDegree(s.Data(), dir)
	if err != nil {
		return nil, err
	}
	return NewSurfaceFromData(d)
}

// Split divides the surface at parameter t of direction dir.
func (s *Surface[T]) Split(t T, dir Direction) (lo, hi *Surface[T], err error) {
	l, h, err := SplitSurface(s.Data(), t, dir)
	if err != nil {
		return nil, nil, err
	}
	if lo, err = NewSurfaceFromData(l); err != nil {
		return nil, nil, err
	}
	if hi, err = NewSurfaceFromData(h); err != nil {
		return nil, nil, err
	}
	return lo, hi, nil
}

// Reverse returns the surface with the parametrization of direction dir
// reversed over a domain of the same length, starting at the same
// parameter.
func (s *Surface[T]) Reverse(dir Direction) *Surface[T] {
	out := &Surface[T]{
		countU: s.countU,
		countV: s.countV,
		points: make([]T, 0, len(s.points)),
		knotsU: s.knotsU,
		knotsV: s.knotsV,
	}

	ws := s.weights.Values()
	var rws []T
	if ws != nil {
		rws = make([]T, 0, len(ws))
	}

	for i := 0; i < s.countU; i++ {
		for j := 0; j < s.countV; j++ {
			ri, rj := i, j
			if dir == U {
				ri = s.countU - 1 - i
			} else {
				rj = s.countV - 1 - j
			}
			out.points = append(out.points, s.controlPoint(ri, rj)...)
			if ws != nil {
				rws = append(rws, ws[ri*s.countV+rj])
			}
		}
	}
	out.weights = Weights[T]{individual: rws}

	if dir == U {
		out.knotsU = s.knotsU.Reversed()
	} else {
		out.knotsV = s.knotsV.Reversed()
	}
	return out
}

// Isocurve returns the curve on the surface where the parameter of
// direction dir is fixed at t. Fixing u yields a curve in v and vice versa.
//
// The control points are the homogeneous grid lines blended with the basis
// functions at t, which is the grid line that fully inserting t would
// expose.
func (s *Surface[T]) Isocurve(t T, dir Direction) (*Curve3[T], error) {
	kv := s.knots(dir)
	if !kv.IsParameterValid(t) {
		min, max := kv.Domain()
		return nil, errors.Wrapf(ErrParameterOutOfRange, "%v = %v outside [%v, %v]", dir, t, min, max)
	}

	b := BasisFunctions(kv, t)
	lines := s.lines(other(dir))
	h := hcurve[T]{
		stride: surfaceStride,
		pts:    make([]T, len(lines[0].pts)),
		knots:  lines[0].knots,
		degree: lines[0].degree,
	}
	for k, nk := range b.Values {
		homo.AddScaled(h.pts, lines[b.First()+k].pts, nk)
	}

	return NewCurve3FromData(h.curveData(s.weights.IsRational()))
}

// Boundaries returns the four boundary curves of the surface in the order
// u = min, u = max, v = min, v = max.
func (s *Surface[T]) Boundaries() ([]*Curve3[T], error) {
	umin, umax := s.DomainU()
	vmin, vmax := s.DomainV()

	out := make([]*Curve3[T], 0, 4)
	for _, iso := range []struct {
		t   T
		dir Direction
	}{{umin, U}, {umax, U}, {vmin, V}, {vmax, V}} {
		c, err := s.Isocurve(iso.t, iso.dir)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func other(dir Direction) Direction {
	if dir == U {
		return V
	}
	return U
}
