package foundation

import "github.com/alexozer/nurbs"

// Kind is a coarse shape category of a curve or surface, derived from its
// degree, weights and control points.
type Kind int

const (
	KindLine Kind = iota
	KindPolyline
	KindBezier
	KindConic
	KindFreeform

	KindPlanar
	KindBezierPatch
	KindRationalSurface
	KindFreeformSurface
)

var kindNames = [...]string{
	KindLine:            "line",
	KindPolyline:        "polyline",
	KindBezier:          "bezier",
	KindConic:           "conic",
	KindFreeform:        "freeform",
	KindPlanar:          "planar",
	KindBezierPatch:     "bezier patch",
	KindRationalSurface: "rational surface",
	KindFreeformSurface: "freeform surface",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsSurface reports whether k categorizes surfaces.
func (k Kind) IsSurface() bool { return k >= KindPlanar }

func classifyCurve[T nurbs.Scalar](degree, count int, rational bool, knots nurbs.KnotVector[T]) Kind {
	switch {
	case degree == 1 && count == 2:
		return KindLine
	case degree == 1:
		return KindPolyline
	case rational && degree == 2:
		return KindConic
	case !rational && count == degree+1 && knots.IsClamped():
		return KindBezier
	}
	return KindFreeform
}

// ClassifyCurve2 returns the kind of c.
func ClassifyCurve2[T nurbs.Scalar](c *nurbs.Curve2[T]) Kind {
	return classifyCurve(c.Degree(), c.ControlPointCount(), c.IsRational(), c.Knots())
}

// ClassifyCurve3 returns the kind of c.
func ClassifyCurve3[T nurbs.Scalar](c *nurbs.Curve3[T]) Kind {
	return classifyCurve(c.Degree(), c.ControlPointCount(), c.IsRational(), c.Knots())
}

// ClassifySurface returns the kind of s. A surface whose control points are
// coplanar is planar regardless of its degrees or weights.
func ClassifySurface[T nurbs.Scalar](s *nurbs.Surface[T]) Kind {
	switch {
	case coplanar(s):
		return KindPlanar
	case s.IsRational():
		return KindRationalSurface
	case s.CountU() == s.DegreeU()+1 && s.CountV() == s.DegreeV()+1 &&
		s.KnotsU().IsClamped() && s.KnotsV().IsClamped():
		return KindBezierPatch
	}
	return KindFreeformSurface
}

// coplanar reports whether all control points of s lie in one plane, within
// a tolerance relative to the size of the control grid.
func coplanar[T nurbs.Scalar](s *nurbs.Surface[T]) bool {
	var bb BoundingBox[T]
	pts := make([]nurbs.Point3[T], 0, s.ControlPointCount())
	for i := 0; i < s.CountU(); i++ {
		for j := 0; j < s.CountV(); j++ {
			pts = append(pts, s.ControlPoint(i, j))
		}
	}
	bb.AddRange(pts)
	size := bb.AxisLength(bb.LongestAxis())
	if size == 0 {
		return true
	}
	tol := nurbs.Tolerance[T]() * size

	// find a plane through the first point and two others spanning it
	origin := pts[0]
	var normal nurbs.Point3[T]
	for a := 1; a < len(pts) && normal.Length() <= tol*size; a++ {
		for b := a + 1; b < len(pts); b++ {
			n := pts[a].Sub(origin).Cross(pts[b].Sub(origin))
			if n.Length() > tol*size {
				normal = n
				break
			}
		}
	}
	if normal.Length() <= tol*size {
		// collinear
		return true
	}
	normal = normal.Scale(1 / normal.Length())

	for _, p := range pts {
		if d := p.Sub(origin).Dot(normal); d > tol || d < -tol {
			return false
		}
	}
	return true
}
