package foundation

import (
	"github.com/alexozer/nurbs"
)

// BoundingBoxTolerance is the slack Contains and Intersects use when a
// negative tolerance is passed.
const BoundingBoxTolerance = 1e-4

// BoundingBox is an axis-aligned box. The zero value is an empty box ready
// to use.
type BoundingBox[T nurbs.Scalar] struct {
	Min, Max    nurbs.Point3[T]
	initialized bool
}

// Add expands the box to contain point and returns the box for chaining.
func (bb *BoundingBox[T]) Add(point nurbs.Point3[T]) *BoundingBox[T] {
	if !bb.initialized {
		bb.Min, bb.Max = point, point
		bb.initialized = true
		return bb
	}

	for i, val := range point {
		bb.Max[i] = max(bb.Max[i], val)
		bb.Min[i] = min(bb.Min[i], val)
	}
	return bb
}

// AddRange adds every point in points.
func (bb *BoundingBox[T]) AddRange(points []nurbs.Point3[T]) *BoundingBox[T] {
	for _, pt := range points {
		bb.Add(pt)
	}
	return bb
}

// IsEmpty reports whether no point has been added since the box was created
// or cleared.
func (bb *BoundingBox[T]) IsEmpty() bool { return !bb.initialized }

// Clear empties the box.
func (bb *BoundingBox[T]) Clear() *BoundingBox[T] {
	bb.initialized = false
	return bb
}

// Contains reports whether point lies in the box grown by tol.
func (bb *BoundingBox[T]) Contains(point nurbs.Point3[T], tol T) bool {
	if !bb.initialized {
		return false
	}
	return bb.Intersects(new(BoundingBox[T]).Add(point), tol)
}

func intervalsOverlap[T nurbs.Scalar](a1, a2, b1, b2 T, tol T) bool {
	if tol < 0 {
		tol = BoundingBoxTolerance
	}

	x1, x2 := min(a1, a2)-tol, max(a1, a2)+tol
	y1, y2 := min(b1, b2)-tol, max(b1, b2)+tol

	return x1 <= y2 && y1 <= x2
}

// Intersects reports whether the two boxes, grown by tol, overlap. Empty
// boxes intersect nothing.
func (bb *BoundingBox[T]) Intersects(other *BoundingBox[T], tol T) bool {
	if !bb.initialized || !other.initialized {
		return false
	}

	for i := range bb.Min {
		if !intervalsOverlap(bb.Min[i], bb.Max[i], other.Min[i], other.Max[i], tol) {
			return false
		}
	}
	return true
}

// Intersect returns the overlap of the two boxes, or nil if they do not
// intersect.
func (bb *BoundingBox[T]) Intersect(other *BoundingBox[T], tol T) *BoundingBox[T] {
	if !bb.Intersects(other, tol) {
		return nil
	}

	var lo, hi nurbs.Point3[T]
	for i := range bb.Min {
		lo[i] = max(bb.Min[i], other.Min[i])
		hi[i] = min(bb.Max[i], other.Max[i])
	}
	// boxes that only touch within tol may cross over
	for i := range lo {
		if lo[i] > hi[i] {
			lo[i], hi[i] = hi[i], lo[i]
		}
	}

	return new(BoundingBox[T]).Add(lo).Add(hi)
}

// LongestAxis returns the index of the longest axis of the box.
func (bb *BoundingBox[T]) LongestAxis() int {
	id, longest := 0, T(0)
	for i := range bb.Min {
		if l := bb.AxisLength(i); l > longest {
			longest = l
			id = i
		}
	}
	return id
}

// AxisLength returns the extent of the box along axis i, or 0 if i is not
// an axis.
func (bb *BoundingBox[T]) AxisLength(i int) T {
	if i < 0 || i >= len(bb.Min) {
		return 0
	}
	return bb.Max[i] - bb.Min[i]
}
