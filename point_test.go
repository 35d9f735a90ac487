package nurbs

import "testing"

func TestPointArithmetic(t *testing.T) {
	p, q := Point3[float64]{1, 2, 3}, Point3[float64]{4, -1, 0.5}
	diff(t, Point3[float64]{5, 1, 3.5}, p.Add(q))
	diff(t, Point3[float64]{-3, 3, 2.5}, p.Sub(q))
	diff(t, Point3[float64]{2, 4, 6}, p.Scale(2))
	diff(t, 3.5, p.Dot(q))
	diff(t, Point3[float64]{0, 0, 1}, Point3[float64]{1, 0, 0}.Cross(Point3[float64]{0, 1, 0}))
	diff(t, 5.0, Point3[float64]{3, 4, 0}.Length())

	a, b := Point2[float32]{1, 2}, Point2[float32]{4, 6}
	diff(t, Point2[float32]{5, 8}, a.Add(b))
	diff(t, Point2[float32]{-3, -4}, a.Sub(b))
	diff(t, Point2[float32]{0.5, 1}, a.Scale(0.5))
	diff(t, float32(16), a.Dot(b))
	diff(t, float32(5), a.Distance(b))
}
