package nurbs

// Point2 is a point or vector in the plane.
type Point2[T Scalar] [2]T

// Point3 is a point or vector in space.
type Point3[T Scalar] [3]T

// Add returns p + q.
func (p Point2[T]) Add(q Point2[T]) Point2[T] { return Point2[T]{p[0] + q[0], p[1] + q[1]} }

// Sub returns p - q.
func (p Point2[T]) Sub(q Point2[T]) Point2[T] { return Point2[T]{p[0] - q[0], p[1] - q[1]} }

// Scale returns p scaled by s.
func (p Point2[T]) Scale(s T) Point2[T] { return Point2[T]{p[0] * s, p[1] * s} }

// Dot returns the dot product of p and q.
func (p Point2[T]) Dot(q Point2[T]) T { return p[0]*q[0] + p[1]*q[1] }

// Length returns the Euclidean norm of p.
func (p Point2[T]) Length() T { return sqrt(p.Dot(p)) }

// Distance returns the Euclidean distance between p and q.
func (p Point2[T]) Distance(q Point2[T]) T { return p.Sub(q).Length() }

// Add returns p + q.
func (p Point3[T]) Add(q Point3[T]) Point3[T] { return Point3[T]{p[0] + q[0], p[1] + q[1], p[2] + q[2]} }

// Sub returns p - q.
func (p Point3[T]) Sub(q Point3[T]) Point3[T] { return Point3[T]{p[0] - q[0], p[1] - q[1], p[2] - q[2]} }

// Scale returns p scaled by s.
func (p Point3[T]) Scale(s T) Point3[T] { return Point3[T]{p[0] * s, p[1] * s, p[2] * s} }

// Dot returns the dot product of p and q.
func (p Point3[T]) Dot(q Point3[T]) T { return p[0]*q[0] + p[1]*q[1] + p[2]*q[2] }

// Cross returns the cross product p × q.
func (p Point3[T]) Cross(q Point3[T]) Point3[T] {
	return Point3[T]{
		p[1]*q[2] - p[2]*q[1],
		p[2]*q[0] - p[0]*q[2],
		p[0]*q[1] - p[1]*q[0],
	}
}

// Length returns the Euclidean norm of p.
func (p Point3[T]) Length() T { return sqrt(p.Dot(p)) }

// Distance returns the Euclidean distance between p and q.
func (p Point3[T]) Distance(q Point3[T]) T { return p.Sub(q).Length() }

func flatten2[T Scalar](pts []Point2[T]) []T {
	flat := make([]T, 0, 2*len(pts))
	for _, p := range pts {
		flat = append(flat, p[:]...)
	}
	return flat
}

func flatten3[T Scalar](pts []Point3[T]) []T {
	flat := make([]T, 0, 3*len(pts))
	for _, p := range pts {
		flat = append(flat, p[:]...)
	}
	return flat
}

func norm[T Scalar](v []T) T {
	var s T
	for _, c := range v {
		s += c * c
	}
	return sqrt(s)
}
