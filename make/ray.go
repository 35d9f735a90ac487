package make

import (
	"math"

	"github.com/alexozer/nurbs"
	"github.com/ungerik/go3d/float64/vec3"
)

// rayClosestPoint projects pt onto the ray through origin with the unit
// direction dir.
func rayClosestPoint(pt, origin, dir *vec3.T) vec3.T {
	o2pt := vec3.Sub(pt, origin)
	dirScaled := dir.Scaled(vec3.Dot(&o2pt, dir))
	return vec3.Add(origin, &dirScaled)
}

// rayIntersection finds the parameters of the closest approach of the rays
// a0 + u0*a and b0 + u1*b. It reports false for parallel rays.
func rayIntersection(a0, a, b0, b *vec3.T) (u0, u1 float64, ok bool) {
	dab := vec3.Dot(a, b)
	daa := vec3.Dot(a, a)
	dbb := vec3.Dot(b, b)
	div := daa*dbb - dab*dab

	if math.Abs(div) < nurbs.Epsilon[float64]() {
		return 0, 0, false
	}

	diff := vec3.Sub(b0, a0)
	dad := vec3.Dot(a, &diff)
	dbd := vec3.Dot(b, &diff)

	u0 = (dbb*dad - dab*dbd) / div
	u1 = (dab*dad - daa*dbd) / div
	return u0, u1, true
}
