// Package homo manipulates flat buffers of homogeneous control points.
//
// A point P with weight w is stored as the dim+1 values (w*P, w). Knot
// insertion and degree elevation are affine in this space, so they can
// treat rational and non-rational geometry alike.
package homo

import "golang.org/x/exp/constraints"

// Homogenize returns the homogeneous form of the dim-dimensional points in
// pts. A nil weights slice means every weight is 1.
func Homogenize[T constraints.Float](dim int, pts, weights []T) []T {
	n := len(pts) / dim
	out := make([]T, 0, n*(dim+1))

	for i := 0; i < n; i++ {
		w := T(1)
		if weights != nil {
			w = weights[i]
		}
		for _, c := range pts[i*dim : (i+1)*dim] {
			out = append(out, c*w)
		}
		out = append(out, w)
	}

	return out
}

// Dehomogenize splits homogeneous points back into Cartesian points and
// weights. If rational is false the weights are known to be 1 and nil is
// returned for them, which keeps rounding noise out of non-rational results.
func Dehomogenize[T constraints.Float](dim int, hpts []T, rational bool) (pts, weights []T) {
	stride := dim + 1
	n := len(hpts) / stride
	pts = make([]T, 0, n*dim)
	if rational {
		weights = make([]T, 0, n)
	}

	for i := 0; i < n; i++ {
		hpt := hpts[i*stride : (i+1)*stride]
		w := hpt[dim]
		for _, c := range hpt[:dim] {
			if rational {
				pts = append(pts, c/w)
			} else {
				pts = append(pts, c)
			}
		}
		if rational {
			weights = append(weights, w)
		}
	}

	return pts, weights
}

// Point returns the i-th point of a buffer with the given stride.
func Point[T constraints.Float](buf []T, stride, i int) []T {
	return buf[i*stride : (i+1)*stride : (i+1)*stride]
}

// Lerp stores (1-t)*a + t*b into dst. dst may alias a or b.
func Lerp[T constraints.Float](dst, a, b []T, t T) {
	for k := range dst {
		dst[k] = (1-t)*a[k] + t*b[k]
	}
}

// AddScaled adds s*src to dst.
func AddScaled[T constraints.Float](dst, src []T, s T) {
	for k := range dst {
		dst[k] += s * src[k]
	}
}
