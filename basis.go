package nurbs

// Basis holds the non-vanishing B-spline basis functions of a knot vector
// at one parameter: N_{Span-Degree,Degree}(t) ... N_{Span,Degree}(t).
type Basis[T Scalar] struct {
	Span   int
	Degree int

	// Values has Degree+1 entries. Values[k] belongs to control point
	// First()+k.
	Values []T

	// Derivatives holds the first derivatives of Values. It is nil unless
	// the basis was computed by [BasisFunctionsWithDerivatives].
	Derivatives []T
}

// First returns the index of the first control point the basis functions
// apply to.
func (b Basis[T]) First() int {
	return b.Span - b.Degree
}

// BasisFunctions computes the non-vanishing basis functions of kv at t.
// Parameters outside the domain are clamped to it.
func BasisFunctions[T Scalar](kv KnotVector[T], t T) Basis[T] {
	t = kv.Clamp(t)
	span := kv.SpanIndex(t)

	return Basis[T]{
		Span:   span,
		Degree: kv.degree,
		Values: basisFunctions(kv.knots, span, t, kv.degree),
	}
}

// BasisFunctionsWithDerivatives is like [BasisFunctions] but also computes
// the first derivative of every basis function. The derivatives are formed
// from the degree-1 row of the same triangular table.
func BasisFunctionsWithDerivatives[T Scalar](kv KnotVector[T], t T) Basis[T] {
	t = kv.Clamp(t)
	span := kv.SpanIndex(t)
	ders := derivativeBasis(kv.knots, span, t, kv.degree, 1)

	return Basis[T]{
		Span:        span,
		Degree:      kv.degree,
		Values:      ders[0],
		Derivatives: ders[1],
	}
}

// quot treats a zero denominator as a vanishing term, which is the B-spline
// convention 0/0 = 0.
func quot[T Scalar](a, b T) T {
	if b == 0 {
		return 0
	}
	return a / b
}

// Compute the non-vanishing basis functions
// (corresponds to algorithm 2.2 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + array of nondecreasing knot values
// + integer knot span index
// + float parameter
// + integer degree of function
//
// **returns**
// + list of degree+1 non-vanishing basis functions
func basisFunctions[T Scalar](knots []T, span int, t T, degree int) []T {
	basis := make([]T, degree+1)
	left := make([]T, degree+1)
	right := make([]T, degree+1)

	basis[0] = 1

	for j := 1; j <= degree; j++ {
		left[j] = t - knots[span+1-j]
		right[j] = knots[span+j] - t
		var saved T

		for r := 0; r < j; r++ {
			temp := quot(basis[r], right[r+1]+left[j-r])
			basis[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}

		basis[j] = saved
	}

	return basis
}

// Compute the non-vanishing basis functions and their derivatives
// (corresponds to algorithm 2.3 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + array of nondecreasing knot values
// + integer knot span index
// + float parameter
// + integer degree
// + integer number of derivatives
//
// **returns**
// + 2d array of basis and derivative values of size (n+1, p+1). The kth row
// is the kth derivative and the first row holds the basis function values.
// Rows past the degree are zero.
func derivativeBasis[T Scalar](knots []T, span int, t T, p, n int) [][]T {
	ndu := zeros2d[T](p+1, p+1)

	left := make([]T, p+1)
	right := make([]T, p+1)

	ndu[0][0] = 1

	for j := 1; j <= p; j++ {
		left[j] = t - knots[span+1-j]
		right[j] = knots[span+j] - t
		var saved T

		for r := 0; r < j; r++ {
			// lower triangle
			ndu[j][r] = right[r+1] + left[j-r]
			temp := quot(ndu[r][j-1], ndu[j][r])

			// upper triangle
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	ders := zeros2d[T](n+1, p+1)

	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	du := min(n, p)
	a := zeros2d[T](2, p+1)

	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1

		for k := 1; k <= du; k++ {
			var d T
			rk := r - k
			pk := p - k

			if r >= k {
				a[s2][0] = quot(a[s1][0], ndu[pk+1][rk])
				d = a[s2][0] * ndu[rk][pk]
			}

			var j1, j2 int
			if rk >= -1 {
				j1 = 1
			} else {
				j1 = -rk
			}

			if r-1 <= pk {
				j2 = k - 1
			} else {
				j2 = p - r
			}

			for j := j1; j <= j2; j++ {
				a[s2][j] = quot(a[s1][j]-a[s1][j-1], ndu[pk+1][rk+j])
				d += a[s2][j] * ndu[rk+j][pk]
			}

			if r <= pk {
				a[s2][k] = quot(-a[s1][k-1], ndu[pk+1][r])
				d += a[s2][k] * ndu[r][pk]
			}

			ders[k][r] = d

			s1, s2 = s2, s1
		}
	}

	acc := T(p)
	for k := 1; k <= du; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= acc
		}
		acc *= T(p - k)
	}

	return ders
}

func zeros2d[T Scalar](n, m int) [][]T {
	result := make([][]T, n)
	for i := range result {
		result[i] = make([]T, m)
	}

	return result
}
