package nurbs

import (
	"slices"

	"github.com/alexozer/nurbs/internal/homo"
	"github.com/golang/glog"
)

// ElevateDegree raises the degree of the curve described by d by one without
// changing its shape. Every distinct knot inside the domain gains one in
// multiplicity. d is not modified.
//
// An unclamped knot vector is clamped to the domain first, which drops the
// knots and control points that only shape the curve outside it.
func ElevateDegree[T Scalar](d CurveData[T]) (CurveData[T], error) {
	c, err := newCurve(d)
	if err != nil {
		return CurveData[T]{}, err
	}

	h := c.homogeneous().elevate(1)
	glog.V(2).Infof("elevated degree %d -> %d: %d -> %d control points", c.degree(), h.degree, c.count(), h.count())

	return validated(h.curveData(c.weights.IsRational()))
}

// elevate raises the degree of any valid curve by degreeInc. elevateDegree
// needs a clamped knot vector without interior knots of multiplicity
// degree+1, so the curve is clamped, cut at those knots, and the elevated
// pieces are joined again.
func (h hcurve[T]) elevate(degreeInc int) hcurve[T] {
	pieces := h.clamped().pieces()
	out := pieces[0].elevateDegree(degreeInc)
	for _, piece := range pieces[1:] {
		out = out.join(piece.elevateDegree(degreeInc))
	}
	return out
}

// clamped returns the part of the curve over its domain with both ends of
// the knot vector at multiplicity degree+1.
func (h hcurve[T]) clamped() hcurve[T] {
	p := h.degree
	if h.knots[0] != h.knots[p] {
		_, h = h.split(h.knots[p])
	}
	if last := len(h.knots) - 1; h.knots[last] != h.knots[last-p] {
		h, _ = h.split(h.knots[last-p])
	}
	return h
}

// pieces cuts a clamped curve at every interior knot of multiplicity
// degree+1.
func (h hcurve[T]) pieces() []hcurve[T] {
	p := h.degree
	min, max := h.knots[p], h.knots[len(h.knots)-p-1]
	kv := KnotVector[T]{knots: h.knots, degree: p}

	var out []hcurve[T]
	for _, km := range kv.Multiplicities() {
		if km.Knot > min && km.Knot < max && km.Mult > p {
			left, right := h.partition(km.Knot)
			out = append(out, left)
			h = right
		}
	}
	return append(out, h)
}

// join appends next, which starts at the parameter where h ends. The shared
// knot keeps multiplicity degree+1, so the joined curve may jump there just
// like the pieces it was cut from.
func (h hcurve[T]) join(next hcurve[T]) hcurve[T] {
	return hcurve[T]{
		stride: h.stride,
		pts:    slices.Concat(h.pts, next.pts),
		knots:  slices.Concat(h.knots[:h.count()], next.knots),
		degree: h.degree,
	}
}

// Elevate the degree of a clamped curve by degreeInc
// (corresponds to algorithm 5.9 from The NURBS book, Piegl & Tiller 2nd edition)
//
// The curve is decomposed into Bezier segments on the fly, each segment is
// elevated with the coefficients in bezalfs, and the knots that were only
// inserted for the decomposition are removed again.
func (h hcurve[T]) elevateDegree(degreeInc int) hcurve[T] {
	p, knots, stride := h.degree, h.knots, h.stride
	if p == 0 {
		return h.elevateConstant(degreeInc)
	}
	n := h.count() - 1
	m := n + p + 1
	ph := p + degreeInc
	ph2 := ph / 2

	// Bezier degree elevation coefficients
	bezalfs := zeros2d[T](ph+1, p+1)
	bezalfs[0][0] = 1
	bezalfs[ph][p] = 1

	for i := 1; i <= ph2; i++ {
		inv := 1 / binomial(ph, i)
		mpi := min(p, i)
		for j := max(0, i-degreeInc); j <= mpi; j++ {
			bezalfs[i][j] = T(inv * binomial(p, j) * binomial(degreeInc, i-j))
		}
	}
	for i := ph2 + 1; i < ph; i++ {
		mpi := min(p, i)
		for j := max(0, i-degreeInc); j <= mpi; j++ {
			bezalfs[i][j] = bezalfs[ph-i][p-j]
		}
	}

	// Every distinct knot gains at most degreeInc copies.
	maxKnots := (m + 1) * (degreeInc + 1)
	qw := zeros2d[T](maxKnots, stride)
	uh := make([]T, maxKnots+ph+1)

	bpts := zeros2d[T](p+1, stride)
	ebpts := zeros2d[T](ph+1, stride)
	nextbpts := zeros2d[T](max(p-1, 0)+1, stride)
	alfs := make([]T, max(p-1, 0)+1)

	mh := ph
	kind := ph + 1
	r := -1
	a := p
	b := p + 1
	cind := 1
	ua := knots[0]

	copy(qw[0], h.point(0))
	for i := 0; i <= ph; i++ {
		uh[i] = ua
	}

	// first Bezier segment
	for i := 0; i <= p; i++ {
		copy(bpts[i], h.point(i))
	}

	for b < m {
		i := b
		for b < m && knots[b] == knots[b+1] {
			b++
		}
		mul := b - i + 1
		mh += mul + degreeInc
		ub := knots[b]
		oldr := r
		r = p - mul

		// insert knot ub r times
		lbz := 1
		if oldr > 0 {
			lbz = (oldr + 2) / 2
		}
		rbz := ph
		if r > 0 {
			rbz = ph - (r+1)/2
		}

		if r > 0 {
			numer := ub - ua
			for k := p; k > mul; k-- {
				alfs[k-mul-1] = numer / (knots[a+k] - ua)
			}
			for j := 1; j <= r; j++ {
				save := r - j
				s := mul + j
				for k := p; k >= s; k-- {
					homo.Lerp(bpts[k], bpts[k-1], bpts[k], alfs[k-s])
				}
				copy(nextbpts[save], bpts[p])
			}
		}

		// degree elevate the Bezier segment
		for i := lbz; i <= ph; i++ {
			clear(ebpts[i])
			mpi := min(p, i)
			for j := max(0, i-degreeInc); j <= mpi; j++ {
				homo.AddScaled(ebpts[i], bpts[j], bezalfs[i][j])
			}
		}

		// remove knot ua oldr times
		if oldr > 1 {
			first := kind - 2
			last := kind
			den := ub - ua
			bet := (ub - uh[kind-1]) / den

			for tr := 1; tr < oldr; tr++ {
				i := first
				j := last
				kj := j - kind + 1

				for j-i > tr {
					if i < cind {
						alf := (ub - uh[i]) / (ua - uh[i])
						homo.Lerp(qw[i], qw[i-1], qw[i], alf)
					}
					if j >= lbz {
						if j-tr <= kind-ph+oldr {
							gam := (ub - uh[j-tr]) / den
							homo.Lerp(ebpts[kj], ebpts[kj+1], ebpts[kj], gam)
						} else {
							homo.Lerp(ebpts[kj], ebpts[kj+1], ebpts[kj], bet)
						}
					}
					i++
					j--
					kj--
				}

				first--
				last++
			}
		}

		// load the knot ua
		if a != p {
			for i := 0; i < ph-oldr; i++ {
				uh[kind] = ua
				kind++
			}
		}

		// load control points
		for j := lbz; j <= rbz; j++ {
			copy(qw[cind], ebpts[j])
			cind++
		}

		if b < m {
			// set up for the next segment
			for j := 0; j < r; j++ {
				copy(bpts[j], nextbpts[j])
			}
			for j := r; j <= p; j++ {
				copy(bpts[j], h.point(b-p+j))
			}
			a = b
			b++
			ua = ub
		} else {
			// end knot
			for i := 0; i <= ph; i++ {
				uh[kind+i] = ub
			}
		}
	}

	nh := mh - ph - 1
	pts := make([]T, 0, (nh+1)*stride)
	for _, q := range qw[:nh+1] {
		pts = append(pts, q...)
	}

	return hcurve[T]{
		stride: stride,
		pts:    pts,
		knots:  uh[:mh+1],
		degree: ph,
	}
}

// A clamped degree 0 curve without interior knots is a single constant
// segment, which the loop above never visits.
func (h hcurve[T]) elevateConstant(degreeInc int) hcurve[T] {
	pts := make([]T, 0, (degreeInc+1)*h.stride)
	knots := make([]T, 0, 2*(degreeInc+1))
	for i := 0; i <= degreeInc; i++ {
		pts = append(pts, h.point(0)...)
		knots = append(knots, h.knots[0])
	}
	for i := 0; i <= degreeInc; i++ {
		knots = append(knots, h.knots[1])
	}

	return hcurve[T]{stride: h.stride, pts: pts, knots: knots, degree: degreeInc}
}
