package nurbs

import (
	"math"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCurve2Parabola(t *testing.T) {
	c, err := NewCurve2([]Point2[float64]{{0, 0}, {1, 2}, {2, 0}}, nil, []float64{0, 0, 0, 1, 1, 1}, 2)
	require.NoError(t, err)
	require.False(t, c.IsRational())

	for _, tt := range []struct {
		u    float64
		want Point2[float64]
	}{
		{0, Point2[float64]{0, 0}},
		{0.5, Point2[float64]{1, 1}},
		{1, Point2[float64]{2, 0}},
	} {
		got, err := c.EvaluateAt(tt.u)
		require.NoError(t, err)
		diff(t, tt.want, got, approx(1e-12))
	}
}

func TestCurveInsufficientControlPoints(t *testing.T) {
	_, err := NewCurve2([]Point2[float64]{{0, 0}, {1, 1}}, nil, []float64{0, 0, 0, 1, 1}, 2)
	require.True(t, errors.Is(err, ErrInsufficientControlPoints), "got %v", err)

	_, err = NewCurve3([]Point3[float64]{{0, 0, 0}, {1, 1, 1}}, nil, []float64{0, 0, 0, 1, 1}, 2)
	require.True(t, errors.Is(err, ErrInsufficientControlPoints), "got %v", err)
}

func TestCurveConstructionErrors(t *testing.T) {
	pts := []Point3[float64]{{0, 0, 0}, {1, 1, 0}, {2, 0, 0}}

	tests := []struct {
		name    string
		weights []float64
		knots   []float64
		degree  int
		want    error
	}{
		{"knot count too small", nil, []float64{0, 0, 1, 1, 1}, 2, ErrInvalidKnotVector},
		{"knot count too large", nil, []float64{0, 0, 0, 0.5, 1, 1, 1}, 2, ErrInvalidKnotVector},
		{"decreasing knots", nil, []float64{0, 0, 1, 0.5, 1, 1}, 2, ErrInvalidKnotVector},
		{"negative degree", nil, []float64{0, 0, 0, 1}, -1, ErrInvalidKnotVector},
		{"zero weight", []float64{1, 0, 1}, []float64{0, 0, 0, 1, 1, 1}, 2, ErrInvalidWeight},
		{"negative weight", []float64{1, -2, 1}, []float64{0, 0, 0, 1, 1, 1}, 2, ErrInvalidWeight},
		{"infinite weight", []float64{1, math.Inf(1), 1}, []float64{0, 0, 0, 1, 1, 1}, 2, ErrInvalidWeight},
		{"weight count", []float64{1, 1}, []float64{0, 0, 0, 1, 1, 1}, 2, ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCurve3(pts, tt.weights, tt.knots, tt.degree)
			require.Nil(t, c)
			require.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestCurveFromDataDimension(t *testing.T) {
	d := CurveData[float64]{Dim: 2, Points: []float64{0, 0, 1, 1}, Knots: []float64{0, 0, 1, 1}, Degree: 1}

	_, err := NewCurve3FromData(d)
	require.True(t, errors.Is(err, ErrDimensionMismatch), "got %v", err)

	d.Points = d.Points[:3]
	_, err = NewCurve2FromData(d)
	require.True(t, errors.Is(err, ErrDimensionMismatch), "got %v", err)
}

func TestCurveKnotCountInvariant(t *testing.T) {
	for degree := 0; degree <= 4; degree++ {
		for n := degree + 1; n <= degree+4; n++ {
			pts := make([]Point3[float64], n)
			for i := range pts {
				pts[i] = Point3[float64]{float64(i), float64(i * i), 0}
			}
			knots := make([]float64, 0, n+degree+1)
			for i := 0; i <= degree; i++ {
				knots = append(knots, 0)
			}
			for i := 1; i < n-degree; i++ {
				knots = append(knots, float64(i))
			}
			for i := 0; i <= degree; i++ {
				knots = append(knots, float64(n-degree))
			}

			c, err := NewCurve3(pts, nil, knots, degree)
			require.NoError(t, err)
			require.Equal(t, c.ControlPointCount()+c.Degree()+1, c.Knots().Len())

			_, err = NewCurve3(pts, nil, append(knots, knots[len(knots)-1]+1), degree)
			require.True(t, errors.Is(err, ErrInvalidKnotVector), "degree %d, %d points: %v", degree, n, err)
		}
	}
}

func TestCurveCopiesInput(t *testing.T) {
	pts := []Point3[float64]{{0, 0, 0}, {1, 1, 0}, {2, 0, 0}}
	weights := []float64{1, 2, 1}
	c := mustCurve3(t, pts, weights, []float64{0, 0, 0, 1, 1, 1}, 2)

	pts[1] = Point3[float64]{9, 9, 9}
	weights[1] = 5
	require.Equal(t, Point3[float64]{1, 1, 0}, c.ControlPoint(1))
	require.Equal(t, 2.0, c.WeightAt(1))

	d := c.Data()
	d.Points[0] = 42
	require.Equal(t, Point3[float64]{0, 0, 0}, c.ControlPoint(0))
}

func TestCurveEndpointInterpolation(t *testing.T) {
	for _, c := range []*Curve3[float64]{freeform(t), rationalFreeform(t), quarterCircle(t)} {
		min, max := c.Domain()

		first, err := c.EvaluateAt(min)
		require.NoError(t, err)
		last, err := c.EvaluateAt(max)
		require.NoError(t, err)

		diff(t, c.ControlPoint(0), first, approx(1e-12))
		diff(t, c.ControlPoint(c.ControlPointCount()-1), last, approx(1e-12))
	}
}

func TestCurveRationalCircle(t *testing.T) {
	c := quarterCircle(t)
	require.True(t, c.IsRational())

	for _, u := range params(0, 1, 50) {
		p := c.PointAt(u)
		require.InDelta(t, 1, p.Length(), 1e-12, "u = %v", u)

		tan, err := c.TangentAt(u)
		require.NoError(t, err)
		// the tangent of a circle is perpendicular to the radius
		require.InDelta(t, 0, tan.Dot(p), 1e-9, "u = %v", u)
		require.InDelta(t, 1, tan.Length(), 1e-12)
	}
}

func TestCurveParameterPolicy(t *testing.T) {
	c := freeform(t)

	_, err := c.EvaluateAt(-0.1)
	require.True(t, errors.Is(err, ErrParameterOutOfRange), "got %v", err)
	_, err = c.EvaluateAt(2.1)
	require.True(t, errors.Is(err, ErrParameterOutOfRange), "got %v", err)
	_, err = c.DerivativeAt(3)
	require.True(t, errors.Is(err, ErrParameterOutOfRange), "got %v", err)
	_, err = c.Derivatives(-1, 2)
	require.True(t, errors.Is(err, ErrParameterOutOfRange), "got %v", err)
	_, err = c.Derivatives(0.5, -2)
	require.True(t, errors.Is(err, ErrParameterOutOfRange), "got %v", err)
	_, err = c.TangentAt(5)
	require.True(t, errors.Is(err, ErrParameterOutOfRange), "got %v", err)

	// PointAt clamps instead
	diff(t, c.PointAt(0), c.PointAt(-0.1))
	diff(t, c.PointAt(2), c.PointAt(2.1))
}

func TestCurveDerivativesMatchFiniteDifferences(t *testing.T) {
	const h = 1e-6
	for _, c := range []*Curve3[float64]{freeform(t), rationalFreeform(t), quarterCircle(t)} {
		min, max := c.Domain()
		for _, u := range params(min+0.01, max-0.01, 23) {
			der, err := c.DerivativeAt(u)
			require.NoError(t, err)

			fd := c.PointAt(u + h).Sub(c.PointAt(u - h)).Scale(1 / (2 * h))
			diff(t, fd, der, approx(1e-5))

			ders, err := c.Derivatives(u, 2)
			require.NoError(t, err)
			require.Len(t, ders, 3)
			diff(t, c.PointAt(u), ders[0], approx(1e-12))
			diff(t, der, ders[1], approx(1e-9))

			d1lo, _ := c.DerivativeAt(u - h)
			d1hi, _ := c.DerivativeAt(u + h)
			fd2 := d1hi.Sub(d1lo).Scale(1 / (2 * h))
			diff(t, fd2, ders[2], approx(1e-4))
		}
	}
}

func TestCurveDerivativesBeyondDegree(t *testing.T) {
	c := freeform(t)
	ders, err := c.Derivatives(0.5, 5)
	require.NoError(t, err)
	require.Len(t, ders, 6)
	diff(t, Point3[float64]{}, ders[4], approx(1e-9))
	diff(t, Point3[float64]{}, ders[5], approx(1e-9))
}

func TestCurveTangentDegenerate(t *testing.T) {
	// coincident middle control points stop the curve at u = 0.5
	c := mustCurve3(t,
		[]Point3[float64]{{0, 0, 0}, {1, 1, 0}, {1, 1, 0}, {2, 0, 0}},
		nil,
		[]float64{0, 0, 0, 0.5, 1, 1, 1}, 2)

	_, err := c.TangentAt(0.5)
	require.True(t, errors.Is(err, ErrDegenerateGeometry), "got %v", err)

	_, err = c.TangentAt(0.25)
	require.NoError(t, err)
}

func TestCurveLength(t *testing.T) {
	line := mustCurve3(t, []Point3[float64]{{0, 0, 0}, {3, 4, 0}}, nil, []float64{0, 0, 1, 1}, 1)
	require.InDelta(t, 5, line.Length(), 1e-12)
	require.InDelta(t, 5, line.ApproximateLength(1), 1e-12)

	c := quarterCircle(t)
	want := math.Pi / 2
	prev := 0.0
	for _, n := range []int{4, 16, 64, 256} {
		l := c.ApproximateLength(n)
		require.LessOrEqual(t, l, want+1e-12)
		require.Greater(t, l, prev)
		prev = l
	}
	require.InDelta(t, want, c.Length(), 1e-4)
}

func TestCurveSample(t *testing.T) {
	c := freeform(t)
	samples := c.Sample(5)
	require.Len(t, samples, 5)
	diff(t, []float64{0, 0.5, 1, 1.5, 2}, []float64{samples[0].U, samples[1].U, samples[2].U, samples[3].U, samples[4].U}, approx(1e-12))
	for _, s := range samples {
		diff(t, c.PointAt(s.U), s.Pt)
	}

	require.Len(t, c.Sample(0), 2)
}

func TestCurveReverse(t *testing.T) {
	for _, c := range []*Curve3[float64]{freeform(t), rationalFreeform(t)} {
		r := c.Reverse()
		min, max := c.Domain()
		rmin, rmax := r.Domain()
		require.InDelta(t, max-min, rmax-rmin, 1e-12)

		for _, u := range params(min, max, 40) {
			diff(t, c.PointAt(u), r.PointAt(rmin+(max-u)), approx(1e-9))
		}
	}
}

func TestCurveFloat32(t *testing.T) {
	c, err := NewCurve2([]Point2[float32]{{0, 0}, {1, 2}, {2, 0}}, nil, []float32{0, 0, 0, 1, 1, 1}, 2)
	require.NoError(t, err)

	p, err := c.EvaluateAt(0.5)
	require.NoError(t, err)
	require.InDelta(t, 1, p[0], 1e-6)
	require.InDelta(t, 1, p[1], 1e-6)

	e, err := c.ElevateDegree()
	require.NoError(t, err)
	q := e.PointAt(0.5)
	require.InDelta(t, 1, q[1], 1e-5)
}

func TestCurveConcurrentReaders(t *testing.T) {
	c := rationalFreeform(t)
	want := make([]Point3[float64], 0, 101)
	us := params(0, 2, 100)
	for _, u := range us {
		want = append(want, c.PointAt(u))
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, u := range us {
				got, err := c.EvaluateAt(u)
				if err != nil {
					errs <- err
					return
				}
				if got != want[i] {
					errs <- errors.Errorf("u = %v: got %v, want %v", u, got, want[i])
					return
				}
			}
			if _, err := c.InsertKnot(0.5); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
