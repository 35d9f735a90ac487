package nurbs

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewKnotVectorErrors(t *testing.T) {
	tests := []struct {
		name   string
		knots  []float64
		degree int
	}{
		{"negative degree", []float64{0, 1}, -1},
		{"too few", []float64{0, 0, 1}, 1},
		{"decreasing", []float64{0, 0, 1, 0.5, 1, 1}, 1},
		{"not finite", []float64{0, 0, math.NaN(), 1, 1}, 1},
		{"infinite", []float64{0, 0, math.Inf(1), 1}, 1},
		{"multiplicity", []float64{0, 0, 0.5, 0.5, 0.5, 1, 1}, 1},
		{"empty domain", []float64{0, 1, 1, 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKnotVector(tt.knots, tt.degree)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidKnotVector), "got %v", err)
		})
	}
}

func TestKnotVectorCopiesInput(t *testing.T) {
	in := []float64{0, 0, 1, 1}
	kv, err := NewKnotVector(in, 1)
	require.NoError(t, err)

	in[0] = -5
	require.Equal(t, 0.0, kv.At(0))

	out := kv.Values()
	out[1] = 7
	require.Equal(t, 0.0, kv.At(1))
}

func TestKnotVectorDomain(t *testing.T) {
	kv, err := NewKnotVector([]float64{0, 1, 2, 3, 4, 5, 6}, 2)
	require.NoError(t, err)

	min, max := kv.Domain()
	require.Equal(t, 2.0, min)
	require.Equal(t, 4.0, max)

	require.True(t, kv.IsParameterValid(2))
	require.True(t, kv.IsParameterValid(4))
	require.False(t, kv.IsParameterValid(1.999))
	require.False(t, kv.IsParameterValid(4.001))

	require.Equal(t, 2.0, kv.Clamp(-10))
	require.Equal(t, 4.0, kv.Clamp(10))
	require.Equal(t, 3.5, kv.Clamp(3.5))

	require.False(t, kv.IsClamped())
	require.True(t, kv.IsUniform())
}

func TestSpanIndex(t *testing.T) {
	kv, err := NewKnotVector([]float64{0, 0, 0, 1, 2, 2, 3, 4, 4, 4}, 2)
	require.NoError(t, err)

	tests := []struct {
		u    float64
		want int
	}{
		{-1, 2},
		{0, 2},
		{0.5, 2},
		{1, 3},
		{1.5, 3},
		{2, 5},
		{2.9, 5},
		{3, 6},
		{4, 6},
		{5, 6},
	}
	for _, tt := range tests {
		got := kv.SpanIndex(tt.u)
		require.Equal(t, tt.want, got, "u = %v", tt.u)
		// the span is never empty
		require.Less(t, kv.At(got), kv.At(got+1), "u = %v", tt.u)
	}
}

func TestMultiplicities(t *testing.T) {
	kv, err := NewKnotVector([]float64{0, 0, 0, 1, 2, 2, 3, 4, 4, 4}, 2)
	require.NoError(t, err)

	diff(t, []KnotMultiplicity[float64]{
		{0, 3}, {1, 1}, {2, 2}, {3, 1}, {4, 3},
	}, kv.Multiplicities())

	require.Equal(t, 2, kv.MultiplicityAt(2))
	require.Equal(t, 0, kv.MultiplicityAt(2.5))
	require.True(t, kv.IsClamped())
	require.False(t, kv.IsUniform())
}

func TestKnotVectorReversed(t *testing.T) {
	kv, err := NewKnotVector([]float64{0, 0, 0, 1, 3, 3, 3}, 2)
	require.NoError(t, err)

	diff(t, []float64{0, 0, 0, 2, 3, 3, 3}, kv.Reversed().Values())
	diff(t, kv.Values(), kv.Reversed().Reversed().Values())
}

func TestKnotVectorFloat32(t *testing.T) {
	kv, err := NewKnotVector([]float32{0, 0, 0.5, 1, 1}, 1)
	require.NoError(t, err)
	require.Equal(t, 2, kv.SpanIndex(0.75))
	require.Equal(t, float32(1e-5), Epsilon[float32]())
	require.Equal(t, 1e-10, Epsilon[float64]())
}
