package homo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHomogenizeRoundTrip(t *testing.T) {
	pts := []float64{1, 2, 3, 4, 5, 6}
	weights := []float64{2, 0.5}

	h := Homogenize(3, pts, weights)
	require.Equal(t, []float64{2, 4, 6, 2, 2, 2.5, 3, 0.5}, h)

	back, ws := Dehomogenize(3, h, true)
	require.Equal(t, pts, back)
	require.Equal(t, weights, ws)
}

func TestHomogenizeUniform(t *testing.T) {
	h := Homogenize(2, []float64{1, 2, 3, 4}, nil)
	require.Equal(t, []float64{1, 2, 1, 3, 4, 1}, h)

	back, ws := Dehomogenize(2, h, false)
	require.Equal(t, []float64{1, 2, 3, 4}, back)
	require.Nil(t, ws)
}

func TestLerpAliased(t *testing.T) {
	a := []float64{0, 0, 1}
	b := []float64{4, 8, 3}
	Lerp(b, a, b, 0.25)
	require.Equal(t, []float64{1, 2, 1.5}, b)

	AddScaled(a, b, 2)
	require.Equal(t, []float64{2, 4, 4}, a)

	require.Equal(t, []float64{3, 4}, Point([]float64{1, 2, 3, 4, 5, 6}, 2, 1))
}
