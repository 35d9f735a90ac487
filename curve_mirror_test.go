package nurbs

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Curve2 and Curve3 wrap the same core and differ only in their point type
// and dimension. curve2.go is kept as the planar rewrite of curve3.go.
var planar = strings.NewReplacer(
	"Curve3", "Curve2",
	"Point3", "Point2",
	"flatten3", "flatten2",
	"curve in space", "curve in the plane",
	"three-dimensional", "two-dimensional",
	"Dim:     3", "Dim:     2",
	"d.Dim != 3", "d.Dim != 2",
	"want 3\"", "want 2\"",
)

func TestCurve2MirrorsCurve3(t *testing.T) {
	space, err := os.ReadFile("curve3.go")
	require.NoError(t, err)
	plane, err := os.ReadFile("curve2.go")
	require.NoError(t, err)

	diff(t, planar.Replace(string(space)), string(plane))
}
