package nurbs_test

import (
	"fmt"

	"github.com/alexozer/nurbs"
	"github.com/pkg/errors"
)

func ExampleNewCurve2() {
	c, err := nurbs.NewCurve2(
		[]nurbs.Point2[float64]{{0, 0}, {1, 2}, {2, 0}},
		nil,
		[]float64{0, 0, 0, 1, 1, 1},
		2)
	if err != nil {
		panic(err)
	}

	pt, _ := c.EvaluateAt(0.5)
	fmt.Println(pt)

	_, err = c.EvaluateAt(1.5)
	fmt.Println(errors.Is(err, nurbs.ErrParameterOutOfRange))
	// Output:
	// [1 1]
	// true
}

func ExampleSplit() {
	d := nurbs.CurveData[float64]{
		Dim:    2,
		Points: []float64{0, 0, 1, 2, 2, 0},
		Knots:  []float64{0, 0, 0, 1, 1, 1},
		Degree: 2,
	}

	left, right, err := nurbs.Split(d, 0.5)
	if err != nil {
		panic(err)
	}
	fmt.Println(left.Knots, right.Knots)
	fmt.Println(left.Points[4:], right.Points[:2])
	// Output:
	// [0 0 0 0.5 0.5 0.5] [0.5 0.5 0.5 1 1 1]
	// [1 1] [1 1]
}

func ExampleNewCurve3_insufficientControlPoints() {
	_, err := nurbs.NewCurve3(
		[]nurbs.Point3[float64]{{0, 0, 0}, {1, 0, 0}},
		nil,
		[]float64{0, 0, 0, 1, 1},
		2)
	fmt.Println(errors.Is(err, nurbs.ErrInsufficientControlPoints))
	// Output:
	// true
}
