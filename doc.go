// Package nurbs evaluates and transforms non-uniform rational B-spline
// curves and surfaces.
//
// # Curves and surfaces
//
// [Curve2] and [Curve3] are planar and space curves; [Surface] is a
// tensor-product surface in space. All of them are immutable once built and
// may be shared between goroutines. Constructors validate their input and
// report the first problem as one of the package's error kinds, such as
// [ErrInvalidKnotVector] or [ErrInvalidWeight].
//
// Coordinates, weights and parameters share one floating point type chosen
// by the caller through the [Scalar] constraint. Comparisons against zero use
// [Epsilon] and geometric checks use [Tolerance], both of which depend on
// that type.
//
// # Evaluation
//
// Methods like [Curve3.EvaluateAt] and [Surface.NormalAt] reject parameters
// outside the domain with [ErrParameterOutOfRange]. [Curve3.PointAt] and
// [Surface.PointAt] clamp instead, which suits sampling loops whose last
// parameter is computed by floating point arithmetic.
//
// # Transforms
//
// [InsertKnot], [RefineKnots], [ElevateDegree] and [Split] operate on the
// raw [CurveData] of a curve of any dimension and never modify their input.
// Surfaces get the same operations per direction through
// [InsertSurfaceKnot], [ElevateSurfaceDegree] and [SplitSurface]. Each
// returns geometry that is pointwise identical to the input over the
// affected domain.
//
// Constructors for common shapes live in the make package; bounding boxes,
// classification and approximate comparison in foundation.
package nurbs
