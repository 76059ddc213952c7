package bezier

import (
	"fmt"

	"github.com/tphakala/simd/f64"
)

// basisMatrix is the quartic Bezier (Bernstein) basis, with rows ordered
// so that output k of a transformed window is the coefficient consumed as
// term k by the evaluator: cubic, quadratic, linear, constant, and the
// quartic remainder last. Dotting row k with a geometry window of
// ControlPoints samples yields coefficient k for that segment.
//
// The first four rows each sum to zero and the constant row sums to one,
// so a constant-valued window transforms to [0, 0, 0, v, 0]: the basis is
// a partition of unity and reproduces constants exactly.
//
// Shared read-only by every transform; never written after init.
var basisMatrix = [ControlPoints][ControlPoints]float64{
	{-4.0, 12.0, -12.0, 4.0, 0.0}, // cubic
	{6.0, -12.0, 6.0, 0.0, 0.0},   // quadratic
	{-4.0, 4.0, 0.0, 0.0, 0.0},    // linear
	{1.0, 0.0, 0.0, 0.0, 0.0},     // constant
	{1.0, -4.0, 6.0, -4.0, 1.0},   // quartic remainder, not evaluated
}

// segmentCoefficients transforms one geometry window into one coefficient
// row: dst[k] = sum_j basisMatrix[k][j] * geom[j]. Both slices must be
// ControlPoints wide. The SIMD path may accumulate in a different order
// than the scalar fallback, so the two agree to rounding, not bit-exactly.
func segmentCoefficients(dst, geom []float64, useSIMD bool) {
	if useSIMD {
		for k := range basisMatrix {
			dst[k] = f64.DotProductUnsafe(basisMatrix[k][:], geom)
		}
		return
	}
	for k := range basisMatrix {
		var sum float64
		for j, m := range basisMatrix[k] {
			sum += m * geom[j]
		}
		dst[k] = sum
	}
}

// coefficients applies the basis transform to every geometry row. Rows are
// disjoint and the basis matrix is read-only, so the parallel path needs
// no synchronization beyond the final join and its output is bit-exact
// with the sequential path.
func (f *Fitter) coefficients(spline, g *Spline) error {
	if spline.numSegs != g.numSegs {
		return fmt.Errorf("%w: spline has %d segments, geometry matrix has %d",
			ErrCurveMismatch, spline.numSegs, g.numSegs)
	}

	transform := func(start, end int) {
		for i := start; i < end; i++ {
			segmentCoefficients(spline.Segment(i), g.Segment(i), f.cfg.EnableSIMD)
		}
	}

	if !f.cfg.EnableParallel || f.workers() <= 1 || spline.numSegs < minParallelSegments {
		transform(0, spline.numSegs)
		return nil
	}
	f.parallelRows(spline.numSegs, transform)
	return nil
}
