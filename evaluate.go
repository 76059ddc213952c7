package bezier

import "fmt"

// Polynomial evaluates the cubic
//
//	coeff[0]*t^3 + coeff[1]*t^2 + coeff[2]*t + coeff[3]
//
// using Horner's rule. Only the first polynomialTerms values of a
// coefficient row participate; the trailing quartic-remainder column is
// ignored. The intended parameter domain is [0, 1]; callers that cannot
// guarantee it should go through Spline.EvaluateSegment, which checks.
func Polynomial(coeff []float64, t float64) float64 {
	return ((coeff[0]*t+coeff[1])*t+coeff[2])*t + coeff[3]
}

// Evaluate resamples the spline into dst at dst.Len()/NumSegments()
// points per segment. The destination length must be a positive integer
// multiple of the segment count. Within each segment the parameter sweeps
// [0, 1) in steps of 1/resolution, so dst[i*resolution] is segment i's
// value at t=0 exactly, and a segment's right endpoint is only approached
// as the next segment's t=0.
func (f *Fitter) Evaluate(spline *Spline, dst *Curve) error {
	if err := spline.valid(); err != nil {
		return fmt.Errorf("%w: spline", err)
	}
	if err := dst.valid(); err != nil {
		return fmt.Errorf("%w: destination", err)
	}
	numSegs := spline.numSegs
	if dst.Len() == 0 || dst.Len()%numSegs != 0 {
		return fmt.Errorf("%w: destination length %d, segment count %d",
			ErrResolutionMismatch, dst.Len(), numSegs)
	}

	res := dst.Len() / numSegs
	out := dst.Samples()
	eval := func(start, end int) {
		for i := start; i < end; i++ {
			seg := spline.Segment(i)
			base := i * res
			for j := range res {
				out[base+j] = Polynomial(seg, float64(j)/float64(res))
			}
		}
	}

	if !f.cfg.EnableParallel || f.workers() <= 1 || numSegs < minParallelSegments {
		eval(0, numSegs)
		return nil
	}
	f.parallelRows(numSegs, eval)
	return nil
}
