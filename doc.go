// Package bezier fits piecewise quartic Bezier splines to sampled curves
// and evaluates them at a chosen per-segment resolution.
//
// The fitting pipeline has three stages. A sliding window of ControlPoints
// consecutive samples is extracted for every segment of the input curve
// (the geometry matrix), each window is multiplied by a fixed quartic
// Bezier basis matrix to obtain that segment's polynomial coefficients,
// and each segment's polynomial is then evaluated at uniformly spaced
// parameter values to produce the interpolated trajectory.
//
// # Quick Start
//
// For simple one-shot interpolation:
//
//	output, err := bezier.Interpolate(samples, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For explicit control over container lifetimes:
//
//	curve, _ := bezier.NewCurve(len(samples))
//	copy(curve.Samples(), samples)
//	defer curve.Free()
//
//	spline, err := bezier.NewSpline(curve)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer spline.Free()
//
//	if err := bezier.Fit(curve, spline); err != nil {
//	    log.Fatal(err)
//	}
//
//	out, _ := bezier.NewCurve(spline.NumSegments() * 10)
//	if err := bezier.Evaluate(spline, out); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
//	Input curve -> [Geometry windows] -> [Basis transform] -> [Evaluator] -> Output curve
//	                  (ControlPoints          (fixed 5x5           (resolution
//	                   per segment)            matrix)              points per segment)
//
// A curve of N samples yields N-Degree segments; segment i covers samples
// [i, i+Degree], so consecutive windows overlap. Evaluation requires the
// destination length to be an exact integer multiple of the segment count.
//
// # Concurrency
//
// Both the basis transform and the evaluator write disjoint rows against a
// read-only basis matrix, so [Config] can enable parallel processing with
// output that is bit-exact with the sequential path. Individual containers
// are not safe for concurrent mutation by the caller.
//
// # Lifecycle
//
// Curves and Splines are created explicitly and released with Free, which
// is idempotent. A Spline holds a non-owning reference to the curve it was
// sized from; the curve must outlive the spline's use and is never released
// by the spline.
package bezier
