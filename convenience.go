package bezier

import "fmt"

// Fit computes spline coefficients for curve using DefaultConfig.
func Fit(curve *Curve, spline *Spline) error {
	f, err := NewFitter(nil)
	if err != nil {
		return err
	}
	return f.Fit(curve, spline)
}

// Evaluate resamples spline into dst using DefaultConfig.
func Evaluate(spline *Spline, dst *Curve) error {
	f, err := NewFitter(nil)
	if err != nil {
		return err
	}
	return f.Evaluate(spline, dst)
}

// Interpolate is the one-shot entry point: it fits a spline to the given
// samples and evaluates resolution points per segment, returning the
// interpolated trajectory of length (len(samples)-Degree)*resolution.
// Intermediate containers are created and released internally.
func Interpolate(samples []float64, resolution int) ([]float64, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution must be positive, got %d",
			ErrInvalidConfig, resolution)
	}

	curve, err := NewCurveFromSamples(samples)
	if err != nil {
		return nil, err
	}
	defer curve.Free()

	spline, err := NewSpline(curve)
	if err != nil {
		return nil, err
	}
	defer spline.Free()

	if err := Fit(curve, spline); err != nil {
		return nil, err
	}

	dst, err := NewCurve(spline.NumSegments() * resolution)
	if err != nil {
		return nil, err
	}
	if err := Evaluate(spline, dst); err != nil {
		return nil, err
	}
	return dst.Samples(), nil
}
