package bezier

import "fmt"

// Spline holds the polynomial coefficients fitted to a curve, one row of
// ControlPoints values per segment. All rows live in a single contiguous
// block so that per-segment access stays cache-friendly and the whole
// allocation is released as one unit; Segment returns stride-based views
// into the block.
//
// A Spline keeps a non-owning back-reference to the curve it was sized
// from. The curve must outlive the spline's use; Free clears the reference
// but never releases the curve.
type Spline struct {
	curve   *Curve
	coeff   []float64
	numSegs int
}

// NewSpline allocates coefficient storage for every sliding window of the
// given curve. A curve of N samples yields N-Degree segments; a curve of
// Degree samples or fewer cannot carry a single window and is rejected.
func NewSpline(curve *Curve) (*Spline, error) {
	if err := curve.valid(); err != nil {
		return nil, fmt.Errorf("%w: curve", err)
	}
	if curve.Len() <= Degree {
		return nil, fmt.Errorf("%w: need more than %d samples, got %d",
			ErrCurveTooShort, Degree, curve.Len())
	}
	numSegs := curve.Len() - Degree
	return &Spline{
		curve:   curve,
		coeff:   make([]float64, numSegs*ControlPoints),
		numSegs: numSegs,
	}, nil
}

// NumSegments returns the segment count. A freed spline reports zero.
func (s *Spline) NumSegments() int {
	if s == nil {
		return 0
	}
	return s.numSegs
}

// Curve returns the curve this spline was sized from, or nil after Free.
func (s *Spline) Curve() *Curve {
	if s == nil {
		return nil
	}
	return s.curve
}

// Segment returns row i of the coefficient block as a slice of length
// ControlPoints. The slice aliases the spline's storage.
func (s *Spline) Segment(i int) []float64 {
	return s.coeff[i*ControlPoints : (i+1)*ControlPoints]
}

// EvaluateSegment evaluates segment i's polynomial at parameter t.
// Unlike the bulk evaluator, which generates parameters in [0,1) by
// construction, this entry point enforces t in [0,1].
func (s *Spline) EvaluateSegment(i int, t float64) (float64, error) {
	if err := s.valid(); err != nil {
		return 0, fmt.Errorf("%w: spline", err)
	}
	if i < 0 || i >= s.numSegs {
		return 0, fmt.Errorf("%w: segment %d of %d", ErrSegmentOutOfRange, i, s.numSegs)
	}
	if t < 0 || t > 1 {
		return 0, fmt.Errorf("%w: t=%v", ErrParamOutOfRange, t)
	}
	return Polynomial(s.Segment(i), t), nil
}

// Free releases the coefficient block and clears the curve back-reference
// without releasing the curve itself. Freeing twice is a no-op.
func (s *Spline) Free() {
	if s == nil {
		return
	}
	s.curve = nil
	s.coeff = nil
	s.numSegs = 0
}

// valid reports why the spline cannot be used, or nil.
func (s *Spline) valid() error {
	if s == nil {
		return ErrNilArgument
	}
	if s.coeff == nil {
		return ErrSplineFreed
	}
	return nil
}
