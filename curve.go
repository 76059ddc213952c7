package bezier

import "fmt"

// Curve is an ordered sequence of real-valued samples of fixed length.
// It represents either an input signal to be splined or an output buffer
// to be filled by evaluation. The creator owns the curve and releases its
// storage with Free; no resize operation exists.
type Curve struct {
	samples []float64
}

// NewCurve allocates a zero-initialized curve of the given length.
func NewCurve(length int) (*Curve, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: curve length %d is negative", ErrInvalidLength, length)
	}
	return &Curve{samples: make([]float64, length)}, nil
}

// NewCurveFromSamples allocates a curve holding a copy of the given samples.
func NewCurveFromSamples(samples []float64) (*Curve, error) {
	c, err := NewCurve(len(samples))
	if err != nil {
		return nil, err
	}
	copy(c.samples, samples)
	return c, nil
}

// Len returns the number of samples. A freed curve reports zero.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.samples)
}

// Samples returns the backing sample storage. The slice aliases the
// curve's memory, so writes through it are visible to later operations.
func (c *Curve) Samples() []float64 {
	if c == nil {
		return nil
	}
	return c.samples
}

// At returns sample i.
func (c *Curve) At(i int) float64 { return c.samples[i] }

// Set stores v at sample i.
func (c *Curve) Set(i int, v float64) { c.samples[i] = v }

// Free releases the sample storage. A freed curve reports Len() == 0, and
// freeing twice is a no-op.
func (c *Curve) Free() {
	if c == nil {
		return
	}
	c.samples = nil
}

// valid reports why the curve cannot be used, or nil.
func (c *Curve) valid() error {
	if c == nil {
		return ErrNilArgument
	}
	if c.samples == nil {
		return ErrCurveFreed
	}
	return nil
}
