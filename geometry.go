package bezier

import "fmt"

// geometryMatrix fills g's rows with overlapping sliding windows of the
// curve: row i holds samples [i, i+Degree]. The segment count is governed
// by the curve g was sized from, since that is what dimensioned g's rows;
// the supplied curve must have the same length so its windows line up with
// the rows g allocated.
func geometryMatrix(g *Spline, curve *Curve) error {
	if err := g.valid(); err != nil {
		return fmt.Errorf("%w: geometry matrix", err)
	}
	if err := curve.valid(); err != nil {
		return fmt.Errorf("%w: curve", err)
	}
	if g.curve.Len() != curve.Len() {
		return fmt.Errorf("%w: geometry sized for %d samples, curve has %d",
			ErrCurveMismatch, g.curve.Len(), curve.Len())
	}

	samples := curve.Samples()
	for i := range g.numSegs {
		copy(g.Segment(i), samples[i:i+ControlPoints])
	}
	return nil
}
