package bezier

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
)

// WriteCurve writes the curve one sample per line in %g format.
func WriteCurve(w io.Writer, c *Curve) error {
	if err := c.valid(); err != nil {
		return fmt.Errorf("%w: curve", err)
	}
	bw := bufio.NewWriter(w)
	for _, v := range c.samples {
		if _, err := fmt.Fprintf(bw, "%g\n", v); err != nil {
			return fmt.Errorf("writing curve sample: %w", err)
		}
	}
	return bw.Flush()
}

// WriteSpline writes one line per segment holding the four evaluated
// polynomial coefficients, comma-separated in %g format. The trailing
// quartic-remainder column of each row is not emitted.
func WriteSpline(w io.Writer, s *Spline) error {
	if err := s.valid(); err != nil {
		return fmt.Errorf("%w: spline", err)
	}
	bw := bufio.NewWriter(w)
	for i := range s.numSegs {
		seg := s.Segment(i)
		if _, err := fmt.Fprintf(bw, "%g,%g,%g,%g\n", seg[0], seg[1], seg[2], seg[3]); err != nil {
			return fmt.Errorf("writing segment %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// DumpCurve writes the curve to curve.txt in the working directory.
// Best effort: failures are logged, never returned.
func DumpCurve(c *Curve) {
	dumpTo(curveFileName, func(w io.Writer) error { return WriteCurve(w, c) })
}

// DumpSpline writes the spline coefficients to spline.txt in the working
// directory. Best effort: failures are logged, never returned.
func DumpSpline(s *Spline) {
	dumpTo(splineFileName, func(w io.Writer) error { return WriteSpline(w, s) })
}

func dumpTo(name string, write func(io.Writer) error) {
	f, err := os.Create(name)
	if err != nil {
		log.Printf("bezier: failed to write %s: %v", name, err)
		return
	}
	defer func() { _ = f.Close() }()

	if err := write(f); err != nil {
		log.Printf("bezier: failed to write %s: %v", name, err)
	}
}
