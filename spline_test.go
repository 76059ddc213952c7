package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSpline_SegmentCount verifies num_segs = len - Degree for every
// curve long enough to carry at least one window.
func TestNewSpline_SegmentCount(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		wantSegs int
	}{
		{"minimum_window", 5, 1},
		{"two_windows", 6, 2},
		{"typical", 8, 4},
		{"large", 100, 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCurve(tt.length)
			require.NoError(t, err)

			s, err := NewSpline(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSegs, s.NumSegments())
			assert.Same(t, c, s.Curve(), "spline must reference its source curve")
		})
	}
}

// TestNewSpline_TooShort verifies curves of Degree samples or fewer are
// rejected instead of allocating zero or negative storage.
func TestNewSpline_TooShort(t *testing.T) {
	for length := range Degree + 1 {
		c, err := NewCurve(length)
		require.NoError(t, err)

		s, err := NewSpline(c)
		assert.ErrorIs(t, err, ErrCurveTooShort, "length %d must be rejected", length)
		assert.Nil(t, s)
	}
}

// TestSpline_SegmentViews verifies rows are contiguous stride-based views
// of a single backing block.
func TestSpline_SegmentViews(t *testing.T) {
	c, err := NewCurve(8)
	require.NoError(t, err)
	s, err := NewSpline(c)
	require.NoError(t, err)

	for i := range s.NumSegments() {
		row := s.Segment(i)
		require.Len(t, row, ControlPoints)
		assert.Same(t, &s.coeff[i*ControlPoints], &row[0],
			"row %d must alias the contiguous block", i)
	}

	// Writes through a row view land in the block.
	s.Segment(1)[2] = 7.5
	assert.Equal(t, 7.5, s.coeff[1*ControlPoints+2])
}

// TestSpline_FreeIdempotent verifies Free clears the back-reference and
// storage without touching the curve, and is safe to call twice.
func TestSpline_FreeIdempotent(t *testing.T) {
	c, err := NewCurve(8)
	require.NoError(t, err)
	s, err := NewSpline(c)
	require.NoError(t, err)

	s.Free()
	assert.Zero(t, s.NumSegments())
	assert.Nil(t, s.Curve(), "Free must clear the curve back-reference")
	assert.Equal(t, 8, c.Len(), "Free must not release the curve")

	s.Free() // second Free must be a no-op
	assert.Zero(t, s.NumSegments())

	err = Fit(c, s)
	assert.ErrorIs(t, err, ErrSplineFreed)
}

// TestSpline_EvaluateSegment verifies the checked single-point evaluator
// enforces real parameter bounds and the segment range.
func TestSpline_EvaluateSegment(t *testing.T) {
	c, err := NewCurveFromSamples([]float64{3, 3, 3, 3, 3, 3})
	require.NoError(t, err)
	s, err := NewSpline(c)
	require.NoError(t, err)
	require.NoError(t, Fit(c, s))

	v, err := s.EvaluateSegment(0, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-12)

	v, err = s.EvaluateSegment(1, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-12)

	_, err = s.EvaluateSegment(0, -0.01)
	assert.ErrorIs(t, err, ErrParamOutOfRange)
	_, err = s.EvaluateSegment(0, 1.01)
	assert.ErrorIs(t, err, ErrParamOutOfRange)
	_, err = s.EvaluateSegment(-1, 0.5)
	assert.ErrorIs(t, err, ErrSegmentOutOfRange)
	_, err = s.EvaluateSegment(s.NumSegments(), 0.5)
	assert.ErrorIs(t, err, ErrSegmentOutOfRange)
}
