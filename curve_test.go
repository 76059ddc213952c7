package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCurveLen8   = 8
	testCurveLen100 = 100
)

// TestNewCurve_ZeroInitialized verifies new curves start zeroed at the
// requested length.
func TestNewCurve_ZeroInitialized(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"empty", 0},
		{"single", 1},
		{"typical", testCurveLen8},
		{"large", testCurveLen100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCurve(tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.length, c.Len())
			for i := range tt.length {
				assert.Zero(t, c.At(i), "sample %d not zero-initialized", i)
			}
		})
	}
}

// TestNewCurve_NegativeLength verifies negative lengths are rejected.
func TestNewCurve_NegativeLength(t *testing.T) {
	c, err := NewCurve(-1)
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Nil(t, c)
}

// TestNewCurveFromSamples verifies the samples are copied, not aliased.
func TestNewCurveFromSamples(t *testing.T) {
	src := []float64{1, 2, 3}
	c, err := NewCurveFromSamples(src)
	require.NoError(t, err)
	require.Equal(t, len(src), c.Len())

	src[0] = 99
	assert.Equal(t, 1.0, c.At(0), "curve must own a copy of the samples")
}

// TestCurve_SetAt verifies writes are visible through both accessors.
func TestCurve_SetAt(t *testing.T) {
	c, err := NewCurve(testCurveLen8)
	require.NoError(t, err)

	c.Set(3, 2.5)
	assert.Equal(t, 2.5, c.At(3))
	assert.Equal(t, 2.5, c.Samples()[3])
}

// TestCurve_FreeIdempotent verifies Free resets the length and is safe to
// call repeatedly.
func TestCurve_FreeIdempotent(t *testing.T) {
	c, err := NewCurve(testCurveLen8)
	require.NoError(t, err)

	c.Free()
	assert.Zero(t, c.Len(), "freed curve must report zero length")
	assert.Nil(t, c.Samples())

	c.Free() // second Free must be a no-op
	assert.Zero(t, c.Len())
}

// TestCurve_FreedRejected verifies freed and nil curves fail validation.
func TestCurve_FreedRejected(t *testing.T) {
	c, err := NewCurve(testCurveLen8)
	require.NoError(t, err)
	c.Free()

	_, err = NewSpline(c)
	assert.ErrorIs(t, err, ErrCurveFreed)

	var nilCurve *Curve
	_, err = NewSpline(nilCurve)
	assert.ErrorIs(t, err, ErrNilArgument)
}
