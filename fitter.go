package bezier

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

var (
	// ErrInvalidConfig indicates invalid fitter configuration.
	ErrInvalidConfig = errors.New("invalid fitter configuration")

	// ErrNilArgument indicates a nil container reference.
	ErrNilArgument = errors.New("nil argument")

	// ErrCurveFreed indicates use of a curve after Free.
	ErrCurveFreed = errors.New("curve has been freed")

	// ErrSplineFreed indicates use of a spline after Free.
	ErrSplineFreed = errors.New("spline has been freed")

	// ErrInvalidLength indicates an unusable curve length.
	ErrInvalidLength = errors.New("invalid curve length")

	// ErrCurveTooShort indicates a curve too short to carry one window.
	ErrCurveTooShort = errors.New("curve too short for spline degree")

	// ErrCurveMismatch indicates disagreeing segment dimensions between
	// a spline and the curve or geometry matrix it is paired with.
	ErrCurveMismatch = errors.New("curve length does not match spline")

	// ErrResolutionMismatch indicates a destination whose length is not a
	// positive integer multiple of the spline's segment count.
	ErrResolutionMismatch = errors.New("destination length is not a multiple of the segment count")

	// ErrParamOutOfRange indicates a parameter value outside [0, 1].
	ErrParamOutOfRange = errors.New("parameter outside [0, 1]")

	// ErrSegmentOutOfRange indicates a segment index outside the spline.
	ErrSegmentOutOfRange = errors.New("segment index out of range")
)

// Config controls the optional fast paths of a Fitter. The zero value
// selects the scalar sequential implementation.
type Config struct {
	// EnableSIMD selects the vectorized dot-product path for the basis
	// transform.
	EnableSIMD bool

	// EnableParallel processes segment rows concurrently during fitting
	// and evaluation. Rows are disjoint, so the result is bit-exact with
	// sequential processing.
	EnableParallel bool

	// Workers is the goroutine count for parallel processing.
	// Zero means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the configuration used by the package-level
// convenience functions: SIMD on, parallel off.
func DefaultConfig() *Config {
	return &Config{EnableSIMD: true}
}

// Fitter computes spline coefficients for curves and evaluates the
// resulting splines. A Fitter holds no per-computation state and is safe
// for concurrent use.
type Fitter struct {
	cfg Config
}

// NewFitter creates a fitter with the given configuration. A nil config
// selects DefaultConfig.
func NewFitter(cfg *Config) (*Fitter, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must be non-negative, got %d",
			ErrInvalidConfig, cfg.Workers)
	}
	return &Fitter{cfg: *cfg}, nil
}

// Fit computes the polynomial coefficients for every sliding window of the
// curve and writes them into spline. A temporary geometry matrix holds the
// raw windows during the transform; it is released on every exit path and
// never visible to the caller.
func (f *Fitter) Fit(curve *Curve, spline *Spline) error {
	if err := curve.valid(); err != nil {
		return fmt.Errorf("%w: curve", err)
	}
	if err := spline.valid(); err != nil {
		return fmt.Errorf("%w: spline", err)
	}

	g, err := NewSpline(curve)
	if err != nil {
		return fmt.Errorf("allocating geometry matrix: %w", err)
	}
	defer g.Free()

	if err := geometryMatrix(g, curve); err != nil {
		return fmt.Errorf("extracting geometry windows: %w", err)
	}
	if err := f.coefficients(spline, g); err != nil {
		return fmt.Errorf("computing coefficients: %w", err)
	}
	return nil
}

// workers returns the effective worker count.
func (f *Fitter) workers() int {
	if f.cfg.Workers > 0 {
		return f.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// parallelRows splits [0, n) into one contiguous chunk per worker and
// runs fn on each chunk in its own goroutine, joining before return.
// Chunks are disjoint, so fn needs no locking as long as it only writes
// rows inside its range.
func (f *Fitter) parallelRows(n int, fn func(start, end int)) {
	workers := min(f.workers(), n)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
