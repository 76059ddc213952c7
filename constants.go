package bezier

// Spline degree constants
const (
	// Degree is the fixed degree of every spline segment.
	Degree = 4

	// ControlPoints is the sliding-window width: the number of samples per
	// geometry window and of values per coefficient row.
	ControlPoints = Degree + 1
)

// Evaluator constants
const (
	// polynomialTerms is how many leading values of a coefficient row the
	// evaluator consumes (cubic, quadratic, linear, constant).
	polynomialTerms = 4
)

// Parallel processing constants
const (
	// minParallelSegments is the segment count below which the parallel
	// paths fall back to sequential processing; goroutine startup costs
	// more than the transform for tiny splines.
	minParallelSegments = 64
)

// Dump artifact names
const (
	curveFileName  = "curve.txt"
	splineFileName = "spline.txt"
)
