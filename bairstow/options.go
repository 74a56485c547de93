package bairstow

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/polyroots/matrix"
)

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultMaxIterations caps the Newton iterations of one factor extraction.
	DefaultMaxIterations = 500

	// DefaultZeroTolerance is the magnitude below which r or s counts as zero;
	// the stopping rule then measures the absolute change instead of the
	// relative one.
	DefaultZeroTolerance = 1e-12

	// DefaultPivotTolerance is forwarded to matrix.WithPivotTolerance for the
	// 2×2 correction solve.
	DefaultPivotTolerance = matrix.DefaultPivotTolerance
)

const (
	panicMaxIterationsInvalid  = "bairstow: WithMaxIterations: n must be > 0"
	panicZeroToleranceInvalid  = "bairstow: WithZeroTolerance: tol must be finite, non-negative"
	panicPivotToleranceInvalid = "bairstow: WithPivotTolerance: tol must be finite, non-negative"
)

// Option configures a Solver or a single ExtractFactor call.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration; fields are unexported.
type Options struct {
	maxIter  int
	zeroTol  float64
	pivotTol float64
	logger   *zap.Logger
}

// WithMaxIterations sets the per-factor iteration cap. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithZeroTolerance sets the |r|, |s| level under which the stopping rule
// switches from relative to absolute change. 0 means "only exact zero".
func WithZeroTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicZeroToleranceInvalid)
	}

	return func(o *Options) { o.zeroTol = tol }
}

// WithPivotTolerance sets the relative pivot tolerance of the correction solve.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithLogger routes iteration traces to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

func defaultOptions() Options {
	return Options{
		maxIter:  DefaultMaxIterations,
		zeroTol:  DefaultZeroTolerance,
		pivotTol: DefaultPivotTolerance,
		logger:   zap.NewNop(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
