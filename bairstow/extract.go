package bairstow

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/polyroots/matrix"
	"github.com/katalvlaran/polyroots/poly"
)

// initialError forces at least one iteration.
const initialError = 1.0

// Factor is a converged quadratic factor x² − R·x − S.
type Factor struct {
	R, S       float64
	Roots      [2]complex128 // "+" root first
	Iterations int
}

// extractor runs factor extractions with fixed thresholds and options,
// reusing one workspace across the reduction steps of a solve.
type extractor struct {
	erThreshold, esThreshold float64
	opts                     Options
	ws                       *workspace
}

func newExtractor(er, es float64, opts Options, size int) *extractor {
	return &extractor{erThreshold: er, esThreshold: es, opts: opts, ws: newWorkspace(size)}
}

// ExtractFactor finds one quadratic factor x² − r·x − s of a starting from
// (r0, s0) and returns it together with the quotient polynomial of degree
// len(a)−3. a is not modified.
//
// Errors:
//   - ErrDegreeTooLow when len(a) ≤ 3.
//   - ErrMalformedPolynomial when the leading coefficient is zero.
//   - ErrBadThreshold, ErrBadGuess for non-positive or non-finite parameters.
//   - ErrNonConvergence after the iteration cap (WithMaxIterations).
//   - ErrNumericalInstability (wrapping the matrix cause) on a singular
//     correction or non-finite r, s.
func ExtractFactor(a poly.Polynomial, r0, s0, erThreshold, esThreshold float64, opts ...Option) (Factor, poly.Polynomial, error) {
	if err := validateThresholds(erThreshold, esThreshold); err != nil {
		return Factor{}, nil, fmt.Errorf("ExtractFactor: %w", err)
	}
	if err := validateGuess(r0, s0); err != nil {
		return Factor{}, nil, fmt.Errorf("ExtractFactor: %w", err)
	}
	if err := validateCoefficients(a); err != nil {
		return Factor{}, nil, fmt.Errorf("ExtractFactor: %w", err)
	}
	e := newExtractor(erThreshold, esThreshold, gatherOptions(opts...), len(a))

	return e.extract(a, r0, s0)
}

func (e *extractor) extract(a poly.Polynomial, r, s float64) (Factor, poly.Polynomial, error) {
	if len(a) <= 3 {
		return Factor{}, nil, fmt.Errorf("ExtractFactor: degree %d: %w", a.Degree(), ErrDegreeTooLow)
	}
	if a.Leading() == 0 {
		return Factor{}, nil, fmt.Errorf("ExtractFactor: zero leading coefficient: %w", ErrMalformedPolynomial)
	}

	b, c := e.ws.buffers(len(a))
	pivot := matrix.WithPivotTolerance(e.opts.pivotTol)
	er, es := initialError, initialError

	var (
		iter   int
		dr, ds float64
		err    error
	)
	for er > e.erThreshold || es > e.esThreshold {
		if iter == e.opts.maxIter {
			return Factor{}, nil, fmt.Errorf("ExtractFactor: %d iterations, r=%g s=%g er=%g es=%g: %w",
				iter, r, s, er, es, ErrNonConvergence)
		}

		divideQuadratic(a, b, r, s, 0)
		divideQuadratic(b, c, r, s, 1)
		dr, ds, err = e.ws.correction(b, c, pivot)
		if err != nil {
			return Factor{}, nil, fmt.Errorf("ExtractFactor: iteration %d, r=%g s=%g: %w: %w",
				iter+1, r, s, ErrNumericalInstability, err)
		}

		r, s = r+dr, s+ds
		if !isFinite(r) || !isFinite(s) {
			return Factor{}, nil, fmt.Errorf("ExtractFactor: iteration %d: r=%g s=%g: %w",
				iter+1, r, s, ErrNumericalInstability)
		}
		er = changeMetric(dr, r, e.opts.zeroTol)
		es = changeMetric(ds, s, e.opts.zeroTol)
		iter++

		e.opts.logger.Debug("bairstow iteration",
			zap.Int("iter", iter),
			zap.Float64("dr", dr),
			zap.Float64("ds", ds),
			zap.Float64("r", r),
			zap.Float64("s", s),
			zap.Float64("er", er),
			zap.Float64("es", es),
		)
	}

	// a = 1 never takes the malformed branch.
	roots, _ := QuadraticRoots(1, -r, -s)
	f := Factor{R: r, S: s, Roots: [2]complex128{roots[0], roots[1]}, Iterations: iter}

	// b holds the division by the last trial factor; b[2:] is the quotient.
	rem := make(poly.Polynomial, len(b)-2)
	copy(rem, b[2:])

	e.opts.logger.Debug("bairstow factor converged",
		zap.Int("iterations", iter),
		zap.Float64("r", r),
		zap.Float64("s", s),
		zap.Stringer("remainder", rem),
	)

	return f, rem, nil
}

// changeMetric is |d/v|, or |d| once |v| ≤ zeroTol.
func changeMetric(d, v, zeroTol float64) float64 {
	if math.Abs(v) <= zeroTol {
		return math.Abs(d)
	}

	return math.Abs(d / v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateThresholds(er, es float64) error {
	for _, t := range [2]float64{er, es} {
		if !isFinite(t) || t <= 0 {
			return fmt.Errorf("er=%g es=%g: %w", er, es, ErrBadThreshold)
		}
	}

	return nil
}

func validateGuess(r0, s0 float64) error {
	if !isFinite(r0) || !isFinite(s0) {
		return fmt.Errorf("r0=%g s0=%g: %w", r0, s0, ErrBadGuess)
	}

	return nil
}

func validateCoefficients(a poly.Polynomial) error {
	_, err := poly.New(a...)

	return err
}
