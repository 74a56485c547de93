package bairstow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/polyroots/poly"
)

// Solver finds all roots of real polynomials with fixed stopping thresholds.
// The roots of the most recent Solve are kept until the next call.
// A Solver is not safe for concurrent use.
type Solver struct {
	erThreshold float64
	esThreshold float64
	opts        Options

	roots   []complex128
	factors []Factor
}

// NewSolver returns a Solver stopping each extraction once the relative
// changes of r and s fall to er and es. Both must be finite and > 0.
func NewSolver(er, es float64, opts ...Option) (*Solver, error) {
	if err := validateThresholds(er, es); err != nil {
		return nil, fmt.Errorf("NewSolver: %w", err)
	}

	return &Solver{erThreshold: er, esThreshold: es, opts: gatherOptions(opts...)}, nil
}

// Solve computes every root of the polynomial with coefficients coeffs
// (coeffs[i] multiplies x^i) and replaces the Solver's accumulated roots.
//
// While the degree exceeds 2 a quadratic factor is extracted starting from
// (r0, s0) every time, its two roots are appended and the quotient becomes
// the new polynomial. The remaining quadratic or linear polynomial is solved
// in closed form; a constant contributes no roots.
//
// On error the accumulated roots are cleared and the error is returned;
// poly.ErrEmpty and poly.ErrNaNInf report bad coefficients.
func (sv *Solver) Solve(coeffs []float64, r0, s0 float64) error {
	sv.roots, sv.factors = nil, nil

	a, err := poly.New(coeffs...)
	if err != nil {
		return fmt.Errorf("Solve: %w", err)
	}
	if err = validateGuess(r0, s0); err != nil {
		return fmt.Errorf("Solve: %w", err)
	}

	log := sv.opts.logger
	log.Debug("bairstow solve", zap.Stringer("polynomial", a), zap.Int("degree", a.Degree()))

	roots := make([]complex128, 0, a.Degree())
	var factors []Factor
	var e *extractor
	if len(a) > 3 {
		e = newExtractor(sv.erThreshold, sv.esThreshold, sv.opts, len(a))
	}

	// REDUCE
	for len(a) > 3 {
		var f Factor
		degree := a.Degree()
		f, a, err = e.extract(a, r0, s0)
		if err != nil {
			return fmt.Errorf("Solve: step %d (degree %d): %w", len(factors)+1, degree, err)
		}
		roots = append(roots, f.Roots[0], f.Roots[1])
		factors = append(factors, f)
	}

	// FINISH
	var tail []complex128
	switch len(a) {
	case 3:
		tail, err = QuadraticRoots(a[2], a[1], a[0])
	case 2:
		tail, err = QuadraticRoots(0, a[1], a[0])
	}
	if err != nil {
		return fmt.Errorf("Solve: remainder %v: %w", []float64(a), err)
	}
	roots = append(roots, tail...)

	log.Debug("bairstow solved", zap.Int("roots", len(roots)), zap.Int("factors", len(factors)))
	sv.roots, sv.factors = roots, factors

	return nil
}

// Roots returns a copy of the roots found by the last successful Solve,
// in extraction order.
func (sv *Solver) Roots() []complex128 {
	out := make([]complex128, len(sv.roots))
	copy(out, sv.roots)

	return out
}

// Factors returns a copy of the quadratic factors extracted by the last
// successful Solve, in extraction order.
func (sv *Solver) Factors() []Factor {
	out := make([]Factor, len(sv.factors))
	copy(out, sv.factors)

	return out
}

// FindRoots is a one-shot Solve on a private Solver. Safe for concurrent use.
func FindRoots(coeffs []float64, r0, s0, er, es float64, opts ...Option) ([]complex128, error) {
	sv, err := NewSolver(er, es, opts...)
	if err != nil {
		return nil, err
	}
	if err = sv.Solve(coeffs, r0, s0); err != nil {
		return nil, err
	}

	return sv.roots, nil
}
