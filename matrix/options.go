// SPDX-License-Identifier: MIT

package matrix

// DefaultPivotTolerance is the relative threshold below which a pivot is
// treated as zero: |p| ≤ DefaultPivotTolerance·max|A| ⇒ ErrSingular.
// It sits a few ulps above float64 machine epsilon.
const DefaultPivotTolerance = 1e-14

const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"

// Option adjusts LUP and Solve. Constructors panic on invalid values.
type Option func(*Options)

// Options is the configuration after all Option values are applied.
type Options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithPivotTolerance sets the relative pivot tolerance used by LUP.
// A value of 0 restores the exact-zero pivot test.
// Panics when tol is negative, NaN or ±Inf.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{pivotTol: DefaultPivotTolerance}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
