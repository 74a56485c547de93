// Package matrix provides the small dense linear-algebra kernel used by the
// root finders in this module.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - LUP, a Doolittle factorization with partial (row) pivoting, P·A = L·U.
//   - Solve, a one-shot A·x = b solve built on LUP.
//   - Validators shared by the kernels (nil, square, vector length, finiteness).
//
// Singularity is decided by a relative pivot test: a column whose best pivot
// satisfies |p| ≤ tol·max|A| is reported as ErrSingular instead of producing
// Inf/NaN downstream. The tolerance is configurable with WithPivotTolerance.
//
// Example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 3}})
//	x, err := matrix.Solve(a, []float64{3, 5})
//	if errors.Is(err, matrix.ErrSingular) {
//		// no unique solution
//	}
package matrix
