// SPDX-License-Identifier: MIT
// Package matrix: LUP factorization and dense linear solve.
//
// Purpose:
//   - Factor a square system once (P·A = L·U, unit-diagonal L) and solve
//     A·x = b by forward/backward substitution.
//   - Detect singular and numerically singular systems up front so callers
//     never receive Inf/NaN solutions.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exact zero pivot.
const ZeroPivot = 0.0

// LUFactors holds a packed LUP factorization of an n×n matrix.
// lu stores L strictly below the diagonal (unit diagonal implied) and U on
// and above it; perm[i] is the original row placed at position i.
type LUFactors struct {
	n    int
	lu   []float64
	perm []int
}

// LUP computes P·A = L·U with partial (row) pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square, finite); copy into a flat buffer.
//   - Stage 2: For each column k pick the row with the largest |a[i,k]|, i ≥ k
//     (first one wins on ties), swap it up, eliminate below.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular when the best
//     pivot is zero or |p| ≤ tol·max|A|.
//
// Determinism:
//   - Fixed column order and first-max tie-breaking give stable permutations.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LUP(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	f := &LUFactors{n: n, lu: make([]float64, n*n), perm: make([]int, n)}

	// Copy input; fast path reads the backing slice directly.
	if d, ok := m.(*Dense); ok {
		copy(f.lu, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opLUP, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				f.lu[i*n+j] = v
			}
		}
	}
	if err := ValidateFinite(f.lu); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}

	var scale float64 // max|A| for the relative pivot test
	for _, v := range f.lu {
		scale = math.Max(scale, math.Abs(v))
	}
	threshold := o.pivotTol * scale

	var (
		i, j, k, p  int
		best, pivot float64
		factor      float64
		rowK, rowI  int
	)
	for i = 0; i < n; i++ {
		f.perm[i] = i
	}
	for k = 0; k < n; k++ {
		// Pivot search in column k.
		p, best = k, math.Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(f.lu[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot || best <= threshold {
			return nil, matrixErrorf(opLUP, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				f.lu[k*n+j], f.lu[p*n+j] = f.lu[p*n+j], f.lu[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
		}

		// Eliminate below the pivot, storing multipliers in place.
		rowK = k * n
		pivot = f.lu[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			factor = f.lu[rowI+k] / pivot
			f.lu[rowI+k] = factor
			for j = k + 1; j < n; j++ {
				f.lu[rowI+j] -= factor * f.lu[rowK+j]
			}
		}
	}

	return f, nil
}

// Size returns n for an n×n factorization.
func (f *LUFactors) Size() int { return f.n }

// Solve returns x with A·x = rhs using the stored factorization.
// rhs is not modified. Errors: ErrDimensionMismatch / ErrNilMatrix on a bad
// rhs, ErrNaNInf if the solution overflows.
// Complexity: O(n^2).
func (f *LUFactors) Solve(rhs []float64) ([]float64, error) {
	if err := ValidateVecLen(rhs, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := f.n
	x := make([]float64, n)
	var i, k int
	var sum float64

	// Forward substitution: L·y = P·b (y stored in x).
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += f.lu[i*n+k] * x[k]
		}
		x[i] = rhs[f.perm[i]] - sum
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += f.lu[i*n+k] * x[k]
		}
		x[i] = (x[i] - sum) / f.lu[i*n+i]
	}

	if err := ValidateFinite(x); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Solve solves the square system a·x = rhs in one shot (LUP then Solve).
// Errors are those of LUP and (*LUFactors).Solve, tagged with "Solve".
func Solve(a Matrix, rhs []float64, opts ...Option) ([]float64, error) {
	f, err := LUP(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(rhs)
}
