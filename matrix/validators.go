// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// ValidateNotNil returns ErrNilMatrix for a nil m.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return fmt.Errorf("ValidateNotNil: %w", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare returns ErrDimensionMismatch unless m is n×n. m must not be nil.
func ValidateSquare(m Matrix) error {
	if r, c := m.Rows(), m.Cols(); r != c {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", r, c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen checks that x is non-nil and has exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	switch {
	case x == nil:
		return fmt.Errorf("ValidateVecLen: %w", ErrNilMatrix)
	case len(x) != n:
		return fmt.Errorf("ValidateVecLen: len %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite returns ErrNaNInf naming the first NaN or ±Inf entry of x.
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return fmt.Errorf("ValidateFinite: x[%d]=%g: %w", i, v, ErrNaNInf)
		}
	}

	return nil
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
