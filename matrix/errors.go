// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Sentinels. Functions wrap them with the failing operation and indices;
// match with errors.Is.
var (
	// ErrInvalidDimensions: a size is zero or negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: At or Set outside the matrix shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: ragged rows, a non-square system, or a
	// right-hand side whose length differs from the system size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix: nil matrix or nil right-hand side.
	ErrNilMatrix = errors.New("matrix: nil input")

	// ErrNaNInf: NaN or ±Inf in an input or in a computed solution.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular: some column has no pivot above the pivot tolerance, so
	// the system has no unique solution.
	ErrSingular = errors.New("matrix: singular matrix")
)

const (
	opLUP   = "LUP"
	opSolve = "Solve"
)

func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
