// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view LUP factorizes. Implementations report
// bad indices through errors, never panics.
type Matrix interface {
	Rows() int
	Cols() int

	// At reads entry (i, j); ErrOutOfRange outside the shape.
	At(i, j int) (float64, error)

	// Set writes entry (i, j); ErrOutOfRange outside the shape.
	Set(i, j int, v float64) error

	// Clone copies every entry into storage not shared with the receiver.
	Clone() Matrix
}
