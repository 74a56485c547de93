// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense keeps rows×cols entries in one slice, row after row: entry (i, j)
// lives at data[i*cols+j].
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a zero rows×cols matrix. ErrInvalidDimensions unless
// both sizes are positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds a matrix from row slices, e.g. the 2×2 correction
// system {{c2, c3}, {c1, c2}}. Rows must share one non-zero length
// (ErrDimensionMismatch) and hold only finite values (ErrNaNInf).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewDenseFrom: no rows: %w", ErrInvalidDimensions)
	}
	d, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != d.cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d entries, want %d: %w",
				i, len(row), d.cols, ErrDimensionMismatch)
		}
		if err = ValidateFinite(row); err != nil {
			return nil, fmt.Errorf("NewDenseFrom: row %d: %w", i, err)
		}
		copy(d.data[i*d.cols:], row)
	}

	return d, nil
}

func (m *Dense) Rows() int { return m.rows }
func (m *Dense) Cols() int { return m.cols }

// offset maps (i, j) to its position in data.
func (m *Dense) offset(op string, i, j int) (int, error) {
	if i < 0 || j < 0 || i >= m.rows || j >= m.cols {
		return -1, fmt.Errorf("Dense.%s(%d,%d) on %dx%d: %w", op, i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return i*m.cols + j, nil
}

func (m *Dense) At(i, j int) (float64, error) {
	k, err := m.offset("At", i, j)
	if err != nil {
		return 0, err
	}

	return m.data[k], nil
}

func (m *Dense) Set(i, j int, v float64) error {
	k, err := m.offset("Set", i, j)
	if err != nil {
		return err
	}
	m.data[k] = v

	return nil
}

func (m *Dense) Clone() Matrix {
	return &Dense{rows: m.rows, cols: m.cols, data: append([]float64(nil), m.data...)}
}

// String prints one bracketed row per line: "[1, 2.5]\n[-3, 0]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j, v := range m.data[i*m.cols : (i+1)*m.cols] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
