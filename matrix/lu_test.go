package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyroots/matrix"
)

// TestSolve_ThreeByThree checks a small system with a known integer solution.
func TestSolve_ThreeByThree(t *testing.T) {
	a := MustFrom(t, [][]float64{
		{2, -6, -1},
		{-3, -1, 7},
		{-8, 1, -2},
	})
	b := []float64{-38, -34, -20}

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 8, -2}, x, 1e-12)
	assert.InDeltaSlice(t, b, MatVec(t, a, x), 1e-12, "residual A·x - b")
	assert.Equal(t, []float64{-38, -34, -20}, b, "rhs must not be modified")
}

// TestSolve_NeedsPivoting uses a zero leading entry that a non-pivoting
// Doolittle factorization would reject.
func TestSolve_NeedsPivoting(t *testing.T) {
	a := MustFrom(t, [][]float64{{0, 1}, {1, 0}})

	x, err := matrix.Solve(a, []float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, x)
}

func TestSolve_InterfaceFallbackMatchesDense(t *testing.T) {
	a := MustFrom(t, [][]float64{{4, -2}, {1, 3}})
	rhs := []float64{2, 10}

	x1, err := matrix.Solve(a, rhs)
	require.NoError(t, err)
	x2, err := matrix.Solve(hide{a}, rhs)
	require.NoError(t, err)

	assert.Equal(t, x1, x2, "fast path and At-based path must agree bitwise")
}

func TestSolve_Singular(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Solve(a, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrSingular)

	z := MustDense(t, 2, 2)
	_, err = matrix.Solve(z, []float64{0, 0})
	assert.ErrorIs(t, err, matrix.ErrSingular, "all-zero matrix")
}

// TestSolve_NearSingularTolerance shows the relative pivot test rejecting a
// system that only the exact-zero test would accept.
func TestSolve_NearSingularTolerance(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 1}, {1, 1 + 1e-15}})
	rhs := []float64{2, 2}

	_, err := matrix.Solve(a, rhs)
	assert.ErrorIs(t, err, matrix.ErrSingular, "default tolerance")

	x, err := matrix.Solve(a, rhs, matrix.WithPivotTolerance(0))
	require.NoError(t, err, "exact-zero pivot test")
	assert.InDeltaSlice(t, []float64{2, 0}, x, 1e-9)
}

func TestSolve_Validation(t *testing.T) {
	_, err := matrix.Solve(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Solve(MustDense(t, 2, 3), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "non-square")

	_, err = matrix.Solve(MustFrom(t, [][]float64{{1, 0}, {0, 1}}), []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "rhs length")

	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, math.NaN()))
	_, err = matrix.Solve(m, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "NaN entry")
}

func TestSolve_OverflowReported(t *testing.T) {
	a := MustFrom(t, [][]float64{{1e-300, 0}, {0, 1e-300}})

	_, err := matrix.Solve(a, []float64{1e300, 1})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestLUP_ReuseAcrossRightHandSides(t *testing.T) {
	a := MustFrom(t, [][]float64{{3, 1}, {1, 2}})
	f, err := matrix.LUP(a)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Size())

	for _, rhs := range [][]float64{{1, 0}, {0, 1}, {4, 3}} {
		x, err := f.Solve(rhs)
		require.NoError(t, err)
		assert.InDeltaSlice(t, rhs, MatVec(t, a, x), 1e-12)
	}
}

func TestWithPivotTolerance_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { matrix.WithPivotTolerance(-1) })
	assert.Panics(t, func() { matrix.WithPivotTolerance(math.NaN()) })
	assert.NotPanics(t, func() { matrix.WithPivotTolerance(0) })
}
