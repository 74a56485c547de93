package bairstow_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyroots/poly"
)

// Thresholds used where tests need converged, not merely stopped, factors.
const (
	tight   = 1e-10
	rootTol = 1e-6
)

// assertRootsMatch pairs every expected root with the closest unused
// returned root and requires them to be within tol. Order is ignored.
func assertRootsMatch(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	require.Len(t, got, len(want), "root count")

	used := make([]bool, len(got))
	for _, w := range want {
		best, bestDist := -1, math.Inf(1)
		for j, g := range got {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(w - g); d < bestDist {
				best, bestDist = j, d
			}
		}
		require.LessOrEqual(t, bestDist, tol, "no returned root near %v (got %v)", w, got)
		used[best] = true
	}
}

// assertResiduals requires |p(x)| ≤ tol·max|a_i| for every root x.
func assertResiduals(t *testing.T, coeffs []float64, roots []complex128, tol float64) {
	t.Helper()
	p := poly.Polynomial(coeffs)
	for _, z := range roots {
		res := cmplx.Abs(p.EvalComplex(z)) / p.Scale()
		require.LessOrEqual(t, res, tol, "relative residual at %v", z)
	}
}

// realParts returns the sorted real parts of roots.
func realParts(roots []complex128) []float64 {
	out := make([]float64, len(roots))
	for i, z := range roots {
		out[i] = real(z)
	}
	sort.Float64s(out)

	return out
}

// reals turns real roots into complex128 values.
func reals(xs ...float64) []complex128 {
	out := make([]complex128, len(xs))
	for i, x := range xs {
		out[i] = complex(x, 0)
	}

	return out
}
