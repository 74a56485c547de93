package bairstow_test

import (
	"testing"

	"github.com/katalvlaran/polyroots/bairstow"
	"github.com/katalvlaran/polyroots/poly"
)

// benchmarkSolve runs a reused Solver on coeffs with tight thresholds.
func benchmarkSolve(b *testing.B, coeffs []float64) {
	sv, err := bairstow.NewSolver(tight, tight)
	if err != nil {
		b.Fatalf("NewSolver: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = sv.Solve(coeffs, 0.5, -0.5); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkSolve_Quartic(b *testing.B) {
	benchmarkSolve(b, []float64{24, -50, 35, -10, 1})
}

func BenchmarkSolve_Quintic(b *testing.B) {
	benchmarkSolve(b, []float64{-120, 274, -225, 85, -15, 1})
}

// BenchmarkSolve_Septic mixes real roots with two conjugate pairs.
func BenchmarkSolve_Septic(b *testing.B) {
	benchmarkSolve(b, []float64{78, -89, 78, -73, -6, 17, -6, 1})
}

func BenchmarkExtractFactor(b *testing.B) {
	a := poly.Polynomial{24, -50, 35, -10, 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := bairstow.ExtractFactor(a, 0.5, -0.5, tight, tight); err != nil {
			b.Fatalf("ExtractFactor failed: %v", err)
		}
	}
}
