// Package polyroots is a small toolkit for finding every real and complex
// root of a polynomial with real coefficients using Bairstow's method.
//
// 🚀 What is polyroots?
//
//	A pure-Go library plus a CLI that brings together:
//		• poly:     polynomial values (coefficients lowest power first), Horner evaluation
//		• matrix:   dense matrices and LU decomposition with partial pivoting
//		• bairstow: quadratic-factor extraction, closed-form quadratic/linear solve,
//		            degree reduction down to the last factor
//		• cmd/polyroots: solve one polynomial or a YAML batch of them
//
// ✨ Why choose polyroots?
//
//   - Real arithmetic – complex numbers only appear in the final closed-form step
//   - Conjugate pairs – complex roots always come out together
//   - Hardened – iteration caps, singular corrections and non-finite values are errors
//   - Observable – optional zap logger traces every iteration at debug level
//
// Layout:
//
//	bairstow/       — ExtractFactor, QuadraticRoots, Solver, FindRoots
//	matrix/         — Dense, LUP, Solve
//	poly/           — Polynomial, FromRoots, Eval, EvalComplex
//	cmd/polyroots/  — cobra CLI: solve, batch
//
// Quick example, x⁴ − 5x³ + 10x² − 10x + 4 = (x−1)(x−2)(x²−2x+2):
//
//	roots, err := bairstow.FindRoots([]float64{4, -10, 10, -5, 1}, 0.5, -0.5, 1e-10, 1e-10)
//	// roots: 2, 1, 1−i, 1+i
//
//	go get github.com/katalvlaran/polyroots
package polyroots
