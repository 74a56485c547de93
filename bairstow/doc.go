// Package bairstow finds every root of a real polynomial with Bairstow's
// method: repeatedly extract a real quadratic factor x² − r·x − s, divide it
// out, and finish the last linear or quadratic remainder in closed form.
//
// 🚀 How it works
//
//	For a polynomial a (a[i] is the coefficient of x^i) of degree n ≥ 3:
//	  1. Synthetic division by x² − r·x − s gives b:
//	       b[n] = a[n], b[n−1] = a[n−1] + r·b[n],
//	       b[i] = a[i] + r·b[i+1] + s·b[i+2]    for i = n−2 … 0
//	  2. The same recurrence over b gives c (down to i = 1).
//	  3. The Newton correction solves
//	       [ c2 c3 ] [dr]   [−b1]
//	       [ c1 c2 ] [ds] = [−b0]
//	  4. r += dr, s += ds until |dr/r| ≤ er and |ds/s| ≤ es.
//	  5. The roots of x² − r·x − s are two roots of a; b[2:] is the quotient
//	     that the next step works on.
//
// ✨ Key features:
//   - Real and complex-conjugate roots, returned as complex128.
//   - Reproducible order: earlier factors first, "+" root before "−" root,
//     closed-form remainder last.
//   - Every reduction step restarts from the caller's (r0, s0).
//   - Hard iteration cap, singular-correction detection and a zero-safe
//     error metric: failures surface as ErrNonConvergence or
//     ErrNumericalInstability instead of hanging or leaking NaN.
//   - Optional zap logger tracing each iteration at Debug level.
//
// ⚙️ Usage:
//
//	s, err := bairstow.NewSolver(0.01, 0.01)
//	if err != nil { ... }
//	if err := s.Solve([]float64{4, -10, 10, -5, 1}, 0.5, -0.5); err != nil { ... }
//	for _, z := range s.Roots() { fmt.Println(z) }
//
// or, without keeping a Solver around:
//
//	roots, err := bairstow.FindRoots(coeffs, 0.5, -0.5, 1e-10, 1e-10)
//
// Concurrency:
//
//	A Solver keeps the roots of its last Solve and must not be shared between
//	goroutines. FindRoots allocates everything per call and is safe to run
//	concurrently on independent polynomials.
//
// Performance:
//
//   - Time:   O(n) per iteration, O(n²·k) overall for k iterations per factor.
//   - Memory: O(n); the b/c buffers are allocated once per Solve.
package bairstow
