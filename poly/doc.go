// Package poly models real univariate polynomials as coefficient slices.
//
// A Polynomial stores coefficients from the constant term upward:
//
//	p := poly.Polynomial{4, -10, 10, -5, 1} // x^4 - 5x^3 + 10x^2 - 10x + 4
//
// so len(p) == p.Degree()+1 and p[i] is the coefficient of x^i.
//
// Helpers cover validation (New rejects empty and non-finite input),
// construction from known roots (FromRoots), Horner evaluation on real and
// complex arguments, and a readable String form.
//
// Polynomials handed to the root finders are treated as immutable; every
// reduction step produces a fresh, shorter Polynomial.
package poly
