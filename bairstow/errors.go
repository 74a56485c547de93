package bairstow

import "errors"

var (
	// ErrMalformedPolynomial is returned when the closed-form stage sees
	// a = b = 0 (no root can be formed), or when a polynomial handed to the
	// iterative stage has a zero leading coefficient.
	ErrMalformedPolynomial = errors.New("bairstow: malformed polynomial")

	// ErrNonConvergence is returned when a factor extraction exhausts its
	// iteration budget without meeting both thresholds.
	ErrNonConvergence = errors.New("bairstow: iteration did not converge")

	// ErrNumericalInstability is returned when the 2×2 correction system is
	// singular or ill-conditioned, or when r or s stop being finite.
	ErrNumericalInstability = errors.New("bairstow: numerical instability")

	// ErrDegreeTooLow is returned by ExtractFactor for polynomials of degree < 3;
	// those are solved in closed form.
	ErrDegreeTooLow = errors.New("bairstow: degree must be at least 3 for factor extraction")

	// ErrBadThreshold is returned when a stopping threshold is not a positive finite number.
	ErrBadThreshold = errors.New("bairstow: threshold must be finite and > 0")

	// ErrBadGuess is returned when the initial guess (r0, s0) is not finite.
	ErrBadGuess = errors.New("bairstow: initial guess must be finite")
)
