package poly

import "errors"

var (
	// ErrEmpty is returned when a polynomial has no coefficients at all.
	ErrEmpty = errors.New("poly: no coefficients")

	// ErrNaNInf is returned when a coefficient is NaN or ±Inf.
	ErrNaNInf = errors.New("poly: NaN or Inf coefficient")
)
