package bairstow

import (
	"math"
	"math/cmplx"
)

// QuadraticRoots solves a·x² + b·x + c = 0 in closed form.
//
//   - a ≠ 0: returns [(−b+√d)/2a, (−b−√d)/2a] with d = b² − 4ac taken in
//     complex arithmetic, so a negative discriminant yields a conjugate pair
//     and a non-negative one two real-valued roots.
//   - a = 0, b ≠ 0: returns the single root −c/b.
//   - a = b = 0: ErrMalformedPolynomial.
//
// Pure; allocates only the result slice.
func QuadraticRoots(a, b, c float64) ([]complex128, error) {
	switch {
	case a != 0:
		ca, cb, cc := complex(a, 0), complex(b, 0), complex(c, 0)
		sq := cmplx.Sqrt(cb*cb - 4*ca*cc)

		return []complex128{(-cb + sq) / (2 * ca), (-cb - sq) / (2 * ca)}, nil
	case b != 0:
		return []complex128{complex(-c/b, 0)}, nil
	default:
		return nil, ErrMalformedPolynomial
	}
}

// IsReal reports whether z lies within tol of the real axis.
func IsReal(z complex128, tol float64) bool {
	return math.Abs(imag(z)) <= tol
}
