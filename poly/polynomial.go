package poly

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Polynomial holds real coefficients, index i being the coefficient of x^i.
type Polynomial []float64

// New copies coeffs into a Polynomial after validating it.
// Errors: ErrEmpty when no coefficient is given, ErrNaNInf (wrapped with the
// offending index) when any coefficient is not finite.
// Complexity: O(n).
func New(coeffs ...float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmpty
	}
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("coefficient %d: %w", i, ErrNaNInf)
		}
	}
	p := make(Polynomial, len(coeffs))
	copy(p, coeffs)

	return p, nil
}

// FromRoots returns the monic polynomial (x - r0)(x - r1)...(x - rk).
// With no roots it returns the constant polynomial 1.
// Complexity: O(k^2).
func FromRoots(roots ...float64) Polynomial {
	p := make(Polynomial, 1, len(roots)+1)
	p[0] = 1
	for _, r := range roots {
		// multiply by (x - r): shift up, subtract r·p
		next := make(Polynomial, len(p)+1)
		for i, c := range p {
			next[i+1] += c
			next[i] -= r * c
		}
		p = next
	}

	return p
}

// Degree returns len(p)-1; the empty polynomial reports -1.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Leading returns the coefficient of the highest power, 0 for an empty p.
func (p Polynomial) Leading() float64 {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1]
}

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	if p == nil {
		return nil
	}
	cp := make(Polynomial, len(p))
	copy(cp, p)

	return cp
}

// Scale returns max|p[i]|, used to express residuals relative to the
// coefficient magnitude.
func (p Polynomial) Scale() float64 {
	var s float64
	for _, c := range p {
		s = math.Max(s, math.Abs(c))
	}

	return s
}

// Eval evaluates p at x with Horner's scheme. O(n).
func (p Polynomial) Eval(x float64) float64 {
	var acc float64
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*x + p[i]
	}

	return acc
}

// EvalComplex evaluates p at z with Horner's scheme. O(n).
func (p Polynomial) EvalComplex(z complex128) complex128 {
	var acc complex128
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*z + complex(p[i], 0)
	}

	return acc
}

// String renders p from the highest power down, e.g. "x^4 - 5x^3 + 4".
// Zero terms are skipped; the zero polynomial renders as "0".
func (p Polynomial) String() string {
	var sb strings.Builder
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if c == 0 {
			continue
		}
		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		abs := math.Abs(c)
		if abs != 1 || i == 0 {
			sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
