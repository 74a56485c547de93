package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"strings"
)

// formatRoot renders the i-th root (0-based) as "x1 = 2.0000" or
// "x3 = 1.0000 - 1.0000i". Only an exactly zero imaginary part counts as real.
func formatRoot(i int, z complex128) string {
	re, im := real(z), imag(z)
	switch {
	case im == 0:
		return fmt.Sprintf("x%d = %.4f", i+1, re)
	case math.Signbit(im):
		return fmt.Sprintf("x%d = %.4f - %.4fi", i+1, re, -im)
	default:
		return fmt.Sprintf("x%d = %.4f + %.4fi", i+1, re, im)
	}
}

// maxResidual returns max |p(x)| over roots, or 0 when there are none.
func maxResidual(res result) float64 {
	var worst float64
	for _, z := range res.roots {
		worst = math.Max(worst, cmplx.Abs(res.poly.EvalComplex(z)))
	}

	return worst
}

// writeRoots prints one line per root and, with verify, the residual line.
func writeRoots(w io.Writer, res result, verify bool) error {
	var sb strings.Builder
	if len(res.roots) == 0 {
		sb.WriteString("no roots\n")
	}
	for i, z := range res.roots {
		sb.WriteString(formatRoot(i, z))
		sb.WriteByte('\n')
	}
	if verify {
		fmt.Fprintf(&sb, "max residual = %.3e\n", maxResidual(res))
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
