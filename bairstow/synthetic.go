package bairstow

import (
	"math"

	"github.com/katalvlaran/polyroots/matrix"
)

// divideQuadratic runs the synthetic-division recurrence of src by
// x² − r·x − s into dst (same length, at least 3):
//
//	dst[n] = src[n]
//	dst[n−1] = src[n−1] + r·dst[n]
//	dst[i] = src[i] + r·dst[i+1] + s·dst[i+2]    for i = n−2 … stop
//
// Entries below stop are set to NaN so an accidental read is visible.
func divideQuadratic(src, dst []float64, r, s float64, stop int) {
	n := len(src) - 1
	dst[n] = src[n]
	dst[n-1] = src[n-1] + r*dst[n]
	for i := n - 2; i >= stop; i-- {
		dst[i] = src[i] + r*dst[i+1] + s*dst[i+2]
	}
	for i := 0; i < stop; i++ {
		dst[i] = math.NaN()
	}
}

// workspace holds the scratch state of one solve: b and c are sized to the
// first polynomial and resliced as the degree drops; jac and rhs hold the
// correction system.
type workspace struct {
	b, c []float64
	jac  *matrix.Dense
	rhs  []float64
}

func newWorkspace(size int) *workspace {
	jac, _ := matrix.NewDense(2, 2) // constant shape, cannot fail

	return &workspace{
		b:   make([]float64, size),
		c:   make([]float64, size),
		jac: jac,
		rhs: make([]float64, 2),
	}
}

// buffers returns b and c resliced to length n, growing them if needed.
func (w *workspace) buffers(n int) ([]float64, []float64) {
	if cap(w.b) < n {
		w.b = make([]float64, n)
		w.c = make([]float64, n)
	}

	return w.b[:n], w.c[:n]
}

// correction solves [[c2,c3],[c1,c2]]·[dr,ds] = [−b1,−b0].
func (w *workspace) correction(b, c []float64, opts ...matrix.Option) (dr, ds float64, err error) {
	_ = w.jac.Set(0, 0, c[2])
	_ = w.jac.Set(0, 1, c[3])
	_ = w.jac.Set(1, 0, c[1])
	_ = w.jac.Set(1, 1, c[2])
	w.rhs[0], w.rhs[1] = -b[1], -b[0]

	x, err := matrix.Solve(w.jac, w.rhs, opts...)
	if err != nil {
		return 0, 0, err
	}

	return x[0], x[1], nil
}
