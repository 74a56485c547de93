package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polyroots/bairstow"
)

// Defaults of the solve flags and of jobs that set nothing.
const (
	defaultR0 = 0.5
	defaultS0 = -0.5
	defaultEr = 0.01
	defaultEs = 0.01
)

var errBadMaxIterations = errors.New("max iterations must be > 0")

// params is one fully resolved solver configuration.
type params struct {
	r0, s0  float64
	er, es  float64
	maxIter int
}

func defaultParams() params {
	return params{
		r0:      defaultR0,
		s0:      defaultS0,
		er:      defaultEr,
		es:      defaultEs,
		maxIter: bairstow.DefaultMaxIterations,
	}
}

// bind registers p's fields as flags of cmd.
func (p *params) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&p.r0, "r0", p.r0, "initial guess for r in x^2 - r*x - s")
	fs.Float64Var(&p.s0, "s0", p.s0, "initial guess for s in x^2 - r*x - s")
	fs.Float64Var(&p.er, "er", p.er, "stop once |dr/r| falls to this value")
	fs.Float64Var(&p.es, "es", p.es, "stop once |ds/s| falls to this value")
	fs.IntVar(&p.maxIter, "max-iter", p.maxIter, "iteration cap per quadratic factor")
}

// with returns p overridden by every field o sets.
func (p params) with(o Overrides) params {
	if o.R0 != nil {
		p.r0 = *o.R0
	}
	if o.S0 != nil {
		p.s0 = *o.S0
	}
	if o.Er != nil {
		p.er = *o.Er
	}
	if o.Es != nil {
		p.es = *o.Es
	}
	if o.MaxIterations != nil {
		p.maxIter = *o.MaxIterations
	}

	return p
}

func (p params) solverOptions(logger *zap.Logger) ([]bairstow.Option, error) {
	if p.maxIter <= 0 {
		return nil, fmt.Errorf("%d: %w", p.maxIter, errBadMaxIterations)
	}

	return []bairstow.Option{
		bairstow.WithMaxIterations(p.maxIter),
		bairstow.WithLogger(logger),
	}, nil
}
