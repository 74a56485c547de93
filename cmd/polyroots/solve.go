package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polyroots/bairstow"
	"github.com/katalvlaran/polyroots/poly"
)

// result is the outcome of one polynomial.
type result struct {
	name    string
	poly    poly.Polynomial
	roots   []complex128
	factors []bairstow.Factor
	err     error
}

func newSolveCmd(a *app) *cobra.Command {
	p := defaultParams()
	var coeffs []float64

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find every root of one polynomial",
		Long: `Find every root of one polynomial.

--coeffs lists the coefficients lowest power first, so
--coeffs=4,-10,10,-5,1 is x^4 - 5x^3 + 10x^2 - 10x + 4.`,
		Example: `  polyroots solve --coeffs=4,-10,10,-5,1
  polyroots solve --coeffs=24,-50,35,-10,1 --er 1e-10 --es 1e-10 --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := solve(a.logger, "solve", coeffs, p)
			if res.err != nil {
				return res.err
			}

			return writeRoots(cmd.OutOrStdout(), res, a.verify)
		},
	}
	cmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "coefficients, lowest power first")
	_ = cmd.MarkFlagRequired("coeffs")
	p.bind(cmd)

	return cmd
}

// solve runs a fresh Solver on coeffs. Errors are carried in the result.
func solve(logger *zap.Logger, name string, coeffs []float64, p params) result {
	res := result{name: name}
	log := logger.With(zap.String("job", name))

	opts, err := p.solverOptions(log)
	if err != nil {
		res.err = err

		return res
	}
	sv, err := bairstow.NewSolver(p.er, p.es, opts...)
	if err != nil {
		res.err = err

		return res
	}

	start := time.Now()
	if err = sv.Solve(coeffs, p.r0, p.s0); err != nil {
		log.Warn("polynomial not solved", zap.Error(err))
		res.err = err

		return res
	}

	res.poly = poly.Polynomial(coeffs).Clone()
	res.roots = sv.Roots()
	res.factors = sv.Factors()

	var iterations int
	for _, f := range res.factors {
		iterations += f.Iterations
	}
	log.Info("polynomial solved",
		zap.Int("degree", res.poly.Degree()),
		zap.Int("roots", len(res.roots)),
		zap.Int("factors", len(res.factors)),
		zap.Int("iterations", iterations),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res
}
