// Command polyroots finds all real and complex roots of real-coefficient
// polynomials with Bairstow's method.
//
//	polyroots solve --coeffs 4,-10,10,-5,1
//	polyroots batch --file jobs.yaml --workers 4
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose bool
	verify  bool
	logger  *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "polyroots",
		Short: "Find polynomial roots with Bairstow's method",
		Long: `polyroots repeatedly extracts quadratic factors x^2 - r*x - s from a
real polynomial until a quadratic or linear remainder is left, then solves
that in closed form. Complex roots come out as conjugate pairs.

Coefficients are always given lowest power first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every Bairstow iteration at debug level")
	root.PersistentFlags().BoolVar(&a.verify, "verify", false, "print the largest residual |p(x)| over the roots")
	root.AddCommand(newSolveCmd(a), newBatchCmd(a))

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
