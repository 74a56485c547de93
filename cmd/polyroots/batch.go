package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var (
	errNoJobs     = errors.New("job file has no jobs")
	errBadWorkers = errors.New("workers must be > 0")
)

// Overrides are the solver settings a job file may set. Nil means unset.
type Overrides struct {
	R0            *float64 `yaml:"r0"`
	S0            *float64 `yaml:"s0"`
	Er            *float64 `yaml:"er"`
	Es            *float64 `yaml:"es"`
	MaxIterations *int     `yaml:"max_iterations"`
}

// Job is one polynomial of a batch.
type Job struct {
	Name         string    `yaml:"name"`
	Coefficients []float64 `yaml:"coefficients"`
	Overrides    `yaml:",inline"`
}

// JobFile is the YAML document read by the batch command:
//
//	defaults: {r0: 0.5, s0: -0.5, er: 0.01, es: 0.01, max_iterations: 500}
//	jobs:
//	  - name: quartic
//	    coefficients: [24, -50, 35, -10, 1]
//	  - name: cubic
//	    coefficients: [-6, 11, -6, 1]
//	    r0: 1
type JobFile struct {
	Defaults Overrides `yaml:"defaults"`
	Jobs     []Job     `yaml:"jobs"`
}

// loadJobs reads and decodes path. Unknown keys are rejected so that a
// misspelt setting does not silently fall back to its default.
func loadJobs(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f JobFile
	if err = dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoJobs)
	}
	for i := range f.Jobs {
		if f.Jobs[i].Name == "" {
			f.Jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
	}

	return &f, nil
}

// params resolves the settings of job i: built-in defaults, then the
// file's defaults, then the job's own keys.
func (f *JobFile) params(i int) params {
	return defaultParams().with(f.Defaults).with(f.Jobs[i].Overrides)
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		path    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve every polynomial of a YAML job file",
		Long: `Solve the independent polynomials of a YAML job file concurrently.

Results are printed in file order. A failing job is reported in place and
does not stop the others; the command fails if any job failed.`,
		Example: "  polyroots batch --file jobs.yaml --workers 4 --verify",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers <= 0 {
				return fmt.Errorf("%d: %w", workers, errBadWorkers)
			}
			f, err := loadJobs(path)
			if err != nil {
				return err
			}

			results := make([]result, len(f.Jobs))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for i, job := range f.Jobs {
				i, job := i, job
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					results[i] = solve(a.logger, job.Name, job.Coefficients, f.params(i))

					return nil
				})
			}
			if err = g.Wait(); err != nil {
				return err
			}

			return writeBatch(cmd.OutOrStdout(), results, a.verify)
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "YAML job file")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "polynomials solved in parallel")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// writeBatch prints every result under a "== name: polynomial" header and
// returns an error naming the failed jobs, if any.
func writeBatch(w io.Writer, results []result, verify bool) error {
	var failed []string
	for _, res := range results {
		if res.err != nil {
			failed = append(failed, res.name)
			if _, err := fmt.Fprintf(w, "== %s: error: %v\n", res.name, res.err); err != nil {
				return err
			}

			continue
		}
		if _, err := fmt.Fprintf(w, "== %s: %s\n", res.name, res.poly); err != nil {
			return err
		}
		if err := writeRoots(w, res, verify); err != nil {
			return err
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d jobs failed: %s", len(failed), len(results), strings.Join(failed, ", "))
	}

	return nil
}
