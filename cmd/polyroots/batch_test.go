package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyroots/bairstow"
)

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const mixedJobs = `
defaults:
  er: 1.0e-10
  es: 1.0e-10
jobs:
  - name: quartic
    coefficients: [24, -50, 35, -10, 1]
  - name: broken
    coefficients: [3, 0, 0]
  - name: cubic
    coefficients: [-6, 11, -6, 1]
    r0: 1
  - coefficients: [-4, 2]
`

func TestBatchCmd_ReportsInFileOrder(t *testing.T) {
	path := writeJobFile(t, mixedJobs)

	out, err := execute(t, &app{}, "batch", "--file", path, "--workers", "2")
	require.Error(t, err)
	assert.EqualError(t, err, "1 of 4 jobs failed: broken")

	quartic := strings.Index(out, "== quartic: x^4 - 10x^3 + 35x^2 - 50x + 24\n")
	broken := strings.Index(out, "== broken: error: ")
	cubic := strings.Index(out, "== cubic: x^3 - 6x^2 + 11x - 6\nx1 = 2.0000\nx2 = 1.0000\nx3 = 3.0000\n")
	linear := strings.Index(out, "== job-4: 2x - 4\nx1 = 2.0000\n")
	for name, pos := range map[string]int{"quartic": quartic, "broken": broken, "cubic": cubic, "job-4": linear} {
		require.GreaterOrEqual(t, pos, 0, "%s missing from output:\n%s", name, out)
	}
	assert.Less(t, quartic, broken)
	assert.Less(t, broken, cubic)
	assert.Less(t, cubic, linear)
}

func TestBatchCmd_AllSucceed(t *testing.T) {
	path := writeJobFile(t, `
jobs:
  - name: demo
    coefficients: [4, -10, 10, -5, 1]
    er: 1.0e-10
    es: 1.0e-10
`)

	out, err := execute(t, &app{}, "batch", "-f", path, "-w", "1", "--verify")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "== demo: x^4 - 5x^3 + 10x^2 - 10x + 4\nx1 = 2.0000\n"), out)
	assert.Contains(t, out, "max residual = ")
}

func TestBatchCmd_Errors(t *testing.T) {
	_, err := execute(t, &app{}, "batch")
	assert.ErrorContains(t, err, `required flag(s) "file" not set`)

	_, err = execute(t, &app{}, "batch", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, &app{}, "batch", "--file", writeJobFile(t, "jobs: []\n"))
	assert.ErrorIs(t, err, errNoJobs)

	_, err = execute(t, &app{}, "batch", "--file", writeJobFile(t, mixedJobs), "--workers", "0")
	assert.ErrorIs(t, err, errBadWorkers)
}

func TestLoadJobs_RejectsUnknownKeys(t *testing.T) {
	path := writeJobFile(t, `
jobs:
  - name: typo
    coefficents: [1, 2, 3]
`)

	_, err := loadJobs(path)
	assert.ErrorContains(t, err, "coefficents")
}

func TestJobFile_ParamsLayering(t *testing.T) {
	f, err := loadJobs(writeJobFile(t, `
defaults:
  s0: -1
  er: 0.001
  max_iterations: 50
jobs:
  - name: plain
    coefficients: [1, 2, 3, 4]
  - name: tuned
    coefficients: [1, 2, 3, 4]
    r0: 2
    max_iterations: 10
`))
	require.NoError(t, err)
	require.Len(t, f.Jobs, 2)

	assert.Equal(t, params{r0: defaultR0, s0: -1, er: 0.001, es: defaultEs, maxIter: 50}, f.params(0))
	assert.Equal(t, params{r0: 2, s0: -1, er: 0.001, es: defaultEs, maxIter: 10}, f.params(1))
	assert.Equal(t, bairstow.DefaultMaxIterations, defaultParams().maxIter)
}
