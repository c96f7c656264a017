package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/config"
	"github.com/katalvlaran/mincut/contraction"
	"github.com/katalvlaran/mincut/report"
)

const triangleInput = "3\n0 1 3\n1 0 3\n0 2 1\n2 0 1\n1 2 5\n2 1 5\n"

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := execute(t, triangleInput, "run")
	require.NoError(t, err)
	assert.Equal(t, "min cut: 8\n", out)

	out, _, err = execute(t, triangleInput, "run", "-", "--algo", "karger", "--mode", "iterate", "--trials", "200")
	require.NoError(t, err)
	assert.Equal(t, "min cut: 8\n", out)
}

func TestRun_Partition(t *testing.T) {
	out, _, err := execute(t, triangleInput, "run", "--partition", "--seed", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "min cut: 8\n")
	assert.Contains(t, out, "[0]")
	assert.Contains(t, out, "[1 2]")
}

func TestRun_Verbose(t *testing.T) {
	_, errOut, err := execute(t, triangleInput, "run", "-v", "--mode", "success", "--prob", "0.9")
	require.NoError(t, err)
	assert.Contains(t, errOut, "min cut trials finished")
	assert.Contains(t, errOut, "min_cut=8")

	_, errOut, err = execute(t, triangleInput, "run")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "min cut trials finished")
}

func TestRun_Symmetry(t *testing.T) {
	asym := "3\n0 1 3\n1 0 2\n1 2 5\n2 1 5\n"

	out, errOut, err := execute(t, asym, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "min cut:")
	assert.Contains(t, errOut, "asymmetric input")

	_, _, err = execute(t, asym, "run", "--strict")
	assert.ErrorIs(t, err, contraction.ErrAsymmetric)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "3\n0 7\n", "run")
	assert.Error(t, err)

	_, _, err = execute(t, triangleInput, "run", "--mode", "forever")
	assert.ErrorIs(t, err, config.ErrUnknownMode)

	_, _, err = execute(t, triangleInput, "run", "--watch")
	assert.Error(t, err)

	_, _, err = execute(t, triangleInput, "run", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestRun_ReportAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "mincut.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("algorithm:\n  name: karger\n  mode: iterate\n  trials: 60\n  seed: 9\nperformance:\n  workers: 2\n"), 0o600))
	input := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(input, []byte(triangleInput), 0o600))
	reportPath := filepath.Join(dir, "run.toml")

	out, _, err := execute(t, "", "run", input, "--config", cfgPath, "--report", reportPath)
	require.NoError(t, err)
	assert.Equal(t, "min cut: 8\n", out)

	f, err := report.Load(reportPath)
	require.NoError(t, err)
	assert.Equal(t, "karger", f.Current.Algorithm)
	assert.Equal(t, int64(9), f.Current.Seed)
	assert.Equal(t, 2, f.Current.Workers)
	assert.Equal(t, config.ModeIterate, f.Current.Mode)
	assert.Equal(t, 60, f.Current.Trials)
	assert.Equal(t, input, f.Current.Input)
	assert.Equal(t, int64(8), f.Current.MinCut)
	assert.Equal(t, 3, f.Current.Vertices)
	assert.Zero(t, f.Current.Threshold)
}

func TestGenerate_ThenRun(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"cycle", "8"}, "min cut: 4\n"},
		{[]string{"grid", "3", "4"}, "min cut: 4\n"},
		{[]string{"barbell", "5", "2"}, "min cut: 4\n"},
		{[]string{"complete", "6"}, "min cut: 10\n"},
	}
	for _, tc := range cases {
		path := filepath.Join(dir, tc.args[0]+".txt")
		_, _, err := execute(t, "", append([]string{"generate", "-o", path}, tc.args...)...)
		require.NoError(t, err, tc.args)

		out, _, err := execute(t, "", "run", path, "--mode", "success", "--prob", "0.999")
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, out, tc.args)
	}
}

func TestGenerate_Stdout(t *testing.T) {
	out, _, err := execute(t, "", "generate", "path", "3", "--min-weight", "2", "--max-weight", "2")
	require.NoError(t, err)
	assert.Equal(t, "3\n0 1 2\n1 0 2\n1 2 2\n2 1 2\n", out)

	out, _, err = execute(t, "", "generate", "random", "12", "--p", "0.5", "--seed", "3", "--max-weight", "9")
	require.NoError(t, err)
	again, _, err := execute(t, "", "generate", "random", "12", "--p", "0.5", "--seed", "3", "--max-weight", "9")
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.True(t, strings.HasPrefix(out, "12\n"))
}

func TestGenerate_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"generate", "torus", "3"},
		{"generate", "grid", "3"},
		{"generate", "cycle", "x"},
		{"generate", "cycle", "2"},
		{"generate", "path", "3", "--min-weight", "5", "--max-weight", "2"},
	} {
		_, _, err := execute(t, "", args...)
		assert.Error(t, err, args)
	}
}

func TestGenerate_WriteFailures(t *testing.T) {
	edges := []contraction.DirectedEdge{contraction.Unweighted(0, 1), contraction.Unweighted(1, 0)}

	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, writeFile(path, 2, edges))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\n0 1\n1 0\n", string(data))

	assert.Error(t, writeFile(filepath.Join(t.TempDir(), "missing", "g.txt"), 2, edges))

	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	_, _, err = execute(t, "", "generate", "-o", "/dev/full", "complete", "40")
	assert.Error(t, err, "a failed flush must not exit cleanly")
}
