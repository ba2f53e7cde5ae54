package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/assign"
	"github.com/katalvlaran/lvmatch/dispatch"
	"github.com/katalvlaran/lvmatch/internal/cli"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// writeFile stores body in a temp file and returns its path.
func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const squareProblem = `
costs:
  - [4, 1, 3]
  - [2, 0, 5]
  - [3, 2, 2]
`

func TestSolve_Table(t *testing.T) {
	path := writeFile(t, "p.yaml", squareProblem)

	out, _, err := run(t, "solve", "-f", path, "--verify")
	require.NoError(t, err)
	require.Contains(t, out, "ROW")
	require.Contains(t, out, "hungarian total: 5")
	require.Contains(t, out, "certificate: ok")
}

func TestSolve_JSONInput(t *testing.T) {
	path := writeFile(t, "p.json", `{"costs": [[1, 2], [10, 100]]}`)

	out, _, err := run(t, "solve", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "hungarian total: 12")

	out, _, err = run(t, "solve", "-f", path, "--greedy")
	require.NoError(t, err)
	require.Contains(t, out, "greedy total: 101")
}

func TestSolve_YAMLOutput(t *testing.T) {
	path := writeFile(t, "p.yaml", squareProblem)

	out, _, err := run(t, "solve", "-f", path, "-o", "yaml", "--verify")
	require.NoError(t, err)

	var rep struct {
		Method     string        `yaml:"method"`
		Assignment []int         `yaml:"assignment"`
		Pairs      []assign.Pair `yaml:"pairs"`
		Total      float64       `yaml:"total"`
		Verified   bool          `yaml:"verified"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Equal(t, "hungarian", rep.Method)
	require.Equal(t, []int{1, 0, 2}, rep.Assignment)
	require.Len(t, rep.Pairs, 3)
	require.Equal(t, 5.0, rep.Total)
	require.True(t, rep.Verified)
}

func TestSolve_Rectangular(t *testing.T) {
	path := writeFile(t, "p.yaml", "costs:\n  - [4, 2]\n  - [1, 3]\n  - [5, 5]\n")

	_, _, err := run(t, "solve", "-f", path)
	require.ErrorIs(t, err, assign.ErrInvalidInput)

	out, _, err := run(t, "solve", "-f", path, "--rectangular")
	require.NoError(t, err)
	require.Contains(t, out, "hungarian total: 3")
	require.Contains(t, out, "unmatched rows: 2")

	_, _, err = run(t, "solve", "-f", path, "--rectangular", "--verify")
	require.Error(t, err)
}

func TestSolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		args []string
	}{
		{"missing file flag", "", []string{"solve"}},
		{"no such file", "", []string{"solve", "-f", "does-not-exist.yaml"}},
		{"no costs", "sentinel: 10\n", nil},
		{"ragged", "costs: [[1, 2], [3]]\n", nil},
		{"negative cost", "costs: [[1, -2], [3, 4]]\n", nil},
		{"bad sentinel", "costs: [[1]]\nsentinel: -1\n", nil},
		{"greedy verify", squareProblem, []string{"--greedy", "--verify"}},
		{"bad output", squareProblem, []string{"-o", "xml"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := tc.args
			if tc.body != "" {
				args = append([]string{"solve", "-f", writeFile(t, "p.yaml", tc.body)}, tc.args...)
			}
			_, _, err := run(t, args...)
			require.Error(t, err)
		})
	}
}

func TestSolve_DebugLogging(t *testing.T) {
	path := writeFile(t, "p.yaml", squareProblem)

	_, stderr, err := run(t, "solve", "-f", path, "--debug")
	require.NoError(t, err)
	require.Contains(t, stderr, "level=DEBUG")
	require.Contains(t, stderr, "msg=solved")

	_, stderr, err = run(t, "solve", "-f", path)
	require.NoError(t, err)
	require.NotContains(t, stderr, "level=DEBUG")
}

const fleet = `
metric: euclidean
drivers:
  - {id: alice, location: {x: 0, y: 0}}
  - {id: bob, location: {x: 10, y: 0}}
  - {id: carol, location: {x: 5, y: 5}, available: false}
passengers:
  - {id: p1, location: {x: 9, y: 0}, destination: {x: 0, y: 9}}
  - {id: p2, location: {x: 1, y: 0}}
  - {id: p3, location: {x: 50, y: 50}}
`

func TestDispatch_Table(t *testing.T) {
	path := writeFile(t, "fleet.yaml", fleet)

	out, _, err := run(t, "dispatch", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "DRIVER")
	require.Contains(t, out, "total: 2")
	require.Contains(t, out, "waiting passengers: p3")
	require.NotContains(t, out, "carol")

	_, _, err = run(t, "dispatch", "-f", path, "--reject")
	require.ErrorIs(t, err, dispatch.ErrUnequalSides)

	_, _, err = run(t, "dispatch", "-f", path, "--metric", "chebyshev")
	require.Error(t, err)
}

func TestDispatch_RoundsYAML(t *testing.T) {
	path := writeFile(t, "rounds.yaml", `
rounds:
  - drivers: [{id: a, location: {x: 0, y: 0}}]
    passengers: [{id: x, location: {x: 3, y: 4}}]
  - drivers: [{id: b, location: {x: 0, y: 0}}]
    passengers: [{id: y, location: {x: 3, y: 4}}]
`)

	out, _, err := run(t, "dispatch", "-f", path, "--metric", "manhattan", "-o", "yaml", "--workers", "1")
	require.NoError(t, err)

	var plans []struct {
		Round   string           `yaml:"round"`
		Matches []dispatch.Match `yaml:"matches"`
		Total   float64          `yaml:"total"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 2)
	require.Equal(t, []dispatch.Match{{DriverID: "a", PassengerID: "x", Cost: 7}}, plans[0].Matches)
	require.Equal(t, []dispatch.Match{{DriverID: "b", PassengerID: "y", Cost: 7}}, plans[1].Matches)
	require.NotEqual(t, plans[0].Round, plans[1].Round)
	require.Len(t, plans[0].Round, 36)
}

func TestDispatch_Errors(t *testing.T) {
	both := writeFile(t, "both.yaml", fleet+"rounds:\n  - drivers: []\n    passengers: []\n")
	_, _, err := run(t, "dispatch", "-f", both)
	require.Error(t, err)

	dup := writeFile(t, "dup.yaml", `
drivers: [{id: a, location: {x: 0, y: 0}}, {id: a, location: {x: 1, y: 1}}]
passengers: [{id: x, location: {x: 0, y: 0}}, {id: y, location: {x: 1, y: 1}}]
`)
	_, _, err = run(t, "dispatch", "-f", dup)
	require.ErrorIs(t, err, dispatch.ErrDuplicateID)

	broken := writeFile(t, "broken.yaml", "drivers: [")
	_, _, err = run(t, "dispatch", "-f", broken)
	require.Error(t, err)
}
