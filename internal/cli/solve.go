// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/assign"
	"github.com/katalvlaran/lvmatch/greedy"
	"github.com/katalvlaran/lvmatch/hungarian"
	"github.com/katalvlaran/lvmatch/matrix"
)

// solveReport is the YAML form of a solve.
type solveReport struct {
	Method        string        `yaml:"method"`
	Assignment    []int         `yaml:"assignment"`
	Pairs         []assign.Pair `yaml:"pairs"`
	Total         float64       `yaml:"total"`
	UnmatchedRows []int         `yaml:"unmatched_rows,omitempty"`
	UnmatchedCols []int         `yaml:"unmatched_cols,omitempty"`
	Verified      bool          `yaml:"verified,omitempty"`
}

type solveFlags struct {
	file        string
	greedy      bool
	verify      bool
	rectangular bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an assignment problem given as a cost matrix",
		Long: `Reads a YAML (or JSON) file of the form

  costs:
    - [4, 1, 3]
    - [2, 0, 5]
    - [3, 2, 2]
  sentinel: 1e9     # optional
  max_cost: 1e15    # optional

and prints the minimum-cost assignment of rows to columns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "problem file (required)")
	cmd.Flags().BoolVar(&f.greedy, "greedy", false, "use the greedy nearest-neighbour matcher")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "check the dual optimality certificate")
	cmd.Flags().BoolVar(&f.rectangular, "rectangular", false, "accept r×c input, reporting leftovers as unmatched")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f solveFlags) error {
	if f.greedy && f.verify {
		return errors.New("--verify needs the Hungarian solver, drop --greedy")
	}
	p, err := loadProblem(f.file)
	if err != nil {
		return err
	}
	m, err := matrix.NewFromRows(p.Costs)
	if err != nil {
		return fmt.Errorf("%s: %w", f.file, err)
	}
	a.log.Debug("problem loaded", "file", f.file, "rows", m.Rows(), "cols", m.Cols())

	opts := []hungarian.Option{hungarian.WithContext(cmd.Context())}
	gopts := greedy.DefaultOptions()
	if p.Sentinel != 0 {
		opts = append(opts, hungarian.WithSentinel(p.Sentinel))
		gopts.Sentinel = p.Sentinel
	}
	if p.MaxCost != 0 {
		opts = append(opts, hungarian.WithMaxCost(p.MaxCost))
		gopts.MaxCost = p.MaxCost
	}

	rep := solveReport{Method: "hungarian"}
	switch {
	case f.greedy:
		rep.Method = "greedy"
		res, err := greedy.New(gopts).Match(cmd.Context(), m)
		if err != nil {
			return err
		}
		rep.fill(res)
	case f.rectangular:
		sol, err := hungarian.SolveRectangular(m, opts...)
		if err != nil {
			return err
		}
		rep.fill(sol.Result)
	default:
		sol, err := hungarian.Solve(m, opts...)
		if err != nil {
			return err
		}
		rep.fill(sol.Result)
		if f.verify {
			if err = hungarian.Verify(m, sol); err != nil {
				return err
			}
			rep.Verified = true
			a.log.Debug("certificate verified", "n", m.Rows())
		}
	}
	if f.verify && !rep.Verified {
		return errors.New("--verify applies to square problems only")
	}
	a.log.Debug("solved", "method", rep.Method, "pairs", len(rep.Pairs), "total", rep.Total)

	if a.output == outputYAML {
		return writeYAML(cmd.OutOrStdout(), rep)
	}
	rep.render(cmd)

	return nil
}

func (r *solveReport) fill(res assign.Result) {
	r.Assignment = res.Assignment
	r.Pairs = res.Pairs
	r.Total = res.Total
	r.UnmatchedRows = res.UnmatchedRows
	r.UnmatchedCols = res.UnmatchedCols
}

func (r *solveReport) render(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	t := newTable("ROW", "COL", "COST", "FORCED")
	for _, p := range r.Pairs {
		forced := ""
		if p.Forced {
			forced = "yes"
		}
		t.addRow(strconv.Itoa(p.Row), strconv.Itoa(p.Col), formatCost(p.Cost), forced)
	}
	t.render(w)

	okColor.Fprintf(w, "%s total: %s\n", r.Method, formatCost(r.Total))
	if len(r.UnmatchedRows) > 0 {
		warnColor.Fprintf(w, "unmatched rows: %s\n", formatInts(r.UnmatchedRows))
	}
	if len(r.UnmatchedCols) > 0 {
		warnColor.Fprintf(w, "unmatched cols: %s\n", formatInts(r.UnmatchedCols))
	}
	if r.Verified {
		okColor.Fprintln(w, "certificate: ok")
	}
}
