// SPDX-License-Identifier: MIT

// Package cli implements the lvmatch command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// app carries the persistent flags and the logger built from them.
type app struct {
	debug  bool
	output string
	log    *slog.Logger
}

// NewRootCmd returns the lvmatch root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "lvmatch",
		Short: "Optimal driver/passenger assignment",
		Long: `lvmatch solves minimum-cost assignment problems with the Hungarian
(Kuhn–Munkres) algorithm.

Examples:
  # Solve a cost matrix and check the dual certificate
  lvmatch solve -f problem.yaml --verify

  # Compare with the greedy nearest-neighbour baseline
  lvmatch solve -f problem.yaml --greedy

  # Dispatch a fleet described by coordinates
  lvmatch dispatch -f fleet.yaml --metric manhattan`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.output != outputTable && a.output != outputYAML {
				return fmt.Errorf("unknown output %q (want %s or %s)", a.output, outputTable, outputYAML)
			}
			level := slog.LevelWarn
			if a.debug {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log solver steps to stderr")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputTable, "output format: table or yaml")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newDispatchCmd(a))

	return root
}
