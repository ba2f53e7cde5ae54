// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/dispatch"
	"github.com/katalvlaran/lvmatch/greedy"
)

type dispatchFlags struct {
	file    string
	metric  string
	reject  bool
	greedy  bool
	workers int
}

func newDispatchCmd(a *app) *cobra.Command {
	var f dispatchFlags

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Match drivers to passengers by distance",
		Long: `Reads a YAML (or JSON) fleet file:

  metric: euclidean          # or manhattan
  drivers:
    - {id: d1, location: {x: 0, y: 0}}
    - {id: d2, location: {x: 5, y: 5}, available: false}
  passengers:
    - {id: p1, location: {x: 1, y: 0}, destination: {x: 9, y: 9}}

Several independent rounds can be given under "rounds:", each with its own
drivers and passengers; they are solved concurrently.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDispatch(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "fleet file (required)")
	cmd.Flags().StringVar(&f.metric, "metric", "", "distance metric: euclidean or manhattan (overrides the file)")
	cmd.Flags().BoolVar(&f.reject, "reject", false, "fail when drivers and passengers differ in number")
	cmd.Flags().BoolVar(&f.greedy, "greedy", false, "use the greedy nearest-neighbour matcher")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "rounds solved at once (0 = unlimited)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) runDispatch(cmd *cobra.Command, f dispatchFlags) error {
	fleet, err := loadFleet(f.file)
	if err != nil {
		return err
	}
	name := fleet.Metric
	if f.metric != "" {
		name = f.metric
	}
	metric, err := dispatch.MetricByName(name)
	if err != nil {
		return err
	}

	cfg := dispatch.DefaultConfig()
	cfg.Metric = metric
	cfg.Workers = f.workers
	if f.reject {
		cfg.Unequal = dispatch.RejectUnequal
	}
	if f.greedy {
		cfg.Matcher = greedy.New(greedy.DefaultOptions())
	}
	d, err := dispatch.New(cfg)
	if err != nil {
		return err
	}

	rounds := fleet.rounds()
	a.log.Debug("fleet loaded", "file", f.file, "rounds", len(rounds), "policy", cfg.Unequal.String())
	plans, err := d.AssignRounds(cmd.Context(), rounds)
	if err != nil {
		return err
	}
	for _, p := range plans {
		a.log.Debug("round solved", "round", p.RoundID.String(), "matches", len(p.Matches), "total", p.Total)
	}

	if a.output == outputYAML {
		return writeYAML(cmd.OutOrStdout(), plans)
	}
	w := cmd.OutOrStdout()
	for i, p := range plans {
		if i > 0 {
			fmt.Fprintln(w)
		}
		headerColor.Fprintf(w, "round %s\n", p.RoundID)
		t := newTable("DRIVER", "PASSENGER", "COST")
		for _, m := range p.Matches {
			t.addRow(m.DriverID, m.PassengerID, formatCost(m.Cost))
		}
		t.render(w)
		okColor.Fprintf(w, "total: %s\n", formatCost(p.Total))
		if len(p.UnmatchedDrivers) > 0 {
			warnColor.Fprintf(w, "idle drivers: %s\n", strings.Join(p.UnmatchedDrivers, ", "))
		}
		if len(p.UnmatchedPassengers) > 0 {
			warnColor.Fprintf(w, "waiting passengers: %s\n", strings.Join(p.UnmatchedPassengers, ", "))
		}
	}

	return nil
}
