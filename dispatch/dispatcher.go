// SPDX-License-Identifier: MIT
package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmatch/assign"
	"github.com/katalvlaran/lvmatch/hungarian"
)

// UnequalPolicy selects what Assign does when the sides differ in size.
type UnequalPolicy int

const (
	// PadUnequal pads the short side and reports leftovers as unmatched.
	PadUnequal UnequalPolicy = iota
	// RejectUnequal fails the round with ErrUnequalSides.
	RejectUnequal
)

// String implements fmt.Stringer.
func (p UnequalPolicy) String() string {
	switch p {
	case PadUnequal:
		return "pad"
	case RejectUnequal:
		return "reject"
	default:
		return fmt.Sprintf("UnequalPolicy(%d)", int(p))
	}
}

// Config configures a Dispatcher.
type Config struct {
	// Matcher solves each round. Required.
	Matcher assign.Matcher
	// Metric prices a driver → passenger pickup. nil means Euclidean.
	Metric Metric
	// Unequal is the policy for sides of different size.
	Unequal UnequalPolicy
	// Workers bounds the goroutines AssignRounds runs at once; 0 means no limit.
	Workers int
}

// DefaultConfig returns the Hungarian matcher, Euclidean metric, PadUnequal
// and no worker limit.
func DefaultConfig() Config {
	return Config{
		Matcher: hungarian.NewMatcher(),
		Metric:  Euclidean,
		Unequal: PadUnequal,
	}
}

// Dispatcher runs dispatch rounds. It holds only configuration and is safe
// for concurrent use provided its Matcher is.
type Dispatcher struct {
	cfg Config
}

// New validates cfg and returns a Dispatcher.
func New(cfg Config) (*Dispatcher, error) {
	if cfg.Matcher == nil {
		return nil, ErrNoMatcher
	}
	if cfg.Metric == nil {
		cfg.Metric = Euclidean
	}
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}

	return &Dispatcher{cfg: cfg}, nil
}

// Assign runs one round: it keeps Available drivers and unassigned
// passengers, prices every pair with the metric and solves the assignment.
//
// Steps:
//  1. Check IDs (ErrMissingID, ErrDuplicateID) over the full input.
//  2. Filter; the number of filtered-out entities goes to Plan.Skipped.
//  3. Apply the unequal-size policy.
//  4. Build the cost matrix and call the Matcher.
//  5. Map rows and columns back to IDs.
//
// If the matcher stops early (ctx cancelled) the Plan holds the pairs found
// so far, Partial is set, and the error wraps ctx.Err().
//
// Complexity: dominated by the Matcher, O(max(d,p)³) for Hungarian.
func (d *Dispatcher) Assign(ctx context.Context, drivers []Driver, passengers []Passenger) (Plan, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := checkIDs(drivers, passengers); err != nil {
		return Plan{}, err
	}

	var (
		ds   = make([]Driver, 0, len(drivers))
		ps   = make([]Passenger, 0, len(passengers))
		plan = Plan{RoundID: uuid.New()}
	)
	for _, dr := range drivers {
		if dr.Available {
			ds = append(ds, dr)
		}
	}
	for _, p := range passengers {
		if !p.Assigned {
			ps = append(ps, p)
		}
	}
	plan.Skipped = len(drivers) - len(ds) + len(passengers) - len(ps)

	if len(ds) != len(ps) && d.cfg.Unequal == RejectUnequal {
		return Plan{}, fmt.Errorf("Assign: %d drivers, %d passengers: %w", len(ds), len(ps), ErrUnequalSides)
	}
	if len(ds) == 0 || len(ps) == 0 {
		for _, dr := range ds {
			plan.UnmatchedDrivers = append(plan.UnmatchedDrivers, dr.ID)
		}
		for _, p := range ps {
			plan.UnmatchedPassengers = append(plan.UnmatchedPassengers, p.ID)
		}
		return plan, nil
	}

	m, err := CostMatrix(ds, ps, d.cfg.Metric)
	if err != nil {
		return Plan{}, fmt.Errorf("Assign: cost matrix: %w", err)
	}
	res, err := d.cfg.Matcher.Match(ctx, m)
	if err != nil && !res.Partial {
		return Plan{}, fmt.Errorf("Assign: %w", err)
	}

	plan.Matches = make([]Match, 0, len(res.Pairs))
	for _, pr := range res.Pairs {
		plan.Matches = append(plan.Matches, Match{
			DriverID:    ds[pr.Row].ID,
			PassengerID: ps[pr.Col].ID,
			Cost:        pr.Cost,
		})
		plan.Total += pr.Cost
	}
	for _, i := range res.UnmatchedRows {
		plan.UnmatchedDrivers = append(plan.UnmatchedDrivers, ds[i].ID)
	}
	for _, j := range res.UnmatchedCols {
		plan.UnmatchedPassengers = append(plan.UnmatchedPassengers, ps[j].ID)
	}
	plan.Partial = res.Partial
	if err != nil {
		return plan, fmt.Errorf("Assign: %w", err)
	}

	return plan, nil
}

// AssignRounds solves independent rounds concurrently and returns their
// plans in input order. The first failing round cancels the others; its
// error is returned together with the plans completed so far (failed or
// cancelled rounds are left zero).
func (d *Dispatcher) AssignRounds(ctx context.Context, rounds []Round) ([]Plan, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		plans   = make([]Plan, len(rounds))
		g, gctx = errgroup.WithContext(ctx)
	)
	if d.cfg.Workers > 0 {
		g.SetLimit(d.cfg.Workers)
	}
	for i := range rounds {
		i := i
		g.Go(func() error {
			plan, err := d.Assign(gctx, rounds[i].Drivers, rounds[i].Passengers)
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			plans[i] = plan
			return nil
		})
	}
	err := g.Wait()

	return plans, err
}

// checkIDs rejects empty and repeated IDs on each side.
func checkIDs(drivers []Driver, passengers []Passenger) error {
	seen := make(map[string]struct{}, len(drivers))
	for i, dr := range drivers {
		if dr.ID == "" {
			return fmt.Errorf("driver %d: %w", i, ErrMissingID)
		}
		if _, dup := seen[dr.ID]; dup {
			return fmt.Errorf("driver %q: %w", dr.ID, ErrDuplicateID)
		}
		seen[dr.ID] = struct{}{}
	}

	clear(seen)
	for j, p := range passengers {
		if p.ID == "" {
			return fmt.Errorf("passenger %d: %w", j, ErrMissingID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("passenger %q: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}
