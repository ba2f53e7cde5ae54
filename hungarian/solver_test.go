package hungarian_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmatch/assign"
	"github.com/katalvlaran/lvmatch/hungarian"
	"github.com/katalvlaran/lvmatch/matrix"
)

// countdownCtx reports cancellation after its first `left` Err calls.
// The solver checks Err once per row, so left is the number of rows that
// get matched before the solve stops.
type countdownCtx struct {
	context.Context
	left int
}

func (c *countdownCtx) Err() error {
	if c.left <= 0 {
		return context.Canceled
	}
	c.left--
	return nil
}

// SolverSuite exercises the reusable Solver and the concurrency contract.
type SolverSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *SolverSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(42))
}

// TestReuseAcrossSizes checks that buffers are reset between calls of
// different sizes and that results match a fresh solve.
func (s *SolverSuite) TestReuseAcrossSizes() {
	solver := hungarian.NewSolver()
	ctx := context.Background()

	a := randomMatrix(s.T(), s.rng, 5, 50)
	b := randomMatrix(s.T(), s.rng, 3, 50)

	for _, m := range []*matrix.Dense{a, b, a, b} {
		got, err := solver.Solve(ctx, m)
		s.Require().NoError(err)
		want, err := hungarian.Solve(m)
		s.Require().NoError(err)

		s.Require().Equal(want.Assignment, got.Assignment)
		s.Require().Equal(want.Total, got.Total)
		s.Require().NoError(hungarian.Verify(m, got))
	}
}

// TestNoAliasing ensures returned slices are not backed by solver buffers.
func (s *SolverSuite) TestNoAliasing() {
	solver := hungarian.NewSolver()
	m := randomMatrix(s.T(), s.rng, 4, 10)

	first, err := solver.Solve(context.Background(), m)
	s.Require().NoError(err)
	kept := append([]int(nil), first.Assignment...)
	keptU := append([]float64(nil), first.RowPotentials...)

	_, err = solver.Solve(context.Background(), randomMatrix(s.T(), s.rng, 4, 10))
	s.Require().NoError(err)

	s.Require().Equal(kept, first.Assignment)
	s.Require().Equal(keptU, first.RowPotentials)
}

// TestCancelledBeforeStart returns an all-unassigned partial solution.
func (s *SolverSuite) TestCancelledBeforeStart() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := randomMatrix(s.T(), s.rng, 3, 10)
	sol, err := hungarian.Solve(m, hungarian.WithContext(ctx))
	s.Require().ErrorIs(err, context.Canceled)
	s.Require().NotNil(sol)
	s.Require().True(sol.Partial)
	s.Require().Empty(sol.Pairs)
	s.Require().Equal([]int{assign.Unassigned, assign.Unassigned, assign.Unassigned}, sol.Assignment)
	s.Require().Equal([]int{0, 1, 2}, sol.UnmatchedRows)
	s.Require().ErrorIs(hungarian.Verify(m, sol), hungarian.ErrNotBijection)
}

// TestCancelledMidway keeps the rows matched before cancellation.
func (s *SolverSuite) TestCancelledMidway() {
	m, err := matrix.FromFunc(4, 4, func(i, j int) float64 {
		if i == j {
			return 0
		}
		return 5
	})
	s.Require().NoError(err)

	ctx := &countdownCtx{Context: context.Background(), left: 2}
	sol, err := hungarian.NewSolver().Solve(ctx, m)
	s.Require().ErrorIs(err, context.Canceled)
	s.Require().True(sol.Partial)
	s.Require().Equal([]int{0, 1, assign.Unassigned, assign.Unassigned}, sol.Assignment)
	s.Require().Len(sol.Pairs, 2)
	s.Require().Equal([]int{2, 3}, sol.UnmatchedRows)
	s.Require().Equal([]int{2, 3}, sol.UnmatchedCols)
	s.Require().Zero(sol.Total)
	s.Require().False(sol.Complete())
}

// TestConcurrentIndependentSolves runs package-level solves in parallel on
// disjoint inputs and on the same input; no locking is needed by callers.
func (s *SolverSuite) TestConcurrentIndependentSolves() {
	const workers = 8
	inputs := make([]*matrix.Dense, workers)
	want := make([]*hungarian.Solution, workers)
	var i int
	for i = 0; i < workers; i++ {
		inputs[i] = randomMatrix(s.T(), s.rng, 6+i, 100)
		sol, err := hungarian.Solve(inputs[i])
		s.Require().NoError(err)
		want[i] = sol
	}

	got := make([]*hungarian.Solution, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i = 0; i < workers; i++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			got[k], errs[k] = hungarian.Solve(inputs[k])
		}(i)
	}
	wg.Wait()

	for i = 0; i < workers; i++ {
		s.Require().NoError(errs[i])
		s.Require().Equal(want[i].Assignment, got[i].Assignment)
		s.Require().Equal(want[i].Total, got[i].Total)
	}
}

// TestSharedSolverSerializes shares one Solver between goroutines; the mutex
// must keep every call's result intact.
func (s *SolverSuite) TestSharedSolverSerializes() {
	solver := hungarian.NewSolver()
	m := randomMatrix(s.T(), s.rng, 10, 100)
	want, err := hungarian.Solve(m)
	s.Require().NoError(err)

	const callers = 6
	got := make([]*hungarian.Solution, callers)
	var wg sync.WaitGroup
	var i int
	for i = 0; i < callers; i++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			got[k], _ = solver.Solve(context.Background(), m)
		}(i)
	}
	wg.Wait()

	for i = 0; i < callers; i++ {
		s.Require().NotNil(got[i])
		s.Require().Equal(want.Assignment, got[i].Assignment)
	}
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

// TestMatcher_Interface runs the adapter on square and rectangular inputs.
func TestMatcher_Interface(t *testing.T) {
	var mt assign.Matcher = hungarian.NewMatcher()

	res, err := mt.Match(context.Background(), mustRows(t, [][]float64{{4, 1}, {1, 4}}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, res.Assignment)
	require.Equal(t, 2.0, res.Total)

	res, err = mt.Match(context.Background(), mustRows(t, [][]float64{{3, 1, 2}}))
	require.NoError(t, err)
	require.Equal(t, []int{1}, res.Assignment)
	require.Equal(t, []int{0, 2}, res.UnmatchedCols)

	_, err = mt.Match(context.Background(), nil)
	require.ErrorIs(t, err, assign.ErrInvalidInput)
}
