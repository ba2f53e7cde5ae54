package greedy_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/assign"
	"github.com/katalvlaran/lvmatch/greedy"
	"github.com/katalvlaran/lvmatch/matrix"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// TestMatch_ColumnOrder checks that earlier columns win contested rows,
// which is exactly where greedy loses to the optimum.
func TestMatch_ColumnOrder(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{
		{1, 2},
		{10, 100},
	})
	res, err := greedy.Match(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Assignment)
	require.Equal(t, 101.0, res.Total)

	opt, err := assign.Exhaustive(m)
	require.NoError(t, err)
	require.Equal(t, 12.0, opt.Total)
}

// TestMatch_TieBreakLowestRow checks the deterministic tie rule.
func TestMatch_TieBreakLowestRow(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	res, err := greedy.Match(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Assignment)
	require.True(t, res.Complete())
}

// TestMatch_Rectangular reports leftovers on both orientations.
func TestMatch_Rectangular(t *testing.T) {
	t.Parallel()

	wide := mustRows(t, [][]float64{
		{5, 1, 9},
	})
	res, err := greedy.Match(context.Background(), wide)
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Assignment) // column 0 comes first and takes the only row
	require.Equal(t, []int{1, 2}, res.UnmatchedCols)
	require.Empty(t, res.UnmatchedRows)

	tall := mustRows(t, [][]float64{
		{3},
		{2},
		{7},
	})
	res, err = greedy.Match(context.Background(), tall)
	require.NoError(t, err)
	require.Equal(t, []int{assign.Unassigned, 0, assign.Unassigned}, res.Assignment)
	require.Equal(t, []int{0, 2}, res.UnmatchedRows)
	require.Equal(t, 2.0, res.Total)
}

// TestMatch_Errors covers the shared validation taxonomy.
func TestMatch_Errors(t *testing.T) {
	t.Parallel()

	_, err := greedy.Match(context.Background(), nil)
	require.ErrorIs(t, err, assign.ErrInvalidInput)

	_, err = greedy.Match(context.Background(), mustRows(t, [][]float64{{math.NaN()}}))
	require.ErrorIs(t, err, assign.ErrInvalidCost)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = greedy.Match(context.Background(), mustRows(t, [][]float64{{-1}}))
	require.ErrorIs(t, err, assign.ErrInvalidCost)
}

// TestMatch_Cancelled returns an empty partial result.
func TestMatch_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := greedy.Match(ctx, mustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, res.Partial)
	require.Equal(t, []int{0, 1}, res.UnmatchedRows)
	require.False(t, res.Complete())
}

// TestMatch_Forced flags sentinel-cost pairs.
func TestMatch_Forced(t *testing.T) {
	t.Parallel()

	g := greedy.New(greedy.Options{Sentinel: 50, MaxCost: 100})
	res, err := g.Match(context.Background(), mustRows(t, [][]float64{{50}}))
	require.NoError(t, err)
	require.True(t, res.Pairs[0].Forced)

	_, err = g.Match(context.Background(), mustRows(t, [][]float64{{101}}))
	require.ErrorIs(t, err, matrix.ErrCostTooLarge)
}
