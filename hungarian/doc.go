// Package hungarian solves the assignment problem: given an n×n matrix of
// non-negative costs, find the bijection rows→columns with minimum total cost.
//
// What:
//
//   - Solve: Kuhn–Munkres with row/column potentials (the O(n³) shortest
//     augmenting path formulation). Rows enter the matching one at a time;
//     for each row an alternating tree over columns grows by minimum slack
//     until it reaches a free column, then the path is flipped.
//   - SolveFunc: same, from a generator cost(i, j) and a count n.
//   - SolveRectangular: pads an r×c matrix with a high-but-finite sentinel and
//     reports the entities left over as unmatched instead of dropping them.
//   - Solver: a reusable instance that keeps its buffers between calls.
//   - Verify: checks a Solution against the optimality certificate
//     (bijection, feasibility u[i]+v[j] ≤ c[i][j], equality on matched pairs).
//   - Matcher: adapter for the assign.Matcher interface.
//
// Tie-breaking:
//
//	When several columns share the minimum slack, the lowest column index is
//	taken. Repeated solves of the same matrix therefore return the same
//	assignment. With tied costs the optimum may not be unique: Total is
//	always minimal, the specific assignment is merely stable.
//
// Sentinel:
//
//	Costs must be finite. Use a large finite value (DefaultSentinel = 1e9)
//	for "possible but very expensive" pairs, never math.Inf. Potentials stay
//	within a few multiples of the largest cost, so as long as costs stay at or
//	below DefaultMaxCost (1e15 < 2^53) every sum and difference the solver
//	forms is exact to well under one unit at the sentinel magnitude. With
//	the default sentinel, real costs keep about 1e-7 absolute precision.
//
// Complexity:
//
//   - Time:   O(n³).
//   - Memory: O(n²) for the owned cost snapshot, O(n) for the rest.
//
// Concurrency:
//
//	Solve, SolveFunc, SolveRectangular and Matcher allocate fresh state per
//	call and are safe for concurrent use on any inputs. A Solver serializes
//	its own calls with a mutex.
//
// Errors:
//
//   - ErrInvalidInput: nil or non-square matrix (wraps the matrix sentinel).
//   - ErrInvalidCost: NaN, ±Inf, negative or above-ceiling cost.
//   - ctx.Err(): cancellation, returned together with a Partial solution.
package hungarian
