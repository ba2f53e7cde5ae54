// Package lvmatch pairs two equal-size collections at minimum total cost,
// typically drivers and passengers of a ride-sharing round.
//
// What is in the box?
//
//	matrix/     Cost Matrix: Matrix interface, row-major Dense, builders,
//	            validators and square padding with a sentinel
//	hungarian/  Kuhn–Munkres in O(n³) with row/column potentials:
//	            Solve, SolveFunc, SolveRectangular, a reusable Solver,
//	            and Verify for the dual optimality certificate
//	greedy/     nearest-free-driver baseline, O(n²), no optimality guarantee
//	assign/     shared Result/Pair types, the Matcher interface and an
//	            exhaustive reference solver for small n
//	dispatch/   drivers, passengers, distance metrics, rounds solved
//	            concurrently, explicit reporting of unmatched entities
//	cmd/lvmatch command-line front end (solve, dispatch)
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]float64{
//		{4, 1, 3},
//		{2, 0, 5},
//		{3, 2, 2},
//	})
//	sol, err := hungarian.Solve(m)
//	// sol.Assignment == [1 0 2], sol.Total == 5
//
// Guarantees:
//
//   - the assignment is a bijection and its total is minimal;
//   - row/column potentials certify optimality (hungarian.Verify);
//   - identical input gives identical output, ties go to the lowest index;
//   - invalid input is rejected before any work, nothing panics on user data.
//
// Library packages do not log; the command-line tool logs with log/slog.
package lvmatch
