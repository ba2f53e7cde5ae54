// Package assign defines the vocabulary shared by every matcher in lvmatch.
//
// What:
//
//   - Pair / Result: the public outcome of an assignment, an ordered list of
//     (row, column, cost) triples plus the aggregate cost and any entities left
//     unmatched.
//   - Matcher: the interface optimal (hungarian) and heuristic (greedy)
//     matchers implement, so callers can swap strategies.
//   - Exhaustive: an n! brute-force reference solver for small instances.
//
// Rows and columns are plain indices 0..n-1; mapping them back to domain
// entities (drivers, passengers, workers, tasks) is the caller's job.
package assign
