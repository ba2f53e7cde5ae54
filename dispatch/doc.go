// SPDX-License-Identifier: MIT

// Package dispatch pairs available drivers with waiting passengers.
//
// A Dispatcher turns coordinates into a cost matrix (rows are drivers,
// columns are passengers) with a Metric, hands it to an assign.Matcher
// (the Hungarian solver by default) and maps the result back to entity IDs.
//
// When the two sides differ in size the short side is padded and the
// entities left over are reported in Plan.UnmatchedDrivers and
// Plan.UnmatchedPassengers; RejectUnequal turns that case into
// ErrUnequalSides instead. Nothing is dropped silently.
//
// Independent rounds (different cities, different time slots) can be solved
// concurrently with AssignRounds; each round owns its own solver state.
//
// The package does not log and does not persist plans.
package dispatch
