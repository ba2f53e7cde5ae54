// SPDX-License-Identifier: MIT
package dispatch

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvmatch/matrix"
)

// Metric returns the cost of sending a driver at a to a passenger at b.
// It must be non-negative and finite for finite inputs.
type Metric func(a, b Location) float64

// Euclidean is the straight-line distance.
func Euclidean(a, b Location) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Manhattan is the L1 (city block) distance.
func Manhattan(a, b Location) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// MetricByName resolves "euclidean" or "manhattan" (case-insensitive).
func MetricByName(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "euclidean", "l2":
		return Euclidean, nil
	case "manhattan", "l1":
		return Manhattan, nil
	default:
		return nil, fmt.Errorf("dispatch: unknown metric %q", name)
	}
}

// CostMatrix builds the len(drivers)×len(passengers) matrix whose cell (i, j)
// is metric(drivers[i].Location, passengers[j].Location). Availability flags
// are ignored here. A nil metric means Euclidean.
//
// Complexity: O(d·p).
func CostMatrix(drivers []Driver, passengers []Passenger, metric Metric) (*matrix.Dense, error) {
	if metric == nil {
		metric = Euclidean
	}

	return matrix.FromFunc(len(drivers), len(passengers), func(i, j int) float64 {
		return metric(drivers[i].Location, passengers[j].Location)
	})
}
