// SPDX-License-Identifier: MIT
package dispatch

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNoMatcher is returned by New when Config.Matcher is nil.
	ErrNoMatcher = errors.New("dispatch: no matcher configured")

	// ErrUnequalSides is returned under RejectUnequal when the numbers of
	// available drivers and waiting passengers differ.
	ErrUnequalSides = errors.New("dispatch: drivers and passengers differ in number")

	// ErrDuplicateID is returned when two drivers (or two passengers) share an ID.
	ErrDuplicateID = errors.New("dispatch: duplicate id")

	// ErrMissingID is returned for an entity with an empty ID.
	ErrMissingID = errors.New("dispatch: missing id")
)

// Location is a point on the plane.
type Location struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Driver is a row of the cost matrix. Only Available drivers are matched.
type Driver struct {
	ID        string   `yaml:"id" json:"id"`
	Location  Location `yaml:"location" json:"location"`
	Available bool     `yaml:"available" json:"available"`
}

// Passenger is a column of the cost matrix. Passengers already Assigned are
// skipped. Destination is carried for callers and does not affect the cost.
type Passenger struct {
	ID          string   `yaml:"id" json:"id"`
	Location    Location `yaml:"location" json:"location"`
	Destination Location `yaml:"destination" json:"destination"`
	Assigned    bool     `yaml:"assigned" json:"assigned"`
}

// Match is one driver → passenger pairing of a Plan.
type Match struct {
	DriverID    string  `yaml:"driver" json:"driver"`
	PassengerID string  `yaml:"passenger" json:"passenger"`
	Cost        float64 `yaml:"cost" json:"cost"`
}

// Plan is the outcome of one dispatch round.
type Plan struct {
	RoundID uuid.UUID `yaml:"round" json:"round"`

	// Matches are ordered by the driver's position in the input.
	Matches []Match `yaml:"matches" json:"matches"`

	// UnmatchedDrivers and UnmatchedPassengers list entities that took part
	// in the round but received no partner, in input order.
	UnmatchedDrivers    []string `yaml:"unmatched_drivers,omitempty" json:"unmatched_drivers,omitempty"`
	UnmatchedPassengers []string `yaml:"unmatched_passengers,omitempty" json:"unmatched_passengers,omitempty"`

	// Skipped counts drivers that were not Available plus passengers that
	// were already Assigned.
	Skipped int `yaml:"skipped" json:"skipped"`

	Total float64 `yaml:"total" json:"total"`

	// Partial is true when the round was cut short by cancellation.
	Partial bool `yaml:"partial,omitempty" json:"partial,omitempty"`
}

// Apply marks every matched driver unavailable and every matched passenger
// assigned, so the same slices can feed the next round. Entities not named
// in the plan are left unchanged.
func (p Plan) Apply(drivers []Driver, passengers []Passenger) {
	var (
		busy   = make(map[string]struct{}, len(p.Matches))
		served = make(map[string]struct{}, len(p.Matches))
		i      int
	)
	for _, m := range p.Matches {
		busy[m.DriverID] = struct{}{}
		served[m.PassengerID] = struct{}{}
	}
	for i = range drivers {
		if _, ok := busy[drivers[i].ID]; ok {
			drivers[i].Available = false
		}
	}
	for i = range passengers {
		if _, ok := served[passengers[i].ID]; ok {
			passengers[i].Assigned = true
		}
	}
}

// Round is one independent input of AssignRounds.
type Round struct {
	Drivers    []Driver
	Passengers []Passenger
}
