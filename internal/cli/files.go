// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/dispatch"
)

// problemFile is the input of `lvmatch solve`. JSON is accepted too, being
// valid YAML.
type problemFile struct {
	Costs    [][]float64 `yaml:"costs"`
	Sentinel float64     `yaml:"sentinel,omitempty"`
	MaxCost  float64     `yaml:"max_cost,omitempty"`
}

// fleetFile is the input of `lvmatch dispatch`: either one round given by
// drivers/passengers, or several independent rounds.
type fleetFile struct {
	Metric     string          `yaml:"metric,omitempty"`
	Drivers    []driverSpec    `yaml:"drivers"`
	Passengers []passengerSpec `yaml:"passengers"`
	Rounds     []roundSpec     `yaml:"rounds,omitempty"`
}

type roundSpec struct {
	Drivers    []driverSpec    `yaml:"drivers"`
	Passengers []passengerSpec `yaml:"passengers"`
}

// driverSpec defaults Available to true when the key is absent.
type driverSpec struct {
	ID        string            `yaml:"id"`
	Location  dispatch.Location `yaml:"location"`
	Available *bool             `yaml:"available,omitempty"`
}

type passengerSpec struct {
	ID          string            `yaml:"id"`
	Location    dispatch.Location `yaml:"location"`
	Destination dispatch.Location `yaml:"destination"`
	Assigned    bool              `yaml:"assigned,omitempty"`
}

// loadYAML reads path and decodes it into out.
func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func loadProblem(path string) (*problemFile, error) {
	var p problemFile
	if err := loadYAML(path, &p); err != nil {
		return nil, err
	}
	if p.Costs == nil {
		return nil, fmt.Errorf("%s: missing costs", path)
	}
	if !validLimit(p.Sentinel) || !validLimit(p.MaxCost) {
		return nil, fmt.Errorf("%s: sentinel and max_cost must be finite and positive", path)
	}

	return &p, nil
}

// validLimit accepts 0 (unset) or a finite positive value.
func validLimit(x float64) bool {
	return x == 0 || (x > 0 && !math.IsInf(x, 1))
}

func loadFleet(path string) (*fleetFile, error) {
	var f fleetFile
	if err := loadYAML(path, &f); err != nil {
		return nil, err
	}
	if len(f.Rounds) > 0 && (len(f.Drivers) > 0 || len(f.Passengers) > 0) {
		return nil, fmt.Errorf("%s: use either rounds or drivers/passengers, not both", path)
	}

	return &f, nil
}

// rounds converts the file into dispatch rounds; a single-round file yields
// one Round.
func (f *fleetFile) rounds() []dispatch.Round {
	if len(f.Rounds) == 0 {
		return []dispatch.Round{toRound(f.Drivers, f.Passengers)}
	}
	out := make([]dispatch.Round, len(f.Rounds))
	for i, r := range f.Rounds {
		out[i] = toRound(r.Drivers, r.Passengers)
	}

	return out
}

func toRound(ds []driverSpec, ps []passengerSpec) dispatch.Round {
	r := dispatch.Round{
		Drivers:    make([]dispatch.Driver, len(ds)),
		Passengers: make([]dispatch.Passenger, len(ps)),
	}
	for i, d := range ds {
		r.Drivers[i] = dispatch.Driver{ID: d.ID, Location: d.Location, Available: d.Available == nil || *d.Available}
	}
	for j, p := range ps {
		r.Passengers[j] = dispatch.Passenger(p)
	}

	return r
}
