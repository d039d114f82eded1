// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gendata fabricates supply, demand and crosswalk tables with the
// statistical distributions of the reference dataset. Identifiers are
// unique by construction (shuffled permutations); everything else is
// weighted random sampling, deterministic under a fixed seed.
package gendata

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Profile holds every generator knob. The zero value is not usable; start
// from DefaultProfile and override.
type Profile struct {
	SupplyRows int `toml:"supply_rows"`
	DemandRows int `toml:"demand_rows"`
	Centers    int `toml:"centers"`
	DRValues   int `toml:"dr_values"`
	UAValues   int `toml:"ua_values"`
	BloodTypes int `toml:"blood_types"`

	// BloodWeights has one entry per blood type; it is normalized before
	// sampling.
	BloodWeights []float64 `toml:"blood_weights"`

	// Share of consumers carrying the first (most common) UA value; the
	// remaining mass spreads Beta(2,2) over the other values.
	UACommonShare float64 `toml:"ua_common_share"`

	// Crosswalk distances are drawn uniformly in [DistanceMin, DistanceMax).
	DistanceMin float64 `toml:"distance_min"`
	DistanceMax float64 `toml:"distance_max"`

	// Seed 0 means derive one from the clock.
	Seed int64 `toml:"seed"`
}

// DefaultProfile mirrors the reference dataset: 40k offers, 100k waitlist
// entries, 4 centers, DR and UA values 1..20, 4 blood types with a moderate
// skew, 90% of consumers on the common UA value.
func DefaultProfile() Profile {
	return Profile{
		SupplyRows:    40_000,
		DemandRows:    100_000,
		Centers:       4,
		DRValues:      20,
		UAValues:      20,
		BloodTypes:    4,
		BloodWeights:  []float64{0.35, 0.25, 0.22, 0.18},
		UACommonShare: 0.9,
		DistanceMin:   0,
		DistanceMax:   500,
	}
}

// LoadProfile reads a TOML profile over the defaults, so a file only needs
// to name the knobs it changes.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Profile{}, errors.Wrapf(err, "profile %s", path)
	}
	if err := p.validate(); err != nil {
		return Profile{}, errors.Wrapf(err, "profile %s", path)
	}
	return p, nil
}

func (p Profile) validate() error {
	switch {
	case p.SupplyRows < 0 || p.DemandRows < 0:
		return errors.New("row counts must be nonnegative")
	case p.Centers < 1:
		return errors.New("centers must be positive")
	case p.DRValues < 1 || p.UAValues < 1 || p.BloodTypes < 1:
		return errors.New("value domains must be positive")
	case len(p.BloodWeights) != p.BloodTypes:
		return errors.Newf("blood_weights needs %d entries, got %d", p.BloodTypes, len(p.BloodWeights))
	case p.UACommonShare < 0 || p.UACommonShare > 1:
		return errors.New("ua_common_share must be in [0,1]")
	case p.DistanceMax < p.DistanceMin:
		return errors.New("distance_max must be >= distance_min")
	}
	return nil
}
