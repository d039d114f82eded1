// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gendata

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/someonegg/sdconnect"
)

// Date ranges of the reference dataset.
var (
	offerStart = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	offerEnd   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	wlStartLo  = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	wlStartHi  = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	wlEndMax   = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
)

const (
	wlDaysMin = 1
	wlDaysMax = 800
)

// Generator produces the three synthetic tables for one profile. The DR and
// UA weight vectors are drawn once at construction and shared by supply and
// demand, as in the reference generator.
type Generator struct {
	prof Profile
	rng  *rand.Rand

	drDist     *weightedDist
	uaDist     *weightedDist
	bloodDist  *weightedDist
	supCenters *weightedDist
	demCenters *weightedDist
	offerDays  *weightedDist
}

// New builds a Generator. A zero profile seed picks a clock-derived one, so
// repeated runs differ unless a seed is pinned.
func New(prof Profile) (*Generator, error) {
	if err := prof.validate(); err != nil {
		return nil, errors.Wrap(err, "gendata")
	}
	seed := prof.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Generator{prof: prof, rng: rand.New(rand.NewSource(seed))}

	g.drDist = newWeightedDist(g.betaWeights(prof.DRValues))
	g.uaDist = newWeightedDist(g.uaWeights())
	g.bloodDist = newWeightedDist(normalize(append([]float64(nil), prof.BloodWeights...)))
	g.supCenters = newWeightedDist(supplyCenterWeights(prof.Centers))
	g.demCenters = newWeightedDist(demandCenterWeights(prof.Centers))
	g.offerDays = newWeightedDist(laterSkewWeights(daysBetween(offerStart, offerEnd)))

	return g, nil
}

// Supply generates the donor offer table. Supplier IDs are a shuffled
// permutation of 1..SupplyRows, so no duplicates are possible.
func (g *Generator) Supply() []sdconnect.SupplyRecord {
	n := g.prof.SupplyRows
	ids := g.rng.Perm(n)

	supply := make([]sdconnect.SupplyRecord, n)
	for i := 0; i < n; i++ {
		supply[i] = sdconnect.SupplyRecord{
			ID:        int64(ids[i] + 1),
			Center:    int64(g.supCenters.Sample(g.rng) + 1),
			OfferDate: offerStart.AddDate(0, 0, g.offerDays.Sample(g.rng)),
			DR1:       int32(g.drDist.Sample(g.rng) + 1),
			DR2:       int32(g.drDist.Sample(g.rng) + 1),
			Blood:     int32(g.bloodDist.Sample(g.rng) + 1),
		}
	}
	return supply
}

// Demand generates the waitlist table. Consumer IDs are a shuffled
// permutation of 1..DemandRows.
func (g *Generator) Demand() []sdconnect.DemandRecord {
	n := g.prof.DemandRows
	ids := g.rng.Perm(n)
	wlDays := daysBetween(wlStartLo, wlStartHi)

	demand := make([]sdconnect.DemandRecord, n)
	for i := 0; i < n; i++ {
		start := wlStartLo.AddDate(0, 0, g.rng.Intn(wlDays+1))
		end := start.AddDate(0, 0, wlDaysMin+g.rng.Intn(wlDaysMax-wlDaysMin+1))
		if end.After(wlEndMax) {
			end = wlEndMax
		}
		demand[i] = sdconnect.DemandRecord{
			ID:      int64(ids[i] + 1),
			Center:  int64(g.demCenters.Sample(g.rng) + 1),
			WLStart: start,
			WLEnd:   end,
			DR1:     int32(g.drDist.Sample(g.rng) + 1),
			DR2:     int32(g.drDist.Sample(g.rng) + 1),
			UA:      int32(g.uaDist.Sample(g.rng) + 1),
			Blood:   int32(g.bloodDist.Sample(g.rng) + 1),
		}
	}
	return demand
}

// Crosswalk generates every ordered center pair. Self pairs carry distance
// zero; the rest draw uniformly from the profile's distance range.
func (g *Generator) Crosswalk() []sdconnect.CenterDistance {
	n := g.prof.Centers
	span := g.prof.DistanceMax - g.prof.DistanceMin

	ds := make([]sdconnect.CenterDistance, 0, n*n)
	for from := 1; from <= n; from++ {
		for to := 1; to <= n; to++ {
			d := sdconnect.CenterDistance{From: int64(from), To: int64(to)}
			if from != to {
				d.Distance = g.prof.DistanceMin + g.rng.Float64()*span
			}
			ds = append(ds, d)
		}
	}
	return ds
}

// betaWeights draws a normalized Beta(2,2) weight vector of length n.
func (g *Generator) betaWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = g.beta22()
	}
	return normalize(w)
}

// beta22 samples Beta(2,2) as the ratio of two Gamma(2,1) variates, each
// the sum of two exponentials.
func (g *Generator) beta22() float64 {
	a := g.gamma2()
	b := g.gamma2()
	return a / (a + b)
}

func (g *Generator) gamma2() float64 {
	u1 := 1 - g.rng.Float64()
	u2 := 1 - g.rng.Float64()
	return -math.Log(u1 * u2)
}

// uaWeights concentrates UACommonShare of the mass on the first UA value
// and spreads the remainder Beta(2,2) over the rest.
func (g *Generator) uaWeights() []float64 {
	n := g.prof.UAValues
	w := make([]float64, n)
	w[0] = g.prof.UACommonShare
	if n == 1 {
		w[0] = 1
		return w
	}
	rest := g.betaWeights(n - 1)
	for i, r := range rest {
		w[i+1] = (1 - g.prof.UACommonShare) * r
	}
	return w
}

// supplyCenterWeights favors higher-numbered centers slightly (c^0.15).
func supplyCenterWeights(n int) []float64 {
	w := make([]float64, n)
	for c := 1; c <= n; c++ {
		w[c-1] = math.Pow(float64(c), 0.15)
	}
	return normalize(w)
}

// demandCenterWeights favors lower-numbered centers ((n+1-c)^1.2).
func demandCenterWeights(n int) []float64 {
	w := make([]float64, n)
	for c := 1; c <= n; c++ {
		w[c-1] = math.Pow(float64(n+1-c), 1.2)
	}
	return normalize(w)
}

// laterSkewWeights ramps linearly from 0.7 to 1.0 over n positions, so
// later dates come up slightly more often.
func laterSkewWeights(n int) []float64 {
	w := make([]float64, n+1)
	for i := range w {
		t := 0.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		w[i] = 0.7 + 0.3*t
	}
	return normalize(w)
}

func daysBetween(lo, hi time.Time) int {
	return int(hi.Sub(lo).Hours() / 24)
}

func normalize(w []float64) []float64 {
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

// weightedDist samples indexes proportionally to a fixed weight vector via
// binary search on the cumulative sums.
type weightedDist struct {
	cum []float64
}

func newWeightedDist(w []float64) *weightedDist {
	cum := make([]float64, len(w))
	sum := 0.0
	for i, v := range w {
		sum += v
		cum[i] = sum
	}
	return &weightedDist{cum: cum}
}

func (d *weightedDist) Sample(rng *rand.Rand) int {
	total := d.cum[len(d.cum)-1]
	i := sort.SearchFloat64s(d.cum, rng.Float64()*total)
	if i >= len(d.cum) {
		i = len(d.cum) - 1
	}
	return i
}
