// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdconnect

// Tier applies the full compatibility gate to one (supplier, candidate)
// pair. ok is false when the pair fails the gate: unequal blood types, or
// the candidate's unacceptable antigen equals either supplier DR marker.
// For surviving pairs k is 2 minus the number of candidate DR slots that
// hit either supplier marker, so k=0 means both slots matched and k=2 means
// neither did.
func Tier(s SupplyRecord, c DemandRecord) (k int, ok bool) {
	if c.Blood != s.Blood {
		return 0, false
	}
	if c.UA == s.DR1 || c.UA == s.DR2 {
		return 0, false
	}

	matches := 0
	if c.DR1 == s.DR1 || c.DR1 == s.DR2 {
		matches++
	}
	if c.DR2 == s.DR1 || c.DR2 == s.DR2 {
		matches++
	}
	return 2 - matches, true
}

// Evaluate runs the gate over a candidate group and returns consumer ID ->
// tier for the survivors. Rejected candidates are dropped silently; an
// empty group yields an empty map.
func Evaluate(s SupplyRecord, candidates []DemandRecord) map[int64]int {
	out := make(map[int64]int)
	for _, c := range candidates {
		if k, ok := Tier(s, c); ok {
			out[c.ID] = k
		}
	}
	return out
}
