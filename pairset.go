// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdconnect

type pairKey struct {
	from int64
	to   int64
}

// PairSet is the geography index: the set of directional (origin,
// destination) center pairs whose crosswalk distance is strictly below the
// threshold it was built with. Immutable after construction.
type PairSet map[pairKey]struct{}

// NewPairSet builds a PairSet from crosswalk entries. Only entries with
// distance < threshold qualify; distance == threshold does not. Duplicate
// (from, to) entries collapse to a single membership bit. An empty input
// yields an empty set.
func NewPairSet(distances []CenterDistance, threshold float64) PairSet {
	s := make(PairSet, len(distances))
	for _, d := range distances {
		if d.Distance < threshold {
			s[pairKey{d.From, d.To}] = struct{}{}
		}
	}
	return s
}

// Contains reports whether the directional pair (from, to) is compatible.
func (s PairSet) Contains(from, to int64) bool {
	_, ok := s[pairKey{from, to}]
	return ok
}

// Len is the number of compatible pairs.
func (s PairSet) Len() int { return len(s) }
