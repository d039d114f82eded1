// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdconnect

import "sort"

// DemandIndex groups demand records by destination center so that a
// supplier only ever sees the candidates at centers its origin can reach.
// Built once, read-only afterwards.
type DemandIndex struct {
	groups  map[int64][]DemandRecord
	centers []int64
}

// NewDemandIndex builds the index. Within a group the records keep their
// input order; the center list is sorted so iteration order is stable.
func NewDemandIndex(demand []DemandRecord) DemandIndex {
	groups := make(map[int64][]DemandRecord)
	for _, d := range demand {
		groups[d.Center] = append(groups[d.Center], d)
	}

	centers := make([]int64, 0, len(groups))
	for c := range groups {
		centers = append(centers, c)
	}
	sort.Slice(centers, func(i, j int) bool { return centers[i] < centers[j] })

	return DemandIndex{groups: groups, centers: centers}
}

// Centers returns the distinct destination centers, sorted ascending.
// Callers must not mutate the returned slice.
func (x DemandIndex) Centers() []int64 { return x.centers }

// At returns the demand group for center, nil if the center has no demand.
// Callers must not mutate the returned slice.
func (x DemandIndex) At(center int64) []DemandRecord { return x.groups[center] }

// Len is the total number of indexed demand records.
func (x DemandIndex) Len() int {
	n := 0
	for _, g := range x.groups {
		n += len(g)
	}
	return n
}
