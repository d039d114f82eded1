// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sdconnect matches a supply set of donor offers against a demand
// set of waitlisted consumers under geographic, immunologic and blood-type
// compatibility rules, and classifies every compatible pair into one of
// three quality tiers.
package sdconnect

import "time"

// SupplyRecord is one donor offer. OfferDate is carried for reporting but
// plays no part in matching.
type SupplyRecord struct {
	ID        int64
	Center    int64
	OfferDate time.Time
	DR1       int32
	DR2       int32
	Blood     int32
}

// DemandRecord is one waitlisted consumer. The waitlist dates play no part
// in matching.
type DemandRecord struct {
	ID      int64
	Center  int64
	WLStart time.Time
	WLEnd   time.Time
	DR1     int32
	DR2     int32
	UA      int32
	Blood   int32
}

// CenterDistance is one directional entry of the center crosswalk.
// (A,B) and (B,A) are distinct and need not carry equal distances; missing
// pairs are simply incompatible.
type CenterDistance struct {
	From     int64
	To       int64
	Distance float64
}

// Connection is one classified (supplier, consumer) pair.
type Connection struct {
	SupplierID int64
	ConsumerID int64
}

// Tier values. Tier 0 is the strongest match (both consumer DR slots hit),
// tier 2 the weakest. Downstream consumers treat lower as higher priority,
// so the inversion relative to the raw match count is load-bearing.
const (
	TierBoth = 0
	TierOne  = 1
	TierNone = 2
)

// ConnectionLists holds the three tier-partitioned output lists. Each list
// preserves the order in which pairs were discovered; the lists are pairwise
// disjoint and together cover exactly the pairs that passed the gate.
type ConnectionLists struct {
	K0 []Connection
	K1 []Connection
	K2 []Connection
}

func (l *ConnectionLists) add(k int, c Connection) {
	switch k {
	case TierBoth:
		l.K0 = append(l.K0, c)
	case TierOne:
		l.K1 = append(l.K1, c)
	default:
		l.K2 = append(l.K2, c)
	}
}

func (l *ConnectionLists) extend(o ConnectionLists) {
	l.K0 = append(l.K0, o.K0...)
	l.K1 = append(l.K1, o.K1...)
	l.K2 = append(l.K2, o.K2...)
}

// ByTier returns the list for tier k. It panics for k outside 0..2.
func (l ConnectionLists) ByTier(k int) []Connection {
	switch k {
	case TierBoth:
		return l.K0
	case TierOne:
		return l.K1
	case TierNone:
		return l.K2
	}
	panic("sdconnect: tier out of range")
}

// Total is the number of connections across all three tiers.
func (l ConnectionLists) Total() int {
	return len(l.K0) + len(l.K1) + len(l.K2)
}
