// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdconnect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testSupplier = SupplyRecord{ID: 1, Center: 1, DR1: 5, DR2: 9, Blood: 2}

func TestTier_Gate(t *testing.T) {
	t.Run("UAMatchesSupplierDR", func(t *testing.T) {
		c := DemandRecord{ID: 100, Center: 2, UA: 5, DR1: 9, DR2: 20, Blood: 2}
		_, ok := Tier(testSupplier, c)
		require.False(t, ok, "UA equal to supplier DR1 must exclude")
	})

	t.Run("UAMatchesSecondDR", func(t *testing.T) {
		c := DemandRecord{ID: 100, Center: 2, UA: 9, DR1: 5, DR2: 9, Blood: 2}
		_, ok := Tier(testSupplier, c)
		require.False(t, ok, "UA equal to supplier DR2 must exclude")
	})

	t.Run("BloodMismatch", func(t *testing.T) {
		// All marker values compatible, blood type differs.
		c := DemandRecord{ID: 100, Center: 2, UA: 7, DR1: 5, DR2: 9, Blood: 3}
		_, ok := Tier(testSupplier, c)
		require.False(t, ok)
	})
}

func TestTier_Classification(t *testing.T) {
	cases := []struct {
		name     string
		dr1, dr2 int32
		want     int
	}{
		{"BothSlotsMatch", 5, 9, TierBoth},
		{"BothSlotsSameMarker", 5, 5, TierBoth},
		{"FirstSlotOnly", 5, 20, TierOne},
		{"SecondSlotOnly", 20, 9, TierOne},
		{"NoSlotMatches", 20, 21, TierNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := DemandRecord{ID: 101, Center: 2, UA: 7, DR1: tc.dr1, DR2: tc.dr2, Blood: 2}
			k, ok := Tier(testSupplier, c)
			require.True(t, ok)
			require.Equal(t, tc.want, k)
		})
	}
}

func TestTier_Deterministic(t *testing.T) {
	c := DemandRecord{ID: 101, Center: 2, UA: 7, DR1: 5, DR2: 20, Blood: 2}
	k1, ok1 := Tier(testSupplier, c)
	k2, ok2 := Tier(testSupplier, c)
	require.Equal(t, ok1, ok2)
	require.Equal(t, k1, k2)
}

func TestEvaluate(t *testing.T) {
	candidates := []DemandRecord{
		{ID: 100, Center: 2, UA: 5, DR1: 9, DR2: 20, Blood: 2},  // excluded: UA
		{ID: 101, Center: 2, UA: 7, DR1: 5, DR2: 9, Blood: 2},   // tier 0
		{ID: 102, Center: 2, UA: 7, DR1: 5, DR2: 20, Blood: 2},  // tier 1
		{ID: 103, Center: 2, UA: 7, DR1: 20, DR2: 21, Blood: 2}, // tier 2
		{ID: 104, Center: 2, UA: 7, DR1: 5, DR2: 9, Blood: 4},   // excluded: blood
	}

	got := Evaluate(testSupplier, candidates)

	require.Equal(t, map[int64]int{101: 0, 102: 1, 103: 2}, got)
}

func TestEvaluate_EmptyGroup(t *testing.T) {
	require.Empty(t, Evaluate(testSupplier, nil))
}
