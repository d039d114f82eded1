// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdconnect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemandIndex_Grouping(t *testing.T) {
	demand := []DemandRecord{
		{ID: 10, Center: 2},
		{ID: 11, Center: 1},
		{ID: 12, Center: 2},
		{ID: 13, Center: 3},
	}

	x := NewDemandIndex(demand)

	require.Equal(t, []int64{1, 2, 3}, x.Centers())
	require.Equal(t, 4, x.Len())

	// Within a group the input order survives.
	group := x.At(2)
	require.Len(t, group, 2)
	require.Equal(t, int64(10), group[0].ID)
	require.Equal(t, int64(12), group[1].ID)

	require.Nil(t, x.At(99))
}

func TestDemandIndex_Empty(t *testing.T) {
	x := NewDemandIndex(nil)

	require.Empty(t, x.Centers())
	require.Equal(t, 0, x.Len())
	require.Nil(t, x.At(1))
}
