// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crosswalk

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/someonegg/sdconnect"
)

func TestRead_LongCanonical(t *testing.T) {
	in := "center_from,center_to,distance\n1,2,100\n2,1,300.5\n"

	ds, format, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, FormatLong, format)
	require.Equal(t, []sdconnect.CenterDistance{
		{From: 1, To: 2, Distance: 100},
		{From: 2, To: 1, Distance: 300.5},
	}, ds)
}

func TestRead_LongHeaderSynonyms(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"OriginDest", "origin,dest,miles"},
		{"FromTo", "from,to,dist"},
		{"Uppercase", "Center_From,Center_To,Distance"},
		{"Prefixed", "from_center_id,to_center,km"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.header + "\n3,4,42\n"
			ds, format, err := Read(strings.NewReader(in))
			require.NoError(t, err)
			require.Equal(t, FormatLong, format)
			require.Equal(t, []sdconnect.CenterDistance{{From: 3, To: 4, Distance: 42}}, ds)
		})
	}
}

func TestRead_LongPositionalFallback(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"NoneRecognized", "a,b,c"},
		// A partially recognizable header still falls back to the first
		// three columns by position.
		{"DistanceUnrecognized", "from,to,c"},
		{"OnlyDistanceRecognized", "a,b,distance"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.header + "\n1,2,100\n"
			ds, _, err := Read(strings.NewReader(in))
			require.NoError(t, err)
			require.Equal(t, []sdconnect.CenterDistance{{From: 1, To: 2, Distance: 100}}, ds)
		})
	}
}

func TestRead_Matrix(t *testing.T) {
	in := ",1,2,3\n1,0,100,\n2,110,0,250\n3,,260,0\n"

	ds, format, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, FormatMatrix, format)

	// Blank cells are absent pairs, everything else is directional.
	require.Equal(t, []sdconnect.CenterDistance{
		{From: 1, To: 1, Distance: 0},
		{From: 1, To: 2, Distance: 100},
		{From: 2, To: 1, Distance: 110},
		{From: 2, To: 2, Distance: 0},
		{From: 2, To: 3, Distance: 250},
		{From: 3, To: 2, Distance: 260},
		{From: 3, To: 3, Distance: 0},
	}, ds)
}

func TestRead_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, _, err := Read(strings.NewReader(""))
		require.Error(t, err)
	})

	t.Run("TooFewColumns", func(t *testing.T) {
		_, _, err := Read(strings.NewReader("a,b\n1,2\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "missing required column")
	})

	t.Run("BadDistance", func(t *testing.T) {
		_, _, err := Read(strings.NewReader("center_from,center_to,distance\n1,2,far\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "row 2")
	})

	t.Run("BadMatrixOrigin", func(t *testing.T) {
		_, _, err := Read(strings.NewReader(",1,2\nx,10,20\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "origin")
	})
}

func TestWriteLong_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "center_crosswalk.csv")
	want := []sdconnect.CenterDistance{
		{From: 1, To: 2, Distance: 123.25},
		{From: 2, To: 1, Distance: 321},
	}

	require.NoError(t, WriteLong(path, want))

	got, format, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, FormatLong, format)
	require.Equal(t, want, got)
}
