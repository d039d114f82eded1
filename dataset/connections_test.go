// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/someonegg/sdconnect"
)

var testLists = sdconnect.ConnectionLists{
	K0: []sdconnect.Connection{{SupplierID: 1, ConsumerID: 101}},
	K1: []sdconnect.Connection{{SupplierID: 1, ConsumerID: 102}, {SupplierID: 2, ConsumerID: 101}},
	K2: nil,
}

func TestWriteConnections(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteConnections(dir, testLists))

	k0, err := os.ReadFile(filepath.Join(dir, "connections_k0.csv"))
	require.NoError(t, err)
	require.Equal(t, "supplier_id,consumer_id\n1,101\n", string(k0))

	k1, err := os.ReadFile(filepath.Join(dir, "connections_k1.csv"))
	require.NoError(t, err)
	require.Equal(t, "supplier_id,consumer_id\n1,102\n2,101\n", string(k1))

	// An empty tier still produces its file, header only.
	k2, err := os.ReadFile(filepath.Join(dir, "connections_k2.csv"))
	require.NoError(t, err)
	require.Equal(t, "supplier_id,consumer_id\n", string(k2))
}

func TestWriteConnectionsSingle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections.csv")
	require.NoError(t, WriteConnectionsSingle(path, testLists))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		"supplier_id,consumer_id,k\n1,101,0\n1,102,1\n2,101,1\n",
		string(data))
}

func TestWriteConnections_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, WriteConnections(dir, testLists))

	_, err := os.Stat(filepath.Join(dir, "connections_k0.csv"))
	require.NoError(t, err)
}
