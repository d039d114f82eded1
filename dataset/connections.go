// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/someonegg/sdconnect"
)

// WriteConnections writes one CSV per tier (connections_k0.csv .. k2.csv,
// header supplier_id,consumer_id) under dir. Files appear atomically via
// temp-file rename; a failed run leaves no partial output behind.
func WriteConnections(dir string, lists sdconnect.ConnectionLists) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	for k := 0; k <= 2; k++ {
		path := filepath.Join(dir, fmt.Sprintf("connections_k%d.csv", k))
		err := writeCSV(path, []string{"supplier_id", "consumer_id"}, func(w *csv.Writer) error {
			for _, c := range lists.ByTier(k) {
				if err := w.Write(connRow(c)); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "connections k=%d", k)
		}
	}
	return nil
}

// WriteConnectionsSingle writes one combined CSV with an explicit k column.
// Pair membership is identical to the three-file layout; the representation
// is purely presentational.
func WriteConnectionsSingle(path string, lists sdconnect.ConnectionLists) error {
	err := writeCSV(path, []string{"supplier_id", "consumer_id", "k"}, func(w *csv.Writer) error {
		for k := 0; k <= 2; k++ {
			ks := strconv.Itoa(k)
			for _, c := range lists.ByTier(k) {
				if err := w.Write(append(connRow(c), ks)); err != nil {
					return err
				}
			}
		}
		return nil
	})
	return errors.Wrap(err, "connections single file")
}

func connRow(c sdconnect.Connection) []string {
	return []string{
		strconv.FormatInt(c.SupplierID, 10),
		strconv.FormatInt(c.ConsumerID, 10),
	}
}

func writeCSV(path string, header []string, body func(*csv.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".conn-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write header")
	}
	if err := body(w); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write rows")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "flush")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "rename into place")
}
