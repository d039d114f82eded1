// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crosswalk normalizes a spreadsheet-shaped center distance table
// into the canonical long-format relation consumed by the matcher. Two
// input shapes are accepted: long format (center_from, center_to, distance
// columns under a handful of common header spellings) and a square matrix
// (first column holds origin centers, remaining column headers hold
// destination centers).
package crosswalk

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/someonegg/sdconnect"
)

// Format is the detected input shape.
type Format int

const (
	FormatLong Format = iota
	FormatMatrix
)

func (f Format) String() string {
	if f == FormatMatrix {
		return "matrix"
	}
	return "long"
}

var (
	fromNames = map[string]bool{
		"center_from": true, "from": true, "from_center": true,
		"center_from_id": true, "origin": true,
	}
	toNames = map[string]bool{
		"center_to": true, "to": true, "to_center": true,
		"center_to_id": true, "dest": true, "destination": true,
	}
	distNames = map[string]bool{
		"distance": true, "dist": true, "miles": true, "km": true, "d": true,
	}
)

// ReadFile reads and normalizes a crosswalk CSV.
func ReadFile(path string) ([]sdconnect.CenterDistance, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FormatLong, errors.Wrap(err, "open crosswalk")
	}
	defer f.Close()

	ds, format, err := Read(f)
	if err != nil {
		return nil, format, errors.Wrapf(err, "crosswalk %s", filepath.Base(path))
	}
	return ds, format, nil
}

// Read normalizes a crosswalk table from r. The shape is sniffed from the
// header row: an all-numeric tail means matrix, otherwise the header must
// name (or positionally imply) the three long-format columns.
func Read(r io.Reader) ([]sdconnect.CenterDistance, Format, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, FormatLong, errors.Wrap(err, "read csv")
	}
	if len(rows) == 0 {
		return nil, FormatLong, errors.New("empty crosswalk table")
	}

	header := rows[0]
	if isMatrixHeader(header) {
		ds, err := parseMatrix(rows)
		return ds, FormatMatrix, err
	}
	ds, err := parseLong(rows)
	return ds, FormatLong, err
}

// isMatrixHeader reports whether every header cell after the first parses
// as a center identifier.
func isMatrixHeader(header []string) bool {
	if len(header) < 2 {
		return false
	}
	for _, cell := range header[1:] {
		if _, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64); err != nil {
			return false
		}
	}
	return true
}

func parseLong(rows [][]string) ([]sdconnect.CenterDistance, error) {
	header := rows[0]
	fromCol, toCol, distCol := -1, -1, -1

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case fromCol < 0 && (fromNames[name] || (i == 0 && strings.Contains(name, "from"))):
			fromCol = i
		case toCol < 0 && (toNames[name] || (i == 1 && strings.Contains(name, "to"))):
			toCol = i
		case distCol < 0 && distNames[name]:
			distCol = i
		}
	}
	// Fall back to the first three columns by position whenever any of the
	// canonical columns stays unresolved, as the original spreadsheet
	// exports sometimes carry unhelpful headers.
	if (fromCol < 0 || toCol < 0 || distCol < 0) && len(header) >= 3 {
		fromCol, toCol, distCol = 0, 1, 2
	}
	switch {
	case fromCol < 0:
		return nil, errors.New("missing required column center_from")
	case toCol < 0:
		return nil, errors.New("missing required column center_to")
	case distCol < 0:
		return nil, errors.New("missing required column distance")
	}

	var ds []sdconnect.CenterDistance
	for i, row := range rows[1:] {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		if n := max3(fromCol, toCol, distCol); len(row) <= n {
			return nil, errors.Newf("row %d: expected at least %d columns, got %d", i+2, n+1, len(row))
		}
		from, err := strconv.ParseInt(strings.TrimSpace(row[fromCol]), 10, 64)
		if err != nil {
			return nil, errors.Newf("row %d: invalid center_from %q", i+2, row[fromCol])
		}
		to, err := strconv.ParseInt(strings.TrimSpace(row[toCol]), 10, 64)
		if err != nil {
			return nil, errors.Newf("row %d: invalid center_to %q", i+2, row[toCol])
		}
		dist, err := strconv.ParseFloat(strings.TrimSpace(row[distCol]), 64)
		if err != nil {
			return nil, errors.Newf("row %d: invalid distance %q", i+2, row[distCol])
		}
		ds = append(ds, sdconnect.CenterDistance{From: from, To: to, Distance: dist})
	}
	return ds, nil
}

func parseMatrix(rows [][]string) ([]sdconnect.CenterDistance, error) {
	header := rows[0]
	dests := make([]int64, len(header)-1)
	for j, cell := range header[1:] {
		dests[j], _ = strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
	}

	var ds []sdconnect.CenterDistance
	for i, row := range rows[1:] {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		from, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
		if err != nil {
			return nil, errors.Newf("row %d: invalid origin center %q", i+2, row[0])
		}
		for j := 1; j < len(row) && j <= len(dests); j++ {
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				// No entry means the pair is simply incompatible.
				continue
			}
			dist, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Newf("row %d: invalid distance %q for destination %d", i+2, row[j], dests[j-1])
			}
			ds = append(ds, sdconnect.CenterDistance{From: from, To: dests[j-1], Distance: dist})
		}
	}
	return ds, nil
}

// WriteLong persists the canonical long-format CSV. The file appears
// atomically: content goes to a temp file first and is renamed into place,
// so a failed run leaves no partial output.
func WriteLong(path string, ds []sdconnect.CenterDistance) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".crosswalk-*")
	if err != nil {
		return errors.Wrap(err, "create temp crosswalk")
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write([]string{"center_from", "center_to", "distance"}); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write crosswalk header")
	}
	for _, d := range ds {
		row := []string{
			strconv.FormatInt(d.From, 10),
			strconv.FormatInt(d.To, 10),
			strconv.FormatFloat(d.Distance, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return errors.Wrap(err, "write crosswalk row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "flush crosswalk")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp crosswalk")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "rename crosswalk")
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
