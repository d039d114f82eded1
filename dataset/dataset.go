// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads the supply and demand relations from CSV and writes
// the connection lists back out. A required column missing from an input
// file is fatal and halts the run before matching begins; surplus columns
// are ignored, so the files may carry extra generator fields.
package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/someonegg/sdconnect"
)

const dateLayout = "2006-01-02"

// Column names of the supply relation.
const (
	ColSupplierID = "Supplier_ID"
	ColConsumerID = "Consumer_ID"
	ColCenter     = "Transplant_Center"
	ColOfferDate  = "Offer_date"
	ColWLStart    = "WL_start_date"
	ColWLEnd      = "WL_end_date"
	ColDR1        = "DR#1"
	ColDR2        = "DR#2"
	ColUA         = "UA"
	ColBlood      = "Blood_type"
)

// header maps column names to positions, case-sensitively matching the
// canonical generator headers.
type header map[string]int

func readTable(path string) (header, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open")
	}
	defer f.Close()

	cr := csv.NewReader(f)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "read csv")
	}
	if len(rows) == 0 {
		return nil, nil, errors.New("missing header row")
	}

	h := make(header, len(rows[0]))
	for i, name := range rows[0] {
		h[strings.TrimSpace(name)] = i
	}
	return h, rows[1:], nil
}

func (h header) require(cols ...string) error {
	for _, c := range cols {
		if _, ok := h[c]; !ok {
			return errors.Newf("missing required column %q", c)
		}
	}
	return nil
}

func (h header) int64At(row []string, col string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(row[h[col]]), 10, 64)
	if err != nil {
		return 0, errors.Newf("invalid %s %q", col, row[h[col]])
	}
	return v, nil
}

func (h header) int32At(row []string, col string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(row[h[col]]), 10, 32)
	if err != nil {
		return 0, errors.Newf("invalid %s %q", col, row[h[col]])
	}
	return int32(v), nil
}

func (h header) dateAt(row []string, col string) (time.Time, error) {
	v, err := time.Parse(dateLayout, strings.TrimSpace(row[h[col]]))
	if err != nil {
		return time.Time{}, errors.Newf("invalid %s %q (expected YYYY-MM-DD)", col, row[h[col]])
	}
	return v, nil
}

// LoadSupply reads the supply relation.
func LoadSupply(path string) ([]sdconnect.SupplyRecord, error) {
	h, rows, err := readTable(path)
	if err != nil {
		return nil, errors.Wrapf(err, "supply %s", filepath.Base(path))
	}
	if err := h.require(ColSupplierID, ColCenter, ColOfferDate, ColDR1, ColDR2, ColBlood); err != nil {
		return nil, errors.Wrapf(err, "supply %s", filepath.Base(path))
	}

	supply := make([]sdconnect.SupplyRecord, 0, len(rows))
	for i, row := range rows {
		s, err := parseSupplyRow(h, row)
		if err != nil {
			return nil, errors.Wrapf(err, "supply %s row %d", filepath.Base(path), i+2)
		}
		supply = append(supply, s)
	}
	return supply, nil
}

func parseSupplyRow(h header, row []string) (sdconnect.SupplyRecord, error) {
	var s sdconnect.SupplyRecord
	var err error

	if s.ID, err = h.int64At(row, ColSupplierID); err != nil {
		return s, err
	}
	if s.Center, err = h.int64At(row, ColCenter); err != nil {
		return s, err
	}
	if s.OfferDate, err = h.dateAt(row, ColOfferDate); err != nil {
		return s, err
	}
	if s.DR1, err = h.int32At(row, ColDR1); err != nil {
		return s, err
	}
	if s.DR2, err = h.int32At(row, ColDR2); err != nil {
		return s, err
	}
	if s.Blood, err = h.int32At(row, ColBlood); err != nil {
		return s, err
	}
	return s, nil
}

// LoadDemand reads the demand relation.
func LoadDemand(path string) ([]sdconnect.DemandRecord, error) {
	h, rows, err := readTable(path)
	if err != nil {
		return nil, errors.Wrapf(err, "demand %s", filepath.Base(path))
	}
	if err := h.require(ColConsumerID, ColCenter, ColWLStart, ColWLEnd, ColDR1, ColDR2, ColUA, ColBlood); err != nil {
		return nil, errors.Wrapf(err, "demand %s", filepath.Base(path))
	}

	demand := make([]sdconnect.DemandRecord, 0, len(rows))
	for i, row := range rows {
		d, err := parseDemandRow(h, row)
		if err != nil {
			return nil, errors.Wrapf(err, "demand %s row %d", filepath.Base(path), i+2)
		}
		demand = append(demand, d)
	}
	return demand, nil
}

func parseDemandRow(h header, row []string) (sdconnect.DemandRecord, error) {
	var d sdconnect.DemandRecord
	var err error

	if d.ID, err = h.int64At(row, ColConsumerID); err != nil {
		return d, err
	}
	if d.Center, err = h.int64At(row, ColCenter); err != nil {
		return d, err
	}
	if d.WLStart, err = h.dateAt(row, ColWLStart); err != nil {
		return d, err
	}
	if d.WLEnd, err = h.dateAt(row, ColWLEnd); err != nil {
		return d, err
	}
	if d.DR1, err = h.int32At(row, ColDR1); err != nil {
		return d, err
	}
	if d.DR2, err = h.int32At(row, ColDR2); err != nil {
		return d, err
	}
	if d.UA, err = h.int32At(row, ColUA); err != nil {
		return d, err
	}
	if d.Blood, err = h.int32At(row, ColBlood); err != nil {
		return d, err
	}
	return d, nil
}
