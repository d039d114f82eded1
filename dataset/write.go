// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/someonegg/sdconnect"
)

// WriteSupply writes the supply relation with the canonical header.
func WriteSupply(path string, supply []sdconnect.SupplyRecord) error {
	header := []string{ColSupplierID, ColCenter, ColOfferDate, ColDR1, ColDR2, ColBlood}
	err := writeCSV(path, header, func(w *csv.Writer) error {
		for _, s := range supply {
			row := []string{
				strconv.FormatInt(s.ID, 10),
				strconv.FormatInt(s.Center, 10),
				s.OfferDate.Format(dateLayout),
				strconv.FormatInt(int64(s.DR1), 10),
				strconv.FormatInt(int64(s.DR2), 10),
				strconv.FormatInt(int64(s.Blood), 10),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(err, "write supply")
}

// WriteDemand writes the demand relation with the canonical header.
func WriteDemand(path string, demand []sdconnect.DemandRecord) error {
	header := []string{ColConsumerID, ColCenter, ColWLStart, ColWLEnd, ColDR1, ColDR2, ColUA, ColBlood}
	err := writeCSV(path, header, func(w *csv.Writer) error {
		for _, d := range demand {
			row := []string{
				strconv.FormatInt(d.ID, 10),
				strconv.FormatInt(d.Center, 10),
				d.WLStart.Format(dateLayout),
				d.WLEnd.Format(dateLayout),
				strconv.FormatInt(int64(d.DR1), 10),
				strconv.FormatInt(int64(d.DR2), 10),
				strconv.FormatInt(int64(d.UA), 10),
				strconv.FormatInt(int64(d.Blood), 10),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(err, "write demand")
}
