// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdconnect

import (
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config controls one connection-building pass. Threshold is consumed when
// the PairSet is built and is carried here so one structure describes the
// whole run.
type Config struct {
	// Threshold is the strict distance cutoff for center compatibility.
	Threshold float64
	// RowLimit, when positive, caps the pass to the first RowLimit supply
	// records. A throttling affordance, not a correctness feature.
	RowLimit int
	// ProgressInterval, when positive, emits a progress log line after
	// every ProgressInterval processed supply records.
	ProgressInterval int
	// Workers is the number of parallel supply partitions; values below 1
	// mean serial. Output is identical regardless of worker count.
	Workers int
}

// DefaultThreshold is the distance cutoff used when none is configured.
const DefaultThreshold = 250

// Builder walks the supply set against the demand index and accumulates
// tier-partitioned connection lists. The indexes it reads are immutable, so
// a Builder is safe for concurrent internal partitioning.
type Builder struct {
	cfg    Config
	logger *zap.Logger
}

// NewBuilder returns a Builder. A nil logger disables progress reporting.
func NewBuilder(cfg Config, logger *zap.Logger) *Builder {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{cfg: cfg, logger: logger}
}

// Build computes the three connection lists for supply against demand.
// Supply records are visited in input order; for each one, entire demand
// centers are skipped via the PairSet before any individual candidate is
// touched. The three lists preserve discovery order: supply order, then
// center order, then within-group order.
func (b *Builder) Build(supply []SupplyRecord, demand DemandIndex, pairs PairSet) ConnectionLists {
	if b.cfg.RowLimit > 0 && b.cfg.RowLimit < len(supply) {
		supply = supply[:b.cfg.RowLimit]
	}
	total := len(supply)
	if total == 0 || demand.Len() == 0 {
		return ConnectionLists{}
	}

	if b.cfg.Workers <= 1 {
		var done int64
		return b.buildChunk(supply, demand, pairs, total, &done)
	}
	return b.buildParallel(supply, demand, pairs, total)
}

// buildChunk is the serial pass over one contiguous supply slice. done is
// the shared processed-row counter feeding progress reports.
func (b *Builder) buildChunk(supply []SupplyRecord, demand DemandIndex, pairs PairSet, total int, done *int64) ConnectionLists {
	var lists ConnectionLists
	centers := demand.Centers()

	for i := range supply {
		s := &supply[i]
		for _, center := range centers {
			if !pairs.Contains(s.Center, center) {
				continue
			}
			for _, c := range demand.At(center) {
				if k, ok := Tier(*s, c); ok {
					lists.add(k, Connection{SupplierID: s.ID, ConsumerID: c.ID})
				}
			}
		}

		if b.cfg.ProgressInterval > 0 {
			if n := atomic.AddInt64(done, 1); n%int64(b.cfg.ProgressInterval) == 0 {
				b.logger.Info("supply progress",
					zap.Int64("processed", n),
					zap.Int("total", total))
			}
		}
	}

	return lists
}

// buildParallel splits the supply slice into contiguous chunks, runs
// buildChunk per worker, and concatenates the chunk outputs in partition
// order so the result matches the serial pass exactly.
func (b *Builder) buildParallel(supply []SupplyRecord, demand DemandIndex, pairs PairSet, total int) ConnectionLists {
	workers := b.cfg.Workers
	if workers > total {
		workers = total
	}

	parts := make([]ConnectionLists, workers)
	chunk := (total + workers - 1) / workers

	var done int64
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= total {
			// Rounded-up chunks can exhaust the supply before the last
			// worker; the remaining partitions are empty.
			break
		}
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		w := w
		sub := supply[lo:hi]
		g.Go(func() error {
			parts[w] = b.buildChunk(sub, demand, pairs, total, &done)
			return nil
		})
	}
	// Workers never fail; Wait only synchronizes.
	_ = g.Wait()

	var lists ConnectionLists
	for _, p := range parts {
		lists.extend(p)
	}
	return lists
}
