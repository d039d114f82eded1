// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/someonegg/sdconnect"
	"github.com/someonegg/sdconnect/crosswalk"
	"github.com/someonegg/sdconnect/dataset"
	"github.com/someonegg/sdconnect/logging"
)

var buildCmd = &cli.Command{
	Name:    "build",
	Usage:   "Build the tier-partitioned connection lists",
	Aliases: []string{"b"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "datadir",
			Value: ".",
			Usage: "directory containing supply.csv, demand.csv and the crosswalk",
		},
		&cli.StringFlag{
			Name:  "crosswalk",
			Value: "center_crosswalk.csv",
			Usage: "crosswalk file name inside datadir (long or matrix shaped)",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "output directory for connection CSVs (default: datadir)",
		},
		&cli.Float64Flag{
			Name:  "max-distance",
			Value: sdconnect.DefaultThreshold,
			Usage: "strict center distance cutoff",
		},
		&cli.IntFlag{
			Name:  "max-supply",
			Usage: "limit supply rows (for testing); 0 means all",
		},
		&cli.IntFlag{
			Name:  "progress",
			Usage: "log progress every N supply rows (0=off)",
		},
		&cli.IntFlag{
			Name:  "workers",
			Value: 1,
			Usage: "parallel supply partitions",
		},
		&cli.BoolFlag{
			Name:  "single-file",
			Usage: "write one connections.csv with a k column instead of three files",
		},
		&cli.BoolFlag{
			Name:  "no-csv",
			Usage: "do not save the normalized crosswalk CSV",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "debug logging",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.Float64("max-distance") <= 0 {
			return errors.New("invalid max-distance")
		}
		if ctx.Int("max-supply") < 0 {
			return errors.New("invalid max-supply")
		}
		datadir := ctx.String("datadir")
		out := ctx.String("out")
		if out == "" {
			out = datadir
		}
		return doBuild(buildOptions{
			datadir:    datadir,
			crosswalk:  ctx.String("crosswalk"),
			out:        out,
			threshold:  ctx.Float64("max-distance"),
			rowLimit:   ctx.Int("max-supply"),
			progress:   ctx.Int("progress"),
			workers:    ctx.Int("workers"),
			singleFile: ctx.Bool("single-file"),
			saveCSV:    !ctx.Bool("no-csv"),
			verbose:    ctx.Bool("verbose"),
		})
	},
}

type buildOptions struct {
	datadir    string
	crosswalk  string
	out        string
	threshold  float64
	rowLimit   int
	progress   int
	workers    int
	singleFile bool
	saveCSV    bool
	verbose    bool
}

func doBuild(opt buildOptions) error {
	logger := logging.New(opt.verbose)
	defer logger.Sync()

	cwPath := filepath.Join(opt.datadir, opt.crosswalk)
	distances, format, err := crosswalk.ReadFile(cwPath)
	if err != nil {
		return err
	}
	if format == crosswalk.FormatMatrix && opt.saveCSV {
		longPath := filepath.Join(opt.datadir, "center_crosswalk.csv")
		if longPath != cwPath {
			if err := crosswalk.WriteLong(longPath, distances); err != nil {
				return err
			}
			logger.Debug("saved normalized crosswalk", zap.String("path", longPath))
		}
	}

	pairs := sdconnect.NewPairSet(distances, opt.threshold)
	logger.Info("loaded crosswalk",
		zap.Int("rows", len(distances)),
		zap.Int("compatible_pairs", pairs.Len()),
		zap.Float64("max_distance", opt.threshold))

	supply, err := dataset.LoadSupply(filepath.Join(opt.datadir, "supply.csv"))
	if err != nil {
		return err
	}
	demand, err := dataset.LoadDemand(filepath.Join(opt.datadir, "demand.csv"))
	if err != nil {
		return err
	}
	logger.Info("loaded relations",
		zap.Int("supply", len(supply)),
		zap.Int("demand", len(demand)))

	index := sdconnect.NewDemandIndex(demand)
	builder := sdconnect.NewBuilder(sdconnect.Config{
		Threshold:        opt.threshold,
		RowLimit:         opt.rowLimit,
		ProgressInterval: opt.progress,
		Workers:          opt.workers,
	}, logger)

	start := time.Now()
	lists := builder.Build(supply, index, pairs)
	logger.Info("built connections",
		zap.Int("k0", len(lists.K0)),
		zap.Int("k1", len(lists.K1)),
		zap.Int("k2", len(lists.K2)),
		zap.Duration("elapsed", time.Since(start)))

	if opt.singleFile {
		return dataset.WriteConnectionsSingle(filepath.Join(opt.out, "connections.csv"), lists)
	}
	return dataset.WriteConnections(opt.out, lists)
}
