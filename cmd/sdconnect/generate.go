// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/someonegg/sdconnect/crosswalk"
	"github.com/someonegg/sdconnect/dataset"
	"github.com/someonegg/sdconnect/gendata"
	"github.com/someonegg/sdconnect/logging"
)

var generateCmd = &cli.Command{
	Name:    "generate",
	Usage:   "Generate synthetic supply, demand and crosswalk tables",
	Aliases: []string{"g"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "outdir",
			Value: ".",
			Usage: "directory to write supply.csv, demand.csv and center_crosswalk.csv",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed for reproducibility (0 = clock)",
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "TOML profile overriding the default distributions",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "debug logging",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doGenerate(ctx.String("outdir"), ctx.String("profile"),
			ctx.Int64("seed"), ctx.Bool("verbose"))
	},
}

func doGenerate(outdir, profile string, seed int64, verbose bool) error {
	logger := logging.New(verbose)
	defer logger.Sync()

	prof := gendata.DefaultProfile()
	if profile != "" {
		var err error
		prof, err = gendata.LoadProfile(profile)
		if err != nil {
			return err
		}
	}
	if seed != 0 {
		prof.Seed = seed
	}

	gen, err := gendata.New(prof)
	if err != nil {
		return err
	}

	supply := gen.Supply()
	demand := gen.Demand()
	distances := gen.Crosswalk()

	if err := dataset.WriteSupply(filepath.Join(outdir, "supply.csv"), supply); err != nil {
		return err
	}
	if err := dataset.WriteDemand(filepath.Join(outdir, "demand.csv"), demand); err != nil {
		return err
	}
	if err := crosswalk.WriteLong(filepath.Join(outdir, "center_crosswalk.csv"), distances); err != nil {
		return err
	}

	logger.Info("generated tables",
		zap.String("outdir", outdir),
		zap.Int("supply", len(supply)),
		zap.Int("demand", len(demand)),
		zap.Int("crosswalk", len(distances)))
	return nil
}
