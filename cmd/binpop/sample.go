/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/popsynth/binpop/config"
	"github.com/popsynth/binpop/independent"
	"github.com/popsynth/binpop/population"
	"github.com/popsynth/binpop/registry"
	"github.com/popsynth/binpop/sample"
	"github.com/popsynth/binpop/store"
	"github.com/popsynth/binpop/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw populations and write them to SQLite",
	Long: `Draw one or more independent populations.

Settings are read from the defaults, then the --config file, then
BINPOP_* environment variables, then the flags below.`,
	Example: `  binpop sample --final-kstar1 13,14 --final-kstar2 13,14 --size 100000 -o bns.db
  BINPOP_SFH_MODEL=burst binpop sample -c galaxy.yaml --populations 8 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

var samplersCmd = &cobra.Command{
	Use:   "samplers",
	Short: "List the available samplers and their parameters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, name := range registry.Names() {
			e, err := registry.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Usage)
		}
		return w.Flush()
	},
}

func init() {
	f := sampleCmd.Flags()
	f.StringP("config", "c", "", "YAML config file")
	f.StringP("out", "o", "", "SQLite file to write populations to")
	f.Int64("seed", 0, "Seed of the random streams (0 picks one)")
	f.Int("populations", 0, "Number of independent populations")
	f.Int("workers", 0, "Populations drawn at the same time (0 = all)")
	f.Int("size", 0, "Primaries drawn per population")
	f.IntSlice("final-kstar1", nil, "Final stellar types of the primary")
	f.IntSlice("final-kstar2", nil, "Final stellar types of the secondary")
	f.String("primary-model", "", "Primary mass model (kroupa93, salpeter55)")
	f.String("ecc-model", "", "Eccentricity model (thermal, uniform)")
	f.String("sfh-model", "", "Star formation history (const, burst, delta_burst)")
	f.String("binary-model", "", "Binary fraction model (half, vanHaaften)")
	f.Float64("component-age", 0, "Age of the Galactic component [Myr]")
	f.Float64("metallicity", 0, "Metallicity of the population")
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	var err error
	set := func(name string, apply func() error) {
		if err == nil && f.Changed(name) {
			err = errors.Wrapf(apply(), "flag --%s", name)
		}
	}

	set("out", func() (e error) { cfg.Output, e = f.GetString("out"); return })
	set("seed", func() (e error) { cfg.Seed, e = f.GetInt64("seed"); return })
	set("populations", func() (e error) { cfg.Populations, e = f.GetInt("populations"); return })
	set("workers", func() (e error) { cfg.Workers, e = f.GetInt("workers"); return })
	set("size", func() (e error) { cfg.Size, e = f.GetInt("size"); return })
	set("final-kstar1", func() (e error) { cfg.FinalKstar1, e = f.GetIntSlice("final-kstar1"); return })
	set("final-kstar2", func() (e error) { cfg.FinalKstar2, e = f.GetIntSlice("final-kstar2"); return })
	set("primary-model", func() (e error) { cfg.PrimaryModel, e = f.GetString("primary-model"); return })
	set("ecc-model", func() (e error) { cfg.EccModel, e = f.GetString("ecc-model"); return })
	set("sfh-model", func() (e error) { cfg.SFHModel, e = f.GetString("sfh-model"); return })
	set("binary-model", func() (e error) { cfg.BinaryModel, e = f.GetString("binary-model"); return })
	set("component-age", func() (e error) { cfg.ComponentAge, e = f.GetFloat64("component-age"); return })
	set("metallicity", func() (e error) { cfg.Metallicity, e = f.GetFloat64("metallicity"); return })
	return err
}

func runSample(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logger
	if log == nil {
		log = zap.NewNop()
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if cfg.Seed == 0 {
		if cfg.Seed, err = sample.NewSeed(); err != nil {
			return err
		}
		log.Info("no seed given, picked one", zap.Int64("seed", cfg.Seed))
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}
	var samplerParams any = params
	if cfg.Sampler == independent.Name {
		samplerParams = independent.Job{Params: params, Retry: cfg.RetryPolicy()}
	}

	start := time.Now()
	pops, err := population.Run(ctx, population.Request{
		Sampler: cfg.Sampler,
		Params:  samplerParams,
		Count:   cfg.Populations,
		Seed:    cfg.Seed,
		Workers: cfg.Workers,
	}, log)
	if err != nil {
		return err
	}
	log.Info("sampling finished",
		zap.Int("populations", len(pops)),
		zap.Duration("elapsed", time.Since(start)))

	var ids []int64
	if cfg.Output != "" {
		if ids, err = save(cmd, cfg, pops); err != nil {
			return err
		}
	}
	return printSummary(cmd.OutOrStdout(), cfg, pops, ids)
}

func save(cmd *cobra.Command, cfg config.Config, pops []*table.Population) ([]int64, error) {
	ctx := cmd.Context()
	st, err := store.Open(ctx, cfg.Output)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	ids := make([]int64, len(pops))
	for i, pop := range pops {
		meta := store.Meta{Sampler: cfg.Sampler, Seed: cfg.Seed, Index: i}
		if ids[i], err = st.SavePopulation(ctx, meta, pop); err != nil {
			return nil, errors.Wrapf(err, "save population %d", i)
		}
	}
	return ids, nil
}

func printSummary(out io.Writer, cfg config.Config, pops []*table.Population, ids []int64) error {
	fmt.Fprintf(out, "sampler %s, seed %d\n", cfg.Sampler, cfg.Seed)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "population\tid\tbinaries\tsampled mass [Msun]\t")
	for i, pop := range pops {
		id := "-"
		if ids != nil {
			id = fmt.Sprint(ids[i])
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%.4g\t\n", i, id, pop.Binaries.Len(), pop.SampledMass)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if cfg.Output != "" {
		fmt.Fprintf(out, "written to %s\n", cfg.Output)
	}
	return nil
}
