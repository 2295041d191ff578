package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/juju/gnuflag"
	"golang.org/x/sync/errgroup"
	errgo "gopkg.in/errgo.v1"

	"lifelab/internal/app"
	"lifelab/internal/sims/life"
)

type sweepResult struct {
	name        string
	rule        string
	population  int
	oscillating int
}

func sweepCmd(ctx context.Context, stdout io.Writer, args []string) error {
	fs := gnuflag.NewFlagSet("sweep", gnuflag.ContinueOnError)
	cfg := app.NewConfig()
	bindWorld(fs, cfg)
	gens := fs.Int("n", 200, "generations to run per preset")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	if err := parse(fs, args); err != nil {
		return err
	}

	var names []string
	for _, p := range life.Presets() {
		names = append(names, p.Name)
	}
	if cfg.Presets != "" {
		data, err := os.ReadFile(cfg.Presets)
		if err != nil {
			return errgo.Notef(err, "cannot read presets")
		}
		extra, err := life.LoadPresets(data)
		if err != nil {
			return errgo.Mask(err)
		}
		// Registration mutates the shared registry, so it happens before
		// any worker starts.
		life.RegisterPresets(extra)
		for _, p := range extra {
			names = append(names, p.Name)
		}
		cfg.Presets = ""
	}
	if fs.NArg() > 0 {
		names = fs.Args()
	}

	fmt.Fprintf(stdout, "Sweeping %d presets (%d workers, %s generations, %dx%d)\n",
		len(names), *workers, humanize.Comma(int64(*gens)), cfg.Width, cfg.Height)
	start := time.Now()
	results, err := sweep(ctx, cfg, names, *gens, *workers)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	for i, res := range results {
		fmt.Fprintf(stdout, "%2d) %-12s %-14s alive %s, oscillating %s\n",
			i+1, res.name, res.rule, humanize.Comma(int64(res.population)), humanize.Comma(int64(res.oscillating)))
	}
	logger.Infof("sweep finished in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// sweep runs each named sim from the same soup for gens generations and
// returns the results ordered by final population, largest first.
func sweep(ctx context.Context, cfg *app.Config, names []string, gens, workers int) ([]sweepResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]sweepResult, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			c := *cfg
			c.Sim = name
			sim, err := app.NewSim(&c)
			if err != nil {
				return errgo.Mask(err)
			}
			for range gens {
				if err := ctx.Err(); err != nil {
					return err
				}
				sim.Step()
			}
			grid := sim.Grid()
			results[i] = sweepResult{
				name:        name,
				rule:        sim.Rules().String(),
				population:  grid.Population(),
				oscillating: grid.Oscillating(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].population != results[j].population {
			return results[i].population > results[j].population
		}
		return results[i].name < results[j].name
	})
	return results, nil
}
