package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/juju/gnuflag"
	errgo "gopkg.in/errgo.v1"

	"lifelab/internal/app"
)

func runCmd(ctx context.Context, stdout io.Writer, args []string) error {
	fs := gnuflag.NewFlagSet("run", gnuflag.ContinueOnError)
	cfg := app.NewConfig()
	bindWorld(fs, cfg)
	fs.StringVar(&cfg.Sim, "sim", cfg.Sim, "rule preset to run")
	fs.StringVar(&cfg.Rule, "rule", cfg.Rule, "override the preset rule (B/S notation)")
	fs.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "RLE or plaintext pattern to start from")
	gens := fs.Int("n", 100, "generations to run")
	every := fs.Int("every", 0, "report every this many generations (0 reports only the last)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *gens < 0 {
		return errgo.Newf("negative generation count %d", *gens)
	}

	sim, err := app.NewSim(cfg)
	if err != nil {
		return errgo.Mask(err)
	}
	fmt.Fprintf(stdout, "%s %s on %dx%d\n", sim.Name(), sim.Rules(), sim.Size().W, sim.Size().H)
	report(stdout, sim)

	start := time.Now()
	for i := 1; i <= *gens; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		sim.Step()
		if i == *gens || (*every > 0 && i%*every == 0) {
			report(stdout, sim)
		}
	}
	if elapsed := time.Since(start); *gens > 0 && elapsed > 0 {
		updates := float64(sim.Size().Cells()) * float64(*gens)
		logger.Infof("%s generations in %v (%s)", humanize.Comma(int64(*gens)), elapsed.Round(time.Millisecond), humanize.SI(updates/elapsed.Seconds(), "cells/s"))
	}
	return nil
}

func report(w io.Writer, sim app.Sim) {
	grid := sim.Grid()
	fmt.Fprintf(w, "gen %s: alive %s, oscillating %s\n",
		humanize.Comma(int64(sim.Generation())),
		humanize.Comma(int64(grid.Population())),
		humanize.Comma(int64(grid.Oscillating())))
}
