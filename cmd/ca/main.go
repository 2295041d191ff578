//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"lifelab/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("lifelab.cmd.ca")

func main() {
	cfg := app.NewConfig()
	cfg.Bind(gnuflag.CommandLine)
	gnuflag.Parse(true)

	if err := loggo.ConfigureLoggers(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log: %v\n", err)
		os.Exit(2)
	}

	sim, err := app.NewSim(cfg)
	if err != nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}

	game := app.New(sim, cfg)
	size := sim.Size()
	zoom := int(cfg.Zoom)

	ebiten.SetWindowTitle(fmt.Sprintf("lifelab: %s %s", sim.Name(), sim.Rules()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*zoom+max(cfg.HUD, 0), size.H*zoom)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}
}
