package app

import (
	"os"
	"strings"

	"github.com/juju/loggo"
	errgo "gopkg.in/errgo.v1"

	"lifelab/internal/brush"
	"lifelab/internal/core"
	"lifelab/internal/sims/life"
)

var logger = loggo.GetLogger("lifelab.app")

// NewSim builds the simulation described by cfg. Extra presets are
// registered first, so cfg.Sim may name one of them. With a pattern the grid
// starts empty and the pattern is stamped in the middle; otherwise it starts
// from a random soup.
func NewSim(cfg *Config) (Sim, error) {
	if cfg.Presets != "" {
		data, err := os.ReadFile(cfg.Presets)
		if err != nil {
			return nil, errgo.Notef(err, "cannot read presets")
		}
		presets, err := life.LoadPresets(data)
		if err != nil {
			return nil, errgo.Mask(err)
		}
		life.RegisterPresets(presets)
		logger.Infof("registered %d presets from %s", len(presets), cfg.Presets)
	}

	if cfg.Rule != "" {
		if _, err := life.ParseRule(cfg.Rule); err != nil {
			return nil, errgo.Mask(err, errgo.Is(life.ErrBadRule))
		}
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, errgo.Newf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}
	sim, ok := factory(cfg.SimConfig()).(Sim)
	if !ok {
		return nil, errgo.Newf("sim %q cannot be painted", cfg.Sim)
	}

	if cfg.Pattern == "" {
		sim.Reset(cfg.Seed)
		return sim, nil
	}
	b, rule, err := brush.LoadFile(cfg.Pattern)
	if err != nil {
		return nil, errgo.Mask(err)
	}
	if rule != "" && cfg.Rule == "" {
		r, err := life.ParseRule(rule)
		if err != nil {
			return nil, errgo.Notef(err, "pattern %s", cfg.Pattern)
		}
		sim.SetRules(r.WithOscillations(sim.Rules().DetectOscillations))
	}
	sim.Clear()
	size := sim.Size()
	sim.Grid().Stamp((size.W-b.Width())/2, (size.H-b.Height())/2, b)
	logger.Infof("loaded pattern %s (%dx%d)", b.Name, b.Width(), b.Height())
	return sim, nil
}
