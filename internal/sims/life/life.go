// Package life implements a toroidal Life-like cellular automaton with
// configurable birth and survival counts and per-cell oscillation
// highlighting.
package life

import (
	"maps"
	"strconv"

	"github.com/juju/loggo"

	"lifelab/internal/brush"
	"lifelab/internal/core"
)

var logger = loggo.GetLogger("lifelab.life")

// Sim drives a FiniteGrid under a set of rules.
type Sim struct {
	name       string
	cfg        Config
	grid       *FiniteGrid
	rules      Rules
	generation int
	seed       int64
	display    []uint8
}

// New returns a Sim with the provided dimensions using Conway's rules.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig("life", cfg)
}

// NewWithConfig returns a Sim configured from cfg. An invalid rule string
// falls back to Conway's rules.
func NewWithConfig(name string, cfg Config) *Sim {
	rules, err := ParseRule(cfg.Rule)
	if err != nil {
		logger.Warningf("%v; using B3/S23", err)
		rules = Conway()
	}
	rules.DetectOscillations = cfg.Oscillations
	grid := NewFiniteGrid(cfg.Width, cfg.Height, cfg.History)
	return &Sim{
		name:    name,
		cfg:     cfg,
		grid:    grid,
		rules:   rules,
		seed:    cfg.Seed,
		display: make([]uint8, grid.Size().Cells()),
	}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.grid.Size() }

// Grid exposes the grid for painting and rendering.
func (s *Sim) Grid() *FiniteGrid { return s.grid }

func (s *Sim) Rules() Rules { return s.rules }

// SetRules replaces the rules used from the next step on.
func (s *Sim) SetRules(r Rules) {
	if r != s.rules {
		logger.Infof("%s: rules %v -> %v (oscillations %v)", s.name, s.rules, r, r.DetectOscillations)
	}
	s.rules = r
}

// Seed reports the seed of the last random soup.
func (s *Sim) Seed() int64 { return s.seed }

// Generation reports how many steps ran since the last reset.
func (s *Sim) Generation() int { return s.generation }

// Cells exposes the current generation as 0/1 values.
func (s *Sim) Cells() []uint8 {
	for i, c := range s.grid.Current() {
		if c.Active {
			s.display[i] = 1
		} else {
			s.display[i] = 0
		}
	}
	return s.display
}

// Reset replaces the grid with a fresh random soup. A zero seed uses the
// configured seed.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.grid = NewFiniteGrid(s.cfg.Width, s.cfg.Height, s.cfg.History)
	s.grid.Randomize(core.NewRNG(seed), s.cfg.Density)
	s.generation = 0
	s.seed = seed
	logger.Debugf("%s: reset %dx%d seed=%d density=%.2f", s.name, s.cfg.Width, s.cfg.Height, seed, s.cfg.Density)
}

// Clear replaces the grid with an empty one.
func (s *Sim) Clear() {
	s.grid = NewFiniteGrid(s.cfg.Width, s.cfg.Height, s.cfg.History)
	s.generation = 0
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	Update(s.grid, s.rules)
	s.generation++
}

// Paint forwards a user click to the grid.
func (s *Sim) Paint(x, y int, b *brush.Brush) {
	s.grid.Click(x, y, b)
}

// RegisterPresets adds a sim factory for each preset, replacing any
// existing registration with the same name.
func RegisterPresets(presets []Preset) {
	for _, p := range presets {
		base := map[string]string{
			"rule":         p.Rules.String(),
			"oscillations": strconv.FormatBool(p.Rules.DetectOscillations),
		}
		core.Register(p.Name, func(cfg map[string]string) core.Sim {
			m := maps.Clone(base)
			maps.Copy(m, cfg)
			return NewWithConfig(p.Name, FromMap(m))
		})
	}
}

func init() {
	RegisterPresets(Presets())
}
