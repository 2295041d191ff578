package app

import (
	"strconv"

	"github.com/juju/gnuflag"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Zoom    float64
	GPS     int
	TPS     int
	Seed    int64
	Density float64
	Rule    string
	Pattern string
	Presets string
	HUD     int
	Log     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Width:   96,
		Height:  64,
		Zoom:    10,
		GPS:     15,
		TPS:     60,
		Seed:    42,
		Density: 0.25,
		HUD:     200,
		Log:     "<root>=INFO",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *gnuflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "rule preset to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Zoom, "zoom", c.Zoom, "initial pixels per cell")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live cell density")
	fs.StringVar(&c.Rule, "rule", c.Rule, "override the preset rule (B/S notation)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "RLE or plaintext pattern to load instead of a random soup")
	fs.StringVar(&c.Presets, "presets", c.Presets, "YAML file with extra rule presets")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.Log, "log", c.Log, "loggo logging configuration")
}

// SimConfig returns the factory configuration map for the selected sim.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
	if c.Rule != "" {
		m["rule"] = c.Rule
	}
	return m
}
