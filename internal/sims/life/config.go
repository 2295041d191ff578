package life

import "strconv"

// Config controls the Life simulation dimensions and initial soup.
type Config struct {
	Width   int
	Height  int
	History int
	Rule    string
	Density float64
	Seed    int64

	// Oscillations enables oscillation highlighting.
	Oscillations bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   96,
		Height:  64,
		History: DefaultHistoryLength,
		Rule:    "B3/S23",
		Density: 0.25,
		Seed:    42,

		Oscillations: true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.History = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := ParseRule(v); err == nil {
			c.Rule = v
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["oscillations"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Oscillations = parsed
		}
	}
	return c
}
