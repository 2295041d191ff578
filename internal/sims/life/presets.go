package life

import (
	"sort"

	errgo "gopkg.in/errgo.v1"
	yaml "gopkg.in/yaml.v2"
)

// Preset is a named rule.
type Preset struct {
	Name  string
	Rules Rules
}

var builtinPresets = map[string]string{
	"life":       "B3/S23",
	"highlife":   "B36/S23",
	"seeds":      "B2/S",
	"daynight":   "B3678/S34678",
	"maze":       "B3/S12345",
	"replicator": "B1357/S1357",
	"2x2":        "B36/S125",
	"morley":     "B368/S245",
	"diamoeba":   "B35678/S5678",
}

// Presets returns the built-in rule presets ordered by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(builtinPresets))
	for name, rule := range builtinPresets {
		out = append(out, Preset{Name: name, Rules: MustParseRule(rule)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupPreset returns the built-in preset with the given name.
func LookupPreset(name string) (Rules, bool) {
	rule, ok := builtinPresets[name]
	if !ok {
		return Rules{}, false
	}
	return MustParseRule(rule), true
}

type presetFile struct {
	Presets []struct {
		Name         string `yaml:"name"`
		Rule         string `yaml:"rule"`
		Oscillations *bool  `yaml:"oscillations"`
	} `yaml:"presets"`
}

// LoadPresets parses rule presets from YAML of the form
//
//	presets:
//	  - name: highlife
//	    rule: B36/S23
//	    oscillations: false
//
// Oscillation detection defaults to on. Entries keep their file order.
func LoadPresets(data []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errgo.Notef(err, "cannot parse presets")
	}
	out := make([]Preset, 0, len(f.Presets))
	seen := make(map[string]bool)
	for i, p := range f.Presets {
		if p.Name == "" {
			return nil, errgo.Newf("preset %d: missing name", i)
		}
		if seen[p.Name] {
			return nil, errgo.Newf("preset %q: duplicate name", p.Name)
		}
		seen[p.Name] = true
		r, err := ParseRule(p.Rule)
		if err != nil {
			return nil, errgo.WithCausef(err, errgo.Cause(err), "preset %q", p.Name)
		}
		if p.Oscillations != nil {
			r.DetectOscillations = *p.Oscillations
		}
		out = append(out, Preset{Name: p.Name, Rules: r})
	}
	return out, nil
}
