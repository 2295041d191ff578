package life

import (
	"strconv"

	"lifelab/internal/core"
)

const (
	oscillationsKey = "oscillations"
	historyKey      = "history"

	// MaxHistoryLength bounds the HUD history control.
	MaxHistoryLength = 60
)

func (s *Sim) Parameters() core.ParameterSnapshot {
	r := s.rules
	birth := make([]core.Parameter, 0, len(r.Birth))
	survive := make([]core.Parameter, 0, len(r.Survive))
	for n := range r.Birth {
		birth = append(birth, boolParam(birthKey(n), "Birth on "+strconv.Itoa(n), r.Birth[n]))
		survive = append(survive, boolParam(surviveKey(n), "Survive on "+strconv.Itoa(n), r.Survive[n]))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				intParam(historyKey, "History length", s.cfg.History),
				int64Param("seed", "Seed", s.seed),
				intParam("generation", "Generation", s.generation),
				intParam("population", "Population", s.grid.Population()),
			},
		},
		{
			Name:    "Birth",
			Summary: r.String(),
			Params:  birth,
		},
		{
			Name:   "Survival",
			Params: survive,
		},
		{
			Name: "Oscillations",
			Params: []core.Parameter{
				boolParam(oscillationsKey, "Detect oscillations", r.DetectOscillations),
				intParam("oscillating", "Oscillating cells", s.grid.Oscillating()),
			},
		},
	}}
}

// ParameterControls lists the history stepper and rule toggles shown on the
// HUD.
func (s *Sim) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: historyKey, Label: "History", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxHistoryLength, HasMin: true, HasMax: true},
		{Key: oscillationsKey, Label: "Oscillations", Type: core.ParamTypeBool},
	}
	for n := 0; n < 9; n++ {
		controls = append(controls, core.ParameterControl{Key: birthKey(n), Label: "B" + strconv.Itoa(n), Type: core.ParamTypeBool})
	}
	for n := 0; n < 9; n++ {
		controls = append(controls, core.ParameterControl{Key: surviveKey(n), Label: "S" + strconv.Itoa(n), Type: core.ParamTypeBool})
	}
	return controls
}

// SetIntParameter updates an integer control. Changing the history length
// discards recorded history.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key != historyKey || value < 0 || value > MaxHistoryLength {
		return false
	}
	if value != s.cfg.History {
		logger.Debugf("%s: history length %d -> %d", s.name, s.cfg.History, value)
		s.cfg.History = value
		s.grid.SetHistoryLength(value)
	}
	return true
}

// SetBoolParameter toggles a rule bit by control key.
func (s *Sim) SetBoolParameter(key string, value bool) bool {
	if key == oscillationsKey {
		s.SetRules(s.rules.WithOscillations(value))
		return true
	}
	if len(key) != 2 || key[1] < '0' || key[1] > '8' {
		return false
	}
	n := int(key[1] - '0')
	switch key[0] {
	case 'b':
		s.SetRules(s.rules.WithBirth(n, value))
	case 's':
		s.SetRules(s.rules.WithSurvive(n, value))
	default:
		return false
	}
	return true
}

func birthKey(n int) string   { return "b" + strconv.Itoa(n) }
func surviveKey(n int) string { return "s" + strconv.Itoa(n) }

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
