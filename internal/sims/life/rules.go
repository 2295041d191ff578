package life

import (
	"strings"

	errgo "gopkg.in/errgo.v1"
)

// ErrBadRule is the cause of rule string parse errors.
var ErrBadRule = errgo.New("bad rule string")

// Rules configures the step function. Survive and Birth are indexed by the
// number of live Moore neighbours (0..8). Rules is a plain value: the driver
// passes the rules it wants applied to each step, so changing them affects
// only subsequent steps.
type Rules struct {
	Survive            [9]bool
	Birth              [9]bool
	DetectOscillations bool
}

// Conway returns B3/S23 with oscillation detection enabled.
func Conway() Rules {
	var r Rules
	r.Birth[3] = true
	r.Survive[2] = true
	r.Survive[3] = true
	r.DetectOscillations = true
	return r
}

// WithBirth returns a copy of r with the birth condition for n neighbours set.
func (r Rules) WithBirth(n int, v bool) Rules {
	if n >= 0 && n < len(r.Birth) {
		r.Birth[n] = v
	}
	return r
}

// WithSurvive returns a copy of r with the survival condition for n
// neighbours set.
func (r Rules) WithSurvive(n int, v bool) Rules {
	if n >= 0 && n < len(r.Survive) {
		r.Survive[n] = v
	}
	return r
}

// WithOscillations returns a copy of r with oscillation detection set.
func (r Rules) WithOscillations(v bool) Rules {
	r.DetectOscillations = v
	return r
}

// Next returns the next state of a cell given its state and live neighbour
// count.
func (r Rules) Next(active bool, neighbors int) bool {
	if active {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

// String formats the rule in B/S notation, e.g. "B3/S23".
func (r Rules) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	writeCounts(&sb, r.Birth)
	sb.WriteString("/S")
	writeCounts(&sb, r.Survive)
	return sb.String()
}

func writeCounts(sb *strings.Builder, set [9]bool) {
	for n, ok := range set {
		if ok {
			sb.WriteByte(byte('0' + n))
		}
	}
}

// ParseRule parses a rule in B/S notation ("B3/S23", "S23/B3", case
// insensitive) or the older survive/birth digit form ("23/3"). The result
// has oscillation detection enabled.
func ParseRule(s string) (Rules, error) {
	r := Rules{DetectOscillations: true}
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rules{}, errgo.WithCausef(nil, ErrBadRule, "rule %q: want two parts separated by /", s)
	}
	a, b := strings.ToUpper(parts[0]), strings.ToUpper(parts[1])
	var birth, survive string
	switch {
	case strings.HasPrefix(a, "B") && strings.HasPrefix(b, "S"):
		birth, survive = a[1:], b[1:]
	case strings.HasPrefix(a, "S") && strings.HasPrefix(b, "B"):
		survive, birth = a[1:], b[1:]
	case !strings.ContainsAny(a+b, "BS"):
		survive, birth = a, b
	default:
		return Rules{}, errgo.WithCausef(nil, ErrBadRule, "rule %q: cannot tell birth from survival", s)
	}
	if err := parseCounts(&r.Birth, birth); err != nil {
		return Rules{}, errgo.WithCausef(nil, ErrBadRule, "rule %q: birth: %v", s, err)
	}
	if err := parseCounts(&r.Survive, survive); err != nil {
		return Rules{}, errgo.WithCausef(nil, ErrBadRule, "rule %q: survival: %v", s, err)
	}
	return r, nil
}

func parseCounts(set *[9]bool, digits string) error {
	for _, d := range digits {
		if d < '0' || d > '8' {
			return errgo.Newf("invalid neighbour count %q", d)
		}
		set[d-'0'] = true
	}
	return nil
}

// MustParseRule is like ParseRule but panics on error.
func MustParseRule(s string) Rules {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}
