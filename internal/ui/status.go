package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"lifelab/internal/brush"
)

// Status is the read-only state summarised at the top of the HUD panel.
type Status struct {
	Generation int
	Population int
	Rule       string
	Brush      *brush.Brush
	Paused     bool
	TPS        int
}

// Lines formats the status block, one entry per HUD row.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	name := "cell"
	if s.Brush != nil {
		name = fmt.Sprintf("%s %dx%d", s.Brush.Name, s.Brush.Width(), s.Brush.Height())
	}
	lines := []string{
		fmt.Sprintf("gen %s (%s)", humanize.Comma(int64(s.Generation)), state),
		fmt.Sprintf("alive %s", humanize.Comma(int64(s.Population))),
		fmt.Sprintf("brush %s", name),
	}
	if s.Rule != "" {
		lines = append(lines, "rule "+s.Rule)
	}
	if s.TPS > 0 {
		lines = append(lines, fmt.Sprintf("%d gen/s", s.TPS))
	}
	return lines
}

// Title builds the HUD heading for a simulation name.
func Title(name string) string {
	if name == "" {
		return "Controls"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}
