package app

import (
	"lifelab/internal/brush"
	"lifelab/internal/core"
	"lifelab/internal/sims/life"
)

// Sim is the simulation contract the interactive front end drives.
type Sim interface {
	core.Sim
	Paint(x, y int, b *brush.Brush)
	Clear()
	Generation() int
	Grid() *life.FiniteGrid
	Rules() life.Rules
	SetRules(r life.Rules)
}

var _ Sim = (*life.Sim)(nil)
