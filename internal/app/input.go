package app

import (
	"math"

	"lifelab/internal/brush"
	"lifelab/internal/core"
	"lifelab/internal/view"
)

const wheelZoomFactor = 1.15

// WheelZoom returns v zoomed by dy wheel notches around the cursor, clamped
// to the allowed zoom range.
func WheelZoom(v view.View, cursor core.Vec, dy float64) view.View {
	if dy == 0 {
		return v
	}
	zoom := view.ClampZoom(v.Zoom * math.Pow(wheelZoomFactor, dy))
	return v.ZoomAt(cursor, zoom)
}

// BrushSlots returns the brushes bound to the digit keys 1-9.
func BrushSlots() []*brush.Brush {
	all := brush.Lexicon()
	if len(all) > 9 {
		all = all[:9]
	}
	return all
}

// stroke tracks the cell under a held mouse button so that dragging toggles
// each cell once rather than on every frame.
type stroke struct {
	active bool
	x, y   int
}

// enter reports whether (x, y) is a new cell for the current stroke.
func (s *stroke) enter(x, y int) bool {
	if s.active && s.x == x && s.y == y {
		return false
	}
	s.active, s.x, s.y = true, x, y
	return true
}

func (s *stroke) end() { s.active = false }
