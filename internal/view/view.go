// Package view holds the camera used to map between screen pixels and grid
// cells.
//
// A View is a uniform scale (the zoom level, in pixels per cell) followed by a
// translation. The translation is stored as the negated screen position of the
// camera, so
//
//	screen = cell*Zoom - Pan
//	cell   = (screen + Pan) / Zoom
//
// Zoom and Pan are independent fields; changing one never disturbs the other.
package view

import "lifelab/internal/core"

const (
	MinZoom     = 2.0
	MaxZoom     = 200.0
	DefaultZoom = 20.0
)

// View is an immutable camera. The zero value is singular; use New or
// Default.
type View struct {
	Zoom float64
	// Pan is the camera position in screen coordinates.
	Pan core.Vec
}

// New returns a view with the given zoom and pan.
func New(zoom float64, pan core.Vec) View {
	return View{Zoom: zoom, Pan: pan}
}

// Default returns an unpanned view at DefaultZoom.
func Default() View {
	return View{Zoom: DefaultZoom}
}

// ZoomLevel returns the scale component.
func (v View) ZoomLevel() float64 { return v.Zoom }

// PositionInScreenCoords returns the pan offset in screen pixels.
func (v View) PositionInScreenCoords() core.Vec { return v.Pan }

// WithZoom returns a copy of v with the zoom replaced.
func (v View) WithZoom(zoom float64) View {
	v.Zoom = zoom
	return v
}

// WithPan returns a copy of v with the pan replaced.
func (v View) WithPan(pan core.Vec) View {
	v.Pan = pan
	return v
}

// Singular reports whether the view cannot be inverted.
func (v View) Singular() bool { return v.Zoom == 0 }

// ToScreen maps fractional cell coordinates to screen pixels.
func (v View) ToScreen(cell core.Vec) core.Vec {
	return cell.Mul(v.Zoom).Sub(v.Pan)
}

// ToCell maps screen pixels to fractional cell coordinates. A singular view
// yields the zero vector.
func (v View) ToCell(screen core.Vec) core.Vec {
	if v.Singular() {
		return core.Vec{}
	}
	return screen.Add(v.Pan).Div(v.Zoom)
}

// CellAt returns the integer cell under the screen point.
func (v View) CellAt(screen core.Vec) (int, int) {
	return v.ToCell(screen).Ints()
}

// ZoomAt returns a view with the given zoom whose pan keeps the cell under
// the screen point fixed.
func (v View) ZoomAt(screen core.Vec, zoom float64) View {
	if v.Singular() || zoom == 0 {
		return v.WithZoom(zoom)
	}
	anchor := v.ToCell(screen)
	return View{Zoom: zoom, Pan: anchor.Mul(zoom).Sub(screen)}
}

// PanBy moves the camera so the scene follows a drag of delta screen pixels.
func (v View) PanBy(delta core.Vec) View {
	return v.WithPan(v.Pan.Sub(delta))
}

// CenterOn returns a view whose given cell lands in the middle of a screen of
// the provided size.
func (v View) CenterOn(cell core.Vec, screen core.Vec) View {
	return v.WithPan(cell.Mul(v.Zoom).Sub(screen.Div(2)))
}

// ClampZoom limits zoom to [MinZoom, MaxZoom]. Callers clamp before building
// a view; View itself accepts any value.
func ClampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}
