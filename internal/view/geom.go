//go:build ebiten

package view

import "github.com/hajimehoshi/ebiten/v2"

// GeoM returns the cell-to-screen transform as an ebiten matrix.
func (v View) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(v.Zoom, v.Zoom)
	m.Translate(-v.Pan.X, -v.Pan.Y)
	return m
}
