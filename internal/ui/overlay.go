//go:build ebiten

package ui

import (
	"image/color"

	"lifelab/internal/brush"
	"lifelab/internal/core"
	"lifelab/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// gridLineZoom is the smallest zoom at which cell borders are drawn.
const gridLineZoom = 8

// Overlay draws the brush preview, world border and optional grid lines on
// top of the simulation.
type Overlay struct {
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the grid lines with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, v view.View, size core.Size, b *brush.Brush, cursor core.Vec) {
	if size.W <= 0 || size.H <= 0 || v.Singular() {
		return
	}
	if o.showGrid && v.Zoom >= gridLineZoom {
		o.drawGridLines(screen, v, size)
	}
	o.drawBorder(screen, v, size)

	x, y := v.CellAt(cursor)
	for _, p := range Footprint(size, x, y, b) {
		at := v.ToScreen(core.VI(p.X, p.Y))
		o.drawRect(screen, at.X, at.Y, v.Zoom, v.Zoom, color.RGBA{R: 120, G: 200, B: 255, A: 110})
	}
}

func (o *Overlay) drawGridLines(screen *ebiten.Image, v view.View, size core.Size) {
	col := color.RGBA{R: 60, G: 60, B: 70, A: 90}
	top := v.ToScreen(core.Vec{})
	bottom := v.ToScreen(size.Vec())
	for x := 1; x < size.W; x++ {
		sx := v.ToScreen(core.VI(x, 0)).X
		o.drawRect(screen, sx, top.Y, 1, bottom.Y-top.Y, col)
	}
	for y := 1; y < size.H; y++ {
		sy := v.ToScreen(core.VI(0, y)).Y
		o.drawRect(screen, top.X, sy, bottom.X-top.X, 1, col)
	}
}

func (o *Overlay) drawBorder(screen *ebiten.Image, v view.View, size core.Size) {
	col := color.RGBA{R: 90, G: 90, B: 110, A: 255}
	min := v.ToScreen(core.Vec{})
	max := v.ToScreen(size.Vec())
	w, h := max.X-min.X, max.Y-min.Y
	o.drawRect(screen, min.X-1, min.Y-1, w+2, 1, col)
	o.drawRect(screen, min.X-1, max.Y, w+2, 1, col)
	o.drawRect(screen, min.X-1, min.Y, 1, h, col)
	o.drawRect(screen, max.X, min.Y, 1, h, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
