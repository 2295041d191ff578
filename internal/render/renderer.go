//go:build ebiten

package render

import (
	"lifelab/internal/core"
	"lifelab/internal/sims/life"
	"lifelab/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

type gridProvider interface {
	Grid() *life.FiniteGrid
}

// GridPainter updates a single RGBA image from the simulation state and draws
// it through a view.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Draw uploads the current generation and draws it onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, sim core.Sim, v view.View) {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		gp.w, gp.h = size.W, size.H
		gp.buf = make([]byte, 4*size.Cells())
		gp.img = ebiten.NewImage(size.W, size.H)
	}
	if p, ok := sim.(gridProvider); ok {
		fillCellsRGBA(gp.buf, p.Grid().Current(), gp.palette)
	} else {
		fillBinaryRGBA(gp.buf, sim.Cells(), gp.palette.On, gp.palette.Off)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = v.GeoM()
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
