package life

import (
	"lifelab/internal/brush"
	"lifelab/internal/core"
)

// Grid is implemented by every grid kind the driver can step and paint.
type Grid interface {
	Click(x, y int, b *brush.Brush)
	Step(r Rules)
	Population() int
}

var (
	_ Grid = (*FiniteGrid)(nil)
	_ Grid = (*SparseGrid)(nil)
)

// Update advances g by one generation under r.
func Update(g Grid, r Rules) {
	g.Step(r)
}

// Step computes the next generation from the current frame into the other
// frame, records history and highlights when r asks for oscillation
// detection, then makes the new frame current. The current frame is only
// read.
func (g *FiniteGrid) Step(r Rules) {
	w, h := g.w, g.h
	cur, next := g.Current(), g.Next()
	for y := 0; y < h; y++ {
		ym := core.Wrap(y-1, h)
		yp := core.Wrap(y+1, h)
		for x := 0; x < w; x++ {
			xm := core.Wrap(x-1, w)
			xp := core.Wrap(x+1, w)
			neighbors := 0
			for _, i := range [8]int{
				ym*w + xm, ym*w + x, ym*w + xp,
				y*w + xm, y*w + xp,
				yp*w + xm, yp*w + x, yp*w + xp,
			} {
				if cur[i].Active {
					neighbors++
				}
			}

			idx := y*w + x
			active := r.Next(cur[idx].Active, neighbors)
			cell := Cell{Active: active}
			if r.DetectOscillations {
				cell.Color, cell.Colored = Classify(g.pushHistory(idx, active))
			}
			next[idx] = cell
		}
	}
	g.swap()
}

// Neighbors counts the live Moore neighbours of (x, y) in the current frame,
// wrapping around both edges. On grids narrower than three cells a cell may
// be counted more than once, or count itself, exactly as the step does.
func (g *FiniteGrid) Neighbors(x, y int) int {
	cur := g.Current()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := core.Wrap(x+dx, g.w)
			ny := core.Wrap(y+dy, g.h)
			if cur[g.Index(nx, ny)].Active {
				n++
			}
		}
	}
	return n
}
