package life

import (
	"sort"

	"lifelab/internal/brush"
	"lifelab/internal/core"
)

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// SparseGrid is an unbounded grid holding only its live cells, keyed by
// column. It accepts paints like FiniteGrid but has no step rule: Step leaves
// it unchanged.
type SparseGrid struct {
	cols map[int]map[int]struct{}
	// Offset is the view position the grid was last shown at.
	Offset core.Vec
}

func NewSparseGrid() *SparseGrid {
	return &SparseGrid{cols: make(map[int]map[int]struct{})}
}

// Active reports whether (x, y) is alive.
func (g *SparseGrid) Active(x, y int) bool {
	_, ok := g.cols[x][y]
	return ok
}

// SetActive sets the state of (x, y).
func (g *SparseGrid) SetActive(x, y int, active bool) {
	col, ok := g.cols[x]
	if !active {
		if !ok {
			return
		}
		delete(col, y)
		if len(col) == 0 {
			delete(g.cols, x)
		}
		return
	}
	if !ok {
		col = make(map[int]struct{})
		g.cols[x] = col
	}
	col[y] = struct{}{}
}

// Click toggles (x, y), or with a brush sets every cell under the stencil to
// the stencil value.
func (g *SparseGrid) Click(x, y int, b *brush.Brush) {
	if b == nil {
		g.SetActive(x, y, !g.Active(x, y))
		return
	}
	ox, oy := b.Offset().Ints()
	for bx := 0; bx < b.Width(); bx++ {
		for by := 0; by < b.Height(); by++ {
			g.SetActive(x-ox+bx, y-oy+by, b.Pattern[bx][by])
		}
	}
}

// Step is a no-op; unbounded stepping is not implemented.
func (g *SparseGrid) Step(Rules) {}

func (g *SparseGrid) Population() int {
	n := 0
	for _, col := range g.cols {
		n += len(col)
	}
	return n
}

// Cells returns the live cells ordered by x then y.
func (g *SparseGrid) Cells() []Point {
	out := make([]Point, 0, g.Population())
	for x, col := range g.cols {
		for y := range col {
			out = append(out, Point{X: x, Y: y})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// Bounds returns the inclusive bounding box of the live cells. ok is false
// for an empty grid.
func (g *SparseGrid) Bounds() (lo, hi Point, ok bool) {
	for x, col := range g.cols {
		for y := range col {
			if !ok {
				lo, hi, ok = Point{X: x, Y: y}, Point{X: x, Y: y}, true
				continue
			}
			lo.X, lo.Y = min(lo.X, x), min(lo.Y, y)
			hi.X, hi.Y = max(hi.X, x), max(hi.Y, y)
		}
	}
	return lo, hi, ok
}
