package life

import (
	"lifelab/internal/brush"
	"lifelab/internal/core"
)

// DefaultHistoryLength is the number of past states kept per cell for
// oscillation detection.
const DefaultHistoryLength = 15

// Tint is an RGB highlight with channels in [0, 1].
type Tint struct {
	R, G, B float64
}

// Cell is one grid position. Active is the simulation state. Color is only
// meaningful when Colored is set and never feeds back into the rules.
type Cell struct {
	Active  bool
	Color   Tint
	Colored bool
}

// FiniteGrid is a fixed-size toroidal grid with two alternating frames and a
// per-cell history of recent states. Frames are row-major (y*w + x).
type FiniteGrid struct {
	w, h    int
	frames  [2][]Cell
	current int

	historyLen int
	history    []bool
}

// NewFiniteGrid allocates a w*h grid with all cells inactive. Non-positive
// dimensions are raised to one.
func NewFiniteGrid(w, h, historyLength int) *FiniteGrid {
	w = max(w, 1)
	h = max(h, 1)
	historyLength = max(historyLength, 0)
	return &FiniteGrid{
		w:          w,
		h:          h,
		frames:     [2][]Cell{make([]Cell, w*h), make([]Cell, w*h)},
		historyLen: historyLength,
		history:    make([]bool, w*h*historyLength),
	}
}

// Size returns the grid dimensions.
func (g *FiniteGrid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

func (g *FiniteGrid) HistoryLength() int { return g.historyLen }

// CurrentFrame reports which frame (0 or 1) holds the current generation.
func (g *FiniteGrid) CurrentFrame() int { return g.current }

// Frame exposes frame i (0 or 1).
func (g *FiniteGrid) Frame(i int) []Cell { return g.frames[i&1] }

// Current exposes the frame holding the current generation.
func (g *FiniteGrid) Current() []Cell { return g.frames[g.current] }

// Next exposes the frame the next step writes into.
func (g *FiniteGrid) Next() []Cell { return g.frames[g.current^1] }

// Index returns the frame index for (x, y).
func (g *FiniteGrid) Index(x, y int) int { return core.Index(x, y, g.w) }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *FiniteGrid) InBounds(x, y int) bool { return g.Size().InBounds(x, y) }

// At returns the current cell at (x, y). It panics when out of bounds.
func (g *FiniteGrid) At(x, y int) Cell { return g.Current()[g.Index(x, y)] }

// Active reports whether (x, y) is alive; out-of-bounds cells are not.
func (g *FiniteGrid) Active(x, y int) bool {
	return g.InBounds(x, y) && g.At(x, y).Active
}

// History returns the recorded states of (x, y), newest first. The slice
// aliases the grid's buffer and changes on the next step.
func (g *FiniteGrid) History(x, y int) []bool {
	i := g.Index(x, y) * g.historyLen
	return g.history[i : i+g.historyLen : i+g.historyLen]
}

// Population counts active cells in the current frame.
func (g *FiniteGrid) Population() int {
	n := 0
	for _, c := range g.Current() {
		if c.Active {
			n++
		}
	}
	return n
}

// Oscillating counts current cells carrying an oscillation highlight.
func (g *FiniteGrid) Oscillating() int {
	n := 0
	for _, c := range g.Current() {
		if c.Colored {
			n++
		}
	}
	return n
}

// Click applies a user paint at (x, y) to the current frame. Without a brush
// the cell is toggled. With a brush, every cell under the stencil (anchored at
// the brush offset) is set to the stencil value, dead cells included; cells
// outside the grid are skipped. Clicks outside the grid are ignored.
func (g *FiniteGrid) Click(x, y int, b *brush.Brush) {
	if !g.InBounds(x, y) {
		return
	}
	cur := g.Current()
	if b == nil {
		i := g.Index(x, y)
		cur[i].Active = !cur[i].Active
		return
	}
	ox, oy := b.Offset().Ints()
	for bx := 0; bx < b.Width(); bx++ {
		for by := 0; by < b.Height(); by++ {
			gx, gy := x-ox+bx, y-oy+by
			if !g.InBounds(gx, gy) {
				continue
			}
			cur[g.Index(gx, gy)].Active = b.Pattern[bx][by]
		}
	}
}

// Stamp copies the brush's live cells with its top-left corner at (x, y),
// wrapping around the edges. Dead stencil cells leave the grid untouched.
func (g *FiniteGrid) Stamp(x, y int, b *brush.Brush) {
	cur := g.Current()
	for bx := 0; bx < b.Width(); bx++ {
		for by := 0; by < b.Height(); by++ {
			if !b.Pattern[bx][by] {
				continue
			}
			gx, gy := core.Wrap(x+bx, g.w), core.Wrap(y+by, g.h)
			cur[g.Index(gx, gy)].Active = true
		}
	}
}

// SetActive sets the current state of (x, y); out-of-bounds is a no-op.
func (g *FiniteGrid) SetActive(x, y int, active bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.Current()[g.Index(x, y)].Active = active
}

// Clear deactivates every cell and forgets all history.
func (g *FiniteGrid) Clear() {
	for f := range g.frames {
		clear(g.frames[f])
	}
	clear(g.history)
}

// SetHistoryLength replaces the history buffer with one of length n per
// cell. Recorded history is discarded.
func (g *FiniteGrid) SetHistoryLength(n int) {
	n = max(n, 0)
	g.historyLen = n
	g.history = make([]bool, g.w*g.h*n)
}

// Randomize activates each cell of the current frame with probability
// density.
func (g *FiniteGrid) Randomize(rng *core.RNG, density float64) {
	cur := g.Current()
	for i := range cur {
		cur[i].Active = rng.Chance(density)
	}
}

func (g *FiniteGrid) swap() { g.current ^= 1 }

func (g *FiniteGrid) pushHistory(i int, active bool) []bool {
	h := g.history[i*g.historyLen : (i+1)*g.historyLen]
	if len(h) == 0 {
		return h
	}
	copy(h[1:], h[:len(h)-1])
	h[0] = active
	return h
}
