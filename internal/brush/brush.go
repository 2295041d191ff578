// Package brush provides rectangular boolean stencils that are stamped onto a
// grid in a single paint operation, together with importers for the common
// pattern text formats and a small built-in lexicon.
package brush

import (
	errgo "gopkg.in/errgo.v1"

	"lifelab/internal/core"
)

var (
	ErrEmptyPattern = errgo.New("empty pattern")
	ErrRagged       = errgo.New("pattern is not rectangular")
	ErrSyntax       = errgo.New("pattern syntax error")
)

// Brush is a named rectangular stencil. Pattern is indexed [x][y], matching
// grid indexing, and always satisfies len(Pattern) == Width() and
// len(Pattern[x]) == Height(). Grids rely on this without re-checking, so
// brushes must only be built through New or the importers and must not be
// mutated afterwards.
type Brush struct {
	Name    string
	Pattern [][]bool
	Size    core.Vec
}

// New validates pattern and returns a brush wrapping it.
func New(name string, pattern [][]bool) (*Brush, error) {
	if len(pattern) == 0 || len(pattern[0]) == 0 {
		return nil, errgo.WithCausef(nil, ErrEmptyPattern, "brush %q: empty pattern", name)
	}
	h := len(pattern[0])
	for x, col := range pattern {
		if len(col) != h {
			return nil, errgo.WithCausef(nil, ErrRagged, "brush %q: column %d has %d cells, want %d", name, x, len(col), h)
		}
	}
	return &Brush{Name: name, Pattern: pattern, Size: core.VI(len(pattern), h)}, nil
}

// FromRows builds a brush from row-major data, rows[y][x].
func FromRows(name string, rows [][]bool) (*Brush, error) {
	if len(rows) == 0 {
		return nil, errgo.WithCausef(nil, ErrEmptyPattern, "brush %q: empty pattern", name)
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, errgo.WithCausef(nil, ErrRagged, "brush %q: row %d has %d cells, want %d", name, y, len(row), w)
		}
	}
	return New(name, transpose(rows))
}

func (b *Brush) Width() int { return len(b.Pattern) }

func (b *Brush) Height() int {
	if len(b.Pattern) == 0 {
		return 0
	}
	return len(b.Pattern[0])
}

// At reports the stencil value at (x, y). Coordinates outside the brush are
// false.
func (b *Brush) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return false
	}
	return b.Pattern[x][y]
}

// Offset is the distance from the brush's top-left corner to its anchor
// cell, floor(size/2).
func (b *Brush) Offset() core.Vec {
	return b.Size.Div(2).Floor()
}

// Population counts the live cells in the stencil.
func (b *Brush) Population() int {
	n := 0
	for _, col := range b.Pattern {
		for _, v := range col {
			if v {
				n++
			}
		}
	}
	return n
}

// Rotate returns the brush rotated a quarter turn clockwise.
func (b *Brush) Rotate() *Brush {
	w, h := b.Width(), b.Height()
	out := alloc(h, w)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			out[h-1-y][x] = b.Pattern[x][y]
		}
	}
	return &Brush{Name: b.Name, Pattern: out, Size: core.VI(h, w)}
}

// Flip returns the brush mirrored left to right.
func (b *Brush) Flip() *Brush {
	w, h := b.Width(), b.Height()
	out := alloc(w, h)
	for x := 0; x < w; x++ {
		copy(out[w-1-x], b.Pattern[x])
	}
	return &Brush{Name: b.Name, Pattern: out, Size: b.Size}
}

func alloc(w, h int) [][]bool {
	cells := make([]bool, w*h)
	out := make([][]bool, w)
	for x := range out {
		out[x] = cells[x*h : (x+1)*h : (x+1)*h]
	}
	return out
}

func transpose(rows [][]bool) [][]bool {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	out := alloc(w, h)
	for y, row := range rows {
		for x, v := range row {
			out[x][y] = v
		}
	}
	return out
}
