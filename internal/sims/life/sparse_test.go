package life

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"lifelab/internal/brush"
)

func TestSparseGridClick(t *testing.T) {
	c := qt.New(t)
	g := NewSparseGrid()
	c.Assert(g.Population(), qt.Equals, 0)
	_, _, ok := g.Bounds()
	c.Assert(ok, qt.IsFalse)

	g.Click(-1000, 5, nil)
	g.Click(3, -7, nil)
	c.Assert(g.Active(-1000, 5), qt.IsTrue)
	c.Assert(g.Cells(), qt.DeepEquals, []Point{{-1000, 5}, {3, -7}})

	lo, hi, ok := g.Bounds()
	c.Assert(ok, qt.IsTrue)
	c.Assert(lo, qt.Equals, Point{-1000, -7})
	c.Assert(hi, qt.Equals, Point{3, 5})

	g.Click(3, -7, nil)
	c.Assert(g.Active(3, -7), qt.IsFalse)
	c.Assert(g.Population(), qt.Equals, 1)
	c.Assert(g.cols, qt.HasLen, 1)
}

func TestSparseGridBrushIsAbsolute(t *testing.T) {
	c := qt.New(t)
	g := NewSparseGrid()
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			g.SetActive(x, y, true)
		}
	}
	eraser, _ := brush.Lookup("eraser")
	g.Click(0, 0, eraser)
	c.Assert(g.Population(), qt.Equals, 16)
	c.Assert(g.Active(0, 0), qt.IsFalse)
	c.Assert(g.Active(-1, 1), qt.IsFalse)
	c.Assert(g.Active(2, 2), qt.IsTrue)
}

func TestSparseGridStepIsNoop(t *testing.T) {
	c := qt.New(t)
	g := NewSparseGrid()
	glider, _ := brush.Lookup("glider")
	g.Click(0, 0, glider)
	before := g.Cells()
	Update(g, Conway())
	c.Assert(g.Cells(), qt.DeepEquals, before)
}
