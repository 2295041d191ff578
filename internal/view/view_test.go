package view

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"lifelab/internal/core"
)

const tolerance = 1e-9

func approx(c *qt.C, got, want core.Vec) {
	c.Helper()
	if math.Abs(got.X-want.X) > tolerance || math.Abs(got.Y-want.Y) > tolerance {
		c.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	c := qt.New(t)
	pans := []core.Vec{core.V(0, 0), core.V(-130.5, 42), core.V(1e4, -3.25)}
	zooms := []float64{MinZoom, 3.7, DefaultZoom, MaxZoom}
	points := []core.Vec{core.V(0, 0), core.V(5, 7), core.V(-12.25, 99.5)}
	for _, pan := range pans {
		for _, zoom := range zooms {
			v := New(zoom, pan)
			for _, p := range points {
				approx(c, v.ToCell(v.ToScreen(p)), p)
				approx(c, v.ToScreen(v.ToCell(p)), p)
			}
		}
	}
}

func TestPanIsStoredNegated(t *testing.T) {
	c := qt.New(t)
	v := New(10, core.V(30, 40))
	// Cell origin lands at the negated pan.
	approx(c, v.ToScreen(core.Vec{}), core.V(-30, -40))
	approx(c, v.ToCell(core.V(-30, -40)), core.Vec{})
	approx(c, v.ToScreen(core.V(1, 1)), core.V(-20, -30))
}

func TestZoomAndPanIndependent(t *testing.T) {
	c := qt.New(t)
	v := New(12, core.V(7, -9))

	zoomed := v.WithZoom(44)
	c.Assert(zoomed.PositionInScreenCoords(), qt.Equals, v.PositionInScreenCoords())
	c.Assert(zoomed.ZoomLevel(), qt.Equals, 44.0)

	panned := v.WithPan(core.V(-1, 2))
	c.Assert(panned.ZoomLevel(), qt.Equals, v.ZoomLevel())
	c.Assert(panned.PositionInScreenCoords(), qt.Equals, core.V(-1, 2))

	// Repeated mutation does not drift.
	w := v
	for i := 0; i < 1000; i++ {
		w = w.WithZoom(float64(i%50) + 2).WithPan(core.V(7, -9))
	}
	c.Assert(w.WithZoom(12), qt.Equals, v)
}

func TestSingularViewDoesNotPanic(t *testing.T) {
	c := qt.New(t)
	v := New(0, core.V(5, 5))
	c.Assert(v.Singular(), qt.IsTrue)
	c.Assert(v.ToCell(core.V(3, 3)), qt.Equals, core.Vec{})
}

func TestCellAt(t *testing.T) {
	c := qt.New(t)
	v := New(10, core.V(-5, 0))
	x, y := v.CellAt(core.V(16, 9))
	c.Assert(x, qt.Equals, 1)
	c.Assert(y, qt.Equals, 0)
	x, y = v.CellAt(core.V(0, -1))
	c.Assert(x, qt.Equals, -1)
	c.Assert(y, qt.Equals, -1)
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	c := qt.New(t)
	v := New(20, core.V(100, 50))
	cursor := core.V(320, 240)
	before := v.ToCell(cursor)
	after := v.ZoomAt(cursor, 35)
	c.Assert(after.ZoomLevel(), qt.Equals, 35.0)
	approx(c, after.ToCell(cursor), before)
}

func TestPanByAndCenter(t *testing.T) {
	c := qt.New(t)
	v := New(10, core.V(0, 0))
	moved := v.PanBy(core.V(15, -5))
	// Dragging right moves the scene right.
	approx(c, moved.ToScreen(core.Vec{}), core.V(15, -5))

	centered := v.CenterOn(core.V(8, 4), core.V(200, 100))
	approx(c, centered.ToScreen(core.V(8, 4)), core.V(100, 50))
}

func TestClampZoom(t *testing.T) {
	c := qt.New(t)
	c.Assert(ClampZoom(0.5), qt.Equals, MinZoom)
	c.Assert(ClampZoom(500), qt.Equals, MaxZoom)
	c.Assert(ClampZoom(17), qt.Equals, 17.0)
}
