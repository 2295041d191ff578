package core

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestWrap(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		v, n, want int
	}{
		{v: -1, n: 3, want: 2},
		{v: 3, n: 3, want: 0},
		{v: 1, n: 3, want: 1},
		{v: -1, n: 1, want: 0},
		{v: 1, n: 1, want: 0},
		{v: -7, n: 3, want: 2},
		{v: 5, n: 0, want: 0},
	}
	for _, test := range tests {
		c.Check(Wrap(test.v, test.n), qt.Equals, test.want, qt.Commentf("Wrap(%d, %d)", test.v, test.n))
	}
}

func TestVecArithmetic(t *testing.T) {
	c := qt.New(t)
	a := V(1.5, -2)
	b := VI(2, 3)
	c.Assert(a.Add(b), qt.Equals, V(3.5, 1))
	c.Assert(a.Sub(b), qt.Equals, V(-0.5, -5))
	c.Assert(b.Mul(2), qt.Equals, V(4, 6))
	c.Assert(b.Div(2), qt.Equals, V(1, 1.5))
	c.Assert(a.Floor(), qt.Equals, V(1, -2))
	c.Assert(V(-0.5, 2.9).Floor(), qt.Equals, V(-1, 2))
	c.Assert(a.Clone(), qt.Equals, a)

	x, y := V(2.7, -0.1).Ints()
	c.Assert(x, qt.Equals, 2)
	c.Assert(y, qt.Equals, -1)
}

func TestSizeInBounds(t *testing.T) {
	c := qt.New(t)
	s := Size{W: 4, H: 2}
	c.Assert(s.InBounds(0, 0), qt.IsTrue)
	c.Assert(s.InBounds(3, 1), qt.IsTrue)
	c.Assert(s.InBounds(4, 1), qt.IsFalse)
	c.Assert(s.InBounds(0, -1), qt.IsFalse)
	c.Assert(s.Cells(), qt.Equals, 8)
}

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestFixedStepGatesTicks(t *testing.T) {
	c := qt.New(t)
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStepWithClock(10, clock.now)
	c.Assert(fs.TPS(), qt.Equals, 10)

	// The accumulator starts primed so the first call ticks immediately.
	c.Assert(fs.ShouldStep(), qt.IsTrue)
	c.Assert(fs.ShouldStep(), qt.IsFalse)

	clock.advance(50 * time.Millisecond)
	c.Assert(fs.ShouldStep(), qt.IsFalse)
	clock.advance(50 * time.Millisecond)
	c.Assert(fs.ShouldStep(), qt.IsTrue)
	c.Assert(fs.ShouldStep(), qt.IsFalse)
}

func TestFixedStepDoesNotBurstAfterStall(t *testing.T) {
	c := qt.New(t)
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStepWithClock(10, clock.now)
	fs.ShouldStep()

	clock.advance(time.Second)
	ticks := 0
	for i := 0; i < 20; i++ {
		if fs.ShouldStep() {
			ticks++
		}
	}
	c.Assert(ticks, qt.Equals, 2)
}

func TestRegistryNames(t *testing.T) {
	c := qt.New(t)
	Register("zz-test", func(map[string]string) Sim { return nil })
	Register("", func(map[string]string) Sim { return nil })
	defer delete(sims, "zz-test")

	names := SimNames()
	c.Assert(names[len(names)-1], qt.Equals, "zz-test")
	_, ok := Sims()[""]
	c.Assert(ok, qt.IsFalse)
}

func TestParameterControlAdjust(t *testing.T) {
	c := qt.New(t)
	ctrl := ParameterControl{Key: "n", Type: ParamTypeInt, Step: 4, Min: 0, Max: 10, HasMin: true, HasMax: true}

	v, ok := ctrl.Adjust(4, 1)
	c.Assert(v, qt.Equals, 8)
	c.Assert(ok, qt.IsTrue)

	v, ok = ctrl.Adjust(8, 1)
	c.Assert(v, qt.Equals, 10)
	c.Assert(ok, qt.IsTrue)

	_, ok = ctrl.Adjust(10, 1)
	c.Assert(ok, qt.IsFalse)

	v, ok = ctrl.Adjust(2, -1)
	c.Assert(v, qt.Equals, 0)
	c.Assert(ok, qt.IsTrue)

	unbounded := ParameterControl{Key: "m", Type: ParamTypeInt}
	v, _ = unbounded.Adjust(0, -3)
	c.Assert(v, qt.Equals, -3)
}
