package core

import "math"

// Vec is a 2D vector used for cell coordinates, screen coordinates and
// sizes. It is a value type; every operation returns a new Vec.
type Vec struct {
	X, Y float64
}

// V returns the vector (x, y).
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// VI returns the vector (x, y) from integer components.
func VI(x, y int) Vec { return Vec{X: float64(x), Y: float64(y)} }

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec) Mul(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Div divides both components by s. Division by zero follows IEEE rules.
func (v Vec) Div(s float64) Vec { return Vec{X: v.X / s, Y: v.Y / s} }

// Floor rounds both components down.
func (v Vec) Floor() Vec { return Vec{X: math.Floor(v.X), Y: math.Floor(v.Y)} }

// Clone returns a copy of v.
func (v Vec) Clone() Vec { return v }

// Ints floors v and returns the components as ints.
func (v Vec) Ints() (int, int) {
	f := v.Floor()
	return int(f.X), int(f.Y)
}
