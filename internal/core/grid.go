package core

// Wrap maps v onto [0, n) with toroidal wrapping. Unlike (v+n)%n it is
// correct for any offset, not only for |v| <= n.
func Wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Index returns the row-major slice index for coordinates (x, y) on a grid of
// width w.
func Index(x, y, w int) int { return y*w + x }

// InBounds reports whether (x, y) lies inside a grid of the given size.
func (s Size) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}
