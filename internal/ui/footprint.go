package ui

import (
	"image"

	"lifelab/internal/brush"
	"lifelab/internal/core"
)

// Footprint lists the cells a click at (x, y) would set alive with b,
// clipped to size. A nil brush covers the single cell under the cursor.
func Footprint(size core.Size, x, y int, b *brush.Brush) []image.Point {
	if !size.InBounds(x, y) {
		return nil
	}
	if b == nil {
		return []image.Point{{X: x, Y: y}}
	}
	ox, oy := b.Offset().Ints()
	var pts []image.Point
	for bx := 0; bx < b.Width(); bx++ {
		for by := 0; by < b.Height(); by++ {
			gx, gy := x-ox+bx, y-oy+by
			if b.At(bx, by) && size.InBounds(gx, gy) {
				pts = append(pts, image.Pt(gx, gy))
			}
		}
	}
	return pts
}
