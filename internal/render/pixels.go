package render

import (
	"image/color"

	"lifelab/internal/sims/life"
)

// Palette holds the colours used for cells without a highlight.
type Palette struct {
	On  color.Color
	Off color.Color
	// Dim scales the highlight of inactive oscillating cells.
	Dim float64
}

// DefaultPalette draws live cells white on black.
func DefaultPalette() Palette {
	return Palette{On: color.White, Off: color.Black, Dim: 0.35}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillCellsRGBA converts life cells into RGBA pixels in buf. Highlighted
// cells take their tint, dimmed by p.Dim while inactive; other cells use the
// on/off colours.
func fillCellsRGBA(buf []byte, cells []life.Cell, p Palette) {
	rOn, gOn, bOn, aOn := p.On.RGBA()
	rOff, gOff, bOff, aOff := p.Off.RGBA()
	for i, c := range cells {
		base := i * 4
		switch {
		case c.Colored:
			scale := 1.0
			if !c.Active {
				scale = p.Dim
			}
			buf[base+0] = channelByte(c.Color.R * scale)
			buf[base+1] = channelByte(c.Color.G * scale)
			buf[base+2] = channelByte(c.Color.B * scale)
			buf[base+3] = 0xff
		case c.Active:
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
		default:
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

func channelByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
