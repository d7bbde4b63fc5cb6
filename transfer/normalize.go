package transfer

import (
	"fmt"
	"image"
	"image/color"
)

// Normalize divides every canvas channel by the pixel's overlap count plus
// one, flooring the result. The extra one keeps uncounted pixels defined and
// dims pixels written once by half.
func Normalize(c *Canvas, o *Overlap) *image.RGBA {
	if c.Width != o.Width || c.Height != o.Height {
		panic(fmt.Sprintf("transfer: canvas %dx%d and overlap %dx%d differ in size", c.Width, c.Height, o.Width, o.Height))
	}
	out := image.NewRGBA(c.Bounds())
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			d := o.At(x, y) + 1
			p := c.At(x, y)
			out.SetRGBA(x, y, color.RGBA{
				R: divide(p[0], d),
				G: divide(p[1], d),
				B: divide(p[2], d),
				A: 255,
			})
		}
	}
	return out
}

// divide floors v/d and clamps it into the 8-bit range. Counts are never
// negative in practice; a non-positive divisor leaves v unchanged.
func divide(v uint8, d int) uint8 {
	if d <= 0 {
		return v
	}
	q := int(v) / d
	return uint8(min(max(q, 0), 255))
}
