// Package transfer implements patch-statistics style transfer.
//
// Both images are tiled into square patches. Every content patch is replaced
// by the style patch whose grayscale (mean, standard deviation) pair is the
// nearest, and the replacements are written into a canvas at the content
// patch's position. A per-pixel overlap count kept alongside the canvas is
// used by Normalize to produce the displayable result.
package transfer

import (
	"image"
	"image/color"
)

// Image is a dense RGB raster, 3 bytes per pixel in row-major order.
type Image struct {
	Width, Height int
	Pix           []uint8
}

// NewImage returns a black image of the given size.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

// FromImage copies m into an Image. The result is anchored at (0, 0) even if
// m.Bounds().Min is not.
func FromImage(m image.Image) *Image {
	bounds := m.Bounds()
	im := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			r, g, b, _ := m.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := im.offset(x, y)
			im.Pix[i+0] = uint8(r >> 8)
			im.Pix[i+1] = uint8(g >> 8)
			im.Pix[i+2] = uint8(b >> 8)
		}
	}
	return im
}

// Size returns the width and height as a point.
func (im *Image) Size() image.Point {
	return image.Pt(im.Width, im.Height)
}

// At returns the RGB triple at (x, y).
func (im *Image) At(x, y int) [3]uint8 {
	i := im.offset(x, y)
	return [3]uint8{im.Pix[i], im.Pix[i+1], im.Pix[i+2]}
}

// Set writes the RGB triple at (x, y).
func (im *Image) Set(x, y int, c [3]uint8) {
	i := im.offset(x, y)
	copy(im.Pix[i:i+3], c[:])
}

// ToImage returns an opaque RGBA copy.
func (im *Image) ToImage() *image.RGBA {
	return toRGBA(im.Width, im.Height, im.Pix)
}

func (im *Image) offset(x, y int) int {
	return (y*im.Width + x) * 3
}

func toRGBA(width, height int, pix []uint8) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			out.SetRGBA(x, y, color.RGBA{R: pix[i], G: pix[i+1], B: pix[i+2], A: 255})
		}
	}
	return out
}
