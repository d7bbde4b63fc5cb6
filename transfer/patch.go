package transfer

import "image"

// Patch is a square copy of part of an image together with the position of
// its top-left corner in that image.
type Patch struct {
	Origin image.Point
	Size   int
	Pix    []uint8 // RGB, Size*Size*3 bytes in row-major order.
}

// At returns the RGB triple at (x, y) relative to the patch origin.
func (p Patch) At(x, y int) [3]uint8 {
	i := (y*p.Size + x) * 3
	return [3]uint8{p.Pix[i], p.Pix[i+1], p.Pix[i+2]}
}

// PatchSet is a sequence of patches in row-major scan order.
type PatchSet []Patch

// GridSize returns the number of patch columns and rows that fit into a
// width x height image. Either is zero if size exceeds that dimension.
func GridSize(width, height, size, stride int) (cols, rows int) {
	return gridLen(width, size, stride), gridLen(height, size, stride)
}

func gridLen(n, size, stride int) int {
	if size > n {
		return 0
	}
	return (n-size)/stride + 1
}

// Extract returns every size x size patch of im whose top-left corner lies on
// the stride grid and which fits entirely inside the image. Patches are
// visited row by row. The result is empty if size exceeds either dimension.
func Extract(im *Image, size, stride int) PatchSet {
	cols, rows := GridSize(im.Width, im.Height, size, stride)
	set := make(PatchSet, 0, cols*rows)
	for y := 0; y+size <= im.Height; y += stride {
		for x := 0; x+size <= im.Width; x += stride {
			set = append(set, crop(im, x, y, size))
		}
	}
	return set
}

func crop(im *Image, x0, y0, size int) Patch {
	p := Patch{Origin: image.Pt(x0, y0), Size: size, Pix: make([]uint8, size*size*3)}
	row := size * 3
	for v := 0; v < size; v++ {
		src := im.offset(x0, y0+v)
		copy(p.Pix[v*row:(v+1)*row], im.Pix[src:src+row])
	}
	return p
}
