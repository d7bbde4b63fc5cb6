package transfer

import "image"

// Canvas is the RGB buffer that matched style patches are written into.
type Canvas struct {
	Width, Height int
	Pix           []uint8
}

// NewCanvas returns a zeroed canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

// At returns the RGB triple at (x, y).
func (c *Canvas) At(x, y int) [3]uint8 {
	i := (y*c.Width + x) * 3
	return [3]uint8{c.Pix[i], c.Pix[i+1], c.Pix[i+2]}
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// ToImage returns the raw canvas as an opaque RGBA image.
func (c *Canvas) ToImage() *image.RGBA {
	return toRGBA(c.Width, c.Height, c.Pix)
}

// Compose writes the top-left part of p that fits into the canvas with its
// corner at at, replacing whatever was there. If counts is not nil, every
// written pixel is counted once. Compose returns the written rectangle,
// which is empty when at lies outside the canvas.
func (c *Canvas) Compose(p Patch, at image.Point, counts *Overlap) image.Rectangle {
	r := image.Rect(at.X, at.Y, at.X+p.Size, at.Y+p.Size).Intersect(c.Bounds())
	if r.Empty() {
		return image.Rectangle{}
	}
	// Rows of the patch are copied from its top-left corner, so a clipped
	// write only drops the right and bottom edges.
	w := r.Dx() * 3
	for v := 0; v < r.Dy(); v++ {
		src := ((r.Min.Y-at.Y+v)*p.Size + (r.Min.X - at.X)) * 3
		dst := ((r.Min.Y+v)*c.Width + r.Min.X) * 3
		copy(c.Pix[dst:dst+w], p.Pix[src:src+w])
	}
	if counts != nil {
		counts.Add(r, 1)
	}
	return r
}

// Overlap counts, per pixel, how many patch writes touched it.
type Overlap struct {
	Width, Height int
	Counts        []int
}

// NewOverlap returns a zeroed overlap buffer.
func NewOverlap(width, height int) *Overlap {
	return &Overlap{Width: width, Height: height, Counts: make([]int, width*height)}
}

// At returns the count at (x, y).
func (o *Overlap) At(x, y int) int {
	return o.Counts[y*o.Width+x]
}

// Add adds n to every count inside r, clipped to the buffer.
func (o *Overlap) Add(r image.Rectangle, n int) {
	r = r.Intersect(image.Rect(0, 0, o.Width, o.Height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := o.Counts[y*o.Width : (y+1)*o.Width]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] += n
		}
	}
}

// Placement selects where a matched style patch is written.
type Placement int

const (
	// PlaceAtOrigin writes at the content patch's own top-left corner.
	PlaceAtOrigin Placement = iota
	// PlaceByScanIndex derives the corner from the patch's index in scan
	// order assuming floor(W/stride) patches per row. This is only correct
	// when the grid has no edge loss; it is kept to reproduce the original
	// tool's output.
	PlaceByScanIndex
)

// scanIndexPoint maps the i-th content patch to its legacy canvas corner.
func scanIndexPoint(i, width, stride int) image.Point {
	cols := width / stride
	if cols == 0 {
		// The original divides by zero here; every patch lands on row 0.
		return image.Pt(i*stride, 0)
	}
	return image.Pt((i%cols)*stride, (i/cols)*stride)
}

// OverlapMode selects how overlap counts are computed.
type OverlapMode int

const (
	// OverlapExact counts each clipped write as it happens.
	OverlapExact OverlapMode = iota
	// OverlapLegacy reproduces the original tool: counts are filled after
	// composition by adding the number of stride-1 patches of the canvas to
	// a single patch-sized region at the last composed corner.
	OverlapLegacy
)

// legacyOverlap fills counts the way the original tool did. last is the
// corner used for the final composed patch.
func legacyOverlap(counts *Overlap, size int, last image.Point) {
	cols, rows := GridSize(counts.Width, counts.Height, size, 1)
	n := cols * rows
	if n == 0 {
		return
	}
	counts.Add(image.Rect(last.X, last.Y, last.X+size, last.Y+size), n)
}
