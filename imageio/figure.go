package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Titles are the column headers of a Figure.
var Titles = [3]string{"Original Image", "Style Image", "Transferred Image"}

const (
	titleHeight = 20
	cellMargin  = 8
)

// Figure lays out content, style and transferred images side by side, one
// pair per row, under a row of column titles.
type Figure struct {
	Scale int // Integer upscaling of every image; less than 1 means 1.
	rows  [][3]image.Image
}

// Add appends a row.
func (f *Figure) Add(content, style, transferred image.Image) {
	f.rows = append(f.rows, [3]image.Image{content, style, transferred})
}

// Len returns the number of rows.
func (f *Figure) Len() int {
	return len(f.rows)
}

func (f *Figure) scale() int {
	return max(f.Scale, 1)
}

// cellSize returns the size of one grid cell: the largest scaled image, widened
// to fit the longest title.
func (f *Figure) cellSize() image.Point {
	var size image.Point
	for _, row := range f.rows {
		for _, m := range row {
			s := m.Bounds().Size().Mul(f.scale())
			size.X = max(size.X, s.X)
			size.Y = max(size.Y, s.Y)
		}
	}
	d := font.Drawer{Face: basicfont.Face7x13}
	for _, t := range Titles {
		size.X = max(size.X, d.MeasureString(t).Ceil()+cellMargin)
	}
	return size
}

// Render draws the figure on a white background.
func (f *Figure) Render() *image.NRGBA {
	cell := f.cellSize()
	out := imaging.New(3*cell.X, titleHeight+len(f.rows)*cell.Y, color.White)

	d := font.Drawer{Dst: out, Src: image.NewUniform(color.Black), Face: basicfont.Face7x13}
	for i, t := range Titles {
		x := i*cell.X + (cell.X-d.MeasureString(t).Ceil())/2
		d.Dot = fixed.P(x, titleHeight-6)
		d.DrawString(t)
	}

	for j, row := range f.rows {
		for i, m := range row {
			s := m.Bounds().Size().Mul(f.scale())
			if f.scale() > 1 {
				m = imaging.Resize(m, s.X, s.Y, imaging.NearestNeighbor)
			}
			pos := image.Pt(i*cell.X+(cell.X-s.X)/2, titleHeight+j*cell.Y+(cell.Y-s.Y)/2)
			out = imaging.Paste(out, m, pos)
		}
	}
	return out
}

// Save renders the figure and encodes it in the format implied by the file
// extension.
func (f *Figure) Save(file string) error {
	if len(f.rows) == 0 {
		return errors.New("figure has no rows")
	}
	if err := imaging.Save(f.Render(), file, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to save figure to %v: %w", file, err)
	}
	return nil
}

// SaveImage encodes a single image in the format implied by the file extension.
func SaveImage(m image.Image, file string) error {
	if err := imaging.Save(m, file); err != nil {
		return fmt.Errorf("failed to save image to output file %v: %w", file, err)
	}
	return nil
}
