package transfer

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidOptions is returned when a patch size, stride or mode is out of range.
var ErrInvalidOptions = errors.New("invalid transfer options")

// EmptyInputError reports that patch extraction produced no patches for one
// of the images, e.g. because the patch size exceeds an image dimension.
type EmptyInputError struct {
	Image     string // "content" or "style"
	Size      image.Point
	PatchSize int
	Stride    int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no %dx%d patches at stride %d in %s image of size %dx%d",
		e.PatchSize, e.PatchSize, e.Stride, e.Image, e.Size.X, e.Size.Y)
}

// DimensionMismatchError reports that the content and style images differ in size.
type DimensionMismatchError struct {
	Content, Style image.Point
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("cannot transfer between images of different sizes: content %dx%d, style %dx%d",
		e.Content.X, e.Content.Y, e.Style.X, e.Style.Y)
}
