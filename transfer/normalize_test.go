package transfer

import (
	"image/color"
	"testing"
)

func TestNormalize(t *testing.T) {
	c := NewCanvas(3, 1)
	copy(c.Pix, []uint8{
		200, 100, 7,
		200, 100, 7,
		255, 255, 255,
	})
	o := NewOverlap(3, 1)
	copy(o.Counts, []int{0, 1, 2})

	out := Normalize(c, o)
	want := []color.RGBA{
		{200, 100, 7, 255},
		{100, 50, 3, 255},
		{85, 85, 85, 255},
	}
	for x, w := range want {
		if got := out.RGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestNormalizeSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Normalize(NewCanvas(2, 2), NewOverlap(3, 2))
}
