package transfer

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestLuma(t *testing.T) {
	cases := []struct {
		in   [3]uint8
		want uint8
	}{
		{black, 0},
		{white, 255},
		{red, 76},
		{[3]uint8{0, 255, 0}, 150},
		{blue, 29},
	}
	for _, c := range cases {
		if got := Luma(c.in); got != c.want {
			t.Errorf("Luma(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFeaturizeUniform(t *testing.T) {
	f, err := Featurize(solidPatch(3, red))
	if err != nil {
		t.Fatal(err)
	}
	if f.Mean != 76 || f.Std != 0 {
		t.Errorf("got %+v, want mean 76 and std 0", f)
	}
}

func TestFeaturizeCheckerboard(t *testing.T) {
	im := newTestImage(2, 2, func(x, y int) [3]uint8 {
		if (x+y)%2 == 0 {
			return black
		}
		return white
	})
	f, err := Featurize(Extract(im, 2, 1)[0])
	if err != nil {
		t.Fatal(err)
	}
	// Population, not sample, standard deviation.
	if f.Mean != 127.5 || f.Std != 127.5 {
		t.Errorf("got %+v, want mean and std 127.5", f)
	}
}

func TestFeaturizeMatchesGonum(t *testing.T) {
	im := newTestImage(12, 9, noise(4))
	for _, p := range Extract(im, 4, 3) {
		f, err := Featurize(p)
		if err != nil {
			t.Fatal(err)
		}
		var gray []float64
		for v := 0; v < p.Size; v++ {
			for u := 0; u < p.Size; u++ {
				gray = append(gray, float64(Luma(p.At(u, v))))
			}
		}
		mean := stat.Mean(gray, nil)
		std := math.Sqrt(stat.PopVariance(gray, nil))
		if math.Abs(f.Mean-mean) > 1e-9 || math.Abs(f.Std-std) > 1e-9 {
			t.Errorf("patch at %v: got %+v, want mean %g std %g", p.Origin, f, mean, std)
		}
	}
}

func TestFeaturizeDeterministic(t *testing.T) {
	p := Extract(newTestImage(5, 5, noise(5)), 5, 1)[0]
	first, err := Featurize(p)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		f, err := Featurize(p)
		if err != nil {
			t.Fatal(err)
		}
		if f != first {
			t.Fatalf("call %d: got %+v, want %+v", i, f, first)
		}
	}
}

func TestFeaturizeEmpty(t *testing.T) {
	if _, err := Featurize(Patch{}); err == nil {
		t.Error("expected an error for an empty patch")
	}
}
