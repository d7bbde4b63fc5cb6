package transfer

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Feature summarizes a patch by the mean and population standard deviation
// of its grayscale intensity.
type Feature struct {
	Mean, Std float64
}

// Luma converts an RGB triple to an 8-bit gray level using the Rec. 601
// weights, rounded to the nearest integer.
func Luma(c [3]uint8) uint8 {
	return uint8(math.Round(0.299*float64(c[0]) + 0.587*float64(c[1]) + 0.114*float64(c[2])))
}

// Featurize computes the grayscale mean and standard deviation of p.
func Featurize(p Patch) (Feature, error) {
	gray := make([]float64, 0, p.Size*p.Size)
	for i := 0; i+2 < len(p.Pix); i += 3 {
		gray = append(gray, float64(Luma([3]uint8{p.Pix[i], p.Pix[i+1], p.Pix[i+2]})))
	}
	m, err := stats.Mean(gray)
	if err != nil {
		return Feature{}, fmt.Errorf("failed to compute mean of patch at %v: %w", p.Origin, err)
	}
	s, err := stats.StandardDeviationPopulation(gray)
	if err != nil {
		return Feature{}, fmt.Errorf("failed to compute standard deviation of patch at %v: %w", p.Origin, err)
	}
	return Feature{Mean: m, Std: s}, nil
}

// FeaturizeAll computes the feature of every patch in set, in order.
func FeaturizeAll(set PatchSet) ([]Feature, error) {
	features := make([]Feature, len(set))
	for i, p := range set {
		f, err := Featurize(p)
		if err != nil {
			return nil, err
		}
		features[i] = f
	}
	return features, nil
}

// Distance returns the squared Euclidean distance between two features.
func Distance(a, b Feature) float64 {
	dm := a.Mean - b.Mean
	ds := a.Std - b.Std
	return dm*dm + ds*ds
}
