package transfer

import (
	"fmt"
	"math"
	"sort"
)

// Matcher finds the style feature nearest to a query feature.
type Matcher interface {
	// Nearest returns the index of the feature with the smallest Distance
	// to f. Among equally distant features the lowest index wins.
	Nearest(f Feature) int
}

// MatcherKind selects a Matcher implementation.
type MatcherKind int

const (
	// MatchLinear scans every feature for every query.
	MatchLinear MatcherKind = iota
	// MatchSorted searches features ordered by mean and stops once the mean
	// difference alone exceeds the best distance found.
	MatchSorted
)

func (k MatcherKind) String() string {
	switch k {
	case MatchLinear:
		return "linear"
	case MatchSorted:
		return "sorted"
	}
	return fmt.Sprintf("MatcherKind(%d)", int(k))
}

// ParseMatcherKind parses the String form of a MatcherKind.
func ParseMatcherKind(s string) (MatcherKind, error) {
	switch s {
	case "linear":
		return MatchLinear, nil
	case "sorted":
		return MatchSorted, nil
	}
	return 0, fmt.Errorf("unknown matcher %q: %w", s, ErrInvalidOptions)
}

// NewMatcher returns a matcher of the given kind over features. The slice is
// not copied and must not be modified while the matcher is in use.
// It panics if features is empty.
func NewMatcher(kind MatcherKind, features []Feature) Matcher {
	if len(features) == 0 {
		panic("transfer: matcher over empty feature list")
	}
	if kind == MatchSorted {
		return newSortedMatcher(features)
	}
	return LinearMatcher(features)
}

// LinearMatcher is a brute-force Matcher.
type LinearMatcher []Feature

func (m LinearMatcher) Nearest(f Feature) int {
	if len(m) == 0 {
		panic("transfer: nearest match over empty feature list")
	}
	best, bestDist := 0, math.Inf(1)
	for i, g := range m {
		if d := Distance(f, g); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// SortedMatcher orders features by mean. A query starts at the first feature
// whose mean is not below the query mean and expands in both directions.
type SortedMatcher struct {
	features []Feature
	order    []int // Indices into features, ascending by (Mean, index).
}

func newSortedMatcher(features []Feature) *SortedMatcher {
	order := make([]int, len(features))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return features[order[a]].Mean < features[order[b]].Mean
	})
	return &SortedMatcher{features: features, order: order}
}

func (m *SortedMatcher) Nearest(f Feature) int {
	n := len(m.order)
	if n == 0 {
		panic("transfer: nearest match over empty feature list")
	}
	start := sort.Search(n, func(k int) bool {
		return m.features[m.order[k]].Mean >= f.Mean
	})
	best, bestDist := -1, math.Inf(1)
	consider := func(i int) {
		d := Distance(f, m.features[i])
		if d < bestDist || (d == bestDist && i < best) {
			best, bestDist = i, d
		}
	}
	// A feature whose squared mean difference exceeds the best distance
	// cannot win, and neither can any feature further out on that side.
	for k := start; k < n; k++ {
		i := m.order[k]
		if dm := f.Mean - m.features[i].Mean; dm*dm > bestDist {
			break
		}
		consider(i)
	}
	for k := start - 1; k >= 0; k-- {
		i := m.order[k]
		if dm := f.Mean - m.features[i].Mean; dm*dm > bestDist {
			break
		}
		consider(i)
	}
	if best < 0 {
		// Only reachable with NaN features; fall back to the reference scan.
		return LinearMatcher(m.features).Nearest(f)
	}
	return best
}
