package transfer

import (
	"errors"
	"testing"
)

func TestNearestExactDuplicate(t *testing.T) {
	style := []Feature{{10, 1}, {50, 4}, {20, 2}, {50, 4}, {90, 0}}
	for _, kind := range []MatcherKind{MatchLinear, MatchSorted} {
		m := NewMatcher(kind, style)
		if got := m.Nearest(Feature{50, 4}); got != 1 {
			t.Errorf("%v: duplicate match = %d, want 1", kind, got)
		}
		if got := m.Nearest(Feature{19, 2}); got != 2 {
			t.Errorf("%v: nearest to (19, 2) = %d, want 2", kind, got)
		}
		if got := m.Nearest(Feature{1000, 1000}); got != 4 {
			t.Errorf("%v: nearest to far point = %d, want 4", kind, got)
		}
	}
}

func TestNearestTieLowestIndex(t *testing.T) {
	// (0, 0) is at distance 2 from all four.
	style := []Feature{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	for _, kind := range []MatcherKind{MatchLinear, MatchSorted} {
		if got := NewMatcher(kind, style).Nearest(Feature{}); got != 0 {
			t.Errorf("%v: got %d, want 0", kind, got)
		}
	}
}

func TestSortedAgreesWithLinear(t *testing.T) {
	// Small integer grids produce many exact ties.
	gen := noise(6)
	var style []Feature
	for i := 0; i < 300; i++ {
		c := gen(i, 0)
		style = append(style, Feature{Mean: float64(c[0] % 16), Std: float64(c[1] % 8)})
	}
	linear := NewMatcher(MatchLinear, style)
	sorted := NewMatcher(MatchSorted, style)
	for i := 0; i < 500; i++ {
		c := gen(i, 1)
		q := Feature{Mean: float64(c[0]%20) - 2, Std: float64(c[1]%10) + 0.5*float64(c[2]%2)}
		if l, s := linear.Nearest(q), sorted.Nearest(q); l != s {
			t.Fatalf("query %+v: linear %d (%g), sorted %d (%g)", q, l, Distance(q, style[l]), s, Distance(q, style[s]))
		}
	}
}

func TestNewMatcherEmptyPanics(t *testing.T) {
	for _, kind := range []MatcherKind{MatchLinear, MatchSorted} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%v: expected panic", kind)
				}
			}()
			NewMatcher(kind, nil)
		}()
	}
}

func TestParseMatcherKind(t *testing.T) {
	for _, kind := range []MatcherKind{MatchLinear, MatchSorted} {
		got, err := ParseMatcherKind(kind.String())
		if err != nil || got != kind {
			t.Errorf("ParseMatcherKind(%q) = %v, %v", kind.String(), got, err)
		}
	}
	if _, err := ParseMatcherKind("kdtree"); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("got %v, want ErrInvalidOptions", err)
	}
}
