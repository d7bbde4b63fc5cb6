package transfer

import (
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options configures a transfer.
type Options struct {
	PatchSize int
	Stride    int
	Placement Placement
	Overlap   OverlapMode
	Matcher   MatcherKind
	// Workers is the number of goroutines matching content patches.
	// Zero or less uses runtime.NumCPU. Composition is always sequential,
	// so the result does not depend on it.
	Workers int
}

// DefaultOptions returns 5x5 patches at stride 1 with exact overlap counts.
func DefaultOptions() Options {
	return Options{PatchSize: 5, Stride: 1, Workers: 1}
}

// Legacy switches opts to the placement and overlap accounting of the
// original tool.
func (opts Options) Legacy() Options {
	opts.Placement = PlaceByScanIndex
	opts.Overlap = OverlapLegacy
	return opts
}

func (opts Options) validate() error {
	if opts.PatchSize < 1 {
		return fmt.Errorf("patch size %d is not positive: %w", opts.PatchSize, ErrInvalidOptions)
	}
	if opts.Stride < 1 {
		return fmt.Errorf("stride %d is not positive: %w", opts.Stride, ErrInvalidOptions)
	}
	if opts.Placement != PlaceAtOrigin && opts.Placement != PlaceByScanIndex {
		return fmt.Errorf("unknown placement %d: %w", opts.Placement, ErrInvalidOptions)
	}
	if opts.Overlap != OverlapExact && opts.Overlap != OverlapLegacy {
		return fmt.Errorf("unknown overlap mode %d: %w", opts.Overlap, ErrInvalidOptions)
	}
	if opts.Matcher != MatchLinear && opts.Matcher != MatchSorted {
		return fmt.Errorf("unknown matcher %v: %w", opts.Matcher, ErrInvalidOptions)
	}
	return nil
}

// Result holds the raw output of a transfer.
type Result struct {
	Canvas  *Canvas
	Overlap *Overlap
	// Matches[i] is the index of the style patch chosen for content patch i.
	Matches        []int
	ContentPatches int
	StylePatches   int
}

// Image returns the normalized, displayable result.
func (r *Result) Image() *image.RGBA {
	return Normalize(r.Canvas, r.Overlap)
}

// Transfer rebuilds content out of the patches of style.
func Transfer(content, style *Image, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if content.Size() != style.Size() {
		return nil, &DimensionMismatchError{Content: content.Size(), Style: style.Size()}
	}
	contentPatches := Extract(content, opts.PatchSize, opts.Stride)
	if len(contentPatches) == 0 {
		return nil, emptyInput("content", content, opts)
	}
	stylePatches := Extract(style, opts.PatchSize, opts.Stride)
	if len(stylePatches) == 0 {
		return nil, emptyInput("style", style, opts)
	}

	styleFeatures, err := FeaturizeAll(stylePatches)
	if err != nil {
		return nil, err
	}
	matches, err := match(contentPatches, NewMatcher(opts.Matcher, styleFeatures), opts.Workers)
	if err != nil {
		return nil, err
	}

	canvas := NewCanvas(content.Width, content.Height)
	overlap := NewOverlap(content.Width, content.Height)
	exact := overlap
	if opts.Overlap == OverlapLegacy {
		exact = nil
	}
	var at image.Point
	for i, p := range contentPatches {
		at = p.Origin
		if opts.Placement == PlaceByScanIndex {
			at = scanIndexPoint(i, content.Width, opts.Stride)
		}
		canvas.Compose(stylePatches[matches[i]], at, exact)
	}
	if opts.Overlap == OverlapLegacy {
		legacyOverlap(overlap, opts.PatchSize, at)
	}

	return &Result{
		Canvas:         canvas,
		Overlap:        overlap,
		Matches:        matches,
		ContentPatches: len(contentPatches),
		StylePatches:   len(stylePatches),
	}, nil
}

func emptyInput(name string, im *Image, opts Options) error {
	return &EmptyInputError{Image: name, Size: im.Size(), PatchSize: opts.PatchSize, Stride: opts.Stride}
}

// match finds the nearest style patch for every content patch. Each worker
// handles a contiguous range of patches and only reads from m.
func match(patches PatchSet, m Matcher, workers int) ([]int, error) {
	n := len(patches)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, n)
	chunk := (n + workers - 1) / workers

	matches := make([]int, n)
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				f, err := Featurize(patches[i])
				if err != nil {
					return err
				}
				matches[i] = m.Nearest(f)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}
