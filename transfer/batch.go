package transfer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pair is one content and style image to be transferred together.
type Pair struct {
	Name           string
	Content, Style *Image
}

// PairResult is the outcome of transferring one Pair.
type PairResult struct {
	Pair
	*Result
	Err error
}

// Batch transfers every pair with up to workers pairs in flight; zero or
// less uses runtime.NumCPU. Results are in the order of pairs. A failing
// pair only sets its own Err. Pairs not started when ctx is done get
// ctx.Err().
func Batch(ctx context.Context, pairs []Pair, opts Options, workers int) []PairResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]PairResult, len(pairs))
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, pair := range pairs {
		results[i].Pair = pair
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Result, results[i].Err = Transfer(pair.Content, pair.Style, opts)
			return nil
		})
	}
	g.Wait()
	return results
}
