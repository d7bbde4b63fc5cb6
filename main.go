// Rebuilds content images out of patches of style images.
//
// Details:
//   Both images of a pair are resized to the same resolution and cut into
//   square patches. Every content patch is replaced by the style patch whose
//   grayscale mean and standard deviation are closest, and the result is
//   divided by the per-pixel overlap count. Pairs are formed by position from
//   the sorted contents of <root>/content and <root>/style.
//
// Usage:
//   go run . \
//    --root=images \
//    --patch=2 --stride=2 \
//    --figure=Styled_Finished.jpg
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"style-transfer-cli/imageio"
	"style-transfer-cli/transfer"
)

var rootFlag = flag.String("root", "images", "Directory holding the content/ and style/ image directories.")
var widthFlag = flag.Int("width", imageio.DefaultSize.X, "Width every image is resized to.")
var heightFlag = flag.Int("height", imageio.DefaultSize.Y, "Height every image is resized to.")
var patchFlag = flag.Int("patch", 2, "Side length of the square patches, in pixels.")
var strideFlag = flag.Int("stride", 2, "Distance between neighboring patch corners, in pixels.")
var placementFlag = flag.String("placement", "origin", "Where matched patches are written: 'origin' or 'index'.")
var overlapFlag = flag.String("overlap", "exact", "Overlap accounting: 'exact' or 'legacy'.")
var matcherFlag = flag.String("matcher", "linear", "Nearest patch search: 'linear' or 'sorted'.")
var legacyFlag = flag.Bool("legacy", false, "Reproduce the original tool: same as --placement=index --overlap=legacy.")
var workersFlag = flag.Int("workers", 0, "Number of pairs processed at once. Zero uses every CPU.")
var rowsFlag = flag.Int("rows", 3, "Maximum number of pairs shown in the figure.")
var scaleFlag = flag.Int("scale", 1, "Integer upscaling applied to the images in the figure.")
var figureFlag = flag.String("figure", "Styled_Finished.jpg", "Output file for the comparison figure. Empty disables it.")
var outFlag = flag.String("out", "", "Optional directory receiving one PNG per transferred pair.")

func main() {
	flag.Parse()

	opts, err := options()
	if err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	t := time.Now()
	pairs, err := imageio.LoadPairs(*rootFlag, image.Pt(*widthFlag, *heightFlag))
	if err != nil {
		log.Fatalf("failed to load images: %v", err)
	}
	if len(pairs) == 0 {
		log.Fatalf("no image pairs found under %v", *rootFlag)
	}
	log.Printf("loaded %d pairs in %.3gms", len(pairs), time.Since(t).Seconds()*1000)

	t = time.Now()
	results := transfer.Batch(context.Background(), pairs, opts, *workersFlag)
	log.Printf("transferred %d pairs in %.3gms", len(results), time.Since(t).Seconds()*1000)

	if *outFlag != "" {
		if err := os.MkdirAll(*outFlag, 0o755); err != nil {
			log.Fatalf("failed to create output directory %v: %v", *outFlag, err)
		}
	}

	fig := &imageio.Figure{Scale: *scaleFlag}
	failed := 0
	for i, r := range results {
		if r.Err != nil {
			log.Printf("pair %d (%s): %v", i, r.Name, r.Err)
			failed++
			continue
		}
		log.Printf("pair %d (%s): patch count content: %d style: %d", i, r.Name, r.ContentPatches, r.StylePatches)
		styled := r.Image()
		if *outFlag != "" {
			file := filepath.Join(*outFlag, outputName(i, r.Name))
			if err := imageio.SaveImage(styled, file); err != nil {
				log.Printf("pair %d (%s): %v", i, r.Name, err)
			}
		}
		if fig.Len() < *rowsFlag {
			fig.Add(r.Content.ToImage(), r.Style.ToImage(), styled)
		}
	}
	if failed == len(results) {
		log.Fatalf("all %d pairs failed", failed)
	}

	if *figureFlag != "" {
		if err := fig.Save(*figureFlag); err != nil {
			log.Fatalf("failed to write figure: %v", err)
		}
		log.Printf("saved figure: %s", *figureFlag)
	}
}

func options() (transfer.Options, error) {
	opts := transfer.Options{
		PatchSize: *patchFlag,
		Stride:    *strideFlag,
		// Pairs already run in parallel.
		Workers: 1,
	}
	switch *placementFlag {
	case "origin":
		opts.Placement = transfer.PlaceAtOrigin
	case "index":
		opts.Placement = transfer.PlaceByScanIndex
	default:
		return opts, fmt.Errorf("unknown placement %q: %w", *placementFlag, transfer.ErrInvalidOptions)
	}
	switch *overlapFlag {
	case "exact":
		opts.Overlap = transfer.OverlapExact
	case "legacy":
		opts.Overlap = transfer.OverlapLegacy
	default:
		return opts, fmt.Errorf("unknown overlap mode %q: %w", *overlapFlag, transfer.ErrInvalidOptions)
	}
	m, err := transfer.ParseMatcherKind(*matcherFlag)
	if err != nil {
		return opts, err
	}
	opts.Matcher = m
	if *legacyFlag {
		opts = opts.Legacy()
	}
	return opts, nil
}

// outputName turns "a.jpg+b.png" into "000_a_b.png".
func outputName(i int, name string) string {
	parts := strings.Split(name, "+")
	for j, p := range parts {
		parts[j] = strings.TrimSuffix(p, filepath.Ext(p))
	}
	return strings.Join(append([]string{fmt.Sprintf("%03d", i)}, parts...), "_") + ".png"
}
