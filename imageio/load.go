// Package imageio loads content and style images from disk and writes the
// comparison figure.
package imageio

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" // Register WebP decoder.

	"style-transfer-cli/transfer"
)

// DefaultSize is the resolution every image is resized to before transfer.
var DefaultSize = image.Pt(100, 74)

// Named is a decoded, resized image and the file it came from.
type Named struct {
	Name  string
	Image *transfer.Image
}

// LoadDir decodes every image file in dir, in name order, and resizes each to
// size. Entries that are directories or cannot be decoded are skipped.
func LoadDir(dir string, size image.Point) ([]Named, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %v: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []Named
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		file := filepath.Join(dir, e.Name())
		t := time.Now()
		im, err := Load(file, size)
		if err != nil {
			log.Printf("skip %v: %v", file, err)
			continue
		}
		log.Printf("load image: %s, %.3gms", file, time.Since(t).Seconds()*1000)
		out = append(out, Named{Name: e.Name(), Image: im})
	}
	return out, nil
}

// Load decodes one image file, applying its EXIF orientation, and resizes it
// to size with bilinear interpolation.
func Load(file string, size image.Point) (*transfer.Image, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("invalid target size %v", size)
	}
	m, err := imaging.Open(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed decoding image %v: %w", file, err)
	}
	if m.Bounds().Size() != size {
		m = resize.Resize(uint(size.X), uint(size.Y), m, resize.Bilinear)
	}
	return transfer.FromImage(m), nil
}

// LoadPairs loads root/content and root/style and pairs their images by
// position. Extra images in the longer directory are ignored.
func LoadPairs(root string, size image.Point) ([]transfer.Pair, error) {
	content, err := LoadDir(filepath.Join(root, "content"), size)
	if err != nil {
		return nil, err
	}
	style, err := LoadDir(filepath.Join(root, "style"), size)
	if err != nil {
		return nil, err
	}
	n := min(len(content), len(style))
	if len(content) != len(style) {
		log.Printf("found %d content and %d style images, using the first %d of each", len(content), len(style), n)
	}
	pairs := make([]transfer.Pair, n)
	for i := range pairs {
		pairs[i] = transfer.Pair{
			Name:    content[i].Name + "+" + style[i].Name,
			Content: content[i].Image,
			Style:   style[i].Image,
		}
	}
	return pairs, nil
}
