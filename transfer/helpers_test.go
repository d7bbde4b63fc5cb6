package transfer

var (
	red   = [3]uint8{255, 0, 0}
	blue  = [3]uint8{0, 0, 255}
	black = [3]uint8{0, 0, 0}
	white = [3]uint8{255, 255, 255}
)

func newTestImage(width, height int, fill func(x, y int) [3]uint8) *Image {
	im := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			im.Set(x, y, fill(x, y))
		}
	}
	return im
}

func solid(c [3]uint8) func(x, y int) [3]uint8 {
	return func(x, y int) [3]uint8 { return c }
}

// noise returns a deterministic pseudo-random fill.
func noise(seed uint32) func(x, y int) [3]uint8 {
	return func(x, y int) [3]uint8 {
		h := seed ^ uint32(x)*2654435761 ^ uint32(y)*2246822519
		h ^= h >> 13
		h *= 3266489917
		h ^= h >> 16
		return [3]uint8{uint8(h), uint8(h >> 8), uint8(h >> 16)}
	}
}

func solidPatch(size int, c [3]uint8) Patch {
	return crop(newTestImage(size, size, solid(c)), 0, 0, size)
}
