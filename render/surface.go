package render

import "image"

// Textures exposes decoded texture images by palette index.
type Textures interface {
	Len() int
	Image(i int) image.Image
	Generation(i int) int
}

// Surface is a fixed-size drawing target.
type Surface interface {
	Bounds() image.Rectangle
	Clear()
	// DrawTexture scales texture index to fill dst. Missing textures are skipped.
	DrawTexture(t Textures, index int, dst image.Rectangle)
}

// span returns the pixel range [lo, hi) of slot i when total pixels are split
// into n slots. Edges round up so that floor(p*n/total) == i for every p in it.
func span(i, n, total int) (lo, hi int) {
	return ceilDiv(i*total, n), ceilDiv((i+1)*total, n)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// slotAt is the inverse of span: the slot containing pixel p.
func slotAt(p, n, total int) (int, bool) {
	if p < 0 || p >= total || n <= 0 {
		return 0, false
	}
	return p * n / total, true
}
