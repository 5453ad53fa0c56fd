package render

import "image"

// Erode clears every visible pixel that has a transparent pixel directly
// above, below, left or right of it. Pixels outside the buffer count as
// transparent, so an opaque image loses its one-pixel border. The
// neighbourhood is read from a snapshot taken before any pixel changes.
// It returns the number of pixels cleared.
func Erode(img *image.RGBA) int {
	if img == nil {
		return 0
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 0
	}
	alpha := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alpha[y*w+x] = img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3] != 0
		}
	}
	solid := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return alpha[y*w+x]
	}

	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !alpha[y*w+x] {
				continue
			}
			if solid(x, y-1) && solid(x+1, y) && solid(x, y+1) && solid(x-1, y) {
				continue
			}
			img.SetRGBA(b.Min.X+x, b.Min.Y+y, transparent)
			n++
		}
	}
	return n
}
