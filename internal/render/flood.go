package render

import (
	"image"
	"image/color"
)

const (
	// DefaultTolerance is the per-channel distance a pixel may be from the
	// seed colour and still be removed.
	DefaultTolerance = 30
	// FaintAlpha is the alpha at or below which a pixel counts as already
	// background, whatever its colour.
	FaintAlpha = 20
)

// FloodRemove clears the 4-connected region around seed whose colour is
// within tolerance of the seed colour, walking through faint pixels too.
// Fully transparent pixels stop the fill, so a second call at the same
// seed does nothing. It returns the number of pixels cleared.
func FloodRemove(img *image.RGBA, seed image.Point, tolerance int) int {
	if img == nil || !seed.In(img.Bounds()) {
		return 0
	}
	target := straight(img.RGBAAt(seed.X, seed.Y))
	if target.A == 0 {
		return 0
	}

	b := img.Bounds()
	n := 0
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !p.In(b) {
			continue
		}
		c := straight(img.RGBAAt(p.X, p.Y))
		if c.A == 0 {
			continue
		}
		if c.A > FaintAlpha && !similar(c, target, tolerance) {
			continue
		}
		img.SetRGBA(p.X, p.Y, transparent)
		n++
		stack = append(stack,
			image.Pt(p.X, p.Y-1),
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X-1, p.Y),
		)
	}
	return n
}

func similar(a, b color.NRGBA, tol int) bool {
	return absDiff(a.R, b.R) <= tol && absDiff(a.G, b.G) <= tol && absDiff(a.B, b.B) <= tol
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// straight converts premultiplied storage back to the colour the user sees.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
