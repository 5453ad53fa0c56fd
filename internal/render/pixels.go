// Package render applies in-place edits to RGBA pixel buffers: mirroring,
// flood removal of a background colour, alpha erosion and circular erase.
// Every function clips to the buffer bounds and skips anything outside.
package render

import (
	"image"
	"image/color"

	"github.com/example/whiteboard/internal/geom"
)

var transparent = color.RGBA{}

// FlipHorizontal mirrors img left to right.
func FlipHorizontal(img *image.RGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for l, r := 0, len(row)-4; l < r; l, r = l+4, r-4 {
			for k := 0; k < 4; k++ {
				row[l+k], row[r+k] = row[r+k], row[l+k]
			}
		}
	}
}

// FlipVertical mirrors img top to bottom.
func FlipVertical(img *image.RGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	n := b.Dx() * 4
	tmp := make([]byte, n)
	for top, bot := b.Min.Y, b.Max.Y-1; top < bot; top, bot = top+1, bot-1 {
		t := img.Pix[img.PixOffset(b.Min.X, top):][:n]
		u := img.Pix[img.PixOffset(b.Min.X, bot):][:n]
		copy(tmp, t)
		copy(t, u)
		copy(u, tmp)
	}
}

// Punch clears every pixel inside the ellipse at center with the given
// radii, all in pixel units. It returns the number of pixels changed.
func Punch(img *image.RGBA, center, radii geom.Vec2) int {
	if img == nil || radii.X <= 0 || radii.Y <= 0 {
		return 0
	}
	area := geom.Rect{Min: center.Sub(radii), Max: center.Add(radii)}.Image().Intersect(img.Bounds())
	n := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := (float64(x) + 0.5 - center.X) / radii.X
			dy := (float64(y) + 0.5 - center.Y) / radii.Y
			if dx*dx+dy*dy > 1 {
				continue
			}
			if img.RGBAAt(x, y).A != 0 {
				img.SetRGBA(x, y, transparent)
				n++
			}
		}
	}
	return n
}

// Copy returns a deep copy of img.
func Copy(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}
