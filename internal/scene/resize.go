package scene

import (
	"math"

	"github.com/example/whiteboard/internal/geom"
)

// Resize drags corner c of e by d world units, keeping the opposite corner
// fixed. Boxes never shrink below MinEntityExtent. Text has no free
// width or height, so its font size follows the horizontal component
// instead, in proportion to its current width; rem carries the fractional
// part of the font size between calls.
func Resize(e Entity, c Corner, d geom.Vec2, rem *float64) {
	switch v := e.(type) {
	case *Rectangle:
		v.Pos, v.Size = resizeBox(v.Pos, v.Size, c, d)
	case *Image:
		v.Pos, v.Size = resizeBox(v.Pos, v.Size, c, d)
	case *Text:
		dx := d.X
		if c.Left() {
			dx = -dx
		}
		w := v.Bounds().Dx()
		step := dx
		if w > 0 {
			step = dx * float64(v.FontSize) / w
		}
		*rem += step
		whole := math.Trunc(*rem)
		*rem -= whole
		v.FontSize = max(MinFontSize, v.FontSize+int(whole))
	}
}

func resizeBox(pos, size geom.Vec2, c Corner, d geom.Vec2) (geom.Vec2, geom.Vec2) {
	minX, minY := pos.X, pos.Y
	maxX, maxY := pos.X+size.X, pos.Y+size.Y
	if c.Left() {
		minX = math.Min(minX+d.X, maxX-MinEntityExtent)
	} else {
		maxX = math.Max(maxX+d.X, minX+MinEntityExtent)
	}
	if c.Top() {
		minY = math.Min(minY+d.Y, maxY-MinEntityExtent)
	} else {
		maxY = math.Max(maxY+d.Y, minY+MinEntityExtent)
	}
	return geom.V(minX, minY), geom.V(maxX-minX, maxY-minY)
}
