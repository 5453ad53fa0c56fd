// Package surface declares the drawing capabilities the editor renders
// through. Implementations live elsewhere; see internal/raster.
package surface

import (
	"image"
	"image/color"

	"github.com/example/whiteboard/internal/geom"
)

// Texture is an opaque handle to uploaded pixels. The zero value is no texture.
type Texture uint32

// Surface is a frame's render target, in screen pixels.
type Surface interface {
	Clear(c color.Color)
	DrawLine(a, b geom.Vec2, thickness float64, c color.Color)
	// DrawTexturedRect draws the src sub-rectangle of tex scaled into dst,
	// modulated by tint.
	DrawTexturedRect(tex Texture, src image.Rectangle, dst geom.Rect, tint color.RGBA)
	DrawRectOutline(r geom.Rect, thickness float64, c color.Color)
	FillRect(r geom.Rect, c color.Color)
	FillCircle(center geom.Vec2, radius float64, c color.Color)
	DrawText(s string, at geom.Vec2, size, spacing float64, c color.Color)
	MeasureText(s string, size, spacing float64) geom.Vec2
}

// Textures uploads and re-syncs pixel buffers.
type Textures interface {
	Upload(img *image.RGBA) (Texture, error)
	Update(tex Texture, img *image.RGBA) error
	Release(tex Texture)
}
