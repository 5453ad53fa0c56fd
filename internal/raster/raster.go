// Package raster is the software render target: an *image.RGBA frame with
// anti-aliased primitives, texture blits and text. It implements
// surface.Surface, surface.Textures and the capture readback.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/surface"
)

// ErrUnknownTexture is returned for handles that were never issued or
// were released.
var ErrUnknownTexture = errors.New("unknown texture")

// Canvas draws into a target frame. The zero value is not usable; call New.
type Canvas struct {
	dst      *image.RGBA
	dpi      float64
	textures map[surface.Texture]*image.RGBA
	next     surface.Texture
}

var (
	_ surface.Surface  = (*Canvas)(nil)
	_ surface.Textures = (*Canvas)(nil)
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithTarget draws into an existing frame, for example a window buffer.
func WithTarget(dst *image.RGBA) Option { return func(c *Canvas) { c.dst = dst } }

// WithDPIScale sets the device pixel ratio reported to readback users.
func WithDPIScale(s float64) Option { return func(c *Canvas) { c.dpi = s } }

// New returns a canvas with a w×h frame.
func New(w, h int, opts ...Option) *Canvas {
	c := &Canvas{
		dpi:      1,
		textures: make(map[surface.Texture]*image.RGBA),
	}
	for _, o := range opts {
		o(c)
	}
	if c.dst == nil {
		c.dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return c
}

// Target is the frame being drawn.
func (c *Canvas) Target() *image.RGBA { return c.dst }

// SetTarget redirects drawing, for example after a window resize.
func (c *Canvas) SetTarget(dst *image.RGBA) { c.dst = dst }

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(r geom.Rect, col color.Color) {
	draw.Draw(c.dst, r.Image(), image.NewUniform(col), image.Point{}, draw.Over)
}

// DrawRectOutline strokes r with the border lying inside r.
func (c *Canvas) DrawRectOutline(r geom.Rect, thickness float64, col color.Color) {
	if thickness <= 0 {
		return
	}
	t := math.Min(thickness, math.Min(r.Dx(), r.Dy())/2)
	c.FillRect(geom.Rect{Min: r.Min, Max: geom.V(r.Max.X, r.Min.Y+t)}, col)
	c.FillRect(geom.Rect{Min: geom.V(r.Min.X, r.Max.Y-t), Max: r.Max}, col)
	c.FillRect(geom.Rect{Min: geom.V(r.Min.X, r.Min.Y+t), Max: geom.V(r.Min.X+t, r.Max.Y-t)}, col)
	c.FillRect(geom.Rect{Min: geom.V(r.Max.X-t, r.Min.Y+t), Max: geom.V(r.Max.X, r.Max.Y-t)}, col)
}

// DrawLine strokes a round-capped segment.
func (c *Canvas) DrawLine(a, b geom.Vec2, thickness float64, col color.Color) {
	if thickness <= 0 {
		return
	}
	box := geom.RectFromPoints(a, b).Inset(-(thickness/2 + 1))
	c.coverage(box, col, func(ctx *gg.Context, o geom.Vec2) error {
		ctx.SetLineWidth(thickness)
		ctx.SetLineCap(gg.LineCapRound)
		ctx.DrawLine(a.X-o.X, a.Y-o.Y, b.X-o.X, b.Y-o.Y)
		return ctx.Stroke()
	})
}

func (c *Canvas) FillCircle(center geom.Vec2, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	box := geom.Rect{Min: center, Max: center}.Inset(-(radius + 1))
	c.coverage(box, col, func(ctx *gg.Context, o geom.Vec2) error {
		ctx.DrawCircle(center.X-o.X, center.Y-o.Y, radius)
		return ctx.Fill()
	})
}

// coverage rasterises a path over the visible part of box with gg and
// composites col through the resulting alpha.
func (c *Canvas) coverage(box geom.Rect, col color.Color, path func(*gg.Context, geom.Vec2) error) {
	clip := box.Image().Intersect(c.dst.Bounds())
	if clip.Empty() {
		return
	}
	ctx := gg.NewContext(clip.Dx(), clip.Dy())
	defer ctx.Close()
	ctx.SetColor(color.White)
	if err := path(ctx, geom.FromPoint(clip.Min)); err != nil {
		log.Printf("raster: %v", err)
		return
	}
	mask := ctx.Image()
	draw.DrawMask(c.dst, clip, image.NewUniform(col), image.Point{}, mask, mask.Bounds().Min, draw.Over)
}

// DrawTexturedRect scales the src part of tex into dst. Only the alpha of
// tint is applied.
func (c *Canvas) DrawTexturedRect(tex surface.Texture, src image.Rectangle, dst geom.Rect, tint color.RGBA) {
	img, ok := c.textures[tex]
	if !ok || tint.A == 0 {
		return
	}
	dr := dst.Image()
	if !dr.Overlaps(c.dst.Bounds()) {
		return
	}
	var opts *xdraw.Options
	if tint.A != 255 {
		opts = &xdraw.Options{SrcMask: image.NewUniform(color.Alpha{A: tint.A})}
	}
	var scaler xdraw.Scaler = xdraw.ApproxBiLinear
	// magnified images stay crisp
	if dr.Dx() >= 2*src.Dx() {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(c.dst, dr, img, src, xdraw.Over, opts)
}

// Upload copies img into a new texture.
func (c *Canvas) Upload(img *image.RGBA) (surface.Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return 0, fmt.Errorf("upload: empty image")
	}
	c.next++
	c.textures[c.next] = copyRGBA(img)
	return c.next, nil
}

// Update replaces the pixels of tex.
func (c *Canvas) Update(tex surface.Texture, img *image.RGBA) error {
	if _, ok := c.textures[tex]; !ok {
		return fmt.Errorf("update %d: %w", tex, ErrUnknownTexture)
	}
	c.textures[tex] = copyRGBA(img)
	return nil
}

func (c *Canvas) Release(tex surface.Texture) {
	delete(c.textures, tex)
}

// Bounds is the readable frame area in device pixels.
func (c *Canvas) Bounds() image.Rectangle { return c.dst.Bounds() }

// DPIScale is the device pixel ratio.
func (c *Canvas) DPIScale() float64 { return c.dpi }

// ReadPixels returns r as tightly packed RGBA rows, last row first, the
// way GPU framebuffer readback delivers them.
func (c *Canvas) ReadPixels(r image.Rectangle) ([]byte, error) {
	if !r.In(c.dst.Bounds()) || r.Empty() {
		return nil, fmt.Errorf("read %v outside frame %v", r, c.dst.Bounds())
	}
	stride := r.Dx() * 4
	out := make([]byte, stride*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.dst.Pix[c.dst.PixOffset(r.Min.X, y):][:stride]
		copy(out[(r.Max.Y-1-y)*stride:], row)
	}
	return out, nil
}

func copyRGBA(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out
}
