// Package scene stores the board's entities in paint order and answers
// which of them lies under a screen point.
package scene

import (
	"image"
	"image/color"

	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/surface"
	"github.com/example/whiteboard/internal/viewport"
)

// Kind distinguishes the entity variants.
type Kind int

const (
	KindStroke Kind = iota
	KindRectangle
	KindImage
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindStroke:
		return "stroke"
	case KindRectangle:
		return "rectangle"
	case KindImage:
		return "image"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Base holds the fields every entity carries. Pos is the world-space
// anchor, top-left for everything but strokes.
type Base struct {
	Pos      geom.Vec2
	Z        int64
	Selected bool
}

// Common gives access to the shared fields.
func (b *Base) Common() *Base { return b }

// Entity is implemented by *Stroke, *Rectangle, *Image and *Text only.
type Entity interface {
	Common() *Base
	Kind() Kind
	// Bounds is the world-space bounding box.
	Bounds() geom.Rect
	clone() Entity
}

// Stroke is one straight segment of a freehand path, from Pos to End.
type Stroke struct {
	Base
	End       geom.Vec2
	Thickness float64
	Color     color.RGBA
}

// NewStroke builds a segment between two world points.
func NewStroke(a, b geom.Vec2, thickness float64, c color.RGBA) *Stroke {
	return &Stroke{Base: Base{Pos: a}, End: b, Thickness: thickness, Color: c}
}

func (s *Stroke) Kind() Kind { return KindStroke }

func (s *Stroke) Bounds() geom.Rect {
	return geom.RectFromPoints(s.Pos, s.End).Inset(-s.Thickness / 2)
}

func (s *Stroke) clone() Entity {
	c := *s
	return &c
}

// Translate moves e by d world units.
func Translate(e Entity, d geom.Vec2) {
	b := e.Common()
	b.Pos = b.Pos.Add(d)
	if s, ok := e.(*Stroke); ok {
		s.End = s.End.Add(d)
	}
}

// Rectangle is an outlined box.
type Rectangle struct {
	Base
	Size      geom.Vec2
	Color     color.RGBA
	Thickness float64
}

func (r *Rectangle) Kind() Kind        { return KindRectangle }
func (r *Rectangle) Bounds() geom.Rect { return geom.Rect{Min: r.Pos, Max: r.Pos.Add(r.Size)} }

func (r *Rectangle) clone() Entity {
	c := *r
	return &c
}

// Image is a placed bitmap. Size is its world-space extent and is
// independent of the pixel dimensions. Current is the working copy edited
// in place; Original is kept for Reset.
type Image struct {
	Base
	Size     geom.Vec2
	Original *image.RGBA
	Current  *image.RGBA
	Texture  surface.Texture
}

// NewImage wraps pixels at pos, sized one world unit per pixel.
func NewImage(pos geom.Vec2, pix *image.RGBA) *Image {
	b := pix.Bounds()
	return &Image{
		Base:     Base{Pos: pos},
		Size:     geom.V(float64(b.Dx()), float64(b.Dy())),
		Original: cloneRGBA(pix),
		Current:  pix,
	}
}

func (m *Image) Kind() Kind        { return KindImage }
func (m *Image) Bounds() geom.Rect { return geom.Rect{Min: m.Pos, Max: m.Pos.Add(m.Size)} }

// PixelAt converts a screen point to image-local pixel coordinates,
// accounting for the displayed size versus the pixel size.
func (m *Image) PixelAt(vp viewport.Viewport, screen geom.Vec2) image.Point {
	local := screen.Sub(vp.ToScreen(m.Pos)).Div(vp.Scale)
	pb := m.Current.Bounds()
	x := local.X / (m.Size.X / float64(pb.Dx()))
	y := local.Y / (m.Size.Y / float64(pb.Dy()))
	return geom.V(x, y).Point().Add(pb.Min)
}

// Reset discards every pixel edit. The texture must be re-synced after.
func (m *Image) Reset() {
	m.Current = cloneRGBA(m.Original)
}

// clone copies both pixel buffers; the texture is left for the caller
// to upload.
func (m *Image) clone() Entity {
	c := *m
	c.Original = cloneRGBA(m.Original)
	c.Current = cloneRGBA(m.Current)
	c.Texture = 0
	return &c
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	if src == nil {
		return nil
	}
	dst := &image.RGBA{
		Pix:    make([]byte, len(src.Pix)),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	copy(dst.Pix, src.Pix)
	return dst
}

// Text defaults.
const (
	DefaultText     = "Enter text"
	DefaultFontSize = 40
	DefaultSpacing  = 2
	MinFontSize     = 4
)

// Text is a single line of text. Measured is the on-screen size at the
// scale it was last measured for; it is refreshed by Measure.
type Text struct {
	Base
	Content  string
	FontSize int
	Spacing  float64
	Color    color.RGBA

	Measured geom.Vec2
	key      measureKey
}

type measureKey struct {
	content  string
	fontSize int
	spacing  float64
	scale    float64
}

// NewText returns a text entity with the default content and size.
func NewText(pos geom.Vec2, c color.RGBA) *Text {
	return &Text{Base: Base{Pos: pos}, Content: DefaultText, FontSize: DefaultFontSize, Spacing: DefaultSpacing, Color: c}
}

func (t *Text) Kind() Kind { return KindText }

// Measurer reports the screen size of a string.
type Measurer interface {
	MeasureText(s string, size, spacing float64) geom.Vec2
}

// Measure recomputes Measured if the content, font size, spacing or scale
// changed since the last call.
func (t *Text) Measure(m Measurer, scale float64) {
	k := measureKey{t.Content, t.FontSize, t.Spacing, scale}
	if k == t.key {
		return
	}
	t.Measured = m.MeasureText(t.Content, float64(t.FontSize)*scale, t.Spacing*scale)
	t.key = k
}

// Bounds uses the last measurement, converted back to world units.
func (t *Text) Bounds() geom.Rect {
	size := t.Measured
	if t.key.scale > 0 {
		size = size.Div(t.key.scale)
	}
	return geom.Rect{Min: t.Pos, Max: t.Pos.Add(size)}
}

func (t *Text) clone() Entity {
	c := *t
	// strings are immutable; editing replaces Content, so the copy is independent
	return &c
}

// ScreenBounds returns where e is drawn on screen.
func ScreenBounds(e Entity, vp viewport.Viewport) geom.Rect {
	if t, ok := e.(*Text); ok && t.key.scale > 0 {
		p := vp.ToScreen(t.Pos)
		return geom.Rect{Min: p, Max: p.Add(t.Measured.Mul(vp.Scale / t.key.scale))}
	}
	return vp.RectToScreen(e.Bounds())
}
