package raster

import (
	"image"
	"image/color"
	"log"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/whiteboard/internal/geom"
)

// UIFontSize selects the fixed bitmap face used for toolbar labels.
const UIFontSize = 13

var (
	regular *opentype.Font
	faces   sync.Map // map[int]font.Face, keyed by quarter points
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	regular = f
}

func faceForSize(size float64) font.Face {
	if size == UIFontSize {
		return basicfont.Face7x13
	}
	size = math.Max(size, 1)
	key := int(math.Round(size * 4))
	if face, ok := faces.Load(key); ok {
		return face.(font.Face)
	}
	face, err := opentype.NewFace(regular, &opentype.FaceOptions{Size: float64(key) / 4, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("font face %v: %v", size, err)
		return basicfont.Face7x13
	}
	faces.Store(key, face)
	return face
}

// MeasureText returns the box a single line occupies, with spacing added
// between glyphs.
func (c *Canvas) MeasureText(s string, size, spacing float64) geom.Vec2 {
	return measure(faceForSize(size), s, spacing)
}

func measure(face font.Face, s string, spacing float64) geom.Vec2 {
	m := face.Metrics()
	var w fixed.Int26_6
	n := 0
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			w += face.Kern(prev, r)
		}
		adv, _ := face.GlyphAdvance(r)
		w += adv
		prev = r
		n++
	}
	width := float64(w) / 64
	if n > 1 {
		width += spacing * float64(n-1)
	}
	return geom.V(width, float64(m.Ascent.Ceil()+m.Descent.Ceil()))
}

// DrawText draws s with its top-left corner at the given point.
func (c *Canvas) DrawText(s string, at geom.Vec2, size, spacing float64, col color.Color) {
	face := faceForSize(size)
	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(at.X * 64), Y: fixed.I(int(at.Y) + face.Metrics().Ascent.Ceil())},
	}
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			d.Dot.X += face.Kern(prev, r) + fixed.Int26_6(spacing*64)
		}
		d.DrawString(string(r))
		prev = r
	}
}
