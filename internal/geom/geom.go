// Package geom holds the float vector and axis-aligned rectangle types
// shared by world space and screen space.
package geom

import (
	"image"
	"math"
)

// Vec2 is a point or displacement.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{x, y} }

// FromPoint converts an integer pixel position.
func FromPoint(p image.Point) Vec2 { return Vec2{float64(p.X), float64(p.Y)} }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Div(k float64) Vec2 { return Vec2{v.X / k, v.Y / k} }
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64       { return math.Hypot(v.X, v.Y) }
func (v Vec2) Eq(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Point rounds down to an integer pixel position.
func (v Vec2) Point() image.Point {
	return image.Pt(int(math.Floor(v.X)), int(math.Floor(v.Y)))
}

// Rect is an axis-aligned box. Min is the top-left corner.
// A canonical Rect has Min <= Max on both axes.
type Rect struct {
	Min, Max Vec2
}

// R builds a Rect from its origin and size.
func R(x, y, w, h float64) Rect {
	return Rect{Vec2{x, y}, Vec2{x + w, y + h}}
}

// RectFromPoints returns the canonical rectangle spanned by two corners,
// whatever direction the user dragged in.
func RectFromPoints(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

func (r Rect) Size() Vec2      { return r.Max.Sub(r.Min) }
func (r Rect) Dx() float64     { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64     { return r.Max.Y - r.Min.Y }
func (r Rect) Center() Vec2    { return r.Min.Add(r.Max).Div(2) }
func (r Rect) Empty() bool     { return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y }
func (r Rect) Add(d Vec2) Rect { return Rect{r.Min.Add(d), r.Max.Add(d)} }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Inset shrinks r by n on every side; a negative n grows it.
func (r Rect) Inset(n float64) Rect {
	return Rect{Vec2{r.Min.X + n, r.Min.Y + n}, Vec2{r.Max.X - n, r.Max.Y - n}}
}

// Union returns the smallest rect containing both.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		Min: Vec2{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Vec2{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Intersects reports whether the two rects overlap, edges included.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X && r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Intersect returns the largest rect contained in both. The result is the
// zero Rect when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Min: Vec2{math.Max(r.Min.X, o.Min.X), math.Max(r.Min.Y, o.Min.Y)},
		Max: Vec2{math.Min(r.Max.X, o.Max.X), math.Min(r.Max.Y, o.Max.Y)},
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Image rounds r outward to integer pixels.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}

// FromImage converts an integer rectangle.
func FromImage(r image.Rectangle) Rect {
	return Rect{FromPoint(r.Min), FromPoint(r.Max)}
}

// SegmentCircle reports whether the segment ab passes within radius of c.
func SegmentCircle(a, b, c Vec2, radius float64) bool {
	ab := b.Sub(a)
	t := 0.0
	if l2 := ab.Dot(ab); l2 > 0 {
		t = math.Max(0, math.Min(1, c.Sub(a).Dot(ab)/l2))
	}
	return a.Add(ab.Mul(t)).Sub(c).Len() <= radius
}
