// Package viewport maps between world space, where entities live, and the
// screen space of the window.
package viewport

import (
	"math"

	"github.com/example/whiteboard/internal/geom"
)

const (
	// ZoomStep is the relative scale change per wheel tick.
	ZoomStep = 0.2
	MinScale = 0.05
	MaxScale = 40
)

// Viewport is a pan offset (world units) and a uniform scale.
// Scale is always positive.
type Viewport struct {
	Offset geom.Vec2
	Scale  float64
}

// New returns the identity viewport.
func New() Viewport {
	return Viewport{Scale: 1}
}

// ToScreen maps a world point to screen pixels.
func (v Viewport) ToScreen(w geom.Vec2) geom.Vec2 {
	return w.Add(v.Offset).Mul(v.Scale)
}

// ToWorld maps a screen pixel to world space.
func (v Viewport) ToWorld(s geom.Vec2) geom.Vec2 {
	return s.Div(v.Scale).Sub(v.Offset)
}

func (v Viewport) RectToScreen(r geom.Rect) geom.Rect {
	return geom.Rect{Min: v.ToScreen(r.Min), Max: v.ToScreen(r.Max)}
}

func (v Viewport) RectToWorld(r geom.Rect) geom.Rect {
	return geom.Rect{Min: v.ToWorld(r.Min), Max: v.ToWorld(r.Max)}
}

// Pan moves the view by a screen-space cursor displacement, so the
// world point under the cursor follows it.
func (v *Viewport) Pan(delta geom.Vec2) {
	v.Offset = v.Offset.Add(delta.Div(v.Scale))
}

// Zoom scales by ZoomStep per tick, keeping the world point under cursor
// fixed on screen. Positive ticks zoom in.
func (v *Viewport) Zoom(ticks float64, cursor geom.Vec2) {
	if ticks == 0 {
		return
	}
	next := clamp(v.Scale*(1+ZoomStep*ticks), MinScale, MaxScale)
	if next == v.Scale {
		return
	}
	// effective step after clamping
	amt := next/v.Scale - 1
	v.Scale = next
	v.Offset = v.Offset.Sub(cursor.Mul(amt / next))
}

// ZoomCenter zooms anchored at the middle of a window of the given size.
func (v *Viewport) ZoomCenter(ticks float64, size geom.Vec2) {
	v.Zoom(ticks, size.Div(2))
}

// Percent is the scale as a rounded percentage, for display.
func (v Viewport) Percent() int {
	return int(math.Round(v.Scale * 100))
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
