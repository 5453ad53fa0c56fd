package scene

import (
	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/viewport"
)

// Resize handle geometry, in screen pixels.
const (
	HandleSide      = 10
	HandlePadding   = 8
	OutlineWidth    = 2
	PickMargin      = HandlePadding + HandleSide/2
	MinEntityExtent = 1
)

// Corner names a resize handle.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

var cornerNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right"}

func (c Corner) String() string {
	if c < 0 || int(c) >= len(cornerNames) {
		return "unknown"
	}
	return cornerNames[c]
}

// Left reports whether the corner is on the left edge.
func (c Corner) Left() bool { return c == TopLeft || c == BottomLeft }

// Top reports whether the corner is on the top edge.
func (c Corner) Top() bool { return c == TopLeft || c == TopRight }

// Selectable reports whether picking considers e. Strokes are only ever
// erased, never selected.
func Selectable(e Entity) bool {
	return e.Kind() != KindStroke
}

// Pick returns the front-most selectable entity whose screen bounds,
// grown by PickMargin, contain p.
func Pick(s *Store, vp viewport.Viewport, p geom.Vec2) (ID, bool) {
	var hit ID
	found := false
	s.EachReverse(func(id ID, e Entity) bool {
		if !Selectable(e) {
			return true
		}
		if ScreenBounds(e, vp).Inset(-PickMargin).Contains(p) {
			hit, found = id, true
			return false
		}
		return true
	})
	return hit, found
}

// Outline is the padded frame drawn around a selected entity.
func Outline(screen geom.Rect) geom.Rect {
	return screen.Inset(-HandlePadding)
}

// Handles returns the four handle squares for an entity drawn at screen,
// indexed by Corner.
func Handles(screen geom.Rect) [4]geom.Rect {
	o := Outline(screen)
	sq := func(c geom.Vec2) geom.Rect {
		return geom.R(c.X-HandleSide/2, c.Y-HandleSide/2, HandleSide, HandleSide)
	}
	return [4]geom.Rect{
		TopLeft:     sq(o.Min),
		TopRight:    sq(geom.V(o.Max.X, o.Min.Y)),
		BottomLeft:  sq(geom.V(o.Min.X, o.Max.Y)),
		BottomRight: sq(o.Max),
	}
}

// HandleAt reports which handle of an entity drawn at screen contains p.
func HandleAt(screen geom.Rect, p geom.Vec2) (Corner, bool) {
	for i, h := range Handles(screen) {
		if h.Contains(p) {
			return Corner(i), true
		}
	}
	return 0, false
}
