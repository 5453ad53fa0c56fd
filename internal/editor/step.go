package editor

import (
	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/input"
	"github.com/example/whiteboard/internal/render"
	"github.com/example/whiteboard/internal/scene"
	"github.com/example/whiteboard/internal/toolbar"
)

// Step advances the board by one input frame in a window of the given
// size: keys, dropped files, pan and zoom, then the pointer.
func (e *Editor) Step(f input.Frame, size geom.Vec2) {
	e.size = size
	e.cursor = f.Cursor

	e.handleKeys(f.Keys)
	if len(f.Dropped) > 0 {
		e.ImportFiles(e.vp.ToWorld(f.Cursor), f.Dropped...)
	}
	e.handleView(f)
	e.measure()
	e.layout()
	e.handlePointer(f)
	e.measure()
	e.layout()
	e.updateHover(f)
}

func (e *Editor) handleView(f input.Frame) {
	if f.Down(input.Right) && !f.Pressed(input.Right) && f.Moved() {
		e.vp.Pan(f.Delta)
	}
	if f.Wheel != 0 {
		e.vp.Zoom(f.Wheel, f.Cursor)
	}
}

func commandForMode(m Mode) toolbar.Command {
	switch m {
	case ModeRectangle:
		return toolbar.CmdRectangle
	case ModePen:
		return toolbar.CmdPen
	case ModeText:
		return toolbar.CmdText
	case ModeErase:
		return toolbar.CmdEraser
	case ModeScreenshot, ModeDrawingScreenshot:
		return toolbar.CmdScreenshot
	}
	return toolbar.CmdSelect
}

// layout rebuilds both toolbars for the current window and selection.
func (e *Editor) layout() {
	e.primary = toolbar.Primary(e.size.X)
	e.primary.Selected = e.primary.Index(commandForMode(e.st.Mode))

	e.hasContext = false
	ent, ok := e.selectedEntity()
	if !ok {
		e.contextual = toolbar.Bar{Hovered: toolbar.None, Selected: toolbar.None}
		return
	}
	anchor := scene.ScreenBounds(ent, e.vp).Min
	e.contextual, e.hasContext = toolbar.Contextual(ent.Kind(), anchor)
	if e.fillArmed {
		e.contextual.Selected = e.contextual.Index(toolbar.CmdFill)
	}
}

func (e *Editor) overToolbar(p geom.Vec2) bool {
	return e.primary.Contains(p) || (e.hasContext && e.contextual.Contains(p))
}

func (e *Editor) updateHover(f input.Frame) {
	e.primary.Hovered, e.contextual.Hovered = toolbar.None, toolbar.None
	e.hovered = scene.ID{}
	if f.Down(input.Left) {
		return
	}
	e.primary.Hover(f.Cursor)
	if e.hasContext {
		e.contextual.Hover(f.Cursor)
	}
	if e.st.Mode != ModeSelect || e.overToolbar(f.Cursor) {
		return
	}
	if id, ok := scene.Pick(e.store, e.vp, f.Cursor); ok {
		e.hovered = id
	}
}

func (e *Editor) handlePointer(f input.Frame) {
	if f.Pressed(input.Left) {
		e.press(f.Cursor)
	}
	if f.Moved() && !f.Pressed(input.Left) && (f.Down(input.Left) || f.Released(input.Left)) {
		e.drag()
	}
	if f.Released(input.Left) {
		e.release(f.Cursor)
	}
}

func (e *Editor) press(p geom.Vec2) {
	if e.pressToolbar(p) {
		e.uiGesture = true
		return
	}
	if e.fillArmed {
		if img, ok := e.selectedImage(); ok && scene.ScreenBounds(img, e.vp).Contains(p) {
			e.fillGesture = true
			return
		}
		e.fillArmed = false
	}
	target, corner := e.targetAt(p)
	e.dispatch(Event{Kind: EvPress, Target: target, Corner: corner})
}

func (e *Editor) drag() {
	if e.uiGesture || e.fillGesture {
		return
	}
	e.dispatch(Event{Kind: EvDrag})
}

func (e *Editor) release(p geom.Vec2) {
	switch {
	case e.uiGesture:
		e.uiGesture = false
		return
	case e.fillGesture:
		e.fillGesture = false
		e.fillAt(p)
		return
	}
	target := TargetNone
	if e.st.Mode == ModeSelect && !e.overToolbar(p) {
		if _, ok := scene.Pick(e.store, e.vp, p); ok {
			target = TargetEntity
		}
	}
	e.dispatch(Event{Kind: EvRelease, Target: target})
}

// pressToolbar runs the command under p. A press anywhere on a bar is
// consumed, so clicking a contextual button never changes the selection.
func (e *Editor) pressToolbar(p geom.Vec2) bool {
	if e.hasContext && e.contextual.Contains(p) {
		if i := e.contextual.HitTest(p); i != toolbar.None {
			e.Command(e.contextual.Buttons[i].Command)
		}
		return true
	}
	if e.primary.Contains(p) {
		if i := e.primary.HitTest(p); i != toolbar.None {
			e.Command(e.primary.Buttons[i].Command)
		}
		return true
	}
	return false
}

// targetAt classifies a press. Only select and text modes pick, and the
// handles of the current selection win over any entity.
func (e *Editor) targetAt(p geom.Vec2) (Target, scene.Corner) {
	e.pending = scene.ID{}
	if e.st.Mode != ModeSelect && e.st.Mode != ModeText {
		return TargetNone, 0
	}
	if ent, ok := e.selectedEntity(); ok {
		if c, ok := scene.HandleAt(scene.ScreenBounds(ent, e.vp), p); ok {
			e.pending = e.selected
			return TargetHandle, c
		}
	}
	if id, ok := scene.Pick(e.store, e.vp, p); ok {
		e.pending = id
		return TargetEntity, 0
	}
	return TargetNone, 0
}

func (e *Editor) dispatch(ev Event) {
	next, effects := Transition(e.st, ev)
	e.st = next
	for _, eff := range effects {
		e.apply(eff, ev)
	}
}

// delta is the cursor movement since the anchor in world units. The
// anchor then moves to the cursor so deltas never compound.
func (e *Editor) delta() geom.Vec2 {
	d := e.cursor.Sub(e.anchor).Div(e.vp.Scale)
	e.anchor = e.cursor
	return d
}

func (e *Editor) apply(eff Effect, ev Event) {
	switch eff {
	case RecordAnchor:
		e.anchor = e.cursor
		e.rem = 0
	case SelectTarget:
		e.selectID(e.pending)
	case ClearSelection:
		e.selectID(scene.ID{})
	case Translate:
		if ent, ok := e.selectedEntity(); ok {
			scene.Translate(ent, e.delta())
		}
	case Resize:
		if ent, ok := e.selectedEntity(); ok {
			scene.Resize(ent, e.st.Handle, e.delta(), &e.rem)
		}
	case AppendStroke:
		a, b := e.vp.ToWorld(e.anchor), e.vp.ToWorld(e.cursor)
		e.anchor = e.cursor
		e.store.Append(scene.NewStroke(a, b, e.penWidth, e.theme.Foreground))
	case CommitRectangle:
		e.commitRectangle()
	case Erase:
		e.erase(e.cursor)
	case CaptureRegion:
		e.captureRegion()
	case CreateText:
		e.createText(ev.Kind == EvTool)
	case ResetToolbars:
		e.fillArmed = false
		e.fillGesture = false
	}
}

func (e *Editor) commitRectangle() {
	r := e.vp.RectToWorld(geom.RectFromPoints(e.anchor, e.cursor))
	if r.Empty() {
		return
	}
	e.store.Append(&scene.Rectangle{
		Base:      scene.Base{Pos: r.Min},
		Size:      r.Size(),
		Color:     e.theme.Foreground,
		Thickness: scene.OutlineWidth,
	})
}

// createText adds a default text entity and selects it so typing edits
// it. From the toolbar it is centred in the window, otherwise it goes
// where the click started.
func (e *Editor) createText(centred bool) {
	t := scene.NewText(e.vp.ToWorld(e.anchor), e.theme.Foreground)
	if centred {
		t.Measure(e.backend, e.vp.Scale)
		half := t.Measured.Div(e.vp.Scale).Div(2)
		t.Pos = e.vp.ToWorld(e.size.Div(2)).Sub(half)
	}
	e.selectID(e.store.Append(t))
}

// erase deletes strokes under the brush and punches a hole of the brush's
// size into images below it.
func (e *Editor) erase(p geom.Vec2) {
	center := e.vp.ToWorld(p)
	radius := e.eraserRadius / e.vp.Scale
	brush := geom.Rect{Min: center.Sub(geom.V(radius, radius)), Max: center.Add(geom.V(radius, radius))}

	var doomed []scene.ID
	e.store.Each(func(id scene.ID, ent scene.Entity) bool {
		switch v := ent.(type) {
		case *scene.Stroke:
			if geom.SegmentCircle(v.Pos, v.End, center, radius+v.Thickness/2/e.vp.Scale) {
				doomed = append(doomed, id)
			}
		case *scene.Image:
			if !v.Bounds().Intersects(brush) || v.Size.X <= 0 || v.Size.Y <= 0 {
				return true
			}
			pb := v.Current.Bounds()
			sx := float64(pb.Dx()) / v.Size.X
			sy := float64(pb.Dy()) / v.Size.Y
			local := center.Sub(v.Pos)
			at := geom.V(local.X*sx+float64(pb.Min.X), local.Y*sy+float64(pb.Min.Y))
			if render.Punch(v.Current, at, geom.V(radius*sx, radius*sy)) > 0 {
				e.sync(v)
			}
		}
		return true
	})
	for _, id := range doomed {
		e.store.Delete(id)
	}
}

// fillAt removes the background region under p from the selected image.
// A click outside the image disarms the fill instead.
func (e *Editor) fillAt(p geom.Vec2) {
	img, ok := e.selectedImage()
	if !ok {
		e.fillArmed = false
		return
	}
	if !scene.ScreenBounds(img, e.vp).Contains(p) {
		return
	}
	if render.FloodRemove(img.Current, img.PixelAt(e.vp, p), render.DefaultTolerance) > 0 {
		e.sync(img)
	}
}
