package editor

import (
	"fmt"
	"image/color"

	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/scene"
	"github.com/example/whiteboard/internal/surface"
	"github.com/example/whiteboard/internal/toolbar"
)

var opaque = color.RGBA{255, 255, 255, 255}

const messageSize = 20

// Draw paints the board: entities back to front, selection decorations,
// the in-progress gesture, then the toolbars and the status line.
func (e *Editor) Draw(s surface.Surface) {
	th := e.theme
	s.Clear(th.Background)

	e.store.Each(func(_ scene.ID, ent scene.Entity) bool {
		e.drawEntity(s, ent)
		return true
	})

	if ent, ok := e.store.Get(e.hovered); ok && e.hovered != e.selected {
		s.DrawRectOutline(scene.Outline(scene.ScreenBounds(ent, e.vp)), scene.OutlineWidth, th.Hover)
	}
	if ent, ok := e.selectedEntity(); ok {
		sb := scene.ScreenBounds(ent, e.vp)
		s.DrawRectOutline(scene.Outline(sb), scene.OutlineWidth, th.Selection)
		for _, h := range scene.Handles(sb) {
			s.FillRect(h, th.Selection)
		}
	}

	switch {
	case e.st.Mode == ModeRectangle && e.st.Pressed:
		s.DrawRectOutline(geom.RectFromPoints(e.anchor, e.cursor), scene.OutlineWidth, th.Foreground)
	case e.st.Mode == ModeDrawingScreenshot:
		s.DrawRectOutline(geom.RectFromPoints(e.anchor, e.cursor), scene.OutlineWidth, th.Selection)
	case e.st.Mode == ModeErase:
		s.FillCircle(e.cursor, e.eraserRadius, th.EraserBrush)
	}

	if e.hasContext {
		e.contextual.Draw(s, th)
	}
	e.primary.Draw(s, th)
	e.drawStatus(s)
}

func (e *Editor) drawEntity(s surface.Surface, ent scene.Entity) {
	switch v := ent.(type) {
	case *scene.Stroke:
		s.DrawLine(e.vp.ToScreen(v.Pos), e.vp.ToScreen(v.End), v.Thickness, v.Color)
	case *scene.Rectangle:
		s.DrawRectOutline(e.vp.RectToScreen(v.Bounds()), v.Thickness, v.Color)
	case *scene.Image:
		if v.Texture != 0 {
			s.DrawTexturedRect(v.Texture, v.Current.Bounds(), e.vp.RectToScreen(v.Bounds()), opaque)
		}
	case *scene.Text:
		s.DrawText(v.Content, e.vp.ToScreen(v.Pos), float64(v.FontSize)*e.vp.Scale, v.Spacing*e.vp.Scale, v.Color)
	}
}

// drawStatus shows the zoom level and tool size beside the primary bar
// and the transient message at the bottom of the window.
func (e *Editor) drawStatus(s surface.Surface) {
	th := e.theme
	status := fmt.Sprintf("%d%%", e.vp.Percent())
	switch e.st.Mode {
	case ModePen:
		status += fmt.Sprintf("  pen %.0f", e.penWidth)
	case ModeErase:
		status += fmt.Sprintf("  eraser %.0f", e.eraserRadius)
	}
	bar := e.primary.Rect
	size := s.MeasureText(status, toolbar.LabelSize, 0)
	s.DrawText(status, geom.V(bar.Max.X+toolbar.PrimaryPad/2, bar.Center().Y-size.Y/2), toolbar.LabelSize, 0, th.ButtonText)

	if msg := e.Message(); msg != "" {
		m := s.MeasureText(msg, messageSize, 0)
		at := geom.V(e.size.X/2-m.X/2, e.size.Y-m.Y-toolbar.PrimaryTop*2)
		s.DrawText(msg, at, messageSize, 0, th.Message)
	}
}
