package toolbar

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/scene"
	"github.com/example/whiteboard/internal/surface"
	"github.com/example/whiteboard/internal/theme"
)

type fill struct {
	r geom.Rect
	c color.Color
}

type recorder struct {
	fills []fill
	texts []color.Color
}

func (r *recorder) Clear(color.Color) {}

func (r *recorder) DrawLine(geom.Vec2, geom.Vec2, float64, color.Color) {}

func (r *recorder) DrawTexturedRect(surface.Texture, image.Rectangle, geom.Rect, color.RGBA) {}

func (r *recorder) DrawRectOutline(geom.Rect, float64, color.Color) {}

func (r *recorder) FillCircle(geom.Vec2, float64, color.Color) {}

func (r *recorder) FillRect(rect geom.Rect, c color.Color) {
	r.fills = append(r.fills, fill{rect, c})
}

func (r *recorder) DrawText(_ string, _ geom.Vec2, _, _ float64, c color.Color) {
	r.texts = append(r.texts, c)
}

func (r *recorder) MeasureText(s string, size, _ float64) geom.Vec2 {
	return geom.V(float64(len(s))*7, size)
}

func TestPrimaryLayout(t *testing.T) {
	b := Primary(800)
	if len(b.Buttons) != 7 {
		t.Fatalf("buttons = %d", len(b.Buttons))
	}
	// 7 cells of 40 centred on 400
	if b.Rect != geom.R(260, 10, 280, 40) {
		t.Errorf("bar rect = %v", b.Rect)
	}
	if got := b.Buttons[0].Rect; got != geom.R(270, 20, 20, 20) {
		t.Errorf("first button = %v", got)
	}
	if got := b.Buttons[6].Rect.Min.X; got != 510 {
		t.Errorf("last button x = %v", got)
	}
	want := []Command{CmdClear, CmdSelect, CmdRectangle, CmdPen, CmdText, CmdScreenshot, CmdEraser}
	for i, c := range want {
		if b.Buttons[i].Command != c {
			t.Errorf("button %d = %v, want %v", i, b.Buttons[i].Command, c)
		}
	}
	if b.Hovered != None || b.Selected != None {
		t.Error("fresh bar has highlights")
	}
}

func TestContextual(t *testing.T) {
	tests := []struct {
		kind scene.Kind
		n    int
		ok   bool
	}{
		{scene.KindImage, 10, true},
		{scene.KindText, 5, true},
		{scene.KindRectangle, 5, true},
		{scene.KindStroke, 0, false},
	}
	for _, tt := range tests {
		b, ok := Contextual(tt.kind, geom.V(100, 200))
		if ok != tt.ok || len(b.Buttons) != tt.n {
			t.Errorf("%v: ok=%v buttons=%d", tt.kind, ok, len(b.Buttons))
		}
		if !ok {
			continue
		}
		// above the selection outline
		wantY := 200.0 - ContextSide - ContextPad - scene.HandlePadding
		if b.Rect.Min != geom.V(100, wantY) {
			t.Errorf("%v: origin = %v", tt.kind, b.Rect.Min)
		}
	}
}

func TestHitTest(t *testing.T) {
	b := Primary(800)
	if got := b.HitTest(geom.V(280, 30)); got != 0 {
		t.Errorf("centre of first button = %d", got)
	}
	// gap between buttons belongs to the padded cell
	if got := b.HitTest(geom.V(299, 30)); got != 0 {
		t.Errorf("padding = %d", got)
	}
	if got := b.HitTest(geom.V(301, 30)); got != 1 {
		t.Errorf("second cell = %d", got)
	}
	if got := b.HitTest(geom.V(10, 10)); got != None {
		t.Errorf("outside = %d", got)
	}
	if !b.Contains(geom.V(262, 12)) || b.Contains(geom.V(100, 100)) {
		t.Error("Contains mismatch")
	}
	if b.Index(CmdPen) != 3 || b.Index(CmdFill) != None {
		t.Error("Index mismatch")
	}
}

func TestDrawHighlights(t *testing.T) {
	th := theme.Default()
	b := Primary(800)
	b.Hovered = 2
	b.Selected = 1
	r := &recorder{}
	b.Draw(r, th)
	if len(r.fills) != 3 {
		t.Fatalf("fills = %d, want background + hover + selected", len(r.fills))
	}
	if r.fills[0].c != th.ToolbarBackground || r.fills[1].c != th.ButtonSelected || r.fills[2].c != th.ButtonHover {
		t.Errorf("fill colors = %v", r.fills)
	}
	if len(r.texts) != 7 || r.texts[1] != th.ButtonTextSelected || r.texts[0] != th.ButtonText {
		t.Errorf("label colors = %v", r.texts)
	}
}

func TestDrawEmptyBar(t *testing.T) {
	b, _ := Contextual(scene.KindStroke, geom.Vec2{})
	r := &recorder{}
	b.Draw(r, theme.Default())
	if len(r.fills) != 0 {
		t.Error("empty bar drew")
	}
}

func TestCommandString(t *testing.T) {
	if CmdErode.String() != "erode" || Command(99).String() != "unknown" {
		t.Error("Command.String mismatch")
	}
}
