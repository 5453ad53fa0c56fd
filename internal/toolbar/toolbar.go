// Package toolbar lays out the primary tool strip and the contextual strip
// shown above a selection. Layouts are recomputed every frame from the
// window size or the selection's screen position.
package toolbar

import (
	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/scene"
	"github.com/example/whiteboard/internal/surface"
	"github.com/example/whiteboard/internal/theme"
)

// Command is the action a button triggers.
type Command int

const (
	CmdClear Command = iota
	CmdSelect
	CmdRectangle
	CmdPen
	CmdText
	CmdScreenshot
	CmdEraser

	CmdFlipH
	CmdFlipV
	CmdDelete
	CmdRaise
	CmdLower
	CmdFill
	CmdDuplicate
	CmdSave
	CmdReset
	CmdErode
)

var commandNames = [...]string{
	CmdClear:      "clear",
	CmdSelect:     "select",
	CmdRectangle:  "rectangle",
	CmdPen:        "pen",
	CmdText:       "text",
	CmdScreenshot: "screenshot",
	CmdEraser:     "eraser",
	CmdFlipH:      "flip-h",
	CmdFlipV:      "flip-v",
	CmdDelete:     "delete",
	CmdRaise:      "raise",
	CmdLower:      "lower",
	CmdFill:       "fill",
	CmdDuplicate:  "duplicate",
	CmdSave:       "save",
	CmdReset:      "reset",
	CmdErode:      "erode",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Layout constants, in screen pixels.
const (
	PrimarySide = 20
	PrimaryPad  = 20
	PrimaryTop  = 10

	ContextSide = 18
	ContextPad  = 10

	// LabelSize is the font size button labels are drawn at.
	LabelSize = 13
)

// None marks no hovered or selected button.
const None = -1

// Button is one square in a bar.
type Button struct {
	Rect    geom.Rect
	Label   string
	Command Command
}

// Bar is a laid-out row of buttons.
type Bar struct {
	Buttons  []Button
	Hovered  int
	Selected int
	Rect     geom.Rect
	pad      float64
}

type def struct {
	label string
	cmd   Command
}

var primary = []def{
	{"x", CmdClear},
	{"S", CmdSelect},
	{"[]", CmdRectangle},
	{"P", CmdPen},
	{"T", CmdText},
	{"Sc", CmdScreenshot},
	{"E", CmdEraser},
}

var imageOps = []def{
	{"<>", CmdFlipH},
	{"^v", CmdFlipV},
	{"x", CmdDelete},
	{"+", CmdRaise},
	{"-", CmdLower},
	{"F", CmdFill},
	{"D", CmdDuplicate},
	{"S", CmdSave},
	{"R", CmdReset},
	{"E", CmdErode},
}

var shapeOps = []def{
	{"x", CmdDelete},
	{"+", CmdRaise},
	{"-", CmdLower},
	{"D", CmdDuplicate},
	{"S", CmdSave},
}

func layout(defs []def, origin geom.Vec2, side, pad float64) Bar {
	step := side + pad
	b := Bar{
		Hovered:  None,
		Selected: None,
		Rect:     geom.R(origin.X, origin.Y, step*float64(len(defs)), step),
		pad:      pad,
	}
	b.Buttons = make([]Button, len(defs))
	for i, s := range defs {
		b.Buttons[i] = Button{
			Rect:    geom.R(origin.X+step*float64(i)+pad/2, origin.Y+pad/2, side, side),
			Label:   s.label,
			Command: s.cmd,
		}
	}
	return b
}

// Primary lays out the tool strip centred at the top of a window of the
// given width.
func Primary(width float64) Bar {
	n := float64(len(primary))
	x := width/2 - (PrimarySide+PrimaryPad)*n/2
	return layout(primary, geom.V(x, PrimaryTop), PrimarySide, PrimaryPad)
}

// Contextual lays out the operations for an entity of the given kind with
// its screen-space top-left at anchor. The strip sits above the selection
// outline. Strokes have no contextual strip.
func Contextual(kind scene.Kind, anchor geom.Vec2) (Bar, bool) {
	var defs []def
	switch kind {
	case scene.KindImage:
		defs = imageOps
	case scene.KindText, scene.KindRectangle:
		defs = shapeOps
	default:
		return Bar{Hovered: None, Selected: None}, false
	}
	y := anchor.Y - ContextSide - ContextPad - scene.HandlePadding
	return layout(defs, geom.V(anchor.X, y), ContextSide, ContextPad), true
}

// HitTest returns the index of the button under p, or None. The padding
// around a button counts as part of it.
func (b *Bar) HitTest(p geom.Vec2) int {
	for i, btn := range b.Buttons {
		if btn.Rect.Inset(-b.pad / 2).Contains(p) {
			return i
		}
	}
	return None
}

// Contains reports whether p lies on the bar, including the gaps.
func (b *Bar) Contains(p geom.Vec2) bool {
	return len(b.Buttons) > 0 && b.Rect.Contains(p)
}

// Hover updates Hovered from the cursor position.
func (b *Bar) Hover(p geom.Vec2) {
	b.Hovered = b.HitTest(p)
}

// Index returns the position of cmd in the bar, or None.
func (b *Bar) Index(cmd Command) int {
	for i, btn := range b.Buttons {
		if btn.Command == cmd {
			return i
		}
	}
	return None
}

// Draw paints the bar. Hover and selection highlights cover the button's
// padded cell; the selected label switches to the selected text color.
func (b *Bar) Draw(s surface.Surface, th *theme.Theme) {
	if len(b.Buttons) == 0 {
		return
	}
	s.FillRect(b.Rect, th.ToolbarBackground)
	for i, btn := range b.Buttons {
		cell := btn.Rect.Inset(-b.pad / 2)
		if i == b.Hovered {
			s.FillRect(cell, th.ButtonHover)
		}
		label := th.ButtonText
		if i == b.Selected {
			s.FillRect(cell, th.ButtonSelected)
			label = th.ButtonTextSelected
		}
		size := s.MeasureText(btn.Label, LabelSize, 0)
		at := btn.Rect.Center().Sub(size.Div(2))
		s.DrawText(btn.Label, at, LabelSize, 0, label)
	}
}
