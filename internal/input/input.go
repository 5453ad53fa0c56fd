// Package input folds the window's event stream into per-frame snapshots
// so the editor can poll "pressed this frame" the way an immediate-mode
// loop does.
package input

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/whiteboard/internal/geom"
)

// Button indexes the tracked mouse buttons.
type Button int

const (
	Left Button = iota
	Right
	Middle
	numButtons
)

// ButtonState is the per-frame edge and level state of one button.
type ButtonState struct {
	Pressed  bool // went down during the frame
	Down     bool // held at the end of the frame
	Released bool // went up during the frame
}

// Key is one key press.
type Key struct {
	Code      key.Code
	Rune      rune
	Modifiers key.Modifiers
}

// Ctrl reports whether the control modifier was held.
func (k Key) Ctrl() bool { return k.Modifiers&key.ModControl != 0 }

// Frame is everything that happened since the previous frame.
type Frame struct {
	Cursor  geom.Vec2
	Delta   geom.Vec2
	Buttons [numButtons]ButtonState
	// Wheel is the net scroll in ticks, positive away from the user.
	Wheel   float64
	Keys    []Key
	Dropped []string
}

// Moved reports whether the cursor moved during the frame.
func (f *Frame) Moved() bool { return f.Delta != geom.Vec2{} }

// Pressed reports whether b went down during the frame.
func (f *Frame) Pressed(b Button) bool { return f.Buttons[b].Pressed }

// Down reports whether b is held.
func (f *Frame) Down(b Button) bool { return f.Buttons[b].Down }

// Released reports whether b went up during the frame.
func (f *Frame) Released(b Button) bool { return f.Buttons[b].Released }

// Accumulator collects events between frames. It is not safe for
// concurrent use; the window loop owns it.
type Accumulator struct {
	cur  Frame
	last geom.Vec2
}

func buttonOf(b mouse.Button) (Button, bool) {
	switch b {
	case mouse.ButtonLeft:
		return Left, true
	case mouse.ButtonRight:
		return Right, true
	case mouse.ButtonMiddle:
		return Middle, true
	}
	return 0, false
}

// Mouse records a pointer event.
func (a *Accumulator) Mouse(e mouse.Event) {
	a.cur.Cursor = geom.V(float64(e.X), float64(e.Y))
	if e.Button.IsWheel() {
		// some drivers report a wheel step as press + release
		if e.Direction == mouse.DirRelease {
			return
		}
		switch e.Button {
		case mouse.ButtonWheelUp:
			a.cur.Wheel++
		case mouse.ButtonWheelDown:
			a.cur.Wheel--
		}
		return
	}
	b, ok := buttonOf(e.Button)
	if !ok {
		return
	}
	st := &a.cur.Buttons[b]
	switch e.Direction {
	case mouse.DirPress:
		st.Pressed = true
		st.Down = true
	case mouse.DirRelease:
		st.Released = true
		st.Down = false
	}
}

// Key records a key press. Releases and repeats of modifier-only keys are
// ignored.
func (a *Accumulator) Key(e key.Event) {
	if e.Direction == key.DirRelease {
		return
	}
	switch e.Code {
	case key.CodeLeftShift, key.CodeRightShift, key.CodeLeftControl, key.CodeRightControl,
		key.CodeLeftAlt, key.CodeRightAlt, key.CodeLeftGUI, key.CodeRightGUI:
		return
	}
	a.cur.Keys = append(a.cur.Keys, Key{Code: e.Code, Rune: e.Rune, Modifiers: e.Modifiers})
}

// Drop records files handed to the window.
func (a *Accumulator) Drop(paths ...string) {
	a.cur.Dropped = append(a.cur.Dropped, paths...)
}

// Frame returns the snapshot and starts a new one. Held buttons stay down.
func (a *Accumulator) Frame() Frame {
	f := a.cur
	f.Delta = f.Cursor.Sub(a.last)
	a.last = f.Cursor

	a.cur = Frame{Cursor: f.Cursor}
	for i := range a.cur.Buttons {
		a.cur.Buttons[i].Down = f.Buttons[i].Down
	}
	return f
}
