package editor

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/mobile/event/key"

	"github.com/example/whiteboard/internal/input"
	"github.com/example/whiteboard/internal/scene"
	"github.com/example/whiteboard/internal/toolbar"
)

func (e *Editor) handleKeys(keys []input.Key) {
	for _, k := range keys {
		if t, ok := e.selectedText(); ok && e.editText(t, k) {
			continue
		}
		e.shortcut(k)
	}
}

// shortcut runs the board-wide binding for k, if any.
func (e *Editor) shortcut(k input.Key) {
	if k.Ctrl() {
		switch unicode.ToLower(k.Rune) {
		case 'v':
			e.PasteImage()
		case 'c':
			e.CopySelection()
		case 'n':
			e.ImportDesktop()
		}
		return
	}
	switch k.Code {
	case key.CodeEscape:
		e.dispatch(Event{Kind: EvEscape})
		return
	case key.CodeDeleteForward:
		e.Command(toolbar.CmdDelete)
		return
	}
	switch unicode.ToLower(k.Rune) {
	case 's':
		e.Command(toolbar.CmdScreenshot)
	case 'p':
		e.Command(toolbar.CmdPen)
	case 'n':
		e.Command(toolbar.CmdSelect)
	case 't':
		e.Command(toolbar.CmdText)
	case 'r':
		e.Command(toolbar.CmdRectangle)
	case 'e':
		e.Command(toolbar.CmdEraser)
	case 'd':
		if n := e.store.Clear(); n > 0 {
			e.say("cleared %d strokes", n)
		}
	case '=', '+':
		e.adjust(1)
	case '-':
		e.adjust(-1)
	}
}

// adjust grows or shrinks the active tool, or zooms about the window
// centre when the tool has no size.
func (e *Editor) adjust(dir float64) {
	switch e.st.Mode {
	case ModePen:
		e.penWidth = clamp(e.penWidth+dir, MinPenWidth, MaxPenWidth)
	case ModeErase:
		e.eraserRadius = clamp(e.eraserRadius+dir*EraserStep, MinEraserRadius, MaxEraserRadius)
	default:
		e.vp.ZoomCenter(dir, e.size)
	}
}

// editText applies k to the selected text entity. It reports whether the
// key was consumed.
func (e *Editor) editText(t *scene.Text, k input.Key) bool {
	if k.Ctrl() {
		switch unicode.ToLower(k.Rune) {
		case 'v':
			e.pasteText(t)
			return true
		case 'c':
			e.CopySelection()
			return true
		}
		return false
	}
	switch k.Code {
	case key.CodeReturnEnter, key.CodeEscape:
		e.dispatch(Event{Kind: EvEscape})
		return true
	case key.CodeDeleteBackspace:
		if _, size := utf8.DecodeLastRuneInString(t.Content); size > 0 {
			t.Content = t.Content[:len(t.Content)-size]
		}
		return true
	case key.CodeDeleteForward:
		return false
	}
	if k.Rune > 0 && unicode.IsPrint(k.Rune) {
		t.Content += string(k.Rune)
		return true
	}
	return false
}
