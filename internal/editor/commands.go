package editor

import (
	"github.com/example/whiteboard/internal/render"
	"github.com/example/whiteboard/internal/scene"
	"github.com/example/whiteboard/internal/toolbar"
)

// Command runs a toolbar command. Commands that need a selection of the
// wrong kind, or none at all, do nothing.
func (e *Editor) Command(cmd toolbar.Command) {
	switch cmd {
	case toolbar.CmdClear:
		if n := e.store.Clear(); n > 0 {
			e.say("cleared %d strokes", n)
		}
		e.dispatch(Event{Kind: EvTool, Mode: ModeSelect})
	case toolbar.CmdSelect:
		e.dispatch(Event{Kind: EvTool, Mode: ModeSelect})
	case toolbar.CmdRectangle:
		e.dispatch(Event{Kind: EvTool, Mode: ModeRectangle})
	case toolbar.CmdPen:
		e.dispatch(Event{Kind: EvTool, Mode: ModePen})
	case toolbar.CmdText:
		e.dispatch(Event{Kind: EvTool, Mode: ModeText})
	case toolbar.CmdScreenshot:
		e.dispatch(Event{Kind: EvTool, Mode: ModeScreenshot})
	case toolbar.CmdEraser:
		e.dispatch(Event{Kind: EvTool, Mode: ModeErase})

	case toolbar.CmdDelete:
		e.deleteSelected()
	case toolbar.CmdRaise:
		e.store.Reorder(e.selected, scene.Forward)
	case toolbar.CmdLower:
		e.store.Reorder(e.selected, scene.Backward)
	case toolbar.CmdDuplicate:
		e.duplicateSelected()
	case toolbar.CmdSave:
		e.saveSelection()

	case toolbar.CmdFlipH:
		e.editImage(func(img *scene.Image) bool { render.FlipHorizontal(img.Current); return true })
	case toolbar.CmdFlipV:
		e.editImage(func(img *scene.Image) bool { render.FlipVertical(img.Current); return true })
	case toolbar.CmdReset:
		e.editImage(func(img *scene.Image) bool { img.Reset(); return true })
	case toolbar.CmdErode:
		e.editImage(func(img *scene.Image) bool { return render.Erode(img.Current) > 0 })
	case toolbar.CmdFill:
		if _, ok := e.selectedImage(); ok {
			e.fillArmed = !e.fillArmed
		}
	}
}

// editImage applies fn to the selected image and re-syncs its texture when
// fn reports a change.
func (e *Editor) editImage(fn func(*scene.Image) bool) {
	img, ok := e.selectedImage()
	if !ok {
		return
	}
	if fn(img) {
		e.sync(img)
	}
}

func (e *Editor) deleteSelected() {
	ent, ok := e.selectedEntity()
	if !ok {
		return
	}
	id := e.selected
	e.selectID(scene.ID{})
	e.store.Delete(id)
	if img, ok := ent.(*scene.Image); ok && img.Texture != 0 {
		e.backend.Release(img.Texture)
		img.Texture = 0
	}
}

// duplicateSelected copies the selection and selects the copy.
func (e *Editor) duplicateSelected() {
	id, ok := e.store.Duplicate(e.selected)
	if !ok {
		return
	}
	if ent, ok := e.store.Get(id); ok {
		if img, ok := ent.(*scene.Image); ok {
			e.sync(img)
		}
	}
	e.selectID(id)
}
