package editor

import (
	"context"
	"image"
	"log"
	"path/filepath"
	"time"

	"github.com/example/whiteboard/internal/capture"
	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/scene"
)

const desktopTimeout = 30 * time.Second

// ImportFiles loads each path as an image and places them in a cascade
// starting at world point at. Files that fail to load are logged and
// skipped. It returns the number imported.
func (e *Editor) ImportFiles(at geom.Vec2, paths ...string) int {
	n := 0
	for _, path := range paths {
		pix, err := e.load(path)
		if err != nil {
			log.Printf("import %s: %v", path, err)
			continue
		}
		pos := at.Add(scene.DuplicateOffset.Mul(float64(n)))
		if _, err := e.AddImage(pos, pix); err != nil {
			log.Printf("import %s: %v", path, err)
			continue
		}
		n++
		if e.notifier != nil {
			e.notifier.Import(filepath.Base(path), pix)
		}
	}
	if n > 0 {
		e.say("imported %d images", n)
	}
	return n
}

// PasteImage places the clipboard's image at the cursor.
func (e *Editor) PasteImage() {
	if e.clipboard == nil {
		return
	}
	pix, err := e.clipboard.ReadImage()
	if err != nil {
		log.Printf("paste: %v", err)
		return
	}
	id, err := e.AddImage(e.vp.ToWorld(e.cursor), pix)
	if err != nil {
		log.Printf("paste: %v", err)
		return
	}
	e.selectID(id)
	e.say("pasted image")
	if e.notifier != nil {
		e.notifier.Import("clipboard image", pix)
	}
}

func (e *Editor) pasteText(t *scene.Text) {
	if e.clipboard == nil {
		return
	}
	s, err := e.clipboard.ReadText()
	if err != nil {
		log.Printf("paste: %v", err)
		return
	}
	t.Content += s
}

// CopySelection puts the selected image's pixels or the selected text's
// content on the clipboard.
func (e *Editor) CopySelection() {
	if e.clipboard == nil {
		return
	}
	ent, ok := e.selectedEntity()
	if !ok {
		return
	}
	var (
		err    error
		detail string
	)
	switch v := ent.(type) {
	case *scene.Image:
		detail = "image"
		err = e.clipboard.WriteImage(v.Current)
	case *scene.Text:
		detail = "text"
		err = e.clipboard.WriteText(v.Content)
	default:
		return
	}
	if err != nil {
		log.Printf("copy: %v", err)
		return
	}
	e.say("%s copied to clipboard", detail)
	if e.notifier != nil {
		e.notifier.Copy(detail)
	}
}

// ImportDesktop grabs the desktop and places it at the cursor.
func (e *Editor) ImportDesktop() {
	if e.desktop == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), desktopTimeout)
	defer cancel()
	pix, err := e.desktop(ctx)
	if err != nil {
		log.Printf("capture desktop: %v", err)
		return
	}
	id, err := e.AddImage(e.vp.ToWorld(e.cursor), pix)
	if err != nil {
		log.Printf("capture desktop: %v", err)
		return
	}
	e.selectID(id)
	e.say("captured desktop")
	if e.notifier != nil {
		e.notifier.Import("desktop screenshot", pix)
	}
}

// frame is the last rendered frame in window coordinates.
func (e *Editor) frame() geom.Rect {
	r := geom.FromImage(e.backend.Bounds())
	if dpi := e.backend.DPIScale(); dpi > 0 {
		r = geom.Rect{Min: r.Min.Div(dpi), Max: r.Max.Div(dpi)}
	}
	return r
}

// grab reads a screen rectangle back from the last rendered frame.
func (e *Editor) grab(r geom.Rect) (*image.RGBA, error) {
	return capture.Region(e.backend, r.Image())
}

func (e *Editor) save(img image.Image, name string) {
	path, err := e.export(img, e.saveDir, name)
	if err != nil {
		log.Printf("export: %v", err)
		return
	}
	e.say("saved %s", path)
	if e.notifier != nil {
		e.notifier.Export(path)
	}
}

// captureRegion finishes a screenshot drag: the dragged rectangle, minus
// its outline, is exported under a timestamp name and placed back on the
// board next to where it was taken.
func (e *Editor) captureRegion() {
	r := geom.RectFromPoints(e.anchor, e.cursor).Inset(scene.OutlineWidth)
	r = r.Intersect(e.frame())
	if r.Empty() {
		return
	}
	pix, err := e.grab(r)
	if err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	e.save(pix, capture.TimestampName(e.now()))

	img := scene.NewImage(e.vp.ToWorld(r.Min).Add(CaptureOffset), pix)
	img.Size = r.Size().Div(e.vp.Scale)
	e.sync(img)
	if img.Texture == 0 {
		return
	}
	e.store.Append(img)
}

// saveSelection exports what the selected entity looks like on screen.
func (e *Editor) saveSelection() {
	ent, ok := e.selectedEntity()
	if !ok {
		return
	}
	pix, err := e.grab(scene.ScreenBounds(ent, e.vp))
	if err != nil {
		log.Printf("save selection: %v", err)
		return
	}
	e.save(pix, capture.DefaultSelectionName)
}
