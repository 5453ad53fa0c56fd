// Package editor owns one board: the scene, the viewport, the selection
// and the interaction state. The window loop feeds it one input frame at
// a time through Step and asks it to paint through Draw.
package editor

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/example/whiteboard/internal/capture"
	"github.com/example/whiteboard/internal/codec"
	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/scene"
	"github.com/example/whiteboard/internal/surface"
	"github.com/example/whiteboard/internal/theme"
	"github.com/example/whiteboard/internal/toolbar"
	"github.com/example/whiteboard/internal/viewport"
)

// Pen and eraser limits, in screen pixels.
const (
	DefaultPenWidth     = 2
	MinPenWidth         = 1
	MaxPenWidth         = 50
	DefaultEraserRadius = 10
	MinEraserRadius     = 5
	MaxEraserRadius     = 100
	EraserStep          = 5
)

// CaptureOffset is how far a captured region is placed from where it was
// taken, in world units.
var CaptureOffset = geom.V(10, 10)

const messageDuration = 2 * time.Second

// Backend is what the editor needs from the window: somewhere to keep
// textures, a way to measure text and the last rendered frame.
type Backend interface {
	surface.Textures
	scene.Measurer
	capture.Readback
}

// ImageLoader decodes an image file.
type ImageLoader func(path string) (*image.RGBA, error)

// Exporter writes img as a PNG named name inside dir and returns the path.
type Exporter func(img image.Image, dir, name string) (string, error)

// DesktopCapturer grabs the whole desktop.
type DesktopCapturer func(ctx context.Context) (*image.RGBA, error)

// Clipboard is the desktop clipboard.
type Clipboard interface {
	ReadImage() (*image.RGBA, error)
	WriteImage(img image.Image) error
	ReadText() (string, error)
	WriteText(s string) error
}

// Notifier reports finished operations to the desktop.
type Notifier interface {
	Export(path string)
	Copy(detail string)
	Import(detail string, img image.Image)
}

// Cursor is the pointer shape the editor wants.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
	// CursorHidden is used while the eraser brush is drawn in its place.
	CursorHidden
)

// Editor is one board. It is not safe for concurrent use.
type Editor struct {
	backend Backend
	store   *scene.Store
	vp      viewport.Viewport
	st      State

	selected scene.ID
	hovered  scene.ID
	pending  scene.ID

	cursor geom.Vec2
	anchor geom.Vec2
	size   geom.Vec2
	rem    float64

	primary    toolbar.Bar
	contextual toolbar.Bar
	hasContext bool
	fillArmed  bool
	// gestures that started on a toolbar or an armed fill are kept away
	// from the state machine until the button is released
	uiGesture   bool
	fillGesture bool

	penWidth     float64
	eraserRadius float64
	theme        *theme.Theme
	saveDir      string

	load      ImageLoader
	export    Exporter
	desktop   DesktopCapturer
	clipboard Clipboard
	notifier  Notifier
	now       func() time.Time

	message      string
	messageUntil time.Time
}

// Option configures an Editor.
type Option func(*Editor)

// WithTheme sets the palette.
func WithTheme(t *theme.Theme) Option { return func(e *Editor) { e.theme = t } }

// WithSaveDir sets where screenshots and saved selections are written.
func WithSaveDir(dir string) Option { return func(e *Editor) { e.saveDir = dir } }

// WithPenWidth sets the initial stroke thickness.
func WithPenWidth(w float64) Option { return func(e *Editor) { e.penWidth = w } }

// WithEraserRadius sets the initial eraser radius.
func WithEraserRadius(r float64) Option { return func(e *Editor) { e.eraserRadius = r } }

// WithLoader replaces the image decoder.
func WithLoader(l ImageLoader) Option { return func(e *Editor) { e.load = l } }

// WithExporter replaces the PNG writer.
func WithExporter(x Exporter) Option { return func(e *Editor) { e.export = x } }

// WithDesktop enables desktop screenshot import.
func WithDesktop(d DesktopCapturer) Option { return func(e *Editor) { e.desktop = d } }

// WithClipboard enables copy and paste.
func WithClipboard(c Clipboard) Option { return func(e *Editor) { e.clipboard = c } }

// WithNotifier enables desktop notifications.
func WithNotifier(n Notifier) Option { return func(e *Editor) { e.notifier = n } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(e *Editor) { e.now = now } }

// New returns an empty board in select mode.
func New(b Backend, opts ...Option) *Editor {
	e := &Editor{
		backend:      b,
		store:        scene.NewStore(),
		vp:           viewport.New(),
		penWidth:     DefaultPenWidth,
		eraserRadius: DefaultEraserRadius,
		theme:        theme.Default(),
		load:         codec.Load,
		export:       capture.Export,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.penWidth = clamp(e.penWidth, MinPenWidth, MaxPenWidth)
	e.eraserRadius = clamp(e.eraserRadius, MinEraserRadius, MaxEraserRadius)
	e.primary = toolbar.Primary(0)
	e.contextual = toolbar.Bar{Hovered: toolbar.None, Selected: toolbar.None}
	return e
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// Store exposes the scene.
func (e *Editor) Store() *scene.Store { return e.store }

// Viewport returns the current view transform.
func (e *Editor) Viewport() viewport.Viewport { return e.vp }

// State returns the interaction state.
func (e *Editor) State() State { return e.st }

// Selected returns the selected entity, if any.
func (e *Editor) Selected() (scene.ID, bool) {
	if _, ok := e.store.Get(e.selected); !ok {
		return scene.ID{}, false
	}
	return e.selected, true
}

// PenWidth is the thickness new strokes get.
func (e *Editor) PenWidth() float64 { return e.penWidth }

// EraserRadius is the eraser brush radius in screen pixels.
func (e *Editor) EraserRadius() float64 { return e.eraserRadius }

// FillArmed reports whether the next click inside the selected image
// removes a background region.
func (e *Editor) FillArmed() bool { return e.fillArmed }

// Message returns the status line, or "" once it has expired.
func (e *Editor) Message() string {
	if e.message == "" || !e.now().Before(e.messageUntil) {
		return ""
	}
	return e.message
}

// Cursor reports which pointer shape suits the current mode.
func (e *Editor) Cursor() Cursor {
	switch e.st.Mode {
	case ModePen, ModeRectangle, ModeScreenshot, ModeDrawingScreenshot:
		return CursorCrosshair
	case ModeErase:
		return CursorHidden
	}
	return CursorDefault
}

func (e *Editor) say(format string, args ...interface{}) {
	e.message = fmt.Sprintf(format, args...)
	log.Print(e.message)
	e.messageUntil = e.now().Add(messageDuration)
}

func (e *Editor) selectedEntity() (scene.Entity, bool) {
	return e.store.Get(e.selected)
}

func (e *Editor) selectedImage() (*scene.Image, bool) {
	ent, ok := e.selectedEntity()
	if !ok {
		return nil, false
	}
	img, ok := ent.(*scene.Image)
	return img, ok
}

func (e *Editor) selectedText() (*scene.Text, bool) {
	ent, ok := e.selectedEntity()
	if !ok {
		return nil, false
	}
	t, ok := ent.(*scene.Text)
	return t, ok
}

// selectID moves the selection to id; the zero ID clears it.
func (e *Editor) selectID(id scene.ID) {
	if id == e.selected {
		return
	}
	if prev, ok := e.store.Get(e.selected); ok {
		prev.Common().Selected = false
	}
	e.selected = scene.ID{}
	e.fillArmed = false
	if ent, ok := e.store.Get(id); ok {
		ent.Common().Selected = true
		e.selected = id
	}
}

// sync pushes an image's pixels to its texture, uploading on first use.
func (e *Editor) sync(img *scene.Image) {
	if img.Texture == 0 {
		tex, err := e.backend.Upload(img.Current)
		if err != nil {
			log.Printf("upload texture: %v", err)
			return
		}
		img.Texture = tex
		return
	}
	if err := e.backend.Update(img.Texture, img.Current); err != nil {
		log.Printf("update texture: %v", err)
	}
}

// AddImage places pix on the board with its top-left at world pos and
// returns its ID. The texture is uploaded immediately.
func (e *Editor) AddImage(pos geom.Vec2, pix *image.RGBA) (scene.ID, error) {
	img := scene.NewImage(pos, pix)
	tex, err := e.backend.Upload(img.Current)
	if err != nil {
		return scene.ID{}, fmt.Errorf("upload texture: %w", err)
	}
	img.Texture = tex
	return e.store.Append(img), nil
}

// measure refreshes cached text sizes for the current scale.
func (e *Editor) measure() {
	e.store.Each(func(_ scene.ID, ent scene.Entity) bool {
		if t, ok := ent.(*scene.Text); ok {
			t.Measure(e.backend, e.vp.Scale)
		}
		return true
	})
}
