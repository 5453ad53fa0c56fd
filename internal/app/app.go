// Package app runs an editor inside a shiny window. It owns the event
// pump and the window buffer; everything else is the editor's business.
package app

import (
	"image"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/whiteboard/internal/editor"
	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/input"
	"github.com/example/whiteboard/internal/raster"
	"github.com/example/whiteboard/internal/surface"
	"github.com/example/whiteboard/internal/theme"
)

// ProgramTitle is the window title prefix.
const ProgramTitle = "Whiteboard"

const (
	defaultWidth  = 1280
	defaultHeight = 800
	frameInterval = time.Second / 60
	crosshairSize = 8
)

// App holds the window configuration.
type App struct {
	Width  int
	Height int
	Files  []string

	theme   *theme.Theme
	dpi     float64
	editor  []editor.Option
	onClose func()

	closeOnce sync.Once
}

// Option configures an App.
type Option func(*App)

// WithSize sets the initial window size in pixels.
func WithSize(w, h int) Option {
	return func(a *App) {
		a.Width, a.Height = w, h
	}
}

// WithFiles queues images to import on the first frame.
func WithFiles(paths ...string) Option { return func(a *App) { a.Files = append(a.Files, paths...) } }

// WithTheme sets the palette used for the board and the software cursor.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.theme = t } }

// WithDPIScale sets the device pixel ratio used when reading back
// screenshot regions.
func WithDPIScale(s float64) Option { return func(a *App) { a.dpi = s } }

// WithEditorOptions passes options through to the editor.
func WithEditorOptions(opts ...editor.Option) Option {
	return func(a *App) { a.editor = append(a.editor, opts...) }
}

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App with the provided options.
func New(opts ...Option) *App {
	a := &App{Width: defaultWidth, Height: defaultHeight, theme: theme.Default(), dpi: 1}
	for _, o := range opts {
		o(a)
	}
	if a.Width <= 0 {
		a.Width = defaultWidth
	}
	if a.Height <= 0 {
		a.Height = defaultHeight
	}
	if a.dpi <= 0 {
		a.dpi = 1
	}
	return a
}

// Run executes the UI loop using shiny's driver. It returns when the
// window is closed.
func (a *App) Run() { driver.Main(a.Main) }

func (a *App) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Main is the shiny entry point.
func (a *App) Main(s screen.Screen) {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  a.Width,
		Height: a.Height,
		Title:  windowTitle(a.Files),
	})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	win := &window{screen: s, w: w}
	defer win.release()
	if err := win.resize(image.Pt(a.Width, a.Height)); err != nil {
		log.Fatalf("new buffer: %v", err)
	}
	canvas := raster.New(0, 0, raster.WithTarget(win.buf.RGBA()), raster.WithDPIScale(a.dpi))
	opts := append([]editor.Option{editor.WithTheme(a.theme)}, a.editor...)
	ed := editor.New(canvas, opts...)

	var acc input.Accumulator
	acc.Drop(a.Files...)

	done := make(chan struct{})
	defer close(done)
	ticks := &frameTicker{send: w.Send}
	go ticks.run(frameInterval, done)

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			if err := win.resize(e.Size()); err != nil {
				log.Printf("new buffer: %v", err)
				continue
			}
			canvas.SetTarget(win.buf.RGBA())
		case mouse.Event:
			acc.Mouse(e)
		case key.Event:
			acc.Key(e)
		case paint.Event:
			ticks.painted()
			if win.buf == nil {
				continue
			}
			f := acc.Frame()
			ed.Step(f, geom.FromPoint(win.size))
			ed.Draw(canvas)
			drawCursor(canvas, ed.Cursor(), f.Cursor, a.theme)
			w.Upload(image.Point{}, win.buf, win.buf.Bounds())
			w.Publish()
		case error:
			log.Print(e)
		}
	}
}

// frameTicker paces redraws. At most one tick is queued at a time, so a
// loop blocked on a slow import does not come back to a backlog of frames.
type frameTicker struct {
	pending atomic.Bool
	send    func(event interface{})
}

func (t *frameTicker) run(interval time.Duration, done <-chan struct{}) {
	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-tk.C:
			t.tick()
		case <-done:
			return
		}
	}
}

func (t *frameTicker) tick() {
	if t.pending.CompareAndSwap(false, true) {
		t.send(paint.Event{})
	}
}

// painted marks the queued frame as consumed.
func (t *frameTicker) painted() { t.pending.Store(false) }

// window keeps the back buffer matched to the window size.
type window struct {
	screen screen.Screen
	w      screen.Window
	buf    screen.Buffer
	size   image.Point
}

func (win *window) resize(sz image.Point) error {
	if sz.X <= 0 || sz.Y <= 0 || sz == win.size {
		return nil
	}
	b, err := win.screen.NewBuffer(sz)
	if err != nil {
		return err
	}
	win.release()
	win.buf, win.size = b, sz
	return nil
}

func (win *window) release() {
	if win.buf != nil {
		win.buf.Release()
		win.buf = nil
	}
}

// drawCursor paints a crosshair for the drawing tools. shiny has no
// cursor shapes, so the system pointer stays visible above it.
func drawCursor(s surface.Surface, c editor.Cursor, at geom.Vec2, th *theme.Theme) {
	if c != editor.CursorCrosshair {
		return
	}
	s.DrawLine(at.Sub(geom.V(crosshairSize, 0)), at.Add(geom.V(crosshairSize, 0)), 1, th.Foreground)
	s.DrawLine(at.Sub(geom.V(0, crosshairSize)), at.Add(geom.V(0, crosshairSize)), 1, th.Foreground)
}

func windowTitle(files []string) string {
	parts := []string{ProgramTitle}
	for _, f := range files {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, filepath.Base(f))
		}
	}
	if len(parts) > 3 {
		parts = append(parts[:3], "…")
	}
	return strings.Join(parts, " - ")
}
