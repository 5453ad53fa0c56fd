package editor

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/example/whiteboard/internal/geom"
	"github.com/example/whiteboard/internal/input"
	"github.com/example/whiteboard/internal/surface"
)

type fakeBackend struct {
	next     surface.Texture
	uploads  int
	updates  int
	released []surface.Texture
	frame    image.Rectangle
}

func (b *fakeBackend) Upload(*image.RGBA) (surface.Texture, error) {
	b.next++
	b.uploads++
	return b.next, nil
}

func (b *fakeBackend) Update(surface.Texture, *image.RGBA) error {
	b.updates++
	return nil
}

func (b *fakeBackend) Release(t surface.Texture) { b.released = append(b.released, t) }

// MeasureText gives every glyph half the font size in width.
func (b *fakeBackend) MeasureText(s string, size, _ float64) geom.Vec2 {
	return geom.V(float64(len(s))*size/2, size)
}

func (b *fakeBackend) Bounds() image.Rectangle { return b.frame }

func (b *fakeBackend) DPIScale() float64 { return 1 }

func (b *fakeBackend) ReadPixels(r image.Rectangle) ([]byte, error) {
	data := make([]byte, r.Dx()*r.Dy()*4)
	for i := range data {
		data[i] = 0x80
	}
	return data, nil
}

type exported struct {
	img  image.Image
	dir  string
	name string
}

type fakeNotifier struct {
	exports []string
	copies  []string
	imports []string
}

func (n *fakeNotifier) Export(path string) {
	n.exports = append(n.exports, path)
}

func (n *fakeNotifier) Copy(detail string) {
	n.copies = append(n.copies, detail)
}

func (n *fakeNotifier) Import(detail string, _ image.Image) {
	n.imports = append(n.imports, detail)
}

type fakeClipboard struct {
	img  *image.RGBA
	text string
	out  []interface{}
}

func (c *fakeClipboard) ReadImage() (*image.RGBA, error) {
	if c.img == nil {
		return nil, errors.New("no image")
	}
	return c.img, nil
}

func (c *fakeClipboard) WriteImage(img image.Image) error {
	c.out = append(c.out, img)
	return nil
}

func (c *fakeClipboard) ReadText() (string, error) { return c.text, nil }

func (c *fakeClipboard) WriteText(s string) error {
	c.out = append(c.out, s)
	return nil
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var white = color.RGBA{255, 255, 255, 255}

// harness drives an editor with synthetic frames in an 800x600 window.
type harness struct {
	t       *testing.T
	e       *Editor
	b       *fakeBackend
	n       *fakeNotifier
	exports []exported
	clock   time.Time
	size    geom.Vec2
	cursor  geom.Vec2
	down    bool
	downR   bool
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		b:     &fakeBackend{frame: image.Rect(0, 0, 800, 600)},
		n:     &fakeNotifier{},
		clock: time.Unix(1700000000, 0),
		size:  geom.V(800, 600),
	}
	base := []Option{
		WithNotifier(h.n),
		WithSaveDir("/out"),
		WithClock(func() time.Time { return h.clock }),
		WithExporter(func(img image.Image, dir, name string) (string, error) {
			h.exports = append(h.exports, exported{img, dir, name})
			return dir + "/" + name, nil
		}),
		WithDesktop(func(context.Context) (*image.RGBA, error) { return solid(4, 3, white), nil }),
	}
	h.e = New(h.b, append(base, opts...)...)
	h.step(input.Frame{})
	return h
}

func (h *harness) step(f input.Frame) {
	f.Delta = f.Cursor.Sub(h.cursor)
	h.cursor = f.Cursor
	f.Buttons[input.Left].Down = f.Buttons[input.Left].Down || (h.down && !f.Buttons[input.Left].Released)
	f.Buttons[input.Right].Down = f.Buttons[input.Right].Down || (h.downR && !f.Buttons[input.Right].Released)
	h.down = f.Buttons[input.Left].Down
	h.downR = f.Buttons[input.Right].Down
	h.e.Step(f, h.size)
}

func (h *harness) press(x, y float64) {
	f := input.Frame{Cursor: geom.V(x, y)}
	f.Buttons[input.Left] = input.ButtonState{Pressed: true, Down: true}
	h.step(f)
}

func (h *harness) move(x, y float64) {
	h.step(input.Frame{Cursor: geom.V(x, y)})
}

func (h *harness) release(x, y float64) {
	f := input.Frame{Cursor: geom.V(x, y)}
	f.Buttons[input.Left] = input.ButtonState{Released: true}
	h.step(f)
}

func (h *harness) click(x, y float64) {
	f := input.Frame{Cursor: geom.V(x, y)}
	f.Buttons[input.Left] = input.ButtonState{Pressed: true, Released: true}
	h.step(f)
}

func (h *harness) keys(keys ...input.Key) {
	h.step(input.Frame{Cursor: h.cursor, Keys: keys})
}

func runes(s string) []input.Key {
	var ks []input.Key
	for _, r := range s {
		ks = append(ks, input.Key{Rune: r})
	}
	return ks
}
