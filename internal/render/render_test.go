package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/example/whiteboard/internal/geom"
)

func fill(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func alphaMask(img *image.RGBA) []byte {
	b := img.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, img.RGBAAt(x, y).A)
		}
	}
	return out
}

func TestFlipHorizontal(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 1, A: 255})
	img.SetRGBA(2, 1, color.RGBA{G: 2, A: 255})
	FlipHorizontal(img)
	if img.RGBAAt(2, 0).R != 1 || img.RGBAAt(0, 1).G != 2 {
		t.Errorf("pixels not mirrored: %v", img.Pix)
	}
	if img.RGBAAt(1, 0).A != 0 {
		t.Error("middle column changed")
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(1, 0, color.RGBA{B: 9, A: 255})
	FlipVertical(img)
	if img.RGBAAt(1, 2).B != 9 || img.RGBAAt(1, 0).A != 0 {
		t.Errorf("pixels not mirrored: %v", img.Pix)
	}
	before := Copy(img)
	FlipVertical(img)
	FlipVertical(img)
	if !bytes.Equal(before.Pix, img.Pix) {
		t.Error("double flip is not identity")
	}
}

func TestFloodRemoveRegion(t *testing.T) {
	bg := color.RGBA{250, 250, 250, 255}
	img := fill(10, 10, bg)
	// a red wall splits the image into two halves
	for y := 0; y < 10; y++ {
		img.SetRGBA(5, y, color.RGBA{200, 0, 0, 255})
	}
	// near-background noise within tolerance
	img.SetRGBA(1, 1, color.RGBA{225, 240, 250, 255})

	n := FloodRemove(img, image.Pt(0, 0), DefaultTolerance)
	if n != 50 {
		t.Errorf("removed %d, want 50", n)
	}
	if img.RGBAAt(1, 1).A != 0 {
		t.Error("pixel within tolerance kept")
	}
	if img.RGBAAt(5, 3).A != 255 || img.RGBAAt(7, 3).A != 255 {
		t.Error("fill crossed the wall")
	}
}

func TestFloodRemoveIdempotent(t *testing.T) {
	img := fill(8, 8, color.RGBA{10, 20, 30, 255})
	img.SetRGBA(4, 4, color.RGBA{200, 200, 200, 255})
	FloodRemove(img, image.Pt(0, 0), DefaultTolerance)
	once := alphaMask(img)
	if n := FloodRemove(img, image.Pt(0, 0), DefaultTolerance); n != 0 {
		t.Errorf("second run removed %d", n)
	}
	if !bytes.Equal(once, alphaMask(img)) {
		t.Error("second run changed the mask")
	}
}

func TestFloodRemoveFaintPixels(t *testing.T) {
	img := fill(3, 1, color.RGBA{0, 0, 0, 255})
	// a faint pixel of a very different colour still joins the region
	img.SetRGBA(1, 0, color.RGBA{10, 0, 0, 10})
	if n := FloodRemove(img, image.Pt(0, 0), DefaultTolerance); n != 3 {
		t.Errorf("removed %d, want 3", n)
	}
}

func TestFloodRemoveOutOfBounds(t *testing.T) {
	img := fill(2, 2, color.RGBA{1, 1, 1, 255})
	for _, p := range []image.Point{{-1, 0}, {0, 2}, {5, 5}} {
		if n := FloodRemove(img, p, DefaultTolerance); n != 0 {
			t.Errorf("seed %v removed %d", p, n)
		}
	}
	if FloodRemove(nil, image.Pt(0, 0), 30) != 0 {
		t.Error("nil image")
	}
}

func TestErodeOpaqueSquare(t *testing.T) {
	const n = 6
	img := fill(n, n, color.RGBA{9, 9, 9, 255})
	if got := Erode(img); got != 4*(n-1) {
		t.Errorf("cleared %d, want %d", got, 4*(n-1))
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			border := x == 0 || y == 0 || x == n-1 || y == n-1
			a := img.RGBAAt(x, y).A
			if border && a != 0 {
				t.Errorf("border pixel (%d,%d) alpha %d", x, y, a)
			}
			if !border && img.RGBAAt(x, y) != (color.RGBA{9, 9, 9, 255}) {
				t.Errorf("interior pixel (%d,%d) changed", x, y)
			}
		}
	}
}

func TestErodeUsesSnapshot(t *testing.T) {
	// a single transparent pixel in the middle of a row may only take its
	// direct neighbours with it, not cascade along the row
	img := fill(7, 3, color.RGBA{1, 2, 3, 255})
	img.SetRGBA(3, 1, color.RGBA{})
	Erode(img)
	if img.RGBAAt(2, 1).A != 0 || img.RGBAAt(4, 1).A != 0 {
		t.Error("direct neighbours kept")
	}
	if img.RGBAAt(1, 1).A == 0 || img.RGBAAt(5, 1).A == 0 {
		t.Error("erosion cascaded within one pass")
	}
}

func TestPunch(t *testing.T) {
	img := fill(21, 21, color.RGBA{5, 5, 5, 255})
	n := Punch(img, geom.V(10.5, 10.5), geom.V(3, 3))
	if n == 0 {
		t.Fatal("nothing punched")
	}
	if img.RGBAAt(10, 10).A != 0 {
		t.Error("centre kept")
	}
	if img.RGBAAt(10, 15).A == 0 || img.RGBAAt(0, 0).A == 0 {
		t.Error("punched outside the radius")
	}
	// partly outside the buffer is clipped
	if Punch(img, geom.V(0, 0), geom.V(4, 4)) == 0 {
		t.Error("edge punch changed nothing")
	}
}
