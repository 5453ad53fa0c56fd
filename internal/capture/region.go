// Package capture turns rendered or desktop pixels into RGBA buffers and
// names and writes the PNG files they are exported to.
package capture

import (
	"errors"
	"fmt"
	"image"
	"math"
	"path/filepath"
	"strconv"
	"time"

	"github.com/example/whiteboard/internal/codec"
	"github.com/example/whiteboard/internal/render"
)

// DefaultSelectionName is used when the current selection is saved.
const DefaultSelectionName = "selection.png"

// ErrEmptyRegion is returned when the requested area has no pixels on the
// frame.
var ErrEmptyRegion = errors.New("capture region is empty")

// Readback reads pixels from the last rendered frame. Rows come back
// bottom-up, as GPU framebuffer reads deliver them.
type Readback interface {
	Bounds() image.Rectangle
	DPIScale() float64
	ReadPixels(r image.Rectangle) ([]byte, error)
}

// Region captures r, given in window coordinates, as a top-down buffer.
// The rectangle is scaled by the device pixel ratio and clipped to the frame.
func Region(rb Readback, r image.Rectangle) (*image.RGBA, error) {
	r = Scale(r.Canon(), rb.DPIScale()).Intersect(rb.Bounds())
	if r.Empty() {
		return nil, ErrEmptyRegion
	}
	data, err := rb.ReadPixels(r)
	if err != nil {
		return nil, fmt.Errorf("read pixels: %w", err)
	}
	if len(data) != r.Dx()*r.Dy()*4 {
		return nil, fmt.Errorf("read pixels: got %d bytes for %v", len(data), r)
	}
	img := &image.RGBA{Pix: data, Stride: r.Dx() * 4, Rect: image.Rect(0, 0, r.Dx(), r.Dy())}
	render.FlipVertical(img)
	return img, nil
}

// Scale multiplies r by the device pixel ratio, rounding outward.
func Scale(r image.Rectangle, dpi float64) image.Rectangle {
	if dpi <= 0 || dpi == 1 {
		return r
	}
	return image.Rect(
		int(math.Floor(float64(r.Min.X)*dpi)), int(math.Floor(float64(r.Min.Y)*dpi)),
		int(math.Ceil(float64(r.Max.X)*dpi)), int(math.Ceil(float64(r.Max.Y)*dpi)),
	)
}

// TimestampName is the file name for a capture taken at t.
func TimestampName(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10) + ".png"
}

// Export writes img as dir/name and returns the path written.
func Export(img image.Image, dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if err := codec.ExportPNG(img, path); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return path, nil
}
