// Package clipboard moves images and text between the board and the
// desktop clipboard. Images travel as PNG.
package clipboard

import (
	"bytes"
	"errors"
	"image"

	"github.com/example/whiteboard/internal/codec"
)

var (
	errNoImage = errors.New("clipboard does not contain image data")
	errNoText  = errors.New("clipboard does not contain text data")
)

// System is the desktop clipboard as a value, for callers that take the
// clipboard as a dependency.
type System struct{}

func (System) ReadImage() (*image.RGBA, error)  { return ReadImage() }
func (System) WriteImage(img image.Image) error { return WriteImage(img) }
func (System) ReadText() (string, error)        { return ReadText() }
func (System) WriteText(s string) error         { return WriteText(s) }

func encodeImage(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := codec.EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeImage(data []byte) (*image.RGBA, error) {
	if len(data) == 0 {
		return nil, errNoImage
	}
	return codec.Decode(bytes.NewReader(data))
}
