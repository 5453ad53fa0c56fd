//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package capture

import (
	"context"
	"errors"
	"image"
)

var errUnsupported = errors.New("desktop capture is not supported on this platform")

type stubBackend struct{}

func newBackend() desktopBackend { return stubBackend{} }

func (stubBackend) Portal(context.Context) (*image.RGBA, error) { return nil, errUnsupported }
func (stubBackend) Root() (*image.RGBA, error)                  { return nil, errUnsupported }
func (stubBackend) Monitors() ([]Monitor, error)                { return nil, errUnsupported }
