package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strconv"
	"strings"
)

// Monitor describes one output in the desktop layout.
type Monitor struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

type desktopBackend interface {
	Portal(ctx context.Context) (*image.RGBA, error)
	Root() (*image.RGBA, error)
	Monitors() ([]Monitor, error)
}

var backend desktopBackend = newBackend()

var errNoMonitors = errors.New("no monitors available")

// Desktop grabs the whole desktop, through the screenshot portal when one
// answers and from the X11 root window otherwise. A non-empty display
// selector crops the result to the matching monitor.
func Desktop(ctx context.Context, display string) (*image.RGBA, error) {
	img, portalErr := backend.Portal(ctx)
	if portalErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var err error
		img, err = backend.Root()
		if err != nil {
			return nil, fmt.Errorf("desktop capture: portal: %v; x11: %w", portalErr, err)
		}
	}
	if display == "" {
		return img, nil
	}
	monitors, err := backend.Monitors()
	if err != nil {
		return nil, err
	}
	mon, err := FindMonitor(monitors, display)
	if err != nil {
		return nil, err
	}
	return crop(img, mon.Rect)
}

// FindMonitor resolves "primary", an index (optionally "#"-prefixed) or a
// name fragment.
func FindMonitor(monitors []Monitor, selector string) (Monitor, error) {
	if len(monitors) == 0 {
		return Monitor{}, errNoMonitors
	}
	sel := strings.ToLower(strings.TrimSpace(selector))
	if sel == "" || sel == "primary" {
		for _, m := range monitors {
			if m.Primary {
				return m, nil
			}
		}
		return monitors[0], nil
	}
	if idx, err := strconv.Atoi(strings.TrimPrefix(sel, "#")); err == nil {
		if idx < 0 || idx >= len(monitors) {
			return Monitor{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return monitors[idx], nil
	}
	for _, m := range monitors {
		if strings.Contains(strings.ToLower(m.Name), sel) {
			return m, nil
		}
	}
	return Monitor{}, fmt.Errorf("monitor %q not found", selector)
}

func crop(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, ErrEmptyRegion
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}
