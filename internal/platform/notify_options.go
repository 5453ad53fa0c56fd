// Package platform talks to the host's notification service.
package platform

import "time"

const appID = "Whiteboard"

// DefaultTimeout is how long a notification stays up when Options does
// not say otherwise.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed.
type Options struct {
	// IconPath, when non-empty, points to an image file shown with the
	// notification where the platform supports it.
	IconPath string
	// Timeout overrides DefaultTimeout where the platform supports it.
	Timeout time.Duration
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}
