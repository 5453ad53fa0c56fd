// Package notify sends desktop notifications for board events the user
// opted into.
package notify

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/example/whiteboard/internal/codec"
	"github.com/example/whiteboard/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventExport fires when a PNG is written to disk.
	EventExport Event = "export"
	// EventCopy fires when an entity is copied to the clipboard.
	EventCopy Event = "copy"
	// EventImport fires when an image is added from a file, the clipboard
	// or a desktop capture.
	EventImport Event = "import"
)

// Preferences holds the notification title and per-event message
// templates. Each template takes one %s for the event detail.
type Preferences struct {
	Title  string `envconfig:"WHITEBOARD_NOTIFY_TITLE"`
	Export string `envconfig:"WHITEBOARD_NOTIFY_EXPORT_TEXT"`
	Copy   string `envconfig:"WHITEBOARD_NOTIFY_COPY_TEXT"`
	Import string `envconfig:"WHITEBOARD_NOTIFY_IMPORT_TEXT"`
}

// DefaultPreferences returns the built-in wording.
func DefaultPreferences() Preferences {
	return Preferences{
		Title:  "Whiteboard",
		Export: "Saved %s",
		Copy:   "Copied %s to clipboard",
		Import: "Imported %s",
	}
}

// LoadPreferences applies environment overrides to the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if err := envconfig.Process("", &prefs); err != nil {
		log.Printf("notification preferences: %v", err)
		return DefaultPreferences()
	}
	return prefs
}

func (p Preferences) template(event Event) string {
	switch event {
	case EventExport:
		return p.Export
	case EventCopy:
		return p.Copy
	case EventImport:
		return p.Import
	}
	return ""
}

var send = platform.Notify

// Notifier sends OS-level notifications for enabled events. A nil
// Notifier sends nothing.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a Notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	return &Notifier{prefs: prefs, enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Export reports a written file, showing it as the notification icon.
func (n *Notifier) Export(path string) {
	if !n.enabledFor(EventExport) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, err := os.Stat(abs); err == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventExport, detail, opts)
}

// Copy reports a clipboard write.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "image"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

// Import reports a new image on the board with an optional preview.
func (n *Notifier) Import(detail string, img image.Image) {
	if !n.enabledFor(EventImport) {
		return
	}
	opts := platform.Options{}
	if img != nil {
		path, cleanup, err := createPreview(img)
		if err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(EventImport, detail, opts)
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.prefs.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "whiteboard-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := codec.EncodePNG(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
