package notify

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/whiteboard/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func capture(t *testing.T) *[]sent {
	t.Helper()
	var got []sent
	prev := send
	send = func(title, body string, opts platform.Options) error {
		s := sent{title: title, body: body, opts: opts}
		if opts.IconPath != "" {
			_, err := os.Stat(opts.IconPath)
			s.iconExisted = err == nil
		}
		got = append(got, s)
		return nil
	}
	t.Cleanup(func() { send = prev })
	return &got
}

func TestDisabledByDefault(t *testing.T) {
	got := capture(t)
	n := New(DefaultPreferences())
	n.Export("a.png")
	n.Copy("text")
	n.Import("file", nil)
	if len(*got) != 0 {
		t.Fatalf("sent %v", *got)
	}
	var nilNotifier *Notifier
	nilNotifier.Export("a.png")
	nilNotifier.Enable(EventExport, true)
}

func TestExport(t *testing.T) {
	got := capture(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "1.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultPreferences())
	n.Enable(EventExport, true)
	n.Export(path)
	if len(*got) != 1 {
		t.Fatalf("sent %d", len(*got))
	}
	s := (*got)[0]
	if s.title != "Whiteboard" || s.body != "Saved "+path || s.opts.IconPath != path {
		t.Errorf("sent %+v", s)
	}
}

func TestCopyDefaultDetail(t *testing.T) {
	got := capture(t)
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	n.Copy(" ")
	if len(*got) != 1 || (*got)[0].body != "Copied image to clipboard" {
		t.Fatalf("sent %v", *got)
	}
}

func TestImportPreview(t *testing.T) {
	got := capture(t)
	n := New(DefaultPreferences())
	n.Enable(EventImport, true)
	n.Import("desktop", image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if len(*got) != 1 {
		t.Fatalf("sent %d", len(*got))
	}
	s := (*got)[0]
	if !s.iconExisted {
		t.Error("preview missing while notifying")
	}
	if _, err := os.Stat(s.opts.IconPath); !os.IsNotExist(err) {
		t.Error("preview not cleaned up")
	}
}

func TestLoadPreferences(t *testing.T) {
	t.Setenv("WHITEBOARD_NOTIFY_TITLE", "Board")
	t.Setenv("WHITEBOARD_NOTIFY_EXPORT_TEXT", "Wrote %s")
	p := LoadPreferences()
	if p.Title != "Board" || p.Export != "Wrote %s" || p.Copy != DefaultPreferences().Copy {
		t.Errorf("prefs = %+v", p)
	}
}

func TestEmptyTemplateSkips(t *testing.T) {
	got := capture(t)
	prefs := DefaultPreferences()
	prefs.Copy = ""
	n := New(prefs)
	n.Enable(EventCopy, true)
	n.Copy("x")
	if len(*got) != 0 {
		t.Fatal("empty template still sent")
	}
}
