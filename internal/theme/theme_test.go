package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseKeepsDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: mine\nbackground: #010203\nEraserBrush: #0A0B0C80\nUnknown: #FFFFFF\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "mine" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Background != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("Background = %v", th.Background)
	}
	if th.EraserBrush != (color.RGBA{10, 11, 12, 128}) {
		t.Errorf("EraserBrush = %v", th.EraserBrush)
	}
	if th.Selection != Default().Selection {
		t.Errorf("Selection should keep default, got %v", th.Selection)
	}
}

func TestParseBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: 123456")); err == nil {
		t.Fatal("expected error for missing #")
	}
	if _, err := Parse(strings.NewReader("Background: #12345")); err == nil {
		t.Fatal("expected error for bad length")
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {200, 122, 255, 255}, {150, 0, 150, 190}} {
		got, err := ParseColor(FormatColor(c))
		if err != nil || got != c {
			t.Errorf("round trip %v -> %v (%v)", c, got, err)
		}
	}
}

func TestEmbeddedDarkMatchesDefault(t *testing.T) {
	l := &Loader{}
	th, err := l.Load("dark")
	if err != nil {
		t.Fatalf("Load dark: %v", err)
	}
	if *th != *Default() {
		t.Errorf("embedded dark differs from Default:\n%+v\n%+v", th, Default())
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ocean.theme"), []byte("Name: ocean\nBackground: #001122\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	custom := Default()
	custom.Name = "inline"
	l := &Loader{ConfigDir: dir, Custom: map[string]*Theme{"inline": custom}}

	th, err := l.Load("ocean")
	if err != nil {
		t.Fatalf("Load ocean: %v", err)
	}
	if th.Background != (color.RGBA{0, 0x11, 0x22, 255}) {
		t.Errorf("ocean Background = %v", th.Background)
	}
	if th, _ := l.Load("inline"); th != custom {
		t.Error("inline theme not preferred")
	}
	if th, _ := l.Load(filepath.Join(dir, "ocean.theme")); th == nil || th.Name != "ocean" {
		t.Error("path lookup failed")
	}
	if _, err := l.Load("missing"); err == nil {
		t.Error("expected not found")
	}

	names := strings.Join(l.Names(), ",")
	for _, want := range []string{"dark", "light", "ocean", "inline"} {
		if !strings.Contains(names, want) {
			t.Errorf("Names() = %s, missing %s", names, want)
		}
	}
}
