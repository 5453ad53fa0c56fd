package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/boards
pen_width = 6
eraser_radius = 25
dpi_scale = 2

[notify]
export = true
copy = false
import = true

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/boards" {
		t.Errorf("Expected save_dir '/tmp/boards', got '%s'", cfg.SaveDir)
	}
	if cfg.PenWidth != 6 || cfg.EraserRadius != 25 || cfg.DPIScale != 2 {
		t.Errorf("numeric keys: %+v", cfg)
	}
	if !cfg.Notify.Export || cfg.Notify.Copy || !cfg.Notify.Import {
		t.Errorf("notify = %+v", cfg.Notify)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"pen_width = wide",
		"[notify]\nexport = maybe",
		"[theme.x]\nBackground = red",
	} {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("Parse(%q) succeeded", input)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/boards
pen_width = 4

[notify]
export = true
copy = true
import = false

[theme.custom]
Name = custom
Background = #000000
Selection = #FF00FF80
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme || cfg.SaveDir != cfg2.SaveDir || cfg.PenWidth != cfg2.PenWidth {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.rc")
	if err := os.WriteFile(path, []byte("theme = light\npen_width = 3\nsave_dir = /from/file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WHITEBOARD_THEME", "dark")
	t.Setenv("WHITEBOARD_ERASER_RADIUS", "500")

	cfg, err := NewLoader("release", path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("env should win over file, got %q", cfg.Theme)
	}
	if cfg.PenWidth != 3 || cfg.SaveDir != "/from/file" {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.EraserRadius != 100 {
		t.Errorf("eraser radius should clamp to 100, got %d", cfg.EraserRadius)
	}
}

func TestEnvBadValue(t *testing.T) {
	t.Setenv("WHITEBOARD_PEN_WIDTH", "thick")
	if err := ApplyEnv(New()); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadKeepsFileOnBadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.rc")
	cfg := New()
	cfg.SaveDir = "/boards"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	t.Setenv("WHITEBOARD_PEN_WIDTH", "thick")
	loaded, err := NewLoader("release", path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SaveDir != "/boards" {
		t.Errorf("SaveDir = %q, want file value", loaded.SaveDir)
	}
	if loaded.PenWidth != New().PenWidth {
		t.Errorf("PenWidth = %d", loaded.PenWidth)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.rc")
	cfg := New()
	cfg.SaveDir = "/x"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := NewLoader("release", path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SaveDir != "/x" {
		t.Errorf("SaveDir = %q", loaded.SaveDir)
	}
}
