package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const ext = ".theme"

// Loader resolves theme names to palettes.
type Loader struct {
	ConfigDir string
	SystemDir string
	// Custom holds themes defined inline in the config file.
	Custom map[string]*Theme
}

// NewLoader creates a new Loader with standard paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "whiteboard", "themes"),
		SystemDir: "/usr/share/whiteboard/themes",
	}
}

// Load attempts to load a theme by name or path.
// Order:
// 1. An existing file path.
// 2. Themes defined in the config file.
// 3. Embedded themes.
// 4. ConfigDir, then SystemDir.
// An empty name yields Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}

	if st, err := os.Stat(name); err == nil && !st.IsDir() {
		return parseFile(name)
	}

	if t, ok := l.Custom[name]; ok {
		return t, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ext) {
		filename += ext
	}

	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}

	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, filename)
		if _, err := os.Stat(p); err == nil {
			return parseFile(p)
		}
	}

	return nil, fmt.Errorf("theme %q not found", name)
}

// Names lists every theme name Load can resolve without a path.
func (l *Loader) Names() []string {
	seen := map[string]bool{}
	for name := range l.Custom {
		seen[name] = true
	}
	if entries, err := fs.ReadDir(EmbeddedThemes, "defaults"); err == nil {
		for _, e := range entries {
			seen[strings.TrimSuffix(e.Name(), ext)] = true
		}
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		matches, _ := filepath.Glob(filepath.Join(dir, "*"+ext))
		for _, m := range matches {
			seen[strings.TrimSuffix(filepath.Base(m), ext)] = true
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
