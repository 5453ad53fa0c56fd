package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/whiteboard/internal/theme"
)

// Defaults for the numeric settings.
const (
	DefaultPenWidth     = 2
	DefaultEraserRadius = 10
	DefaultDPIScale     = 1.0
)

// Notify holds notification settings.
type Notify struct {
	Export bool
	Copy   bool
	Import bool
}

// Config holds the application configuration.
// Root keys may be overridden from the environment, see ApplyEnv.
type Config struct {
	Theme        string  `envconfig:"WHITEBOARD_THEME"`
	SaveDir      string  `envconfig:"WHITEBOARD_SAVE_DIR"`
	PenWidth     int     `envconfig:"WHITEBOARD_PEN_WIDTH"`
	EraserRadius int     `envconfig:"WHITEBOARD_ERASER_RADIUS"`
	DPIScale     float64 `envconfig:"WHITEBOARD_DPI_SCALE"`

	Notify Notify                  `ignored:"true"`
	Themes map[string]*theme.Theme `ignored:"true"`
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:        "", // empty falls back to the built-in palette
		PenWidth:     DefaultPenWidth,
		EraserRadius: DefaultEraserRadius,
		DPIScale:     DefaultDPIScale,
		Themes:       make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "pen_width = %d\n", c.PenWidth)
	fmt.Fprintf(&sb, "eraser_radius = %d\n", c.EraserRadius)
	fmt.Fprintf(&sb, "dpi_scale = %g\n", c.DPIScale)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "import = %v\n", c.Notify.Import)
	sb.WriteString("\n")

	// Sorted for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.FormatColor(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Clamp forces the numeric settings into the ranges the editor accepts.
func (c *Config) Clamp() {
	c.PenWidth = clampInt(c.PenWidth, 1, 50)
	c.EraserRadius = clampInt(c.EraserRadius, 5, 100)
	if c.DPIScale <= 0 {
		c.DPIScale = DefaultDPIScale
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
