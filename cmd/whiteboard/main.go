package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/whiteboard/internal/codec"
	"github.com/example/whiteboard/internal/config"
	"github.com/example/whiteboard/internal/notify"
	"github.com/example/whiteboard/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	stdout       io.Writer
	stderr       io.Writer
	notifier     *notify.Notifier
	config       *config.Config
	exportAlerts bool
	copyAlerts   bool
	importAlerts bool
	themeName    string
	activeTheme  *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWith(cfg, notify.New(prefs), os.Stdout, os.Stderr)
}

func newRootWith(cfg *config.Config, n *notify.Notifier, stdout, stderr io.Writer) *root {
	r := &root{
		fs:       flag.NewFlagSet("whiteboard", flag.ContinueOnError),
		program:  "whiteboard",
		stdout:   stdout,
		stderr:   stderr,
		notifier: n,
		config:   cfg,
	}
	r.fs.SetOutput(stderr)
	r.fs.BoolVar(&r.exportAlerts, "notify-export", cfg.Notify.Export, "show a desktop notification after saving a PNG")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.importAlerts, "notify-import", cfg.Notify.Import, "show a desktop notification after importing an image")

	// Precedence: CLI > Env > Config > Default. The env and config layers
	// are already merged into cfg.Theme by the loader.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (dark, light, a config theme or a file path)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) subcommand(name string) string {
	return strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventExport, r.exportAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
		r.notifier.Enable(notify.EventImport, r.importAlerts)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := "open"
	var subArgs []string
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
		if isImageArg(cmdName) {
			cmdName, subArgs = "open", r.fs.Args()
		}
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "open":
		cmd, err = parseOpenCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "themes":
		cmd, err = parseThemesCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{root: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// isImageArg reports whether a leading argument names an image to open
// rather than a command.
func isImageArg(arg string) bool {
	switch arg {
	case "open", "config", "themes", "version":
		return false
	}
	if codec.Supported(arg) {
		return true
	}
	fi, err := os.Stat(arg)
	return err == nil && !fi.IsDir()
}

// resolveTheme picks the palette named on the command line, falling back
// to the configured one. Unknown names warn and use the default.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = r.config.Theme
	}
	loader := theme.NewLoader()
	loader.Custom = r.config.Themes
	t, err := loader.Load(name)
	if err != nil {
		fmt.Fprintf(r.stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		return theme.Default()
	}
	return t
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		case errors.Is(err, flag.ErrHelp):
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
