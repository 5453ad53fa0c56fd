package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/example/whiteboard/internal/app"
	"github.com/example/whiteboard/internal/capture"
	"github.com/example/whiteboard/internal/clipboard"
	"github.com/example/whiteboard/internal/editor"
)

// runApp is swapped out in tests so no window is opened.
var runApp = func(a *app.App) { a.Run() }

type openCmd struct {
	*root
	fs      *flag.FlagSet
	output  string
	monitor string
	width   int
	height  int
	files   []string
}

func (o *openCmd) Program() string {
	return o.subcommand("open")
}

func (o *openCmd) FlagSet() *flag.FlagSet {
	return o.fs
}

func parseOpenCmd(args []string, r *root) (*openCmd, error) {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	o := &openCmd{root: r, fs: fs}
	fs.Usage = usageFunc(o)
	saveDir := r.config.SaveDir
	if saveDir == "" {
		saveDir = "."
	}
	fs.StringVar(&o.output, "output", saveDir, "directory screenshots and saved selections are written to")
	fs.StringVar(&o.monitor, "monitor", "", "monitor used by desktop capture (primary, an index or a name)")
	fs.IntVar(&o.width, "width", 1280, "initial window width")
	fs.IntVar(&o.height, "height", 800, "initial window height")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.files = fs.Args()
	if st, err := os.Stat(o.output); err != nil {
		return nil, fmt.Errorf("output directory: %w", err)
	} else if !st.IsDir() {
		return nil, fmt.Errorf("output directory: %s is not a directory", o.output)
	}
	return o, nil
}

func (o *openCmd) desktop(ctx context.Context) (*image.RGBA, error) {
	img, err := capture.Desktop(ctx, o.monitor)
	if err != nil {
		return nil, fmt.Errorf("failed to capture desktop: %w", err)
	}
	return img, nil
}

func (o *openCmd) options() []app.Option {
	cfg := o.config
	eopts := []editor.Option{
		editor.WithSaveDir(o.output),
		editor.WithPenWidth(float64(cfg.PenWidth)),
		editor.WithEraserRadius(float64(cfg.EraserRadius)),
		editor.WithDesktop(o.desktop),
		editor.WithClipboard(clipboard.System{}),
	}
	if o.notifier != nil {
		eopts = append(eopts, editor.WithNotifier(o.notifier))
	}
	return []app.Option{
		app.WithSize(o.width, o.height),
		app.WithTheme(o.activeTheme),
		app.WithDPIScale(cfg.DPIScale),
		app.WithFiles(o.files...),
		app.WithEditorOptions(eopts...),
	}
}

func (o *openCmd) Run() error {
	runApp(app.New(o.options()...))
	return nil
}
