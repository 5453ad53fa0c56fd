package main

import (
	"flag"
	"fmt"

	"github.com/example/whiteboard/internal/theme"
)

type themesCmd struct {
	*root
	fs *flag.FlagSet
}

func (t *themesCmd) Program() string {
	return t.subcommand("themes")
}

func (t *themesCmd) FlagSet() *flag.FlagSet {
	return t.fs
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	cmd := &themesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (t *themesCmd) Run() error {
	loader := theme.NewLoader()
	loader.Custom = t.config.Themes
	names := loader.Names()
	if len(names) == 0 {
		fmt.Fprintln(t.stdout, "no themes available")
		return nil
	}
	fmt.Fprintln(t.stdout, "available themes (* marks the active theme):")
	for _, name := range names {
		marker := " "
		if t.activeTheme != nil && t.activeTheme.Name == name {
			marker = "*"
		}
		fmt.Fprintf(t.stdout, "%s %s\n", marker, name)
	}
	return nil
}
