package main

import (
	"flag"
	"fmt"

	"github.com/example/whiteboard/internal/config"
)

type configCmd struct {
	*root
	fs   *flag.FlagSet
	path string
}

func (c *configCmd) Program() string {
	return c.subcommand("config")
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	c := &configCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.path, "path", "", "file written by save (default: the loaded config, else the user config dir)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}

	switch args[0] {
	case "print":
		fmt.Fprint(c.stdout, c.config.String())
		return nil
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) savePath() string {
	if c.path != "" {
		return c.path
	}
	if p := config.NewLoader(version, configPathOverride).GetConfigPath(); p != "" {
		return p
	}
	return config.DefaultDir() + "/config.rc"
}

func (c *configCmd) runSave() error {
	path := c.savePath()
	if err := config.Save(c.config, path); err != nil {
		return err
	}
	fmt.Fprintf(c.stderr, "Configuration saved to %s\n", path)
	return nil
}
