package main

import (
	"catadmin/internal/config"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

type InitCmd struct {
	Force bool `short:"f" help:"Overwrite an existing config file"`
}

func (cmd *InitCmd) Run(g *Globals) error {
	path := g.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !cmd.Force {
		return fmt.Errorf("config already exists: %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	if err := config.Write(path, g.Cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(g.Out, "Wrote %s\n", path)
	return nil
}
