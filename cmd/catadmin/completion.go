package main

import (
	_ "embed"
	"fmt"
)

var (
	//go:embed completions/catadmin.bash
	bashCompletion []byte
	//go:embed completions/catadmin.zsh
	zshCompletion []byte
	//go:embed completions/catadmin.fish
	fishCompletion []byte
)

type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

func (cmd *CompletionCmd) Run(g *Globals) error {
	var script []byte
	switch cmd.Shell {
	case "bash":
		script = bashCompletion
	case "zsh":
		script = zshCompletion
	case "fish":
		script = fishCompletion
	default:
		return fmt.Errorf("unsupported shell: %s", cmd.Shell)
	}

	_, err := g.Out.Write(script)
	return err
}
