package main

import (
	"catadmin/internal/console"
	"catadmin/internal/render"
	"catadmin/internal/tui"
	"os"

	"github.com/atotto/clipboard"
)

type BrowseCmd struct {
	CheckImages bool `name:"check-images" help:"Replace images that fail to load with the placeholder"`
}

func (cmd *BrowseCmd) Run(g *Globals) error {
	rec := &console.Recorder{}
	opts := []console.Option{
		console.WithPerPage(g.Cfg.PerPage),
		console.WithLogger(g.Log),
	}
	if cmd.CheckImages && g.Prober != nil {
		opts = append(opts, console.WithImageProber(g.Prober))
	}
	con := console.New(g.Svc, rec, rec, opts...)

	dir, err := exportDir(g, "")
	if err != nil {
		return err
	}

	var copyFn func(string) error
	if !clipboard.Unsupported {
		copyFn = clipboard.WriteAll
	}

	m := tui.New(g.context(), con, rec, tui.Options{
		ExportDir: dir,
		Copy:      copyFn,
		Renderer:  render.NewLipglossRendererAuto(os.Stdout),
	})
	return tui.Run(g.context(), m)
}
