package main

import "catadmin/internal/console"

type ShowCmd struct {
	ID          int  `arg:"" help:"Product id"`
	CheckImages bool `name:"check-images" help:"Replace images that fail to load with the placeholder"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	var opts []console.Option
	if cmd.CheckImages && g.Prober != nil {
		opts = append(opts, console.WithImageProber(g.Prober))
	}
	con := g.newConsole(0, opts...)

	d, err := con.ShowDetail(g.context(), cmd.ID)
	if err != nil {
		return errReported
	}
	g.printer().RenderDetail(d)
	return nil
}
