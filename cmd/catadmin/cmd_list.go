package main

import (
	"catadmin/internal/render"
	"fmt"
)

type ListCmd struct {
	ViewFlags `embed:""`

	IDs bool `name:"ids" help:"Output only the ids of every matching product (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	con, err := loadView(g, cmd.ViewFlags)
	if err != nil {
		return err
	}

	st := con.State()
	if cmd.IDs {
		for _, p := range st.View {
			fmt.Fprintln(g.Out, p.ID)
		}
		return nil
	}

	p := g.printer()
	p.Options = render.TableOptions{Sort: st.Sort}
	p.Render(con.CurrentPage(), con.PageInfo())
	return nil
}
