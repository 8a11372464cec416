package main

import (
	"catadmin/internal/ui"
	"fmt"
	"strconv"
)

type EditCmd struct {
	ID int `arg:"" help:"Product id to edit"`

	ProductFlags `embed:""`
}

func (cmd *EditCmd) Run(g *Globals) error {
	con := g.newConsole(0)
	ctx := g.context()

	if _, err := con.ShowDetail(ctx, cmd.ID); err != nil {
		return errReported
	}
	form, err := con.EnableEdit(ctx)
	if err != nil {
		return submitError(err)
	}
	cmd.applyTo(&form)

	if !cmd.NoInput {
		if err := g.runForm(ui.NewProductForm(&form)); err != nil {
			return handleFormError(err)
		}
		renderFormSummary(g, "Edit product #"+strconv.Itoa(cmd.ID), form)
	}

	p, err := con.UpdateProduct(ctx, cmd.ID, form)
	if err != nil {
		return submitError(err)
	}

	fmt.Fprint(g.Out, ui.RenderSuccess("Updated", p.Title, "#"+strconv.Itoa(p.ID), ui.ProductChecks(p)))
	return nil
}
