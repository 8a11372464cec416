package main

import (
	"catadmin/internal/catalog"
	"catadmin/internal/ui"
	"fmt"
	"strconv"
)

type CreateCmd struct {
	ProductFlags `embed:""`
}

func (cmd *CreateCmd) Run(g *Globals) error {
	var form catalog.Form
	cmd.applyTo(&form)

	if !cmd.NoInput {
		if err := g.runForm(ui.NewProductForm(&form)); err != nil {
			return handleFormError(err)
		}
		renderFormSummary(g, "Create new product", form)
	}

	con := g.newConsole(0)
	p, err := con.CreateProduct(g.context(), form)
	if err != nil {
		return submitError(err)
	}

	fmt.Fprint(g.Out, ui.RenderSuccess("Created", p.Title, "#"+strconv.Itoa(p.ID), ui.ProductChecks(p)))
	return nil
}

func renderFormSummary(g *Globals, title string, form catalog.Form) {
	fmt.Fprint(g.Out, ui.RenderSummary(title, ui.FormFields(form)))
}
