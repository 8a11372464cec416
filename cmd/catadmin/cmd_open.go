package main

import (
	"catadmin/internal/catalog"
	"errors"
	"fmt"
)

var errNoImage = errors.New("product has no image to open")

type OpenCmd struct {
	ID int `arg:"" help:"Product id"`
}

func (cmd *OpenCmd) Run(g *Globals) error {
	con := g.newConsole(0)

	d, err := con.ShowDetail(g.context(), cmd.ID)
	if err != nil {
		return errReported
	}
	if len(d.Images) == 0 || d.Images[0] == catalog.PlaceholderImage {
		return errNoImage
	}

	url := d.Images[0]
	fmt.Fprintf(g.Out, "Opening %s\n", url)
	name, args := openerCommand(url)
	return g.runCmd(name, args...)
}
