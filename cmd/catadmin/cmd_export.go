package main

type ExportCmd struct {
	ViewFlags `embed:""`

	Dir string `short:"d" help:"Directory to write the file into (defaults to export_dir)"`
}

func (cmd *ExportCmd) Run(g *Globals) error {
	dir, err := exportDir(g, cmd.Dir)
	if err != nil {
		return err
	}

	con, err := loadView(g, cmd.ViewFlags)
	if err != nil {
		return err
	}

	if _, err := con.ExportCurrentPage(dir); err != nil {
		return errReported
	}
	return nil
}

