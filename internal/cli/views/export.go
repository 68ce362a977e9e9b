package views

import (
	"fmt"
	"os"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/export"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write the export to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	profile := ctx.Store.GetProfile()
	document := export.Render(ctx.Store.Entries(), profile.Name)

	if c.Output == "" {
		fmt.Print(document)
		return nil
	}
	if err := os.WriteFile(c.Output, []byte(document), 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Journal exporté vers %s\n", c.Output)
	return nil
}
