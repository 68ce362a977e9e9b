package system

import (
	"fmt"
	"os"

	"github.com/nousjournal/nous/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing store before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()

	if c.Force {
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			fmt.Printf("Deleted existing store at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}
	// Persist an empty store so the file exists from here on.
	if err := ctx.Store.SaveEntries(ctx.Store.Entries()); err != nil {
		return err
	}
	fmt.Printf("Initialized nous storage at: %s\n", path)
	return nil
}
