package views

import (
	"fmt"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/cli/entries"
	"github.com/nousjournal/nous/internal/normalize"
	"github.com/nousjournal/nous/internal/projection"
)

type MemoriesCmd struct {
	Date string `arg:"" optional:"" help:"Reference date (YYYY-MM-DD, default today)."`
}

func (c *MemoriesCmd) Validate() error {
	if c.Date != "" && !normalize.ValidDateKey(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *MemoriesCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	dateKey := c.Date
	if dateKey == "" {
		dateKey = ctx.Today()
	}

	memories := projection.Memories(ctx.Store.Entries(), dateKey)
	if len(memories) == 0 {
		fmt.Printf("Aucun souvenir un %s d'une autre année.\n", dateKey[5:])
		return nil
	}

	fmt.Printf("Ce jour-là, les autres années :\n\n")
	for _, entry := range memories {
		entries.PrintEntry(entry)
		fmt.Println()
	}
	return nil
}
