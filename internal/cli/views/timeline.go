package views

import (
	"fmt"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/cli/entries"
	"github.com/nousjournal/nous/internal/projection"
)

type TimelineCmd struct {
	Limit int  `short:"n" help:"Maximum number of days to show." default:"10"`
	All   bool `help:"Show the whole timeline."`
}

func (c *TimelineCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	timeline := projection.Timeline(ctx.Store.Entries())
	if len(timeline) == 0 {
		fmt.Println("Le journal est vide.")
		return nil
	}

	shown := 0
	for _, entry := range timeline {
		if !c.All && c.Limit > 0 && shown >= c.Limit {
			break
		}
		entries.PrintEntry(entry)
		fmt.Println()
		shown++
	}
	if !c.All && shown < len(timeline) {
		fmt.Printf("… %d jour(s) de plus (--all pour tout afficher)\n", len(timeline)-shown)
	}
	return nil
}
