package reminders

import (
	"fmt"
	"strings"

	"github.com/nousjournal/nous/internal/cli"
)

type RemindDoneCmd struct {
	ID     string `arg:"" help:"Reminder ID (a unique prefix is enough)."`
	Reopen bool   `help:"Mark the reminder as not done instead."`
}

func (c *RemindDoneCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	entries := ctx.Store.Entries()
	matchDate := ""
	matchIndex := -1
	for dateKey, entry := range entries {
		for i := range entry.Reminders {
			if !strings.HasPrefix(entry.Reminders[i].ID, c.ID) {
				continue
			}
			if matchIndex >= 0 {
				return fmt.Errorf("reminder ID %q is ambiguous", c.ID)
			}
			matchDate, matchIndex = dateKey, i
		}
	}
	if matchIndex < 0 {
		return fmt.Errorf("no reminder with ID %q", c.ID)
	}

	entry := entries[matchDate]
	entry.Reminders[matchIndex].Done = !c.Reopen

	if err := ctx.Store.Reconcile(matchDate, entry); err != nil {
		return err
	}
	state := "terminé"
	if c.Reopen {
		state = "rouvert"
	}
	fmt.Printf("Rappel « %s » %s.\n", entry.Reminders[matchIndex].Title, state)
	return nil
}
