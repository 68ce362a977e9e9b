package reminders

import (
	"fmt"
	"sort"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/models"
)

type RemindListCmd struct {
	All bool `help:"Include completed reminders."`
}

func (c *RemindListCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	entries := ctx.Store.Entries()
	dateKeys := make([]string, 0, len(entries))
	for dateKey := range entries {
		dateKeys = append(dateKeys, dateKey)
	}
	sort.Strings(dateKeys)

	total := 0
	for _, dateKey := range dateKeys {
		entry := entries[dateKey]
		if len(entry.Reminders) == 0 {
			continue
		}
		reminders := append([]models.Reminder(nil), entry.Reminders...)
		models.SortReminders(reminders)

		printedHeader := false
		for _, r := range reminders {
			if r.Done && !c.All {
				continue
			}
			if !printedHeader {
				fmt.Println(dateKey)
				printedHeader = true
			}
			box := "[ ]"
			if r.Done {
				box = "[x]"
			}
			fmt.Printf("  %s %s (%s)  id=%s\n", box, r.Title, cli.FormatSchedule(r.ScheduledFor), r.ID)
			total++
		}
	}
	if total == 0 {
		fmt.Println("Aucun rappel.")
	}
	return nil
}
