package entries

import (
	"fmt"
	"strings"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/export"
	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/normalize"
)

type ShowCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD, default today)."`
}

func (c *ShowCmd) Validate() error {
	if c.Date != "" && !normalize.ValidDateKey(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	dateKey := c.Date
	if dateKey == "" {
		dateKey = ctx.Today()
	}

	entry, ok := ctx.Store.Entries()[dateKey]
	if !ok {
		fmt.Printf("%s : aucune entrée.\n", dateKey)
		return nil
	}

	PrintEntry(entry)
	return nil
}

// PrintEntry renders one entry to stdout. Shared with the timeline and
// memories views.
func PrintEntry(entry models.Entry) {
	header := entry.DateISO
	if entry.Favorite {
		header += " ★"
	}
	fmt.Printf("%s  %s %s\n", header, cli.MoodEmoji(entry.Mood), export.MoodLabel(entry.Mood))

	if meta := entry.Metadata; meta != nil {
		if meta.LocationLabel != "" {
			fmt.Printf("  Lieu : %s\n", meta.LocationLabel)
		}
		if w := meta.Weather; w != nil {
			line := w.Description
			if w.TemperatureC != nil {
				line = fmt.Sprintf("%s, %.1f°C", line, *w.TemperatureC)
			}
			fmt.Printf("  Météo : %s\n", line)
		}
		for _, note := range meta.Notes {
			fmt.Printf("  (%s)\n", note)
		}
	}
	if msg := strings.TrimSpace(entry.CustomMessage); msg != "" {
		fmt.Printf("  Message : %s\n", msg)
	}
	if text := strings.TrimSpace(entry.Text); text != "" {
		fmt.Println()
		for _, line := range strings.Split(text, "\n") {
			fmt.Printf("  %s\n", line)
		}
	}
	if len(entry.Media) > 0 {
		fmt.Printf("\n  %d photo(s) jointe(s)\n", len(entry.Media))
	}
	if len(entry.Reminders) > 0 {
		fmt.Println("\n  Rappels :")
		reminders := append([]models.Reminder(nil), entry.Reminders...)
		models.SortReminders(reminders)
		for _, r := range reminders {
			box := "[ ]"
			if r.Done {
				box = "[x]"
			}
			fmt.Printf("  %s %s (%s)\n", box, r.Title, cli.FormatSchedule(r.ScheduledFor))
		}
	}
}
