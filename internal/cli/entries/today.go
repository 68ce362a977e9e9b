package entries

import (
	"fmt"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/motivation"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	dateKey := ctx.Today()
	profile := ctx.Store.GetProfile()
	entry, hasEntry := ctx.Store.Entries()[dateKey]

	fmt.Println(dateKey)
	fmt.Println(motivation.PromptFor(dateKey))
	fmt.Println()
	fmt.Println(dailyMessage(entry.CustomMessage, dateKey, profile.Name))

	if hasEntry {
		fmt.Println()
		PrintEntry(entry)
	}
	return nil
}

// dailyMessage prefers the day's custom message over the generated one.
func dailyMessage(customMessage, dateKey, profileName string) string {
	if customMessage != "" {
		return customMessage
	}
	return motivation.MessageFor(dateKey, profileName)
}
