package entries

import (
	"fmt"
	"strings"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/normalize"
)

type DraftShowCmd struct {
	Date string `arg:"" optional:"" help:"Date of the draft (YYYY-MM-DD, default today)."`
}

func (c *DraftShowCmd) Validate() error {
	if c.Date != "" && !normalize.ValidDateKey(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *DraftShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	dateKey := c.Date
	if dateKey == "" {
		dateKey = ctx.Today()
	}

	snapshot, ok := ctx.Store.GetDraft(dateKey)
	if !ok {
		fmt.Printf("%s : aucun brouillon.\n", dateKey)
		return nil
	}

	draft := normalize.Draft(dateKey, snapshot.Draft)
	fmt.Printf("Brouillon du %s (modifié %s)\n", dateKey, snapshot.UpdatedAt)
	if text := strings.TrimSpace(draft.Text); text != "" {
		fmt.Println()
		fmt.Println(text)
	}
	fmt.Printf("\nHumeur : %s  Photos : %d  Rappels : %d\n",
		cli.MoodEmoji(draft.Mood), len(draft.Media), len(draft.Reminders))
	return nil
}

type DraftDiscardCmd struct {
	Date string `arg:"" optional:"" help:"Date of the draft (YYYY-MM-DD, default today)."`
}

func (c *DraftDiscardCmd) Validate() error {
	if c.Date != "" && !normalize.ValidDateKey(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *DraftDiscardCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	dateKey := c.Date
	if dateKey == "" {
		dateKey = ctx.Today()
	}

	if err := ctx.Drafts.Discard(dateKey); err != nil {
		return err
	}
	fmt.Printf("Brouillon du %s supprimé.\n", dateKey)
	return nil
}
