package reminders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/normalize"
)

type RemindAddCmd struct {
	Title string `arg:"" help:"Reminder title."`
	Date  string `short:"d" help:"Day the reminder belongs to (YYYY-MM-DD, default today)."`
	At    string `short:"t" help:"When to fire (RFC3339, or HH:MM on the reminder's day). Omit for an unscheduled reminder."`
}

func (c *RemindAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if c.Date != "" && !normalize.ValidDateKey(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *RemindAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	dateKey := c.Date
	if dateKey == "" {
		dateKey = ctx.Today()
	}

	scheduledFor, err := parseSchedule(c.At, dateKey)
	if err != nil {
		return err
	}

	entry := normalize.Entry(dateKey, ctx.Store.Entries()[dateKey])
	entry.Reminders = append(entry.Reminders, models.Reminder{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(c.Title),
		ScheduledFor: scheduledFor,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	})

	if err := ctx.Store.Reconcile(dateKey, entry); err != nil {
		return err
	}
	fmt.Printf("Rappel ajouté au %s (%s)\n", dateKey, cli.FormatSchedule(scheduledFor))
	return nil
}

// parseSchedule accepts a full RFC3339 timestamp or a bare HH:MM anchored to
// the reminder's day in local time. Empty means unscheduled.
func parseSchedule(at, dateKey string) (string, error) {
	if at == "" {
		return "", nil
	}
	if t, err := time.Parse(time.RFC3339, at); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", dateKey+" "+at, time.Local); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	return "", fmt.Errorf("invalid time %q (expected HH:MM or RFC3339)", at)
}
