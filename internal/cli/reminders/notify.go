package reminders

import (
	"errors"
	"fmt"
	"time"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/logger"
	"github.com/nousjournal/nous/internal/motivation"
	"github.com/nousjournal/nous/internal/notifier"
	"github.com/nousjournal/nous/internal/scheduler"
	"github.com/nousjournal/nous/internal/utils"
)

// NotifyCmd runs one notification pass: fire every due reminder exactly once,
// then the daily motivational message when its window is open. Meant to be
// invoked periodically (timer, cron).
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	profile := ctx.Store.GetProfile()
	if !profile.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Les notifications sont désactivées.")
		}
		return nil
	}

	now := time.Now()
	if t, err := utils.NowInTimezone(profile.Timezone); err == nil {
		now = t
	}

	n := notifier.New()
	entries := ctx.Store.Entries()

	alerts := scheduler.ScanDue(entries, now)
	sent := make([]scheduler.Alert, 0, len(alerts))
	for _, alert := range alerts {
		body := fmt.Sprintf("%s (%s)", alert.ReminderTitle, alert.DateKey)
		if c.DryRun {
			fmt.Println("[DryRun] Rappel : " + body)
			continue
		}
		err := n.Notify("Rappel", body, alert.ReminderID, "nous://day/"+alert.DateKey)
		if err != nil {
			if errors.Is(err, notifier.ErrTrayNotRunning) {
				// Leave every alert unmarked so the next pass retries.
				logger.Debug("Notification tray unavailable, deferring alerts")
				return nil
			}
			logger.Warn("Failed to send reminder notification", "reminder", alert.ReminderID, "error", err)
			continue
		}
		sent = append(sent, alert)
	}

	if len(sent) > 0 {
		updated := scheduler.MarkNotified(entries, sent, time.Now())
		if err := ctx.Store.SaveEntries(updated); err != nil {
			return fmt.Errorf("failed to record sent notifications: %w", err)
		}
	}

	// Daily motivational message, at most once per day from the target hour.
	lastSent := ctx.Store.GetDailyMotivationSentOn()
	if scheduler.ShouldSendDailyMotivation(now, constants.DailyMotivationTargetHour, lastSent) {
		dateKey := utils.FormatDateKey(now)
		message := motivation.MessageFor(dateKey, profile.Name)
		if c.DryRun {
			fmt.Println("[DryRun] Message du jour : " + message)
			return nil
		}
		if err := n.Notify("Message du jour", message, "daily-"+dateKey, ""); err != nil {
			logger.Warn("Failed to send daily message", "error", err)
			return nil
		}
		if err := ctx.Store.SetDailyMotivationSentOn(dateKey); err != nil {
			return fmt.Errorf("failed to record daily message marker: %w", err)
		}
	}
	return nil
}
