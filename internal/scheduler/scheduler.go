// Package scheduler detects due reminders and drives the daily-motivation
// trigger. Scans and mark-notified are pure data operations: they never fail,
// they skip malformed records, and they are idempotent per reminder, so the
// cycle can run on a fixed interval and opportunistically at the same time.
package scheduler

import (
	"sort"
	"time"

	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/utils"
)

// Alert describes one due, unnotified reminder found by a scan.
type Alert struct {
	DateKey       string
	ReminderID    string
	ReminderTitle string
	ReminderWhen  string
}

// ScanDue finds every reminder whose scheduled time has passed and which has
// not been notified and is not done. Reminders with malformed schedules are
// skipped. The result is sorted by (dateKey, reminderID) so repeated scans
// over the same store produce identical output.
func ScanDue(entries map[string]models.Entry, now time.Time) []Alert {
	var alerts []Alert

	for dateKey, entry := range entries {
		for i := range entry.Reminders {
			r := &entry.Reminders[i]
			if r.Done || r.NotifiedAt != "" || r.ScheduledFor == "" {
				continue
			}
			when, err := time.Parse(time.RFC3339, r.ScheduledFor)
			if err != nil {
				continue
			}
			if when.After(now) {
				continue
			}
			alerts = append(alerts, Alert{
				DateKey:       dateKey,
				ReminderID:    r.ID,
				ReminderTitle: r.Title,
				ReminderWhen:  r.ScheduledFor,
			})
		}
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].DateKey != alerts[j].DateKey {
			return alerts[i].DateKey < alerts[j].DateKey
		}
		return alerts[i].ReminderID < alerts[j].ReminderID
	})
	return alerts
}

// MarkNotified stamps NotifiedAt on every reminder named by an alert and
// bumps the owning entry's UpdatedAt. It returns a new map; entries with no
// matching alert keep their original value untouched, so callers can detect
// change by comparing per-key. Applying the same alert set twice is a no-op
// the second time: the reminders are no longer NotifiedAt-empty, so a fresh
// scan will not resurface them.
func MarkNotified(entries map[string]models.Entry, alerts []Alert, notifiedAt time.Time) map[string]models.Entry {
	if len(alerts) == 0 {
		return entries
	}

	targets := make(map[string]map[string]bool, len(alerts))
	for _, alert := range alerts {
		if targets[alert.DateKey] == nil {
			targets[alert.DateKey] = make(map[string]bool)
		}
		targets[alert.DateKey][alert.ReminderID] = true
	}

	stamp := notifiedAt.UTC().Format(time.RFC3339)
	next := make(map[string]models.Entry, len(entries))
	for dateKey, entry := range entries {
		ids := targets[dateKey]
		if ids == nil {
			next[dateKey] = entry
			continue
		}

		changed := false
		reminders := make([]models.Reminder, len(entry.Reminders))
		copy(reminders, entry.Reminders)
		for i := range reminders {
			if ids[reminders[i].ID] && reminders[i].NotifiedAt == "" {
				reminders[i].NotifiedAt = stamp
				changed = true
			}
		}

		if !changed {
			next[dateKey] = entry
			continue
		}
		entry.Reminders = reminders
		entry.UpdatedAt = stamp
		next[dateKey] = entry
	}
	return next
}

// ShouldSendDailyMotivation reports whether the daily motivational
// notification is due: the local clock has reached the target hour and
// nothing was sent yet for today's date key. The decision is derived entirely
// from the persisted last-sent marker, never from in-memory timers, so the
// check is safe at arbitrary cadence.
func ShouldSendDailyMotivation(now time.Time, targetHour int, lastSentDateKey string) bool {
	if now.Hour() < targetHour {
		return false
	}
	return lastSentDateKey != utils.FormatDateKey(now)
}
