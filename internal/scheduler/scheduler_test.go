package scheduler

import (
	"testing"
	"time"

	"github.com/nousjournal/nous/internal/models"
)

func testEntries() map[string]models.Entry {
	return map[string]models.Entry{
		"2026-03-01": {
			ID:      "2026-03-01",
			DateISO: "2026-03-01",
			Reminders: []models.Reminder{
				{ID: "r-due", Title: "appeler", ScheduledFor: "2026-03-01T09:00:00Z"},
				{ID: "r-done", Title: "fini", ScheduledFor: "2026-03-01T08:00:00Z", Done: true},
				{ID: "r-sent", Title: "déjà notifié", ScheduledFor: "2026-03-01T07:00:00Z", NotifiedAt: "2026-03-01T07:00:05Z"},
				{ID: "r-future", Title: "plus tard", ScheduledFor: "2026-03-09T09:00:00Z"},
				{ID: "r-unscheduled", Title: "un jour"},
				{ID: "r-bad", Title: "cassé", ScheduledFor: "pas-une-date"},
			},
		},
		"2026-02-28": {
			ID:      "2026-02-28",
			DateISO: "2026-02-28",
			Reminders: []models.Reminder{
				{ID: "r-old", Title: "hier", ScheduledFor: "2026-02-28T10:00:00Z"},
			},
		},
		"2026-03-05": {
			ID:      "2026-03-05",
			DateISO: "2026-03-05",
			Text:    "sans rappel",
		},
	}
}

func TestScanDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	alerts := ScanDue(testEntries(), now)

	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d: %v", len(alerts), alerts)
	}
	// Sorted by date key, then reminder ID.
	if alerts[0].ReminderID != "r-old" || alerts[1].ReminderID != "r-due" {
		t.Errorf("unexpected alert order: %v", alerts)
	}
	if alerts[1].ReminderTitle != "appeler" || alerts[1].DateKey != "2026-03-01" {
		t.Errorf("unexpected alert payload: %+v", alerts[1])
	}
}

func TestScanDueExactBoundary(t *testing.T) {
	entries := map[string]models.Entry{
		"2026-03-01": {Reminders: []models.Reminder{
			{ID: "r", Title: "pile", ScheduledFor: "2026-03-01T09:00:00Z"},
		}},
	}
	// A reminder scheduled exactly at now is due.
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	if got := ScanDue(entries, now); len(got) != 1 {
		t.Errorf("expected the exact-time reminder to be due, got %v", got)
	}
	// One second earlier it is not.
	if got := ScanDue(entries, now.Add(-time.Second)); len(got) != 0 {
		t.Errorf("expected no alerts before the scheduled time, got %v", got)
	}
}

func TestMarkNotified(t *testing.T) {
	entries := testEntries()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	alerts := ScanDue(entries, now)

	updated := MarkNotified(entries, alerts, now)

	// Marked reminders carry the stamp; a rescan finds nothing.
	for _, alert := range alerts {
		entry := updated[alert.DateKey]
		found := false
		for _, r := range entry.Reminders {
			if r.ID == alert.ReminderID {
				found = true
				if r.NotifiedAt == "" {
					t.Errorf("reminder %s not stamped", r.ID)
				}
			}
		}
		if !found {
			t.Errorf("reminder %s missing after mark", alert.ReminderID)
		}
		if entry.UpdatedAt != now.UTC().Format(time.RFC3339) {
			t.Errorf("entry %s UpdatedAt not bumped", alert.DateKey)
		}
	}
	if rescan := ScanDue(updated, now); len(rescan) != 0 {
		t.Errorf("rescan after mark should be empty, got %v", rescan)
	}

	// The input map is untouched.
	for _, r := range entries["2026-03-01"].Reminders {
		if r.ID == "r-due" && r.NotifiedAt != "" {
			t.Error("MarkNotified mutated its input")
		}
	}

	// Untouched entries keep their original value.
	if updated["2026-03-05"].Text != "sans rappel" {
		t.Error("entry without alerts was modified")
	}

	// Applying the same alerts again changes nothing.
	again := MarkNotified(updated, alerts, now.Add(time.Hour))
	for dateKey := range again {
		a := again[dateKey]
		b := updated[dateKey]
		if a.UpdatedAt != b.UpdatedAt {
			t.Errorf("second application modified entry %s", dateKey)
		}
	}
}

func TestMarkNotifiedNoAlerts(t *testing.T) {
	entries := testEntries()
	if got := MarkNotified(entries, nil, time.Now()); len(got) != len(entries) {
		t.Error("expected entries unchanged with no alerts")
	}
}

func TestShouldSendDailyMotivation(t *testing.T) {
	morning := time.Date(2026, 3, 1, 7, 59, 0, 0, time.UTC)
	afterTarget := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		lastSent string
		want     bool
	}{
		{"before target hour", morning, "", false},
		{"at target hour, never sent", afterTarget, "", true},
		{"evening, never sent", evening, "", true},
		{"already sent today", evening, "2026-03-01", false},
		{"sent yesterday", afterTarget, "2026-02-28", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldSendDailyMotivation(tt.now, 8, tt.lastSent); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
