package models

import (
	"testing"

	"github.com/nousjournal/nous/internal/constants"
)

func TestIsContentless(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{"empty entry", Entry{Mood: constants.MoodNeutral}, true},
		{"prompt only", Entry{Mood: constants.MoodNeutral, Prompt: "Comment s'est passée ta journée ?"}, true},
		{"whitespace text", Entry{Mood: constants.MoodNeutral, Text: "   \n "}, true},
		{"with text", Entry{Mood: constants.MoodNeutral, Text: "bonne journée"}, false},
		{"with media", Entry{Mood: constants.MoodNeutral, Media: []Media{{ID: "m1"}}}, false},
		{"non-neutral mood", Entry{Mood: 4}, false},
		{"favorite", Entry{Mood: constants.MoodNeutral, Favorite: true}, false},
		{"custom message", Entry{Mood: constants.MoodNeutral, CustomMessage: "bravo"}, false},
		{"done reminder still counts", Entry{Mood: constants.MoodNeutral, Reminders: []Reminder{{ID: "r", Title: "x", Done: true}}}, false},
		{"open reminder", Entry{Mood: constants.MoodNeutral, Reminders: []Reminder{{ID: "r", Title: "x"}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.IsContentless(); got != tt.want {
				t.Errorf("IsContentless() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasJournal(t *testing.T) {
	e := Entry{Text: "  "}
	if e.HasJournal() {
		t.Error("blank text should not count as journal content")
	}
	e.Media = []Media{{ID: "m1"}}
	if !e.HasJournal() {
		t.Error("media should count as journal content")
	}
}

func TestSortReminders(t *testing.T) {
	reminders := []Reminder{
		{ID: "d", Title: "unscheduled late", CreatedAt: "2026-03-02T10:00:00Z"},
		{ID: "a", Title: "evening", ScheduledFor: "2026-03-01T18:00:00Z", CreatedAt: "2026-03-01T08:00:00Z"},
		{ID: "c", Title: "unscheduled early", CreatedAt: "2026-03-01T09:00:00Z"},
		{ID: "b", Title: "morning", ScheduledFor: "2026-03-01T09:00:00Z", CreatedAt: "2026-03-01T08:30:00Z"},
	}
	SortReminders(reminders)

	wantOrder := []string{"b", "a", "c", "d"}
	for i, id := range wantOrder {
		if reminders[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, reminders[i].ID)
		}
	}
}

func TestOpenReminderCount(t *testing.T) {
	e := Entry{Reminders: []Reminder{
		{ID: "a", Title: "x"},
		{ID: "b", Title: "y", Done: true},
		{ID: "c", Title: "z"},
	}}
	if got := e.OpenReminderCount(); got != 2 {
		t.Errorf("expected 2 open reminders, got %d", got)
	}
}
