package normalize

import (
	"encoding/json"
	"testing"

	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/models"
)

func TestValidDateKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"2026-02-20", true},
		{"0001-01-01", true},
		{"2026-2-20", false},
		{"2026-02-20T10:00", false},
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidDateKey(tt.key); got != tt.want {
			t.Errorf("ValidDateKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestClampMood(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, constants.MoodNeutral},
		{-3, constants.MoodMin},
		{1, 1},
		{5, 5},
		{9, constants.MoodMax},
	}
	for _, tt := range tests {
		if got := ClampMood(tt.in); got != tt.want {
			t.Errorf("ClampMood(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestReminderNormalization(t *testing.T) {
	r := Reminder(models.Reminder{
		Title:        "  respirer  ",
		ScheduledFor: "2026-02-20T09:30:00+01:00",
	}, "2026-02-20T12:00:00.000Z")

	if r.Title != "respirer" {
		t.Errorf("expected trimmed title, got %q", r.Title)
	}
	if r.ID == "" {
		t.Error("expected generated ID")
	}
	if r.CreatedAt != "2026-02-20T12:00:00.000Z" {
		t.Errorf("expected fallback CreatedAt, got %q", r.CreatedAt)
	}
	if r.ScheduledFor != "2026-02-20T08:30:00Z" {
		t.Errorf("expected UTC re-render, got %q", r.ScheduledFor)
	}

	bad := Reminder(models.Reminder{Title: "x", ScheduledFor: "tomorrow-ish"}, "fb")
	if bad.ScheduledFor != "" {
		t.Errorf("expected unparseable schedule to be blanked, got %q", bad.ScheduledFor)
	}
}

func TestRemindersDropsEmptyTitles(t *testing.T) {
	out := Reminders([]models.Reminder{
		{ID: "a", Title: "garder"},
		{ID: "b", Title: "   "},
		{ID: "c", Title: ""},
	}, "fb")
	if len(out) != 1 || out[0].ID != "a" {
		t.Fatalf("expected only the titled reminder to survive, got %v", out)
	}
}

func TestEntryDefaults(t *testing.T) {
	e := Entry("2026-02-20", models.Entry{})
	if e.ID != "2026-02-20" || e.DateISO != "2026-02-20" {
		t.Errorf("expected identity defaults, got id=%q date=%q", e.ID, e.DateISO)
	}
	if e.Mood != constants.MoodNeutral {
		t.Errorf("expected neutral mood, got %d", e.Mood)
	}
	if e.Media == nil {
		t.Error("expected non-nil media slice")
	}
	if e.Prompt == "" {
		t.Error("expected weekday prompt to be filled")
	}
	if e.CreatedAt != "2026-02-20T12:00:00.000Z" || e.UpdatedAt != e.CreatedAt {
		t.Errorf("expected fallback timestamps, got %q / %q", e.CreatedAt, e.UpdatedAt)
	}
}

func TestEntriesDropsBadKeysAndFragments(t *testing.T) {
	raw := map[string]json.RawMessage{
		"2026-02-20":  json.RawMessage(`{"text":"ok","mood":4}`),
		"2026-02-21":  json.RawMessage(`{not json`),
		"not-a-date":  json.RawMessage(`{"text":"lost"}`),
		"2026-2-3":    json.RawMessage(`{}`),
		"2026-02-22T": json.RawMessage(`{}`),
	}
	out := Entries(raw)

	if len(out) != 2 {
		t.Fatalf("expected 2 surviving entries, got %d", len(out))
	}
	if out["2026-02-20"].Text != "ok" || out["2026-02-20"].Mood != 4 {
		t.Errorf("good fragment mangled: %+v", out["2026-02-20"])
	}
	// A bad fragment degrades to a normalized default entry under its key.
	if bad, ok := out["2026-02-21"]; !ok || bad.Mood != constants.MoodNeutral {
		t.Errorf("bad fragment should normalize to a default entry, got %+v", bad)
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	once := Entry("2026-02-20", models.Entry{
		Text: "hello",
		Mood: 7,
		Reminders: []models.Reminder{
			{Title: " a ", ScheduledFor: "2026-02-20T10:00:00Z"},
			{Title: ""},
		},
	})
	twice := Entry("2026-02-20", once)

	a, _ := json.Marshal(once)
	b, _ := json.Marshal(twice)
	if string(a) != string(b) {
		t.Errorf("normalization not idempotent:\n once: %s\ntwice: %s", a, b)
	}
}

func TestDraftFromEntry(t *testing.T) {
	d := DraftFromEntry("2026-02-20", models.Entry{Text: "brouillon", Mood: 2, Favorite: true})
	if d.Text != "brouillon" || d.Mood != 2 || !d.Favorite {
		t.Errorf("unexpected draft: %+v", d)
	}
	if d.Media == nil {
		t.Error("expected non-nil media slice")
	}
}
