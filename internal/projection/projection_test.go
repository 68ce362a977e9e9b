package projection

import (
	"testing"
	"time"

	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/utils"
)

func entry(dateKey string, mutate func(*models.Entry)) models.Entry {
	e := models.Entry{ID: dateKey, DateISO: dateKey, Mood: 3}
	if mutate != nil {
		mutate(&e)
	}
	return e
}

func TestCalendarGrid(t *testing.T) {
	entries := map[string]models.Entry{
		"2026-02-14": entry("2026-02-14", func(e *models.Entry) {
			e.Text = "journée douce"
			e.Mood = 4
			e.Favorite = true
		}),
		"2026-02-20": entry("2026-02-20", func(e *models.Entry) {
			e.Reminders = []models.Reminder{{ID: "r", Title: "x"}}
		}),
		"2026-02-21": entry("2026-02-21", nil), // contentless
	}
	today := time.Date(2026, 2, 20, 12, 0, 0, 0, time.Local)

	months := Calendar(2026, entries, today)
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}

	feb := months[1]
	if feb.MonthName != "Février" {
		t.Errorf("unexpected month name %q", feb.MonthName)
	}

	// 2026-02-01 is a Sunday: six leading blanks in a Monday-first grid.
	first := time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)
	wantOffset := utils.MondayFirstOffset(first.Weekday())
	for i := 0; i < wantOffset; i++ {
		if feb.Cells[i] != nil {
			t.Fatalf("expected blank cell at %d", i)
		}
	}
	if feb.Cells[wantOffset] == nil || feb.Cells[wantOffset].Day != 1 {
		t.Fatal("first day cell misplaced")
	}
	if len(feb.Cells) != wantOffset+28 {
		t.Errorf("expected %d cells for February, got %d", wantOffset+28, len(feb.Cells))
	}

	cellFor := func(day int) *DayCell { return feb.Cells[wantOffset+day-1] }

	c14 := cellFor(14)
	if !c14.HasEntry || !c14.HasJournal || !c14.HasFavorite || c14.Mood != 4 {
		t.Errorf("unexpected cell for the 14th: %+v", c14)
	}
	if !c14.IsPast || c14.IsToday {
		t.Errorf("the 14th should be past: %+v", c14)
	}

	c20 := cellFor(20)
	if !c20.IsToday || c20.IsPast {
		t.Errorf("the 20th should be today: %+v", c20)
	}
	if !c20.HasReminderActive || c20.HasJournal {
		t.Errorf("unexpected flags for the 20th: %+v", c20)
	}

	// A contentless entry marks nothing.
	c21 := cellFor(21)
	if c21.HasEntry || c21.HasJournal {
		t.Errorf("contentless entry should not mark its cell: %+v", c21)
	}

	// A day with no entry at all.
	c10 := cellFor(10)
	if c10.HasEntry || c10.Mood != 0 {
		t.Errorf("empty day cell should be unmarked: %+v", c10)
	}
}

func TestTimelineOrder(t *testing.T) {
	entries := map[string]models.Entry{
		"2026-01-05": entry("2026-01-05", nil),
		"2025-12-31": entry("2025-12-31", nil),
		"2026-02-01": entry("2026-02-01", nil),
	}
	timeline := Timeline(entries)
	want := []string{"2026-02-01", "2026-01-05", "2025-12-31"}
	for i, key := range want {
		if timeline[i].DateISO != key {
			t.Fatalf("position %d: expected %s, got %s", i, key, timeline[i].DateISO)
		}
	}
}

func TestMemories(t *testing.T) {
	entries := map[string]models.Entry{
		"2026-02-20": entry("2026-02-20", nil),
		"2025-02-20": entry("2025-02-20", nil),
		"2023-02-20": entry("2023-02-20", nil),
		"2025-02-21": entry("2025-02-21", nil),
	}
	memories := Memories(entries, "2026-02-20")
	if len(memories) != 2 {
		t.Fatalf("expected 2 memories, got %d", len(memories))
	}
	// Timeline order: most recent year first, reference date excluded.
	if memories[0].DateISO != "2025-02-20" || memories[1].DateISO != "2023-02-20" {
		t.Errorf("unexpected memories order: %v", memories)
	}

	if got := Memories(entries, "bad-key"); got != nil {
		t.Errorf("expected nil for malformed reference key, got %v", got)
	}
}

func TestStats(t *testing.T) {
	entries := map[string]models.Entry{
		"2026-01-01": entry("2026-01-01", func(e *models.Entry) { e.Text = "a"; e.Mood = 2 }),
		"2026-01-02": entry("2026-01-02", func(e *models.Entry) { e.Text = "b"; e.Mood = 4; e.Favorite = true }),
		"2026-01-03": entry("2026-01-03", func(e *models.Entry) {
			e.Mood = 4
			e.Reminders = []models.Reminder{
				{ID: "r1", Title: "open"},
				{ID: "r2", Title: "done", Done: true},
			}
		}),
		"2025-06-01": entry("2025-06-01", func(e *models.Entry) { e.Text = "autre année"; e.Mood = 5 }),
	}

	stats := Stats(entries, 2026)
	if stats.Year != 2026 || stats.DaysInYear != 365 {
		t.Errorf("unexpected year fields: %+v", stats)
	}
	if stats.DaysWithJournal != 2 {
		t.Errorf("expected 2 journal days, got %d", stats.DaysWithJournal)
	}
	if stats.CompletionRate != 1 { // round(2/365*100)
		t.Errorf("expected completion rate 1, got %d", stats.CompletionRate)
	}
	if stats.FavoriteDays != 1 {
		t.Errorf("expected 1 favorite day, got %d", stats.FavoriteDays)
	}
	if stats.OpenReminders != 1 {
		t.Errorf("expected 1 open reminder, got %d", stats.OpenReminders)
	}
	if stats.MoodCounts[2] != 1 || stats.MoodCounts[4] != 2 || stats.MoodCounts[5] != 0 {
		t.Errorf("unexpected mood histogram: %v", stats.MoodCounts)
	}
	if stats.AverageMood == nil || *stats.AverageMood != 3.33 { // round((2+4+4)/3, 2dp)
		t.Errorf("unexpected average mood: %v", stats.AverageMood)
	}
}

func TestStatsEmptyYear(t *testing.T) {
	stats := Stats(map[string]models.Entry{}, 2026)
	if stats.DaysWithJournal != 0 || stats.CompletionRate != 0 {
		t.Errorf("unexpected stats for empty year: %+v", stats)
	}
	if stats.AverageMood != nil {
		t.Errorf("expected nil average mood, got %v", *stats.AverageMood)
	}
	for mood := 1; mood <= 5; mood++ {
		if _, ok := stats.MoodCounts[mood]; !ok {
			t.Errorf("mood %d missing from histogram", mood)
		}
	}
}
