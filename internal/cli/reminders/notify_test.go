package reminders

import (
	"path/filepath"
	"testing"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/normalize"
	"github.com/nousjournal/nous/internal/storage"
)

func TestNotifyDryRunLeavesStateUntouched(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "nous.json"))
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveProfile(models.Profile{NotificationsEnabled: true}); err != nil {
		t.Fatal(err)
	}

	entry := normalize.Entry("2026-02-20", models.Entry{
		Reminders: []models.Reminder{{
			Title:        "appeler le médecin",
			ScheduledFor: "2020-01-01T09:00:00Z",
		}},
	})
	if err := store.Reconcile("2026-02-20", entry); err != nil {
		t.Fatal(err)
	}

	cmd := &NotifyCmd{DryRun: true}
	if err := cmd.Run(&cli.Context{Store: store}); err != nil {
		t.Fatal(err)
	}

	got := store.Entries()["2026-02-20"]
	if len(got.Reminders) != 1 {
		t.Fatalf("expected the reminder to survive, got %+v", got.Reminders)
	}
	if got.Reminders[0].NotifiedAt != "" {
		t.Error("a dry run must not mark reminders as notified")
	}
	if marker := store.GetDailyMotivationSentOn(); marker != "" {
		t.Errorf("a dry run must not record the daily message marker, got %q", marker)
	}
}
