package entries

import (
	"testing"

	"github.com/nousjournal/nous/internal/motivation"
)

func TestDailyMessagePrefersCustomMessage(t *testing.T) {
	if got := dailyMessage("Bonne fête !", "2026-02-20", "Camille"); got != "Bonne fête !" {
		t.Errorf("custom message should override the generated one, got %q", got)
	}

	want := motivation.MessageFor("2026-02-20", "Camille")
	if got := dailyMessage("", "2026-02-20", "Camille"); got != want {
		t.Errorf("expected the generated message %q, got %q", want, got)
	}
}
