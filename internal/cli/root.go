package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/nousjournal/nous/internal/draft"
	"github.com/nousjournal/nous/internal/passcode"
	"github.com/nousjournal/nous/internal/storage"
	"github.com/nousjournal/nous/internal/utils"
)

type Context struct {
	Store  storage.Provider
	Guard  *passcode.Guard
	Drafts *draft.Manager
}

// Today returns the current date key in the profile timezone, falling back to
// the system local date when the timezone is unset or invalid.
func (c *Context) Today() string {
	profile := c.Store.GetProfile()
	if today, err := utils.GetTodayInTimezone(profile.Timezone); err == nil {
		return today
	}
	return utils.FormatDateKey(time.Now())
}

// EnsureUnlocked gates a command behind the passcode when one is configured.
// The prompt allows three attempts before giving up.
func (c *Context) EnsureUnlocked() error {
	if c.Guard.Status() != passcode.StatusLocked {
		return nil
	}

	for attempt := 0; attempt < 3; attempt++ {
		var pin string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Code d'accès").
				EchoMode(huh.EchoModePassword).
				Value(&pin),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if c.Guard.Verify(pin) {
			return nil
		}
		fmt.Println("Code incorrect.")
	}
	return fmt.Errorf("passcode verification failed")
}

// MoodEmoji maps a mood value to its display glyph.
func MoodEmoji(mood int) string {
	switch mood {
	case 1:
		return "😞"
	case 2:
		return "😕"
	case 4:
		return "🙂"
	case 5:
		return "😄"
	default:
		return "😐"
	}
}

// FormatSchedule renders an RFC3339 schedule timestamp for display in local
// time, or a placeholder for unscheduled reminders.
func FormatSchedule(scheduledFor string) string {
	if scheduledFor == "" {
		return "non planifié"
	}
	t, err := time.Parse(time.RFC3339, scheduledFor)
	if err != nil {
		return scheduledFor
	}
	return t.Local().Format("2006-01-02 15:04")
}
