// Package normalize coerces raw persisted records into well-formed models.
// Every function here is a pure transform that never fails: defects in the
// input are silently corrected (defaulted, clamped, or dropped) so that a
// corrupt or legacy store can always be loaded.
package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/motivation"
	"github.com/nousjournal/nous/internal/utils"
)

var dateKeyRe = regexp.MustCompile(constants.DateKeyPattern)

// ValidDateKey reports whether s matches the exact 4-2-2 digit date pattern.
func ValidDateKey(s string) bool {
	return dateKeyRe.MatchString(s)
}

// ClampMood forces a mood value into [MoodMin, MoodMax]; zero (absent) maps
// to the neutral default.
func ClampMood(mood int) int {
	if mood == 0 {
		return constants.MoodNeutral
	}
	if mood < constants.MoodMin {
		return constants.MoodMin
	}
	if mood > constants.MoodMax {
		return constants.MoodMax
	}
	return mood
}

// Reminder produces a well-formed reminder from raw input. The title is
// trimmed, the schedule re-rendered as RFC3339 or blanked when unparseable,
// and missing identity/creation fields are filled in. Callers must still drop
// reminders whose normalized title is empty; see Reminders.
func Reminder(raw models.Reminder, fallbackCreatedAt string) models.Reminder {
	out := models.Reminder{
		ID:         raw.ID,
		Title:      strings.TrimSpace(raw.Title),
		Done:       raw.Done,
		NotifiedAt: raw.NotifiedAt,
		CreatedAt:  raw.CreatedAt,
	}
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	if out.CreatedAt == "" {
		out.CreatedAt = fallbackCreatedAt
	}
	if raw.ScheduledFor != "" {
		if t, err := time.Parse(time.RFC3339, raw.ScheduledFor); err == nil {
			out.ScheduledFor = t.UTC().Format(time.RFC3339)
		}
	}
	return out
}

// Reminders normalizes a reminder list, dropping any reminder whose title is
// empty after trimming. Bad reminders are discarded, not repaired.
func Reminders(raw []models.Reminder, fallbackCreatedAt string) []models.Reminder {
	out := make([]models.Reminder, 0, len(raw))
	for i := range raw {
		r := Reminder(raw[i], fallbackCreatedAt)
		if r.Title == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Entry produces a well-formed entry for dateKey from arbitrary raw input.
func Entry(dateKey string, raw models.Entry) models.Entry {
	fallback := utils.FallbackTimestamp(dateKey)

	out := models.Entry{
		ID:            raw.ID,
		DateISO:       raw.DateISO,
		Text:          raw.Text,
		Mood:          ClampMood(raw.Mood),
		Media:         raw.Media,
		Prompt:        raw.Prompt,
		CustomMessage: raw.CustomMessage,
		Reminders:     Reminders(raw.Reminders, fallback),
		Favorite:      raw.Favorite,
		Metadata:      raw.Metadata,
		CreatedAt:     raw.CreatedAt,
		UpdatedAt:     raw.UpdatedAt,
	}
	if out.ID == "" {
		out.ID = dateKey
	}
	if out.DateISO == "" {
		out.DateISO = dateKey
	}
	if out.Media == nil {
		out.Media = []models.Media{}
	}
	if out.Prompt == "" {
		out.Prompt = motivation.PromptFor(dateKey)
	}
	if out.CreatedAt == "" {
		out.CreatedAt = fallback
	}
	if out.UpdatedAt == "" {
		out.UpdatedAt = fallback
	}
	return out
}

// Entries filters and normalizes a raw date→entry map. Keys that do not
// match the date-key pattern are dropped entirely, and an entry fragment that
// does not decode is dropped rather than failing the whole map. This is the
// defense line against corrupted storage.
func Entries(raw map[string]json.RawMessage) map[string]models.Entry {
	out := make(map[string]models.Entry, len(raw))
	for dateKey, fragment := range raw {
		if !ValidDateKey(dateKey) {
			continue
		}
		var entry models.Entry
		if len(fragment) > 0 {
			// A bad fragment leaves entry at its zero value, which
			// normalizes to a contentless default entry.
			_ = json.Unmarshal(fragment, &entry)
		}
		out[dateKey] = Entry(dateKey, entry)
	}
	return out
}

// EntryMap normalizes an already-decoded entry map in place semantics,
// returning a fresh map with the same key filtering as Entries.
func EntryMap(raw map[string]models.Entry) map[string]models.Entry {
	out := make(map[string]models.Entry, len(raw))
	for dateKey, entry := range raw {
		if !ValidDateKey(dateKey) {
			continue
		}
		out[dateKey] = Entry(dateKey, entry)
	}
	return out
}

// Draft produces a well-formed draft for dateKey from raw input.
func Draft(dateKey string, raw models.Draft) models.Draft {
	out := models.Draft{
		Text:          raw.Text,
		Mood:          ClampMood(raw.Mood),
		Media:         raw.Media,
		Reminders:     Reminders(raw.Reminders, utils.FallbackTimestamp(dateKey)),
		Favorite:      raw.Favorite,
		CustomMessage: raw.CustomMessage,
	}
	if out.Media == nil {
		out.Media = []models.Media{}
	}
	return out
}

// DraftFromEntry seeds a draft session from a committed entry (or the zero
// entry when the day has none).
func DraftFromEntry(dateKey string, entry models.Entry) models.Draft {
	normalized := Entry(dateKey, entry)
	return models.Draft{
		Text:          normalized.Text,
		Mood:          normalized.Mood,
		Media:         normalized.Media,
		Reminders:     normalized.Reminders,
		Favorite:      normalized.Favorite,
		CustomMessage: normalized.CustomMessage,
	}
}
