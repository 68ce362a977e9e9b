package models

import (
	"sort"
	"strings"

	"github.com/nousjournal/nous/internal/constants"
)

// Media is a single attachment stored inline with its entry. Content is a
// data URL so the store stays a self-contained blob.
type Media struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	ByteSize int64  `json:"byteSize"`
	Content  string `json:"content"`
}

// Coordinates is a rounded lat/lon pair captured at save time.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Weather is a point-in-time weather snapshot.
type Weather struct {
	Source       string   `json:"source"`
	TemperatureC *float64 `json:"temperatureC"`
	Code         *int     `json:"code"`
	Description  string   `json:"description"`
}

// Metadata is the optional save-time snapshot attached to an entry. It is
// immutable once set unless the user explicitly refreshes it. Notes carry
// advisory messages for lookups that failed (best-effort, never blocking).
type Metadata struct {
	CapturedAt    string       `json:"capturedAt"`
	LocationLabel string       `json:"locationLabel"`
	Coordinates   *Coordinates `json:"coordinates"`
	Weather       *Weather     `json:"weather"`
	Notes         []string     `json:"notes"`
}

// Reminder is a per-entry reminder. ScheduledFor and NotifiedAt are RFC3339
// timestamps; empty means unscheduled / not yet notified.
type Reminder struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ScheduledFor string `json:"scheduledFor"`
	Done         bool   `json:"done"`
	NotifiedAt   string `json:"notifiedAt"`
	CreatedAt    string `json:"createdAt"`
}

// Entry is the complete record for one calendar day, keyed by its date.
type Entry struct {
	ID            string     `json:"id"`
	DateISO       string     `json:"dateISO"`
	Text          string     `json:"text"`
	Mood          int        `json:"mood"`
	Media         []Media    `json:"media"`
	Prompt        string     `json:"prompt"`
	CustomMessage string     `json:"customMessage"`
	Reminders     []Reminder `json:"reminders"`
	Favorite      bool       `json:"favorite"`
	Metadata      *Metadata  `json:"metadata"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
}

// HasJournal reports whether the entry carries journal content proper:
// non-blank text or at least one media item.
func (e *Entry) HasJournal() bool {
	if e == nil {
		return false
	}
	return strings.TrimSpace(e.Text) != "" || len(e.Media) > 0
}

// HasActiveReminder reports whether any reminder is not yet done.
func (e *Entry) HasActiveReminder() bool {
	if e == nil {
		return false
	}
	for i := range e.Reminders {
		if !e.Reminders[i].Done {
			return true
		}
	}
	return false
}

// HasMeaningfulMood reports whether the mood deviates from the neutral default.
func (e *Entry) HasMeaningfulMood() bool {
	return e != nil && e.Mood != constants.MoodNeutral
}

// IsContentless reports whether every user-meaningful field is at its default.
// Contentless entries are never persisted: the store deletes the key instead.
func (e *Entry) IsContentless() bool {
	if e == nil {
		return true
	}
	return !e.HasJournal() &&
		!e.HasActiveReminder() &&
		len(e.Reminders) == 0 &&
		!e.Favorite &&
		strings.TrimSpace(e.CustomMessage) == "" &&
		!e.HasMeaningfulMood()
}

// OpenReminderCount counts reminders not yet done.
func (e *Entry) OpenReminderCount() int {
	n := 0
	for i := range e.Reminders {
		if !e.Reminders[i].Done {
			n++
		}
	}
	return n
}

// SortReminders orders reminders for presentation: scheduled ones first in
// ascending ScheduledFor order, unscheduled ones after, in ascending
// CreatedAt order. The sort is stable so equal keys keep their input order.
func SortReminders(reminders []Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		a, b := reminders[i], reminders[j]
		if (a.ScheduledFor != "") != (b.ScheduledFor != "") {
			return a.ScheduledFor != ""
		}
		if a.ScheduledFor != "" {
			return a.ScheduledFor < b.ScheduledFor
		}
		return a.CreatedAt < b.CreatedAt
	})
}
