// Package export renders the journal as a plain-text document for backup or
// printing. Media content is summarized, never inlined.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nousjournal/nous/internal/models"
)

var moodLabels = map[int]string{
	1: "Très difficile",
	2: "Difficile",
	3: "Neutre",
	4: "Bien",
	5: "Très bien",
}

// MoodLabel returns the display label for a mood value.
func MoodLabel(mood int) string {
	if label, ok := moodLabels[mood]; ok {
		return label
	}
	return moodLabels[3]
}

// Render produces the export document: a title block followed by one section
// per day in ascending date order.
func Render(entries map[string]models.Entry, profileName string) string {
	keys := make([]string, 0, len(entries))
	for dateKey := range entries {
		keys = append(keys, dateKey)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Journal")
	if profileName != "" {
		b.WriteString(" de ")
		b.WriteString(profileName)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Exporté le %s\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "%d jour(s)\n", len(keys))

	for _, dateKey := range keys {
		entry := entries[dateKey]
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", 40))
		b.WriteString("\n")
		b.WriteString(dateKey)
		if entry.Favorite {
			b.WriteString("  ★")
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "Humeur : %s\n", MoodLabel(entry.Mood))

		if meta := entry.Metadata; meta != nil {
			if meta.LocationLabel != "" {
				fmt.Fprintf(&b, "Lieu : %s\n", meta.LocationLabel)
			}
			if w := meta.Weather; w != nil {
				line := w.Description
				if w.TemperatureC != nil {
					line = fmt.Sprintf("%s, %.1f°C", line, *w.TemperatureC)
				}
				fmt.Fprintf(&b, "Météo : %s\n", line)
			}
		}
		if msg := strings.TrimSpace(entry.CustomMessage); msg != "" {
			fmt.Fprintf(&b, "Message : %s\n", msg)
		}
		if text := strings.TrimSpace(entry.Text); text != "" {
			b.WriteString("\n")
			b.WriteString(text)
			b.WriteString("\n")
		}
		if len(entry.Reminders) > 0 {
			b.WriteString("\nRappels :\n")
			reminders := append([]models.Reminder(nil), entry.Reminders...)
			models.SortReminders(reminders)
			for _, r := range reminders {
				box := "[ ]"
				if r.Done {
					box = "[x]"
				}
				line := fmt.Sprintf("  %s %s", box, r.Title)
				if r.ScheduledFor != "" {
					if t, err := time.Parse(time.RFC3339, r.ScheduledFor); err == nil {
						line += fmt.Sprintf(" (%s)", t.Local().Format("2006-01-02 15:04"))
					}
				}
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		if len(entry.Media) > 0 {
			fmt.Fprintf(&b, "\n%d photo(s) jointe(s)\n", len(entry.Media))
		}
	}

	return b.String()
}
