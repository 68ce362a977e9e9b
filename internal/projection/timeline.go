package projection

import (
	"sort"
	"strings"

	"github.com/nousjournal/nous/internal/models"
)

// Timeline lists all entries sorted by date descending (most recent first).
// Date keys are unique, so the order is total with no ties.
func Timeline(entries map[string]models.Entry) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DateISO > out[j].DateISO
	})
	return out
}

// Memories returns every entry sharing the month and day of dateKey but from
// a different year, across the whole store, in timeline order.
func Memories(entries map[string]models.Entry, dateKey string) []models.Entry {
	if len(dateKey) != 10 {
		return nil
	}
	monthDay := dateKey[4:] // "-MM-DD"

	var out []models.Entry
	for _, entry := range Timeline(entries) {
		if entry.DateISO == dateKey {
			continue
		}
		if strings.HasSuffix(entry.DateISO, monthDay) {
			out = append(out, entry)
		}
	}
	return out
}
