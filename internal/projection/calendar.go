// Package projection derives read-only views from the entry store: calendar
// grids, the timeline, yearly statistics, and same-day-across-years memories.
// Everything here is a pure function of its inputs.
package projection

import (
	"fmt"
	"time"

	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/utils"
)

// MonthNames are the display names used by the calendar projection and the
// export, in month order.
var MonthNames = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// DayCell is one non-blank calendar cell. HasEntry is broader than
// HasJournal: it is set for any entry that is not contentless, including days
// that only carry a non-neutral mood or a custom message.
type DayCell struct {
	DateKey           string
	Day               int
	HasEntry          bool
	HasJournal        bool
	HasFavorite       bool
	HasReminderActive bool
	IsToday           bool
	IsPast            bool
	Mood              int
}

// Month is one month of the calendar grid. Cells is padded with leading nils
// so the first day of the month lands on its Monday-first weekday column.
type Month struct {
	MonthIndex int
	MonthName  string
	Cells      []*DayCell
}

// Calendar builds the twelve-month grid for a year. The week starts Monday.
func Calendar(year int, entries map[string]models.Entry, today time.Time) []Month {
	todayKey := utils.FormatDateKey(today)
	months := make([]Month, 0, 12)

	for monthIndex := 0; monthIndex < 12; monthIndex++ {
		first := time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.Local)
		offset := utils.MondayFirstOffset(first.Weekday())
		daysInMonth := first.AddDate(0, 1, -1).Day()

		cells := make([]*DayCell, 0, offset+daysInMonth)
		for i := 0; i < offset; i++ {
			cells = append(cells, nil)
		}

		for day := 1; day <= daysInMonth; day++ {
			dateKey := fmt.Sprintf("%04d-%02d-%02d", year, monthIndex+1, day)
			cell := &DayCell{
				DateKey: dateKey,
				Day:     day,
				IsToday: dateKey == todayKey,
				IsPast:  dateKey < todayKey,
			}
			if entry, ok := entries[dateKey]; ok {
				cell.HasEntry = !entry.IsContentless()
				cell.HasJournal = entry.HasJournal()
				cell.HasFavorite = entry.Favorite
				cell.HasReminderActive = entry.HasActiveReminder()
				cell.Mood = entry.Mood
			}
			cells = append(cells, cell)
		}

		months = append(months, Month{
			MonthIndex: monthIndex,
			MonthName:  MonthNames[monthIndex],
			Cells:      cells,
		})
	}
	return months
}
