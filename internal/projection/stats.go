package projection

import (
	"fmt"
	"math"
	"strings"

	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/utils"
)

// YearStats summarizes one calendar year of entries. AverageMood is nil when
// no entry in the year carries a mood value.
type YearStats struct {
	Year            int
	DaysInYear      int
	DaysWithJournal int
	CompletionRate  int
	FavoriteDays    int
	OpenReminders   int
	MoodCounts      map[int]int
	AverageMood     *float64
}

// Stats computes the yearly overview for entries whose date falls in year.
func Stats(entries map[string]models.Entry, year int) YearStats {
	prefix := fmt.Sprintf("%04d-", year)
	daysInYear := utils.DaysInYear(year)

	moodCounts := make(map[int]int, constants.MoodMax)
	for mood := constants.MoodMin; mood <= constants.MoodMax; mood++ {
		moodCounts[mood] = 0
	}

	stats := YearStats{
		Year:       year,
		DaysInYear: daysInYear,
		MoodCounts: moodCounts,
	}

	moodTotal := 0
	moodCount := 0
	for _, entry := range entries {
		if !strings.HasPrefix(entry.DateISO, prefix) {
			continue
		}
		if entry.HasJournal() {
			stats.DaysWithJournal++
		}
		if entry.Favorite {
			stats.FavoriteDays++
		}
		stats.OpenReminders += entry.OpenReminderCount()
		if _, ok := moodCounts[entry.Mood]; ok {
			moodCounts[entry.Mood]++
			moodTotal += entry.Mood
			moodCount++
		}
	}

	stats.CompletionRate = int(math.Round(float64(stats.DaysWithJournal) / float64(daysInYear) * 100))
	if moodCount > 0 {
		avg := math.Round(float64(moodTotal)/float64(moodCount)*100) / 100
		stats.AverageMood = &avg
	}
	return stats
}
