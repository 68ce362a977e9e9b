package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/projection"
)

type StatsCmd struct {
	Year int `arg:"" optional:"" help:"Year to summarize (default current year)."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	year := c.Year
	if year == 0 {
		year = time.Now().Year()
	}

	stats := projection.Stats(ctx.Store.Entries(), year)
	fmt.Printf("Année %d\n", stats.Year)
	fmt.Printf("  Jours écrits   : %d / %d (%d%%)\n", stats.DaysWithJournal, stats.DaysInYear, stats.CompletionRate)
	fmt.Printf("  Jours favoris  : %d\n", stats.FavoriteDays)
	fmt.Printf("  Rappels ouverts: %d\n", stats.OpenReminders)

	fmt.Println("  Humeurs :")
	max := 0
	for mood := constants.MoodMin; mood <= constants.MoodMax; mood++ {
		if stats.MoodCounts[mood] > max {
			max = stats.MoodCounts[mood]
		}
	}
	for mood := constants.MoodMin; mood <= constants.MoodMax; mood++ {
		count := stats.MoodCounts[mood]
		bar := ""
		if max > 0 {
			bar = strings.Repeat("█", count*20/max)
		}
		fmt.Printf("    %s %-3d %s\n", cli.MoodEmoji(mood), count, bar)
	}
	if stats.AverageMood != nil {
		fmt.Printf("  Humeur moyenne : %.2f\n", *stats.AverageMood)
	} else {
		fmt.Println("  Humeur moyenne : –")
	}
	return nil
}
