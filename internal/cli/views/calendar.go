package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/projection"
	"github.com/nousjournal/nous/internal/utils"
)

var (
	monthTitleStyle = lipgloss.NewStyle().Bold(true)
	todayStyle      = lipgloss.NewStyle().Reverse(true)
	entryStyle      = lipgloss.NewStyle().Bold(true)
	favoriteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	reminderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	blankStyle      = lipgloss.NewStyle().Faint(true)
)

type CalendarCmd struct {
	Year  int `arg:"" optional:"" help:"Year to display (default current year)."`
	Month int `short:"m" help:"Only display one month (1-12)."`
}

func (c *CalendarCmd) Validate() error {
	if c.Month != 0 && (c.Month < 1 || c.Month > 12) {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	today, err := utils.ParseDateKey(ctx.Today())
	if err != nil {
		today = time.Now()
	}
	year := c.Year
	if year == 0 {
		year = today.Year()
	}

	months := projection.Calendar(year, ctx.Store.Entries(), today)
	for _, month := range months {
		if c.Month != 0 && month.MonthIndex != c.Month-1 {
			continue
		}
		fmt.Println(renderMonth(month, year))
	}
	fmt.Println("● entrée  ★ favori  ! rappel en attente")
	return nil
}

func renderMonth(month projection.Month, year int) string {
	var b strings.Builder
	b.WriteString(monthTitleStyle.Render(fmt.Sprintf("%s %d", month.MonthName, year)))
	b.WriteString("\n Lu  Ma  Me  Je  Ve  Sa  Di\n")

	col := 0
	for _, cell := range month.Cells {
		b.WriteString(renderCell(cell))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(cell *projection.DayCell) string {
	if cell == nil {
		return blankStyle.Render("  . ")
	}

	marker := " "
	switch {
	case cell.HasFavorite:
		marker = favoriteStyle.Render("★")
	case cell.HasReminderActive:
		marker = reminderStyle.Render("!")
	case cell.HasEntry:
		marker = "●"
	}

	label := fmt.Sprintf("%3d", cell.Day)
	switch {
	case cell.IsToday:
		label = todayStyle.Render(label)
	case cell.HasEntry:
		label = entryStyle.Render(label)
	case !cell.IsPast:
		label = blankStyle.Render(label)
	}
	return label + marker
}
