package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/cli/entries"
	"github.com/nousjournal/nous/internal/cli/reminders"
	"github.com/nousjournal/nous/internal/cli/system"
	"github.com/nousjournal/nous/internal/cli/views"
	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/draft"
	"github.com/nousjournal/nous/internal/errors"
	"github.com/nousjournal/nous/internal/logger"
	"github.com/nousjournal/nous/internal/passcode"
	"github.com/nousjournal/nous/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/nous/nous.json"`
	Store   string `help:"Storage backend." enum:"json,sqlite" default:"json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd    `cmd:"" help:"Initialize nous storage."`
	Today    entries.TodayCmd  `cmd:"" help:"Show today's prompt, message and entry." default:"1"`
	Write    entries.WriteCmd  `cmd:"" help:"Write or update a day."`
	Show     entries.ShowCmd   `cmd:"" help:"Show one day."`
	Calendar views.CalendarCmd `cmd:"" help:"Show the yearly calendar."`
	Timeline views.TimelineCmd `cmd:"" help:"Show recent days, newest first."`
	Stats    views.StatsCmd    `cmd:"" help:"Show yearly statistics."`
	Memories views.MemoriesCmd `cmd:"" help:"Show this day across other years."`
	Export   views.ExportCmd   `cmd:"" help:"Export the journal as text."`
	Remind   struct {
		Add  reminders.RemindAddCmd  `cmd:"" help:"Add a reminder."`
		List reminders.RemindListCmd `cmd:"" help:"List reminders." default:"1"`
		Done reminders.RemindDoneCmd `cmd:"" help:"Mark a reminder as done."`
	} `cmd:"" help:"Manage reminders."`
	Draft struct {
		Show    entries.DraftShowCmd    `cmd:"" help:"Show a pending draft." default:"1"`
		Discard entries.DraftDiscardCmd `cmd:"" help:"Discard a pending draft."`
	} `cmd:"" help:"Inspect in-progress drafts."`
	Lock struct {
		Set    system.LockSetCmd    `cmd:"" help:"Set or change the passcode."`
		Status system.LockStatusCmd `cmd:"" help:"Show the lock state." default:"1"`
		Clear  system.LockClearCmd  `cmd:"" help:"Remove the passcode."`
	} `cmd:"" help:"Manage the local passcode lock."`
	Profile struct {
		Set  system.ProfileSetCmd  `cmd:"" help:"Update profile settings."`
		Show system.ProfileShowCmd `cmd:"" help:"Show profile settings." default:"1"`
	} `cmd:"" help:"Manage the profile."`
	Migrate system.MigrateCmd   `cmd:"" help:"Copy the journal from another store."`
	Doctor  system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Notify  reminders.NotifyCmd `cmd:"" hidden:"" help:"Run one notification pass (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal offline-first daily journal companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	if CLI.Store == "sqlite" || strings.HasSuffix(CLI.Config, ".db") {
		store = storage.NewSQLiteStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}

	if err := store.Load(); err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Guard:  passcode.NewGuard(passcode.SelectStore(store)),
		Drafts: draft.NewManager(store),
	}

	err := ctx.Run(appCtx)
	if flushErr := appCtx.Drafts.FlushAll(); flushErr != nil {
		logger.Warn("Failed to flush pending drafts", "error", flushErr)
	}
	if err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
