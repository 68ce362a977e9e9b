package system

import (
	"fmt"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/storage"
)

// MigrateCmd copies the whole journal from another store into the active one.
// The usual path is json → sqlite when outgrowing the single-file blob.
type MigrateCmd struct {
	Source      string `arg:"" help:"Source store path." type:"path"`
	SourceStore string `help:"Source backend." enum:"json,sqlite" default:"json"`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if c.Source == ctx.Store.GetConfigPath() {
		return fmt.Errorf("source and destination are the same store: %s", c.Source)
	}

	var source storage.Provider
	switch c.SourceStore {
	case "sqlite":
		source = storage.NewSQLiteStore(c.Source)
	default:
		source = storage.NewJSONStore(c.Source)
	}
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source store: %w", err)
	}
	defer source.Close()

	entries := source.Entries()
	if err := ctx.Store.SaveEntries(entries); err != nil {
		return fmt.Errorf("failed to migrate entries: %w", err)
	}
	fmt.Printf("  Migrated %d day(s)\n", len(entries))

	if err := ctx.Store.SaveProfile(source.GetProfile()); err != nil {
		return fmt.Errorf("failed to migrate profile: %w", err)
	}
	if record, ok := source.GetLockRecord(); ok {
		if err := ctx.Store.SaveLockRecord(record); err != nil {
			return fmt.Errorf("failed to migrate lock record: %w", err)
		}
	}
	if sentOn := source.GetDailyMotivationSentOn(); sentOn != "" {
		if err := ctx.Store.SetDailyMotivationSentOn(sentOn); err != nil {
			return fmt.Errorf("failed to migrate daily message marker: %w", err)
		}
	}

	fmt.Printf("Migration completed into %s\n", ctx.Store.GetConfigPath())
	return nil
}
