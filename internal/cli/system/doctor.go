package system

import (
	"fmt"
	"os"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/motivation"
	"github.com/nousjournal/nous/internal/notifier"
	"github.com/nousjournal/nous/internal/passcode"
	"github.com/nousjournal/nous/internal/storage"
	"github.com/nousjournal/nous/internal/utils"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	ok := true
	check := func(name string, pass bool, detail string) {
		mark := "✓"
		if !pass {
			mark = "✗"
			ok = false
		}
		fmt.Printf("%s %s", mark, name)
		if detail != "" {
			fmt.Printf(" (%s)", detail)
		}
		fmt.Println()
	}

	path := ctx.Store.GetConfigPath()
	_, statErr := os.Stat(path)
	check("store file", statErr == nil, path)

	entries := ctx.Store.Entries()
	size := storage.EstimateSize(entries)
	check("store size", size <= constants.StorageBytesSoftLimit,
		fmt.Sprintf("%d / %d bytes, %d day(s)", size, constants.StorageBytesSoftLimit, len(entries)))

	info := motivation.Info()
	check("message library", info.Size == constants.MessageLibrarySize,
		fmt.Sprintf("%d messages, %d-%d", info.Size, info.StartYear, info.EndYearInclusive))

	profile := ctx.Store.GetProfile()
	_, tzErr := utils.LoadLocation(profile.Timezone)
	check("timezone", tzErr == nil, profile.Timezone)

	// Informational checks: a missing keyring or tray is degraded, not broken.
	if passcode.KeyringAvailable() {
		fmt.Println("✓ OS keyring")
	} else {
		fmt.Println("- OS keyring unavailable, lock record stays in the store")
	}
	if _, err := notifier.GetTrayAppConfigDir(); err == nil {
		fmt.Println("✓ tray config dir")
	} else {
		fmt.Println("- tray config dir not resolvable, notifications unavailable")
	}
	fmt.Printf("  lock: %s\n", ctx.Guard.Status())

	if !ok {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}
