package entries

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/metadata"
	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/normalize"
	"github.com/nousjournal/nous/internal/storage"
)

type WriteCmd struct {
	Date       string   `arg:"" optional:"" help:"Date to write for (YYYY-MM-DD, default today)."`
	Text       string   `short:"t" help:"Journal text. Replaces the existing text when set."`
	Mood       int      `short:"m" help:"Mood (1-5)."`
	Message    string   `help:"Custom message for this day."`
	Favorite   bool     `help:"Mark the day as a favorite."`
	Unfavorite bool     `help:"Remove the favorite mark."`
	Attach     []string `short:"a" help:"Image files to attach." type:"existingfile"`
	NoMetadata bool     `help:"Skip the location/weather capture for this save."`
	Draft      bool     `help:"Stage the changes as a draft instead of committing them."`
}

func (c *WriteCmd) Validate() error {
	if c.Date != "" && !normalize.ValidDateKey(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	if c.Mood != 0 && (c.Mood < constants.MoodMin || c.Mood > constants.MoodMax) {
		return fmt.Errorf("mood must be between %d and %d", constants.MoodMin, constants.MoodMax)
	}
	if c.Favorite && c.Unfavorite {
		return fmt.Errorf("--favorite and --unfavorite are mutually exclusive")
	}
	return nil
}

func (c *WriteCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	dateKey := c.Date
	if dateKey == "" {
		dateKey = ctx.Today()
	}

	entries := ctx.Store.Entries()
	stored := entries[dateKey]
	entry := normalize.Entry(dateKey, stored)

	// Resume from a staged draft when one exists; with none, Open seeds from
	// the committed entry and the overlay is the identity.
	working := ctx.Drafts.Open(dateKey, &stored)
	entry = working.ApplyTo(entry)

	if c.Text != "" {
		entry.Text = c.Text
	}
	if c.Mood != 0 {
		entry.Mood = c.Mood
	}
	if c.Message != "" {
		entry.CustomMessage = c.Message
	}
	if c.Favorite {
		entry.Favorite = true
	}
	if c.Unfavorite {
		entry.Favorite = false
	}

	for _, path := range c.Attach {
		media, err := loadMedia(path)
		if err != nil {
			return err
		}
		if len(entry.Media) >= constants.MaxMediaPerEntry {
			return fmt.Errorf("at most %d photos per day", constants.MaxMediaPerEntry)
		}
		entry.Media = append(entry.Media, media)
	}

	if c.Draft {
		ctx.Drafts.Update(dateKey, normalize.DraftFromEntry(dateKey, entry))
		if err := ctx.Drafts.Flush(dateKey); err != nil {
			return err
		}
		fmt.Printf("Brouillon du %s enregistré.\n", dateKey)
		return nil
	}

	profile := ctx.Store.GetProfile()
	if !c.NoMetadata && profile.HasCoordinates() {
		meta := metadata.NewCapturer().Capture(context.Background(), profile.Latitude, profile.Longitude, entry.Metadata)
		entry.Metadata = &meta
	}

	// Soft capacity check on the projected store before committing.
	projected := make(map[string]models.Entry, len(entries)+1)
	for k, v := range entries {
		projected[k] = v
	}
	projected[dateKey] = entry
	if size := storage.EstimateSize(projected); size > constants.StorageBytesSoftLimit {
		return fmt.Errorf("storage is full (%d bytes, limit %d): remove some photos before saving", size, constants.StorageBytesSoftLimit)
	}

	if err := ctx.Store.Reconcile(dateKey, entry); err != nil {
		return err
	}
	if err := ctx.Drafts.Discard(dateKey); err != nil {
		return err
	}

	if entry.IsContentless() {
		fmt.Printf("%s: entrée vide, rien à conserver.\n", dateKey)
	} else {
		fmt.Printf("%s enregistré %s\n", dateKey, cli.MoodEmoji(entry.Mood))
	}
	return nil
}

func loadMedia(path string) (models.Media, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Media{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) > constants.MaxMediaBytes {
		return models.Media{}, fmt.Errorf("%s is too large (%d bytes, limit %d)", path, len(data), constants.MaxMediaBytes)
	}

	mimeType := mimeTypeFor(path)
	return models.Media{
		ID:       uuid.NewString(),
		Name:     filepath.Base(path),
		MimeType: mimeType,
		ByteSize: int64(len(data)),
		Content:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

func mimeTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
