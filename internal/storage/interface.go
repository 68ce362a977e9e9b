package storage

import (
	"encoding/json"

	"github.com/nousjournal/nous/internal/models"
)

// Provider is the persistence contract shared by the JSON and SQLite
// backends. Entry mutations always replace the whole persisted store in one
// logical step: there is no partial or incremental persistence.
//
// Concurrency note:
//   - Providers are not safe for concurrent use by multiple goroutines
//     without external synchronization. The application mutates the store
//     sequentially from one coordinating caller.
//   - Running multiple nous processes against the same storage path at the
//     same time is not supported.
type Provider interface {
	// Lifecycle. Load never fails on malformed content: any unreadable or
	// corrupt store degrades to an empty one.
	Load() error
	Close() error

	// Entries
	Entries() map[string]models.Entry
	SaveEntries(entries map[string]models.Entry) error
	Reconcile(dateKey string, candidate models.Entry) error

	// Drafts
	GetDraft(dateKey string) (models.DraftSnapshot, bool)
	SaveDraft(dateKey string, snap models.DraftSnapshot) error
	DeleteDraft(dateKey string) error

	// Profile
	GetProfile() models.Profile
	SaveProfile(profile models.Profile) error

	// Passcode lock record
	GetLockRecord() (models.LockRecord, bool)
	SaveLockRecord(record models.LockRecord) error
	DeleteLockRecord() error

	// Daily-motivation marker (last-sent date key, empty when never sent)
	GetDailyMotivationSentOn() string
	SetDailyMotivationSentOn(dateKey string) error

	// Utils
	GetConfigPath() string
}

// EstimateSize returns the serialized byte size of an entry map, used for the
// soft capacity check before a commit. Serialization failure counts as zero
// rather than failing the caller; the subsequent persist will surface any
// real problem.
func EstimateSize(entries map[string]models.Entry) int {
	data, err := json.Marshal(entries)
	if err != nil {
		return 0
	}
	return len(data)
}
