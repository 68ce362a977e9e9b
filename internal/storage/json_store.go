package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nousjournal/nous/internal/logger"
	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/normalize"
)

type fileStore struct {
	Version               int                             `json:"version"`
	Profile               models.Profile                  `json:"profile"`
	Entries               map[string]models.Entry         `json:"entries"`
	Drafts                map[string]models.DraftSnapshot `json:"drafts"`
	Lock                  *models.LockRecord              `json:"lock,omitempty"`
	DailyMotivationSentOn string                          `json:"dailyMotivationSentOn,omitempty"`
}

// rawFileStore mirrors fileStore with raw entry fragments so that one corrupt
// entry cannot fail the whole load.
type rawFileStore struct {
	Version               int                             `json:"version"`
	Profile               models.Profile                  `json:"profile"`
	Entries               map[string]json.RawMessage      `json:"entries"`
	Drafts                map[string]models.DraftSnapshot `json:"drafts"`
	Lock                  *models.LockRecord              `json:"lock,omitempty"`
	DailyMotivationSentOn string                          `json:"dailyMotivationSentOn,omitempty"`
}

// JSONStore persists the whole journal as a single JSON file, rewritten in
// full on every mutation.
type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func emptyFileStore() *fileStore {
	return &fileStore{
		Version: 1,
		Entries: make(map[string]models.Entry),
		Drafts:  make(map[string]models.DraftSnapshot),
	}
}

// Load reads and normalizes the persisted store. It never trusts raw input
// and never fails the caller: a missing, truncated, or adversarial file
// degrades to an empty store.
func (s *JSONStore) Load() error {
	s.store = emptyFileStore()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug("Store file unreadable, starting empty", "path", s.path, "error", err)
		}
		return nil
	}

	var raw rawFileStore
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Debug("Store file corrupt, starting empty", "path", s.path, "error", err)
		return nil
	}

	s.store.Profile = raw.Profile
	s.store.Entries = normalize.Entries(raw.Entries)
	if raw.Drafts != nil {
		for dateKey, snap := range raw.Drafts {
			if !normalize.ValidDateKey(dateKey) {
				continue
			}
			snap.Draft = normalize.Draft(dateKey, snap.Draft)
			s.store.Drafts[dateKey] = snap
		}
	}
	s.store.Lock = raw.Lock
	s.store.DailyMotivationSentOn = raw.DailyMotivationSentOn
	if raw.Version > 0 {
		s.store.Version = raw.Version
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) ensureLoaded() {
	if s.store == nil {
		s.store = emptyFileStore()
	}
}

func (s *JSONStore) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

// Entries returns a copy of the entry map so callers cannot mutate the
// store's state without going through SaveEntries or Reconcile.
func (s *JSONStore) Entries() map[string]models.Entry {
	s.ensureLoaded()
	out := make(map[string]models.Entry, len(s.store.Entries))
	for k, v := range s.store.Entries {
		out[k] = v
	}
	return out
}

func (s *JSONStore) SaveEntries(entries map[string]models.Entry) error {
	s.ensureLoaded()
	s.store.Entries = normalize.EntryMap(entries)
	return s.save()
}

// Reconcile applies the store-or-delete step for one day: the candidate is
// normalized, the contentless predicate applied, and the key upserted or
// removed in a single replace-and-persist transaction.
func (s *JSONStore) Reconcile(dateKey string, candidate models.Entry) error {
	s.ensureLoaded()

	entry := normalize.Entry(dateKey, candidate)
	if entry.IsContentless() {
		delete(s.store.Entries, dateKey)
		return s.save()
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if existing, ok := s.store.Entries[dateKey]; ok {
		entry.CreatedAt = existing.CreatedAt
	}
	entry.UpdatedAt = now
	s.store.Entries[dateKey] = entry
	return s.save()
}

func (s *JSONStore) GetDraft(dateKey string) (models.DraftSnapshot, bool) {
	s.ensureLoaded()
	snap, ok := s.store.Drafts[dateKey]
	return snap, ok
}

func (s *JSONStore) SaveDraft(dateKey string, snap models.DraftSnapshot) error {
	s.ensureLoaded()
	snap.Draft = normalize.Draft(dateKey, snap.Draft)
	s.store.Drafts[dateKey] = snap
	return s.save()
}

func (s *JSONStore) DeleteDraft(dateKey string) error {
	s.ensureLoaded()
	delete(s.store.Drafts, dateKey)
	return s.save()
}

func (s *JSONStore) GetProfile() models.Profile {
	s.ensureLoaded()
	return s.store.Profile
}

func (s *JSONStore) SaveProfile(profile models.Profile) error {
	s.ensureLoaded()
	s.store.Profile = profile
	return s.save()
}

func (s *JSONStore) GetLockRecord() (models.LockRecord, bool) {
	s.ensureLoaded()
	if s.store.Lock == nil {
		return models.LockRecord{}, false
	}
	return *s.store.Lock, true
}

func (s *JSONStore) SaveLockRecord(record models.LockRecord) error {
	s.ensureLoaded()
	s.store.Lock = &record
	return s.save()
}

func (s *JSONStore) DeleteLockRecord() error {
	s.ensureLoaded()
	s.store.Lock = nil
	return s.save()
}

func (s *JSONStore) GetDailyMotivationSentOn() string {
	s.ensureLoaded()
	return s.store.DailyMotivationSentOn
}

func (s *JSONStore) SetDailyMotivationSentOn(dateKey string) error {
	s.ensureLoaded()
	s.store.DailyMotivationSentOn = dateKey
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
