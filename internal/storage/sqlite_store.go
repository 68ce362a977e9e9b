package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nousjournal/nous/internal/logger"
	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/normalize"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	date_key TEXT PRIMARY KEY,
	payload  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS drafts (
	date_key TEXT PRIMARY KEY,
	payload  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const (
	metaProfile   = "profile"
	metaLock      = "lock"
	metaDailySent = "daily_motivation_sent_on"
)

// SQLiteStore is the alternative Provider backend. Entry payloads are stored
// as JSON rows keyed by date; the replace-and-persist contract is kept by
// rewriting the entries table inside one transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB

	entries map[string]models.Entry
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Load() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to prepare schema: %w", err)
	}
	s.db = db

	return s.loadEntries()
}

// loadEntries reads every entry row with per-row leniency: bad keys or
// undecodable payloads are skipped, never fatal.
func (s *SQLiteStore) loadEntries() error {
	s.entries = make(map[string]models.Entry)

	rows, err := s.db.Query("SELECT date_key, payload FROM entries")
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dateKey, payload string
		if err := rows.Scan(&dateKey, &payload); err != nil {
			logger.Debug("Skipping unreadable entry row", "error", err)
			continue
		}
		if !normalize.ValidDateKey(dateKey) {
			continue
		}
		var entry models.Entry
		_ = json.Unmarshal([]byte(payload), &entry)
		s.entries[dateKey] = normalize.Entry(dateKey, entry)
	}
	return rows.Err()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Entries() map[string]models.Entry {
	out := make(map[string]models.Entry, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

func (s *SQLiteStore) SaveEntries(entries map[string]models.Entry) error {
	normalized := normalize.EntryMap(entries)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	for dateKey, entry := range normalized {
		payload, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to serialize entry %s: %w", dateKey, err)
		}
		if _, err := tx.Exec("INSERT INTO entries (date_key, payload) VALUES (?, ?)", dateKey, string(payload)); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", dateKey, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entries: %w", err)
	}

	s.entries = normalized
	return nil
}

func (s *SQLiteStore) Reconcile(dateKey string, candidate models.Entry) error {
	entry := normalize.Entry(dateKey, candidate)

	if entry.IsContentless() {
		if _, err := s.db.Exec("DELETE FROM entries WHERE date_key = ?", dateKey); err != nil {
			return fmt.Errorf("failed to delete entry %s: %w", dateKey, err)
		}
		delete(s.entries, dateKey)
		return nil
	}

	if existing, ok := s.entries[dateKey]; ok {
		entry.CreatedAt = existing.CreatedAt
	}
	entry.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to serialize entry %s: %w", dateKey, err)
	}
	if _, err := s.db.Exec(
		"INSERT INTO entries (date_key, payload) VALUES (?, ?) ON CONFLICT(date_key) DO UPDATE SET payload = excluded.payload",
		dateKey, string(payload)); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", dateKey, err)
	}

	s.entries[dateKey] = entry
	return nil
}

func (s *SQLiteStore) GetDraft(dateKey string) (models.DraftSnapshot, bool) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM drafts WHERE date_key = ?", dateKey).Scan(&payload)
	if err != nil {
		return models.DraftSnapshot{}, false
	}
	var snap models.DraftSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return models.DraftSnapshot{}, false
	}
	snap.Draft = normalize.Draft(dateKey, snap.Draft)
	return snap, true
}

func (s *SQLiteStore) SaveDraft(dateKey string, snap models.DraftSnapshot) error {
	snap.Draft = normalize.Draft(dateKey, snap.Draft)
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize draft %s: %w", dateKey, err)
	}
	if _, err := s.db.Exec(
		"INSERT INTO drafts (date_key, payload) VALUES (?, ?) ON CONFLICT(date_key) DO UPDATE SET payload = excluded.payload",
		dateKey, string(payload)); err != nil {
		return fmt.Errorf("failed to write draft %s: %w", dateKey, err)
	}
	return nil
}

func (s *SQLiteStore) DeleteDraft(dateKey string) error {
	if _, err := s.db.Exec("DELETE FROM drafts WHERE date_key = ?", dateKey); err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", dateKey, err)
	}
	return nil
}

func (s *SQLiteStore) getMeta(key string) (string, bool) {
	var value string
	if err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value); err != nil {
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) setMeta(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write meta %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetProfile() models.Profile {
	var profile models.Profile
	if value, ok := s.getMeta(metaProfile); ok {
		_ = json.Unmarshal([]byte(value), &profile)
	}
	return profile
}

func (s *SQLiteStore) SaveProfile(profile models.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	return s.setMeta(metaProfile, string(payload))
}

func (s *SQLiteStore) GetLockRecord() (models.LockRecord, bool) {
	value, ok := s.getMeta(metaLock)
	if !ok {
		return models.LockRecord{}, false
	}
	var record models.LockRecord
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		// A corrupt stored value still counts as "a lock exists"; the
		// guard will fail closed on the malformed record.
		return models.LockRecord{}, true
	}
	return record, true
}

func (s *SQLiteStore) SaveLockRecord(record models.LockRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize lock record: %w", err)
	}
	return s.setMeta(metaLock, string(payload))
}

func (s *SQLiteStore) DeleteLockRecord() error {
	if _, err := s.db.Exec("DELETE FROM meta WHERE key = ?", metaLock); err != nil {
		return fmt.Errorf("failed to delete lock record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetDailyMotivationSentOn() string {
	value, _ := s.getMeta(metaDailySent)
	return value
}

func (s *SQLiteStore) SetDailyMotivationSentOn(dateKey string) error {
	return s.setMeta(metaDailySent, dateKey)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
