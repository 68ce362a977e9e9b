// Package passcode implements the local app lock: a salted one-way digest of
// a numeric passcode. A single SHA-256 iteration with a per-installation
// random salt guards against casual local tampering only; this is a local
// low-stakes lock, not a security boundary against a hostile device owner.
package passcode

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/models"
)

// Status distinguishes "never locked" from "currently unlocked" so callers
// and tests cannot conflate the two.
type Status int

const (
	StatusNoLock Status = iota
	StatusLocked
	StatusUnlocked
)

func (s Status) String() string {
	switch s {
	case StatusNoLock:
		return "no-lock"
	case StatusLocked:
		return "locked"
	case StatusUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// ErrTooShort is returned by Set for passcodes under the minimum length.
var ErrTooShort = fmt.Errorf("passcode must be at least %d characters", constants.MinPasscodeLength)

// RecordStore persists the single lock record. Both storage providers and
// the OS-keyring backend satisfy it.
type RecordStore interface {
	GetLockRecord() (models.LockRecord, bool)
	SaveLockRecord(record models.LockRecord) error
	DeleteLockRecord() error
}

// Guard gates app access behind the configured passcode.
type Guard struct {
	store    RecordStore
	unlocked bool
}

func NewGuard(store RecordStore) *Guard {
	return &Guard{store: store}
}

// HasLock reports whether a lock record is persisted.
func (g *Guard) HasLock() bool {
	_, ok := g.store.GetLockRecord()
	return ok
}

// Status returns the current lock state. Absence of a record means open
// access, reported distinctly from a verified unlock.
func (g *Guard) Status() Status {
	if !g.HasLock() {
		return StatusNoLock
	}
	if g.unlocked {
		return StatusUnlocked
	}
	return StatusLocked
}

// Set configures a new passcode, overwriting any prior record.
func (g *Guard) Set(pin string) error {
	if len(pin) < constants.MinPasscodeLength {
		return ErrTooShort
	}

	salt, err := randomSaltHex()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	record := models.LockRecord{
		Salt:      salt,
		Hash:      digest(salt, pin),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := g.store.SaveLockRecord(record); err != nil {
		return fmt.Errorf("failed to persist lock record: %w", err)
	}
	g.unlocked = true
	return nil
}

// Verify checks a passcode against the stored record. With no record
// configured it returns true (open access by design). A malformed stored
// record verifies as false: the guard fails closed on corruption.
func (g *Guard) Verify(pin string) bool {
	record, ok := g.store.GetLockRecord()
	if !ok {
		g.unlocked = true
		return true
	}
	if !record.IsWellFormed() {
		return false
	}
	if digest(record.Salt, pin) != record.Hash {
		return false
	}
	g.unlocked = true
	return true
}

// Clear removes the lock record unconditionally. Callers are expected to
// gate this behind a successful Verify; the guard itself does not enforce
// re-authentication here.
func (g *Guard) Clear() error {
	if err := g.store.DeleteLockRecord(); err != nil {
		return fmt.Errorf("failed to remove lock record: %w", err)
	}
	g.unlocked = false
	return nil
}

func digest(salt, pin string) string {
	sum := sha256.Sum256([]byte(salt + ":" + pin))
	return hex.EncodeToString(sum[:])
}

func randomSaltHex() (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}
