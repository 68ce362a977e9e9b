package passcode

import (
	"errors"
	"testing"

	"github.com/nousjournal/nous/internal/models"
)

type memStore struct {
	record *models.LockRecord
	failOn string
}

func (m *memStore) GetLockRecord() (models.LockRecord, bool) {
	if m.record == nil {
		return models.LockRecord{}, false
	}
	return *m.record, true
}

func (m *memStore) SaveLockRecord(record models.LockRecord) error {
	if m.failOn == "save" {
		return errors.New("boom")
	}
	m.record = &record
	return nil
}

func (m *memStore) DeleteLockRecord() error {
	if m.failOn == "delete" {
		return errors.New("boom")
	}
	m.record = nil
	return nil
}

func TestGuardNoLock(t *testing.T) {
	g := NewGuard(&memStore{})
	if g.HasLock() {
		t.Error("fresh store should have no lock")
	}
	if g.Status() != StatusNoLock {
		t.Errorf("expected no-lock status, got %s", g.Status())
	}
	// With no lock, any verification opens access.
	if !g.Verify("anything") {
		t.Error("verify with no lock should succeed")
	}
	if g.Status() != StatusNoLock {
		t.Errorf("status should stay no-lock, got %s", g.Status())
	}
}

func TestGuardSetAndVerify(t *testing.T) {
	store := &memStore{}
	g := NewGuard(store)

	if err := g.Set("123"); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
	if err := g.Set("1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Status() != StatusUnlocked {
		t.Errorf("setting a passcode should leave the guard unlocked, got %s", g.Status())
	}

	record := *store.record
	if record.Salt == "" || record.Hash == "" || record.UpdatedAt == "" {
		t.Errorf("incomplete record: %+v", record)
	}
	if record.Hash == "1234" {
		t.Error("passcode stored in clear")
	}

	// Fresh guard over the same store starts locked.
	g2 := NewGuard(store)
	if g2.Status() != StatusLocked {
		t.Errorf("expected locked, got %s", g2.Status())
	}
	if g2.Verify("wrong") {
		t.Error("wrong passcode should not verify")
	}
	if g2.Status() != StatusLocked {
		t.Error("failed verify should not unlock")
	}
	if !g2.Verify("1234") {
		t.Error("correct passcode should verify")
	}
	if g2.Status() != StatusUnlocked {
		t.Errorf("expected unlocked, got %s", g2.Status())
	}
}

func TestGuardSaltVaries(t *testing.T) {
	store := &memStore{}
	g := NewGuard(store)
	if err := g.Set("1234"); err != nil {
		t.Fatal(err)
	}
	first := *store.record
	if err := g.Set("1234"); err != nil {
		t.Fatal(err)
	}
	second := *store.record
	if first.Salt == second.Salt || first.Hash == second.Hash {
		t.Error("re-setting the same passcode should produce a fresh salt and hash")
	}
}

func TestGuardMalformedRecordFailsClosed(t *testing.T) {
	store := &memStore{record: &models.LockRecord{Salt: "only-salt"}}
	g := NewGuard(store)
	if g.Verify("1234") {
		t.Error("malformed record should never verify")
	}
	if g.Status() != StatusLocked {
		t.Errorf("expected locked, got %s", g.Status())
	}
}

func TestGuardClear(t *testing.T) {
	store := &memStore{}
	g := NewGuard(store)
	if err := g.Set("1234"); err != nil {
		t.Fatal(err)
	}
	if err := g.Clear(); err != nil {
		t.Fatal(err)
	}
	if g.HasLock() {
		t.Error("lock should be gone after clear")
	}
	if g.Status() != StatusNoLock {
		t.Errorf("expected no-lock, got %s", g.Status())
	}

	store.failOn = "delete"
	store.record = &models.LockRecord{Salt: "s", Hash: "h"}
	if err := g.Clear(); err == nil {
		t.Error("expected error from failing store")
	}
}
