package passcode

import (
	"encoding/json"
	"errors"

	"github.com/zalando/go-keyring"

	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/logger"
	"github.com/nousjournal/nous/internal/models"
)

// ErrKeyringUnavailable distinguishes "this system has no keyring" from a
// denied or failed operation.
var ErrKeyringUnavailable = errors.New("OS keyring is not available")

// KeyringStore persists the lock record in the OS keyring under the
// application service name.
type KeyringStore struct{}

func (KeyringStore) GetLockRecord() (models.LockRecord, bool) {
	raw, err := keyring.Get(constants.AppName, constants.KeyringLockUser)
	if err != nil {
		return models.LockRecord{}, false
	}
	var record models.LockRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		// A corrupt keyring value still counts as "a lock exists"; the
		// guard will fail closed on the malformed record.
		return models.LockRecord{}, true
	}
	return record, true
}

func (KeyringStore) SaveLockRecord(record models.LockRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return keyring.Set(constants.AppName, constants.KeyringLockUser, string(payload))
}

func (KeyringStore) DeleteLockRecord() error {
	err := keyring.Delete(constants.AppName, constants.KeyringLockUser)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// KeyringAvailable checks whether the OS keyring can be used. Best-effort: a
// read that fails with anything other than "not found" is treated as
// unavailable.
func KeyringAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-probe")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// SelectStore picks the keyring backend when the OS provides one and falls
// back to the given store otherwise. The fallback path is what makes a
// missing keyring an "unsupported" condition rather than a failure.
func SelectStore(fallback RecordStore) RecordStore {
	if KeyringAvailable() {
		return KeyringStore{}
	}
	logger.Debug("OS keyring unavailable, storing lock record in the journal store")
	return fallback
}
