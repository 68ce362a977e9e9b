package models

// LockRecord is the persisted passcode lock: a per-installation random salt
// and a one-way digest of the passcode. Absence of a record means no lock is
// configured (open access).
type LockRecord struct {
	Salt      string `json:"salt"`
	Hash      string `json:"hash"`
	UpdatedAt string `json:"updatedAt"`
}

// IsWellFormed reports whether the record carries both digest components.
// Malformed records verify as false (fail closed on corruption).
func (r *LockRecord) IsWellFormed() bool {
	return r != nil && r.Salt != "" && r.Hash != ""
}
