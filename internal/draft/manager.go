// Package draft keeps in-progress edits for a day separate from committed
// entries. Edits are held in an in-memory cache and flushed to the draft
// store after a short quiet window, so rapid successive updates collapse
// into a single write and the last one wins.
package draft

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/logger"
	"github.com/nousjournal/nous/internal/models"
	"github.com/nousjournal/nous/internal/normalize"
	"github.com/nousjournal/nous/internal/storage"
)

// Manager mediates between the editing surface and the draft store. It is
// safe for concurrent use.
type Manager struct {
	store storage.Provider

	mu     sync.Mutex
	cache  *gocache.Cache
	timers map[string]*time.Timer
}

func NewManager(store storage.Provider) *Manager {
	return &Manager{
		store:  store,
		cache:  gocache.New(gocache.NoExpiration, 0),
		timers: make(map[string]*time.Timer),
	}
}

// Open returns the working draft for a date key: the persisted draft when one
// exists, otherwise a draft seeded from the committed entry for that day, or
// an empty one.
func (m *Manager) Open(dateKey string, entry *models.Entry) models.Draft {
	if cached, ok := m.cache.Get(dateKey); ok {
		return cached.(models.Draft)
	}
	if snapshot, ok := m.store.GetDraft(dateKey); ok {
		return normalize.Draft(dateKey, snapshot.Draft)
	}
	if entry != nil {
		return normalize.DraftFromEntry(dateKey, *entry)
	}
	return normalize.Draft(dateKey, models.Draft{})
}

// Update records an edit and schedules a debounced flush. Successive updates
// within the quiet window reset the timer; only the latest draft is written.
func (m *Manager) Update(dateKey string, draft models.Draft) {
	draft = normalize.Draft(dateKey, draft)
	m.cache.Set(dateKey, draft, gocache.NoExpiration)

	m.mu.Lock()
	defer m.mu.Unlock()
	if timer, ok := m.timers[dateKey]; ok {
		timer.Stop()
	}
	m.timers[dateKey] = time.AfterFunc(constants.DraftDebounce, func() {
		if err := m.Flush(dateKey); err != nil {
			logger.Warn("Failed to flush draft", "date", dateKey, "error", err)
		}
	})
}

// Flush writes the cached draft for a date key immediately, cancelling any
// pending debounce timer. Flushing a key with no cached draft is a no-op.
func (m *Manager) Flush(dateKey string) error {
	m.mu.Lock()
	if timer, ok := m.timers[dateKey]; ok {
		timer.Stop()
		delete(m.timers, dateKey)
	}
	m.mu.Unlock()

	cached, ok := m.cache.Get(dateKey)
	if !ok {
		return nil
	}
	snapshot := models.DraftSnapshot{
		Draft:     cached.(models.Draft),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return m.store.SaveDraft(dateKey, snapshot)
}

// FlushAll flushes every cached draft. Called on shutdown so a pending quiet
// window cannot swallow the final edit.
func (m *Manager) FlushAll() error {
	var firstErr error
	for dateKey := range m.cache.Items() {
		if err := m.Flush(dateKey); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Discard drops the draft for a date key from the cache and the store. The
// committed entry is untouched.
func (m *Manager) Discard(dateKey string) error {
	m.mu.Lock()
	if timer, ok := m.timers[dateKey]; ok {
		timer.Stop()
		delete(m.timers, dateKey)
	}
	m.mu.Unlock()

	m.cache.Delete(dateKey)
	return m.store.DeleteDraft(dateKey)
}
