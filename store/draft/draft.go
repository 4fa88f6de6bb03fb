// Package draft is the single-slot mailbox carrying the in-progress booking
// between the funnel steps. The slot holds at most one draft; Take consumes
// it destructively so a booking can only be confirmed once per draft.
package draft

import (
	"sync"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"
)

// Mailbox is the session-scoped draft slot.
type Mailbox struct {
	mu    sync.Mutex
	store storage.Store
}

// NewMailbox returns a mailbox over the given session store.
func NewMailbox(store storage.Store) *Mailbox {
	return &Mailbox{store: store}
}

// Put writes d into the slot, overwriting any prior draft.
func (m *Mailbox) Put(d models.BookingDraft) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return storage.SaveJSON(m.store, storage.KeyBookingDraft, d)
}

// Peek returns the current draft without consuming it.
func (m *Mailbox) Peek() (models.BookingDraft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var d models.BookingDraft
	ok := storage.LoadJSON(m.store, storage.KeyBookingDraft, &d)
	return d, ok
}

// Take returns the current draft and clears the slot in one step. A second
// Take without an intervening Put finds nothing.
func (m *Mailbox) Take() (models.BookingDraft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var d models.BookingDraft
	if !storage.LoadJSON(m.store, storage.KeyBookingDraft, &d) {
		return models.BookingDraft{}, false
	}
	if err := m.store.Delete(storage.KeyBookingDraft); err != nil {
		// The draft was read; a failed delete must not resurrect it for a
		// second confirm, so overwrite with an empty slot marker.
		storage.SaveJSON(m.store, storage.KeyBookingDraft, nil)
	}
	return d, true
}

// Clear abandons whatever is in the slot.
func (m *Mailbox) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	_ = m.store.Delete(storage.KeyBookingDraft)
}
