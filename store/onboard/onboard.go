// Package onboard persists the service-provider onboarding wizard draft.
// Every field change is flushed immediately so the draft survives a restart;
// it is deleted only on successful submission.
package onboard

import (
	"sync"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"
)

// Draft is the persistent wizard state. The photo attachment stays in
// memory only; the persisted snapshot excludes it.
type Draft struct {
	mu    sync.Mutex
	store storage.Store
	state models.OnboardingDraft
}

// New loads the draft from store, defaulting to the empty wizard state.
func New(store storage.Store) *Draft {
	d := &Draft{store: store, state: models.DefaultOnboardingDraft()}
	storage.LoadJSON(store, storage.KeyOnboardDraft, &d.state)
	return d
}

// Snapshot returns a copy of the current wizard state.
func (d *Draft) Snapshot() models.OnboardingDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Put replaces the wizard state and flushes it. The attachment field of the
// incoming value is kept in memory but never written.
func (d *Draft) Put(state models.OnboardingDraft) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = state
	return storage.SaveJSON(d.store, storage.KeyOnboardDraft, d.state)
}

// Update applies fn to the wizard state and flushes the result.
func (d *Draft) Update(fn func(*models.OnboardingDraft)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(&d.state)
	return storage.SaveJSON(d.store, storage.KeyOnboardDraft, d.state)
}

// Clear resets the wizard and removes the persisted draft. Called after a
// successful submission.
func (d *Draft) Clear() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = models.DefaultOnboardingDraft()
	return d.store.Delete(storage.KeyOnboardDraft) == nil
}
