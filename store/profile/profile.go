// Package profile caches hire and provider profile blobs plus the hire
// user's chosen location. Profile saves are shallow merges.
package profile

import (
	"sync"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"
)

// Repository is the cached profile store.
type Repository interface {
	// Hire returns the cached hire profile, nil when none is stored.
	Hire() models.Profile
	// SaveHire shallow-merges patch into the cached hire profile.
	SaveHire(patch models.Profile) bool
	// Provider returns the cached provider profile, nil when none is stored.
	Provider() models.Profile
	// SaveProvider shallow-merges patch into the cached provider profile.
	SaveProvider(patch models.Profile) bool
	// Location returns the hire user's chosen location, empty when unset.
	Location() string
	// SaveLocation stores the hire user's chosen location.
	SaveLocation(location string) bool
}

type snapshotRepo struct {
	mu    sync.Mutex
	store storage.Store
}

// NewRepository returns a Repository over the given snapshot store.
func NewRepository(store storage.Store) Repository {
	return &snapshotRepo{store: store}
}

func (r *snapshotRepo) get(key string) models.Profile {
	var p models.Profile
	if !storage.LoadJSON(r.store, key, &p) {
		return nil
	}
	return p
}

func (r *snapshotRepo) merge(key string, patch models.Profile) bool {
	current := r.get(key)
	if current == nil {
		current = models.Profile{}
	}
	return storage.SaveJSON(r.store, key, current.Merge(patch))
}

func (r *snapshotRepo) Hire() models.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(storage.KeyHireProfile)
}

func (r *snapshotRepo) SaveHire(patch models.Profile) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.merge(storage.KeyHireProfile, patch)
}

func (r *snapshotRepo) Provider() models.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(storage.KeyProviderProfile)
}

func (r *snapshotRepo) SaveProvider(patch models.Profile) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.merge(storage.KeyProviderProfile, patch)
}

func (r *snapshotRepo) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return storage.LoadString(r.store, storage.KeyHireLocation, "")
}

func (r *snapshotRepo) SaveLocation(location string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if location == "" {
		return true // empty selection is not persisted, matching the UI
	}
	return storage.SaveString(r.store, storage.KeyHireLocation, location)
}
