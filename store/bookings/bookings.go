// Package bookings persists confirmed bookings and guards their status
// lifecycle: accepted -> ongoing -> completed, with cancellation possible
// until completion and rejection only from accepted.
package bookings

import (
	"sync"
	"time"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"
	"github.com/Tharak23/bridge-full-stack/utils"
)

type snapshotRepo struct {
	mu    sync.Mutex
	store storage.Store
}

// NewRepository returns a Repository over the given snapshot store.
func NewRepository(store storage.Store) Repository {
	return &snapshotRepo{store: store}
}

func (r *snapshotRepo) load() []models.Booking {
	list := []models.Booking{}
	storage.LoadJSON(r.store, storage.KeyBookings, &list)
	return list
}

func (r *snapshotRepo) save(list []models.Booking) bool {
	return storage.SaveJSON(r.store, storage.KeyBookings, list)
}

func (r *snapshotRepo) Add(b models.Booking) (models.Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		b.ID = utils.PrefixedID("bk")
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	list := append([]models.Booking{b}, r.load()...)
	return b, r.save(list)
}

func (r *snapshotRepo) GetByID(id string) (models.Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.load() {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// allowedTransition reports whether a booking may move from to next.
// Cancellation is open to both sides until work completes; rejection is a
// provider decision on a not-yet-started booking.
func allowedTransition(from, next models.BookingStatus) error {
	if from.Terminal() {
		return ErrTerminalStatus
	}
	switch from {
	case models.BookingAccepted:
		switch next {
		case models.BookingOngoing, models.BookingCancelled, models.BookingRejected:
			return nil
		}
	case models.BookingOngoing:
		switch next {
		case models.BookingCompleted, models.BookingCancelled:
			return nil
		}
	}
	return ErrInvalidTransition
}

func (r *snapshotRepo) UpdateStatus(id string, status models.BookingStatus) (models.Booking, error) {
	if !status.Valid() {
		return models.Booking{}, ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	for i, b := range list {
		if b.ID != id {
			continue
		}
		if err := allowedTransition(b.Status, status); err != nil {
			return models.Booking{}, err
		}
		list[i].Status = status
		r.save(list)
		return list[i], nil
	}
	return models.Booking{}, ErrNotFound
}

func (r *snapshotRepo) Patch(id string, patch models.BookingPatch) (models.Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	for i, b := range list {
		if b.ID != id {
			continue
		}
		if patch.ServiceDate != nil {
			list[i].ServiceDate = *patch.ServiceDate
		}
		if patch.TimeSlotLabel != nil {
			list[i].TimeSlotLabel = *patch.TimeSlotLabel
		}
		if patch.Visits != nil {
			list[i].Visits = *patch.Visits
		}
		if patch.Total != nil {
			list[i].Total = *patch.Total
		}
		if patch.ProviderName != nil {
			list[i].ProviderName = *patch.ProviderName
		}
		if patch.LocationText != nil {
			list[i].LocationText = *patch.LocationText
		}
		r.save(list)
		return list[i], true
	}
	return models.Booking{}, false
}

func (r *snapshotRepo) List() []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}
