// Package payments persists payment records, keyed one-to-many by booking.
package payments

import (
	"sync"
	"time"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"
	"github.com/Tharak23/bridge-full-stack/utils"
)

// Repository is the persisted collection of payment records.
type Repository interface {
	// Add prepends a payment, filling id, display date, creation time and a
	// Pending default status when absent.
	Add(p models.Payment) (models.Payment, bool)
	// List returns all payments, most recent first.
	List() []models.Payment
	// ListByBooking returns the payments referencing a booking.
	ListByBooking(bookingID string) []models.Payment
	// UpdateStatusByBooking moves every payment of the booking to status and
	// returns how many records changed.
	UpdateStatusByBooking(bookingID string, status models.PaymentStatus) int
}

type snapshotRepo struct {
	mu    sync.Mutex
	store storage.Store
}

// NewRepository returns a Repository over the given snapshot store.
func NewRepository(store storage.Store) Repository {
	return &snapshotRepo{store: store}
}

func (r *snapshotRepo) load() []models.Payment {
	list := []models.Payment{}
	storage.LoadJSON(r.store, storage.KeyPayments, &list)
	return list
}

func (r *snapshotRepo) Add(p models.Payment) (models.Payment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = utils.PrefixedID("pay")
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Date == "" {
		p.Date = utils.DisplayDate(p.CreatedAt)
	}
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
	if p.Location == "" {
		p.Location = "—"
	}

	list := append([]models.Payment{p}, r.load()...)
	return p, storage.SaveJSON(r.store, storage.KeyPayments, list)
}

func (r *snapshotRepo) List() []models.Payment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *snapshotRepo) ListByBooking(bookingID string) []models.Payment {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Payment
	for _, p := range r.load() {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out
}

func (r *snapshotRepo) UpdateStatusByBooking(bookingID string, status models.PaymentStatus) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	var changed int
	for i, p := range list {
		if p.BookingID == bookingID && p.Status != status {
			list[i].Status = status
			changed++
		}
	}
	if changed > 0 {
		storage.SaveJSON(r.store, storage.KeyPayments, list)
	}
	return changed
}
