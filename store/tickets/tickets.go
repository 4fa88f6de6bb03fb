// Package tickets persists support tickets. Status transitions are
// unrestricted so support staff can reopen a resolved ticket.
package tickets

import (
	"sync"
	"time"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"
	"github.com/Tharak23/bridge-full-stack/utils"
)

// Repository is the persisted collection of support tickets.
type Repository interface {
	// Create prepends a ticket, opening it with both timestamps stamped.
	Create(t models.Ticket) (models.Ticket, bool)
	// GetByID returns the ticket with the given id, if any.
	GetByID(id string) (models.Ticket, bool)
	// List returns all tickets, most recent first.
	List() []models.Ticket
	// ListByStatus filters tickets by status.
	ListByStatus(status models.TicketStatus) []models.Ticket
	// UpdateStatus moves the ticket to status and refreshes UpdatedAt.
	UpdateStatus(id string, status models.TicketStatus) (models.Ticket, bool)
}

type snapshotRepo struct {
	mu    sync.Mutex
	store storage.Store
}

// NewRepository returns a Repository over the given snapshot store.
func NewRepository(store storage.Store) Repository {
	return &snapshotRepo{store: store}
}

func (r *snapshotRepo) load() []models.Ticket {
	list := []models.Ticket{}
	storage.LoadJSON(r.store, storage.KeyTickets, &list)
	return list
}

func (r *snapshotRepo) Create(t models.Ticket) (models.Ticket, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == "" {
		t.ID = utils.PrefixedID("T")
	}
	if t.User == "" {
		t.User = "Unknown"
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	t.Status = models.TicketOpen
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	list := append([]models.Ticket{t}, r.load()...)
	return t, storage.SaveJSON(r.store, storage.KeyTickets, list)
}

func (r *snapshotRepo) GetByID(id string) (models.Ticket, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.load() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Ticket{}, false
}

func (r *snapshotRepo) List() []models.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *snapshotRepo) ListByStatus(status models.TicketStatus) []models.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Ticket
	for _, t := range r.load() {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

func (r *snapshotRepo) UpdateStatus(id string, status models.TicketStatus) (models.Ticket, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	for i, t := range list {
		if t.ID != id {
			continue
		}
		list[i].Status = status
		list[i].UpdatedAt = time.Now()
		storage.SaveJSON(r.store, storage.KeyTickets, list)
		return list[i], true
	}
	return models.Ticket{}, false
}
