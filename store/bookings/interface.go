package bookings

import (
	"errors"

	"github.com/Tharak23/bridge-full-stack/models"
)

var (
	// ErrNotFound is returned when no booking carries the given id.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidStatus is returned for an unknown target status.
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrTerminalStatus is returned when transitioning a completed,
	// cancelled or rejected booking.
	ErrTerminalStatus = errors.New("booking is in a terminal status")
	// ErrInvalidTransition is returned for a non-terminal but disallowed
	// transition, e.g. ongoing -> rejected.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// Repository is the persisted collection of confirmed bookings. The
// collection's canonical order is most-recent-first; consumers needing a
// different order must sort explicitly.
type Repository interface {
	// Add prepends a booking, assigning an id when absent, and returns the
	// stored copy together with the snapshot-write flag.
	Add(b models.Booking) (models.Booking, bool)
	// GetByID returns the booking with the given id, if any.
	GetByID(id string) (models.Booking, bool)
	// UpdateStatus applies a status transition, enforcing the lifecycle
	// state machine. Terminal bookings reject every transition.
	UpdateStatus(id string, status models.BookingStatus) (models.Booking, error)
	// Patch applies non-nil fields of patch to the booking.
	Patch(id string, patch models.BookingPatch) (models.Booking, bool)
	// List returns all bookings, most recent first.
	List() []models.Booking
}
