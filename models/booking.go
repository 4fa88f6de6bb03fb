package models

import "time"

// BookingStatus is the lifecycle state of a confirmed booking.
type BookingStatus string

const (
	BookingAccepted  BookingStatus = "accepted"
	BookingOngoing   BookingStatus = "ongoing"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRejected  BookingStatus = "rejected"
)

// Terminal reports whether no further status transitions are allowed.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingCompleted, BookingCancelled, BookingRejected:
		return true
	}
	return false
}

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingAccepted, BookingOngoing, BookingCompleted, BookingCancelled, BookingRejected:
		return true
	}
	return false
}

// ServiceTier is the pricing tier the user picked for a service.
type ServiceTier struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"deliveryDays,omitempty"`
	Revisions    int     `json:"revisions,omitempty"`
}

// ProviderSummary is the display snapshot of the provider attached to a draft.
type ProviderSummary struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating,omitempty"`
	Reviews int     `json:"reviews,omitempty"`
	Badge   string  `json:"badge,omitempty"`
}

// BookingDraft carries in-progress booking selections between the funnel
// steps (select -> schedule -> confirm). It lives in a single-slot mailbox
// and is consumed exactly once on confirmation.
type BookingDraft struct {
	Category      string           `json:"category"`
	Slug          string           `json:"slug"`
	ServiceName   string           `json:"serviceName"`
	BasePrice     float64          `json:"basePrice"`
	Tier          *ServiceTier     `json:"tier,omitempty"`
	Provider      *ProviderSummary `json:"provider,omitempty"`
	ServiceDate   string           `json:"serviceDate,omitempty"` // "2006-01-02", no time component
	TimeSlot      string           `json:"timeSlot,omitempty"`
	TimeSlotLabel string           `json:"timeSlotLabel,omitempty"`
	Visits        int              `json:"visits,omitempty"`
	Total         float64          `json:"total,omitempty"`
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID            string        `json:"id"`         // internal identifier, immutable
	BookingRef    string        `json:"bookingRef"` // human-facing reference, distinct format from ID
	ServiceName   string        `json:"serviceName"`
	Category      string        `json:"category"`
	Tier          *ServiceTier  `json:"tier,omitempty"`
	ServiceDate   string        `json:"serviceDate,omitempty"`
	TimeSlotLabel string        `json:"timeSlotLabel,omitempty"`
	Visits        int           `json:"visits,omitempty"`
	Total         float64       `json:"total"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	ProviderName  string        `json:"providerName,omitempty"`
	LocationText  string        `json:"locationText,omitempty"`
}

// BookingPatch carries optional field updates for an existing booking.
// Nil fields are left untouched.
type BookingPatch struct {
	ServiceDate   *string  `json:"serviceDate,omitempty"`
	TimeSlotLabel *string  `json:"timeSlotLabel,omitempty"`
	Visits        *int     `json:"visits,omitempty"`
	Total         *float64 `json:"total,omitempty"`
	ProviderName  *string  `json:"providerName,omitempty"`
	LocationText  *string  `json:"locationText,omitempty"`
}
