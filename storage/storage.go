// Package storage provides the key-value snapshot store backing every local
// Bridge store: one JSON document per key, best-effort durability, no
// transactions. Backends exist for files, memory, Redis and Mongo so the same
// store logic runs in a desktop client, in tests, or server-side.
package storage

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Well-known snapshot keys. Compatible implementations must preserve these
// names and the JSON shapes stored under them.
const (
	KeyCart            = "cart"
	KeyHireLocation    = "hire-location"
	KeyBookings        = "my-bookings"
	KeyPayments        = "payments"
	KeyHireProfile     = "hire-profile"
	KeyProviderProfile = "provider-profile"
	KeyServiceRequests = "service-requests"
	KeyTickets         = "support-tickets"
	KeyOnboardDraft    = "service-onboard-draft"
	KeyBookingDraft    = "booking-draft" // session-scoped
)

// Store is a key-value snapshot store.
type Store interface {
	// Get returns the raw value for key and whether it was present.
	Get(key string) ([]byte, bool)
	// Set stores value under key, replacing any prior value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// LoadJSON decodes the value stored under key into out. A missing key or an
// undecodable value leaves out untouched and returns false; it never fails.
func LoadJSON(s Store, key string, out any) bool {
	raw, ok := s.Get(key)
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		zap.L().Warn("discarding unreadable snapshot", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// SaveJSON encodes v and stores it under key, reporting success. Storage
// failures (quota, unavailable backend) are swallowed: callers that care
// about durability must check the returned flag.
func SaveJSON(s Store, key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		zap.L().Warn("snapshot encode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := s.Set(key, raw); err != nil {
		zap.L().Warn("snapshot write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// LoadString returns the plain string stored under key, or fallback.
func LoadString(s Store, key, fallback string) string {
	raw, ok := s.Get(key)
	if !ok {
		return fallback
	}
	return string(raw)
}

// SaveString stores a plain string under key, reporting success.
func SaveString(s Store, key, value string) bool {
	if err := s.Set(key, []byte(value)); err != nil {
		zap.L().Warn("snapshot write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
