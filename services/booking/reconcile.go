package booking

import (
	"context"
	"sort"
	"time"

	"github.com/Tharak23/bridge-full-stack/models"

	"go.uber.org/zap"
)

// Reconcile merges locally created bookings with the backend's view of the
// user's bookings. Duplicates share an id and resolve local-wins; the result
// is ordered by the best-available date descending with dateless entries
// last. A backend failure degrades to the local list.
func (s *DefaultFunnelService) Reconcile(ctx context.Context) ([]models.Booking, error) {
	local := s.Bookings.List()

	var remote []models.Booking
	if s.API != nil {
		var err error
		remote, err = s.API.MyBookings(ctx)
		if err != nil {
			s.logger().Warn("backend booking list unavailable, using local only", zap.Error(err))
			remote = nil
		}
	}

	seen := make(map[string]bool, len(local))
	merged := make([]models.Booking, 0, len(local)+len(remote))
	for _, b := range local {
		seen[b.ID] = true
		merged = append(merged, b)
	}
	for _, b := range remote {
		if b.ID != "" && seen[b.ID] {
			continue
		}
		merged = append(merged, b)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		ti, iOK := bestDate(merged[i])
		tj, jOK := bestDate(merged[j])
		if iOK != jOK {
			return iOK // dated entries before dateless ones
		}
		return ti.After(tj)
	})
	return merged, nil
}

// bestDate picks the sort key for a booking: the service date when present
// and parseable, otherwise the creation time.
func bestDate(b models.Booking) (time.Time, bool) {
	if b.ServiceDate != "" {
		if t, err := time.ParseInLocation(dateLayout, b.ServiceDate, time.Local); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, b.ServiceDate); err == nil {
			return t, true
		}
	}
	if !b.CreatedAt.IsZero() {
		return b.CreatedAt, true
	}
	return time.Time{}, false
}
