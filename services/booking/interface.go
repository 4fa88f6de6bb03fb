package booking

import (
	"context"

	"github.com/Tharak23/bridge-full-stack/client"
	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/store/bookings"
	"github.com/Tharak23/bridge-full-stack/store/cart"
	"github.com/Tharak23/bridge-full-stack/store/draft"
	"github.com/Tharak23/bridge-full-stack/store/payments"
	"github.com/Tharak23/bridge-full-stack/store/profile"

	"go.uber.org/zap"
)

// SelectInput is the service + tier choice opening a booking funnel.
type SelectInput struct {
	Category    string                  `json:"category"`
	Slug        string                  `json:"slug"`
	ServiceName string                  `json:"serviceName"`
	BasePrice   float64                 `json:"basePrice"`
	Tier        *models.ServiceTier     `json:"tier,omitempty"`
	Provider    *models.ProviderSummary `json:"provider,omitempty"`
}

// ScheduleInput is the date/time/visits choice of the second funnel step.
type ScheduleInput struct {
	ServiceDate   string `json:"serviceDate"` // "2006-01-02"
	TimeSlot      string `json:"timeSlot"`
	TimeSlotLabel string `json:"timeSlotLabel"`
	Visits        int    `json:"visits"`
}

// ConfirmResult is the fan-out of a confirmed draft: one booking plus one
// pending payment. The persisted flags report snapshot durability; a booking
// that persisted while its payment did not is a partial failure, logged but
// not rolled back.
type ConfirmResult struct {
	Booking          models.Booking `json:"booking"`
	Payment          models.Payment `json:"payment"`
	TotalDisplay     string         `json:"totalDisplay"`
	BookingPersisted bool           `json:"bookingPersisted"`
	PaymentPersisted bool           `json:"paymentPersisted"`
}

// CheckoutResult is the outcome of converting the cart into bookings.
type CheckoutResult struct {
	Bookings     []models.Booking `json:"bookings"`
	Total        float64          `json:"total"`
	TotalDisplay string           `json:"totalDisplay"`
	AllPersisted bool             `json:"allPersisted"`
}

// FunnelService drives the three-step booking funnel and the cart checkout,
// and reconciles local bookings with the backend's view.
type FunnelService interface {
	// Select opens (or restarts) the funnel, overwriting any prior draft.
	Select(input SelectInput) (models.BookingDraft, error)
	// Schedule merges date, time slot and visit count into the draft and
	// recomputes the total. Past dates are rejected before any write.
	Schedule(input ScheduleInput) (models.BookingDraft, error)
	// Current returns the in-progress draft without consuming it.
	Current() (models.BookingDraft, bool)
	// Abandon discards the in-progress draft.
	Abandon()
	// Confirm consumes the draft exactly once and fans out into a booking
	// and a pending payment. A second confirm finds no draft.
	Confirm() (*ConfirmResult, error)
	// CheckoutCart converts every cart line into an accepted booking with a
	// pending payment, then clears the cart.
	CheckoutCart() (*CheckoutResult, error)
	// Reconcile unions local and backend bookings, deduplicated by id with
	// local precedence, sorted by best-available date descending.
	Reconcile(ctx context.Context) ([]models.Booking, error)
}

// DefaultFunnelService implements FunnelService.
type DefaultFunnelService struct {
	Drafts   *draft.Mailbox
	Bookings bookings.Repository
	Payments payments.Repository
	Cart     *cart.Cart
	Profiles profile.Repository
	API      *client.Client // nil when running offline
	Logger   *zap.Logger
}

func (s *DefaultFunnelService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}
