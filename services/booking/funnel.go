// Package booking drives the hire-side checkout funnel: a service + tier
// selection, a schedule step, and a confirmation that fans out into the
// bookings and payments stores. The in-progress draft lives in a single-slot
// mailbox and is consumed exactly once.
package booking

import (
	"time"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Select opens the funnel with the chosen service and tier, overwriting any
// draft left behind by an abandoned funnel.
func (s *DefaultFunnelService) Select(input SelectInput) (models.BookingDraft, error) {
	if input.Category == "" || input.Slug == "" {
		return models.BookingDraft{}, ErrMissingService
	}

	d := models.BookingDraft{
		Category:    input.Category,
		Slug:        input.Slug,
		ServiceName: input.ServiceName,
		BasePrice:   input.BasePrice,
		Tier:        input.Tier,
		Provider:    input.Provider,
	}
	s.Drafts.Put(d)
	return d, nil
}

// Schedule validates and merges the date selection into the draft. All
// validation happens before the mailbox is touched so a rejected input
// leaves no partial state.
func (s *DefaultFunnelService) Schedule(input ScheduleInput) (models.BookingDraft, error) {
	d, ok := s.Drafts.Peek()
	if !ok {
		return models.BookingDraft{}, ErrNoDraft
	}

	serviceDate, err := time.ParseInLocation(dateLayout, input.ServiceDate, time.Local)
	if err != nil {
		return models.BookingDraft{}, ErrBadDate
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if serviceDate.Before(today) {
		return models.BookingDraft{}, ErrPastDate
	}
	if input.Visits < 1 {
		return models.BookingDraft{}, ErrBadVisits
	}

	pricePer := d.BasePrice
	if d.Tier != nil {
		pricePer = d.Tier.Price
	}

	d.ServiceDate = input.ServiceDate
	d.TimeSlot = input.TimeSlot
	d.TimeSlotLabel = input.TimeSlotLabel
	d.Visits = input.Visits
	d.Total = pricePer * float64(input.Visits)
	s.Drafts.Put(d)
	return d, nil
}

// Current returns the in-progress draft without consuming it.
func (s *DefaultFunnelService) Current() (models.BookingDraft, bool) {
	return s.Drafts.Peek()
}

// Abandon discards the in-progress draft.
func (s *DefaultFunnelService) Abandon() {
	s.Drafts.Clear()
}

// Confirm consumes the draft and fans out into exactly one accepted booking
// and one pending payment. Taking the draft clears the mailbox first, so a
// replayed confirm cannot duplicate the booking.
func (s *DefaultFunnelService) Confirm() (*ConfirmResult, error) {
	d, ok := s.Drafts.Take()
	if !ok {
		return nil, ErrNoDraft
	}

	total := d.Total
	if total == 0 && d.Tier != nil {
		total = d.Tier.Price
	}

	b := models.Booking{
		ID:            utils.PrefixedID("bk"),
		BookingRef:    utils.NewBookingRef(),
		ServiceName:   d.ServiceName,
		Category:      d.Category,
		Tier:          d.Tier,
		ServiceDate:   d.ServiceDate,
		TimeSlotLabel: d.TimeSlotLabel,
		Visits:        d.Visits,
		Total:         total,
		Status:        models.BookingAccepted,
		CreatedAt:     time.Now(),
	}
	if d.Provider != nil {
		b.ProviderName = d.Provider.Name
	}
	if s.Profiles != nil {
		b.LocationText = s.Profiles.Location()
	}

	created, bookingPersisted := s.Bookings.Add(b)

	payment, paymentPersisted := s.Payments.Add(models.Payment{
		BookingID:   created.ID,
		ServiceName: created.ServiceName,
		Location:    created.LocationText,
		Amount:      created.Total,
		Status:      models.PaymentPending,
	})

	// Two sequential writes, no rollback: report a booking that lost its
	// payment record distinctly from a total storage failure.
	switch {
	case bookingPersisted && !paymentPersisted:
		s.logger().Error("payment record not persisted for confirmed booking",
			zap.String("bookingId", created.ID))
	case !bookingPersisted:
		s.logger().Warn("booking confirmation not persisted",
			zap.String("bookingId", created.ID))
	}

	return &ConfirmResult{
		Booking:          created,
		Payment:          payment,
		TotalDisplay:     utils.Currency(created.Total),
		BookingPersisted: bookingPersisted,
		PaymentPersisted: paymentPersisted,
	}, nil
}
