package booking

import (
	"time"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/utils"

	"go.uber.org/zap"
)

// CheckoutCart turns every cart line into an accepted booking with a pending
// payment and clears the cart afterwards. Lines are processed in cart order;
// a snapshot-write failure on one line does not stop the rest.
func (s *DefaultFunnelService) CheckoutCart() (*CheckoutResult, error) {
	items := s.Cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var location string
	if s.Profiles != nil {
		location = s.Profiles.Location()
	}

	result := &CheckoutResult{AllPersisted: true}
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total := item.Price * float64(qty)

		created, bookingPersisted := s.Bookings.Add(models.Booking{
			ID:           utils.PrefixedID("bk"),
			BookingRef:   utils.NewBookingRef(),
			ServiceName:  item.ServiceName,
			Category:     item.ServiceCategory,
			Visits:       qty,
			Total:        total,
			Status:       models.BookingAccepted,
			CreatedAt:    time.Now(),
			LocationText: location,
		})
		_, paymentPersisted := s.Payments.Add(models.Payment{
			BookingID:   created.ID,
			ServiceName: created.ServiceName,
			Location:    location,
			Amount:      total,
			Status:      models.PaymentPending,
		})
		if !bookingPersisted || !paymentPersisted {
			result.AllPersisted = false
			s.logger().Warn("checkout line not fully persisted",
				zap.String("bookingId", created.ID),
				zap.Bool("booking", bookingPersisted),
				zap.Bool("payment", paymentPersisted))
		}

		result.Bookings = append(result.Bookings, created)
		result.Total += total
	}
	result.TotalDisplay = utils.Currency(result.Total)

	s.Cart.Clear()
	return result, nil
}
