package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Tharak23/bridge-full-stack/client"
	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"
	"github.com/Tharak23/bridge-full-stack/store/bookings"
	"github.com/Tharak23/bridge-full-stack/store/cart"
	"github.com/Tharak23/bridge-full-stack/store/draft"
	"github.com/Tharak23/bridge-full-stack/store/payments"
	"github.com/Tharak23/bridge-full-stack/store/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFunnel(t *testing.T) *DefaultFunnelService {
	t.Helper()
	store := storage.NewMemoryStore()
	return &DefaultFunnelService{
		Drafts:   draft.NewMailbox(store),
		Bookings: bookings.NewRepository(store),
		Payments: payments.NewRepository(store),
		Cart:     cart.New(store),
		Profiles: profile.NewRepository(store),
	}
}

func acServiceSelect() SelectInput {
	return SelectInput{
		Category:    "appliance_repair",
		Slug:        "ac-service",
		ServiceName: "AC Service",
		BasePrice:   399,
		Tier:        &models.ServiceTier{ID: "standard", Name: "Standard", Price: 399},
		Provider:    &models.ProviderSummary{Name: "Asha Verma", Rating: 4.8},
	}
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestSelectRequiresServiceIdentity(t *testing.T) {
	s := newFunnel(t)

	_, err := s.Select(SelectInput{Category: "plumbing"})
	assert.ErrorIs(t, err, ErrMissingService)

	_, err = s.Select(SelectInput{Slug: "tap-leak"})
	assert.ErrorIs(t, err, ErrMissingService)
}

func TestSelectOpensDraft(t *testing.T) {
	s := newFunnel(t)

	d, err := s.Select(acServiceSelect())
	require.NoError(t, err)
	assert.Equal(t, "ac-service", d.Slug)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, d, current)
}

func TestSelectOverwritesAbandonedFunnel(t *testing.T) {
	s := newFunnel(t)
	s.Select(acServiceSelect())

	other := acServiceSelect()
	other.Slug = "deep-clean"
	other.Category = "cleaning"
	s.Select(other)

	current, _ := s.Current()
	assert.Equal(t, "deep-clean", current.Slug)
}

func TestScheduleWithoutDraft(t *testing.T) {
	s := newFunnel(t)
	_, err := s.Schedule(ScheduleInput{ServiceDate: futureDate(3), Visits: 1})
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestScheduleRejectsBadInput(t *testing.T) {
	s := newFunnel(t)
	s.Select(acServiceSelect())

	_, err := s.Schedule(ScheduleInput{ServiceDate: "next tuesday", Visits: 1})
	assert.ErrorIs(t, err, ErrBadDate)

	_, err = s.Schedule(ScheduleInput{ServiceDate: futureDate(-1), Visits: 1})
	assert.ErrorIs(t, err, ErrPastDate)

	_, err = s.Schedule(ScheduleInput{ServiceDate: futureDate(3), Visits: 0})
	assert.ErrorIs(t, err, ErrBadVisits)

	// A rejected schedule leaves the draft exactly as Select wrote it.
	d, ok := s.Current()
	require.True(t, ok)
	assert.Empty(t, d.ServiceDate)
	assert.Zero(t, d.Total)
}

func TestScheduleAcceptsToday(t *testing.T) {
	s := newFunnel(t)
	s.Select(acServiceSelect())

	_, err := s.Schedule(ScheduleInput{ServiceDate: futureDate(0), Visits: 1})
	assert.NoError(t, err)
}

func TestScheduleComputesTotalFromTier(t *testing.T) {
	s := newFunnel(t)
	s.Select(acServiceSelect())

	d, err := s.Schedule(ScheduleInput{
		ServiceDate:   futureDate(7),
		TimeSlot:      "10-12",
		TimeSlotLabel: "10 AM - 12 PM",
		Visits:        2,
	})
	require.NoError(t, err)
	assert.Equal(t, 798.0, d.Total, "tier price x visits")
	assert.Equal(t, "10 AM - 12 PM", d.TimeSlotLabel)
}

func TestScheduleFallsBackToBasePrice(t *testing.T) {
	s := newFunnel(t)
	input := acServiceSelect()
	input.Tier = nil
	input.BasePrice = 149
	s.Select(input)

	d, err := s.Schedule(ScheduleInput{ServiceDate: futureDate(1), Visits: 3})
	require.NoError(t, err)
	assert.Equal(t, 447.0, d.Total)
}

func TestConfirmFansOut(t *testing.T) {
	s := newFunnel(t)
	s.Profiles.SaveLocation("HSR Layout, Bengaluru")
	s.Select(acServiceSelect())
	s.Schedule(ScheduleInput{ServiceDate: futureDate(7), Visits: 1})

	res, err := s.Confirm()
	require.NoError(t, err)

	b := res.Booking
	assert.True(t, strings.HasPrefix(b.ID, "bk-"))
	assert.True(t, strings.HasPrefix(b.BookingRef, "BR"))
	assert.Equal(t, models.BookingAccepted, b.Status)
	assert.Equal(t, 399.0, b.Total)
	assert.Equal(t, "Asha Verma", b.ProviderName)
	assert.Equal(t, "HSR Layout, Bengaluru", b.LocationText)

	p := res.Payment
	assert.Equal(t, b.ID, p.BookingID)
	assert.Equal(t, models.PaymentPending, p.Status)
	assert.Equal(t, 399.0, p.Amount)

	assert.Equal(t, "₹399", res.TotalDisplay)
	assert.True(t, res.BookingPersisted)
	assert.True(t, res.PaymentPersisted)

	require.Len(t, s.Bookings.List(), 1)
	require.Len(t, s.Payments.List(), 1)
}

func TestConfirmConsumesDraftExactlyOnce(t *testing.T) {
	s := newFunnel(t)
	s.Select(acServiceSelect())
	s.Schedule(ScheduleInput{ServiceDate: futureDate(7), Visits: 1})

	_, err := s.Confirm()
	require.NoError(t, err)

	_, err = s.Confirm()
	assert.ErrorIs(t, err, ErrNoDraft, "a replayed confirm must not duplicate the booking")
	assert.Len(t, s.Bookings.List(), 1)
}

func TestConfirmWithoutScheduleUsesTierPrice(t *testing.T) {
	s := newFunnel(t)
	s.Select(acServiceSelect())

	res, err := s.Confirm()
	require.NoError(t, err)
	assert.Equal(t, 399.0, res.Booking.Total)
}

func TestAbandonDiscardsDraft(t *testing.T) {
	s := newFunnel(t)
	s.Select(acServiceSelect())

	s.Abandon()
	_, ok := s.Current()
	assert.False(t, ok)
	_, err := s.Confirm()
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := newFunnel(t)
	_, err := s.CheckoutCart()
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutConvertsEveryLine(t *testing.T) {
	s := newFunnel(t)
	s.Cart.Add(models.CartItem{
		ServiceSlug: "tap-leak", ServiceCategory: "plumbing",
		ServiceName: "Tap & Leak Repair", Price: 149, Quantity: 2,
	})
	s.Cart.Add(models.CartItem{
		ServiceSlug: "switch-socket", ServiceCategory: "electrical",
		ServiceName: "Switch & Socket Fix", Price: 99, Quantity: 1,
	})

	res, err := s.CheckoutCart()
	require.NoError(t, err)

	require.Len(t, res.Bookings, 2)
	assert.Equal(t, 397.0, res.Total) // 2x149 + 99
	assert.Equal(t, "₹397", res.TotalDisplay)
	assert.True(t, res.AllPersisted)

	assert.Equal(t, 2, res.Bookings[0].Visits, "quantity carries over as visits")
	for _, b := range res.Bookings {
		assert.Equal(t, models.BookingAccepted, b.Status)
	}

	assert.Empty(t, s.Cart.Items(), "checkout clears the cart")
	assert.Len(t, s.Payments.List(), 2)
}

func TestReconcileOfflineUsesLocal(t *testing.T) {
	s := newFunnel(t)
	s.Bookings.Add(models.Booking{ServiceName: "AC Service", Status: models.BookingAccepted})

	got, err := s.Reconcile(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AC Service", got[0].ServiceName)
}

func TestReconcileMergesLocalWins(t *testing.T) {
	s := newFunnel(t)
	local, _ := s.Bookings.Add(models.Booking{
		ID:          "bk-dup",
		ServiceName: "AC Service",
		ServiceDate: "2026-09-10",
		Status:      models.BookingAccepted,
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remote := []models.Booking{
			{ID: "bk-dup", ServiceName: "Stale Remote Copy", ServiceDate: "2026-09-10"},
			{ID: "bk-late", ServiceName: "Wall Painting", ServiceDate: "2026-09-20"},
			{ID: "bk-dateless", ServiceName: "Old Import"},
		}
		json.NewEncoder(w).Encode(remote)
	}))
	defer srv.Close()
	s.API = client.New(srv.URL, nil, nil)

	got, err := s.Reconcile(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "bk-late", got[0].ID, "latest service date first")
	assert.Equal(t, local.ID, got[1].ID)
	assert.Equal(t, "AC Service", got[1].ServiceName, "local copy wins over the remote duplicate")
	assert.Equal(t, "bk-dateless", got[2].ID, "entries with no usable date sort last")
}

func TestReconcileDegradesOnBackendFailure(t *testing.T) {
	s := newFunnel(t)
	s.Bookings.Add(models.Booking{ServiceName: "AC Service", Status: models.BookingAccepted})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	s.API = client.New(srv.URL, nil, nil)

	got, err := s.Reconcile(context.Background())
	require.NoError(t, err, "a backend failure degrades to the local list")
	assert.Len(t, got, 1)
}
