package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Tharak23/bridge-full-stack/models"

	"github.com/google/uuid"
)

// CurrentUser reads the signed-in account's profile.
func (c *Client) CurrentUser(ctx context.Context) (models.UserProfile, error) {
	var out models.UserProfile
	err := c.do(ctx, requestSpec{method: http.MethodGet, path: "/api/users/me", retryable: true}, &out)
	return out, err
}

// SubmitHireOnboarding submits the hire-side onboarding form.
func (c *Client) SubmitHireOnboarding(ctx context.Context, form map[string]any) error {
	return c.do(ctx, requestSpec{method: http.MethodPost, path: "/api/onboarding/hire", body: form}, nil)
}

// SubmitProviderOnboarding submits the completed provider onboarding wizard.
func (c *Client) SubmitProviderOnboarding(ctx context.Context, draft models.OnboardingDraft) error {
	return c.do(ctx, requestSpec{method: http.MethodPost, path: "/api/onboarding/provider", body: draft}, nil)
}

// ServicesByCategory lists the backend catalogue for a category.
func (c *Client) ServicesByCategory(ctx context.Context, category string) ([]models.Service, error) {
	var out []models.Service
	path := "/api/services?category=" + url.QueryEscape(category)
	err := c.do(ctx, requestSpec{method: http.MethodGet, path: path, retryable: true}, &out)
	return out, err
}

// ProfessionalCount returns how many professionals serve a category.
func (c *Client) ProfessionalCount(ctx context.Context, category string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	path := "/api/professionals/count?category=" + url.QueryEscape(category)
	err := c.do(ctx, requestSpec{method: http.MethodGet, path: path, retryable: true}, &out)
	return out.Count, err
}

// CreateBooking submits a booking to the backend. The call carries a
// client-generated idempotency key and is never retried: a naive retry
// would duplicate the booking server-side.
func (c *Client) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	var out models.Booking
	spec := requestSpec{
		method:         http.MethodPost,
		path:           "/api/bookings",
		body:           b,
		idempotencyKey: uuid.New().String(),
	}
	err := c.do(ctx, spec, &out)
	return out, err
}

// MyBookings lists the signed-in user's bookings as the backend knows them.
func (c *Client) MyBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	err := c.do(ctx, requestSpec{method: http.MethodGet, path: "/api/bookings/my", retryable: true}, &out)
	return out, err
}

// ProviderFeed lists bookings offered to the signed-in provider.
func (c *Client) ProviderFeed(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	err := c.do(ctx, requestSpec{method: http.MethodGet, path: "/api/bookings/feed", retryable: true}, &out)
	return out, err
}

// AcceptBooking accepts a booking on behalf of the provider.
func (c *Client) AcceptBooking(ctx context.Context, id string) error {
	return c.do(ctx, requestSpec{method: http.MethodPost, path: "/api/bookings/" + url.PathEscape(id) + "/accept"}, nil)
}

// RejectBooking rejects a booking on behalf of the provider.
func (c *Client) RejectBooking(ctx context.Context, id string) error {
	return c.do(ctx, requestSpec{method: http.MethodPost, path: "/api/bookings/" + url.PathEscape(id) + "/reject"}, nil)
}

// UpdateBookingStatus moves a backend booking to the given status.
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	body := map[string]any{"status": status}
	return c.do(ctx, requestSpec{method: http.MethodPut, path: "/api/bookings/" + url.PathEscape(id) + "/status", body: body}, nil)
}

// PatchProviderProfile updates provider profile fields server-side.
func (c *Client) PatchProviderProfile(ctx context.Context, patch models.Profile) error {
	return c.do(ctx, requestSpec{method: http.MethodPatch, path: "/api/providers/me", body: patch}, nil)
}
