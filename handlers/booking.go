package handlers

import (
	"errors"
	"net/http"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/services/booking"
	"github.com/Tharak23/bridge-full-stack/store/bookings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking funnel and the bookings collection.
type BookingHandler struct {
	Funnel booking.FunnelService
	Repo   bookings.Repository
	logger *zap.Logger
}

// NewBookingHandler returns a handler over the funnel and bookings store.
func NewBookingHandler(funnel booking.FunnelService, repo bookings.Repository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Funnel: funnel, Repo: repo, logger: logger}
}

// funnelStatus maps funnel errors to HTTP statuses: a missing draft is a
// dead-end the client must recover from, everything else is bad input.
func funnelStatus(err error) int {
	if errors.Is(err, booking.ErrNoDraft) {
		return http.StatusNotFound
	}
	var fe *booking.FunnelError
	if errors.As(err, &fe) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Select opens the funnel with a service + tier choice.
func (h *BookingHandler) Select(c *gin.Context) {
	var input booking.SelectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	d, err := h.Funnel.Select(input)
	if err != nil {
		c.JSON(funnelStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

// Schedule merges the date/time/visits choice into the draft.
func (h *BookingHandler) Schedule(c *gin.Context) {
	var input booking.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	d, err := h.Funnel.Schedule(input)
	if err != nil {
		c.JSON(funnelStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

// CurrentDraft returns the in-progress draft so a reloaded client can
// resume the funnel.
func (h *BookingHandler) CurrentDraft(c *gin.Context) {
	d, ok := h.Funnel.Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no booking in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

// AbandonDraft discards the in-progress draft.
func (h *BookingHandler) AbandonDraft(c *gin.Context) {
	h.Funnel.Abandon()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// Confirm consumes the draft and returns the created booking + payment.
func (h *BookingHandler) Confirm(c *gin.Context) {
	result, err := h.Funnel.Confirm()
	if err != nil {
		c.JSON(funnelStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Checkout converts the cart into bookings.
func (h *BookingHandler) Checkout(c *gin.Context) {
	result, err := h.Funnel.CheckoutCart()
	if err != nil {
		c.JSON(funnelStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListBookings returns the reconciled union of local and backend bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	list, err := h.Funnel.Reconcile(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// GetBooking returns one booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	b, ok := h.Repo.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateStatus applies a lifecycle transition to a booking.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Repo.UpdateStatus(id, input.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, b)
	case errors.Is(err, bookings.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, bookings.ErrTerminalStatus), errors.Is(err, bookings.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// PatchBooking applies partial field updates to a booking.
func (h *BookingHandler) PatchBooking(c *gin.Context) {
	id := c.Param("id")
	var patch models.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, ok := h.Repo.Patch(id, patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}
