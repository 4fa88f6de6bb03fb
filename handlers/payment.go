package handlers

import (
	"net/http"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/store/payments"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the payment records collection.
type PaymentHandler struct {
	Repo payments.Repository
}

// NewPaymentHandler returns a handler over the payments store.
func NewPaymentHandler(repo payments.Repository) *PaymentHandler {
	return &PaymentHandler{Repo: repo}
}

// ListPayments returns all payments, optionally filtered by booking id.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	if bookingID := c.Query("bookingId"); bookingID != "" {
		c.JSON(http.StatusOK, gin.H{"payments": h.Repo.ListByBooking(bookingID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": h.Repo.List()})
}

// UpdateStatusByBooking moves every payment of a booking to the given
// status, e.g. marking the single pending payment Paid.
func (h *PaymentHandler) UpdateStatusByBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")
	var input struct {
		Status models.PaymentStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Status != models.PaymentPending && input.Status != models.PaymentPaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment status"})
		return
	}
	changed := h.Repo.UpdateStatusByBooking(bookingID, input.Status)
	c.JSON(http.StatusOK, gin.H{"updated": changed})
}
