package handlers

import (
	"errors"
	"net/http"

	"github.com/Tharak23/bridge-full-stack/client"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler proxies the provider-side job flow to the backend: the
// offered-bookings feed and accept/reject decisions. These never touch local
// stores; the backend owns provider-side state.
type ProviderHandler struct {
	API *client.Client // nil when running offline
}

// NewProviderHandler returns a handler over the backend provider flow.
func NewProviderHandler(api *client.Client) *ProviderHandler {
	return &ProviderHandler{API: api}
}

func backendError(c *gin.Context, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": "backend request failed", "details": apiErr.Body})
		return
	}
	getLogger(c).Error("backend unreachable", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "backend unreachable"})
}

// Feed lists bookings offered to the signed-in provider.
func (h *ProviderHandler) Feed(c *gin.Context) {
	if h.API == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "provider feed requires a backend connection"})
		return
	}
	feed, err := h.API.ProviderFeed(c.Request.Context())
	if err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": feed})
}

// Accept takes an offered booking on behalf of the provider.
func (h *ProviderHandler) Accept(c *gin.Context) {
	if h.API == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "accepting requires a backend connection"})
		return
	}
	if err := h.API.AcceptBooking(c.Request.Context(), c.Param("id")); err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accepted": true})
}

// Reject declines an offered booking on behalf of the provider.
func (h *ProviderHandler) Reject(c *gin.Context) {
	if h.API == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "rejecting requires a backend connection"})
		return
	}
	if err := h.API.RejectBooking(c.Request.Context(), c.Param("id")); err != nil {
		backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejected": true})
}
