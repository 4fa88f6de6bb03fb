package handlers

import (
	"errors"
	"net/http"

	"github.com/Tharak23/bridge-full-stack/client"
	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/services/onboarding"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OnboardHandler exposes the provider onboarding wizard draft and the
// one-shot hire onboarding form.
type OnboardHandler struct {
	Svc onboarding.Service
	API *client.Client // nil when running offline
}

// NewOnboardHandler returns a handler over the onboarding service.
func NewOnboardHandler(svc onboarding.Service, api *client.Client) *OnboardHandler {
	return &OnboardHandler{Svc: svc, API: api}
}

// GetDraft returns the current wizard state.
func (h *OnboardHandler) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Snapshot())
}

// SaveDraft replaces the wizard state. The draft is flushed on every field
// change, so clients call this per keystroke batch, not per step.
func (h *OnboardHandler) SaveDraft(c *gin.Context) {
	var state models.OnboardingDraft
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	persisted := h.Svc.Save(state)
	if !persisted {
		getLogger(c).Warn("onboarding draft snapshot write failed")
	}
	c.JSON(http.StatusOK, gin.H{"persisted": persisted})
}

// Submit validates the wizard and sends it to the backend; on success the
// persisted draft is deleted.
func (h *OnboardHandler) Submit(c *gin.Context) {
	err := h.Svc.Submit(c.Request.Context())
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"submitted": true})
		return
	}

	var ve *onboarding.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		return
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": "backend rejected onboarding", "details": apiErr.Body})
		return
	}
	getLogger(c).Error("onboarding submission failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "onboarding submission failed"})
}

// SubmitHire forwards the hire-side onboarding form to the backend. Unlike
// the provider wizard there is no local draft; the form is submitted as-is.
func (h *OnboardHandler) SubmitHire(c *gin.Context) {
	if h.API == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "onboarding requires a backend connection"})
		return
	}
	var form map[string]any
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.API.SubmitHireOnboarding(c.Request.Context(), form); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": "backend rejected onboarding", "details": apiErr.Body})
			return
		}
		getLogger(c).Error("hire onboarding submission failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "onboarding submission failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submitted": true})
}
