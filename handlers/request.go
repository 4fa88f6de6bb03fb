package handlers

import (
	"net/http"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/store/requests"

	"github.com/gin-gonic/gin"
)

// RequestHandler exposes custom service requests and their applicant flow.
type RequestHandler struct {
	Repo requests.Repository
}

// NewRequestHandler returns a handler over the requests store.
func NewRequestHandler(repo requests.Repository) *RequestHandler {
	return &RequestHandler{Repo: repo}
}

// CreateRequest posts a new custom work request.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}
	created, _ := h.Repo.Create(req)
	c.JSON(http.StatusCreated, created)
}

// ListRequests returns requests: all, only open, or one user's.
func (h *RequestHandler) ListRequests(c *gin.Context) {
	if c.Query("open") == "true" {
		c.JSON(http.StatusOK, gin.H{"requests": h.Repo.ListOpen()})
		return
	}
	if userID := c.Query("userId"); userID != "" {
		c.JSON(http.StatusOK, gin.H{"requests": h.Repo.ListByUser(userID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": h.Repo.List()})
}

// GetRequest returns one request by id.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	req, ok := h.Repo.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// Apply records a provider's application. Reapplying is a no-op.
func (h *RequestHandler) Apply(c *gin.Context) {
	var applicant models.Applicant
	if err := c.ShouldBindJSON(&applicant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if applicant.ProviderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "providerId is required"})
		return
	}
	req, ok := h.Repo.AddApplicant(c.Param("id"), applicant)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// Assign fixes the request's provider and closes it to new applicants.
func (h *RequestHandler) Assign(c *gin.Context) {
	var input struct {
		ProviderID   string `json:"providerId"`
		ProviderName string `json:"providerName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.ProviderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "providerId is required"})
		return
	}
	req, ok := h.Repo.Assign(c.Param("id"), input.ProviderID, input.ProviderName)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, req)
}
