package handlers

import (
	"net/http"

	"github.com/Tharak23/bridge-full-stack/client"
	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/store/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler exposes the cached hire/provider profiles and the hire
// user's chosen location.
type ProfileHandler struct {
	Repo profile.Repository
	API  *client.Client // nil when running offline
}

// NewProfileHandler returns a handler over the profile store.
func NewProfileHandler(repo profile.Repository, api *client.Client) *ProfileHandler {
	return &ProfileHandler{Repo: repo, API: api}
}

// CurrentUser returns the backend's view of the signed-in account.
func (h *ProfileHandler) CurrentUser(c *gin.Context) {
	if h.API == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "account lookup requires a backend connection"})
		return
	}
	user, err := h.API.CurrentUser(c.Request.Context())
	if err != nil {
		getLogger(c).Warn("account lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "account lookup failed"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetHireProfile returns the cached hire profile.
func (h *ProfileHandler) GetHireProfile(c *gin.Context) {
	p := h.Repo.Hire()
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hire profile stored"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// SaveHireProfile shallow-merges fields into the cached hire profile.
func (h *ProfileHandler) SaveHireProfile(c *gin.Context) {
	var patch models.Profile
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"persisted": h.Repo.SaveHire(patch)})
}

// GetProviderProfile returns the cached provider profile.
func (h *ProfileHandler) GetProviderProfile(c *gin.Context) {
	p := h.Repo.Provider()
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no provider profile stored"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// SaveProviderProfile merges fields into the cached provider profile and
// pushes them to the backend best-effort: a backend failure keeps the local
// cache and reports the degraded sync.
func (h *ProfileHandler) SaveProviderProfile(c *gin.Context) {
	var patch models.Profile
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	persisted := h.Repo.SaveProvider(patch)

	synced := false
	if h.API != nil {
		if err := h.API.PatchProviderProfile(c.Request.Context(), patch); err != nil {
			getLogger(c).Warn("provider profile sync failed", zap.Error(err))
		} else {
			synced = true
		}
	}
	c.JSON(http.StatusOK, gin.H{"persisted": persisted, "synced": synced})
}

// GetLocation returns the hire user's chosen location.
func (h *ProfileHandler) GetLocation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"location": h.Repo.Location()})
}

// SaveLocation stores the hire user's chosen location.
func (h *ProfileHandler) SaveLocation(c *gin.Context) {
	var input struct {
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"persisted": h.Repo.SaveLocation(input.Location)})
}
