package handlers

import (
	"net/http"

	"github.com/Tharak23/bridge-full-stack/client"
	"github.com/Tharak23/bridge-full-stack/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the browsable service catalogue. Listings come from
// the backend; when it is unreachable the handler degrades to the built-in
// sample catalogue so browsing never dead-ends.
type CatalogHandler struct {
	API *client.Client // nil when running offline
}

// NewCatalogHandler returns a handler over the backend catalogue.
func NewCatalogHandler(api *client.Client) *CatalogHandler {
	return &CatalogHandler{API: api}
}

// sampleCatalogue is the offline fallback listing.
func sampleCatalogue(category string) []models.Service {
	all := []models.Service{
		{Slug: "tap-leak", Name: "Tap & Leak Repair", Category: "plumbing", Price: 149, Icon: "construct"},
		{Slug: "drain-clean", Name: "Drain Cleaning", Category: "plumbing", Price: 249, Icon: "water"},
		{Slug: "switch-socket", Name: "Switch & Socket Fix", Category: "electrical", Price: 99, Icon: "flash"},
		{Slug: "fan-install", Name: "Fan Installation", Category: "electrical", Price: 199, Icon: "flash"},
		{Slug: "deep-clean", Name: "Full Home Deep Clean", Category: "cleaning", Price: 999, Icon: "broom"},
		{Slug: "sofa-clean", Name: "Sofa & Carpet Clean", Category: "cleaning", Price: 449, Icon: "broom"},
		{Slug: "ac-service", Name: "AC Service", Category: "appliance_repair", Price: 399, Icon: "snow"},
		{Slug: "wall-paint", Name: "Wall Painting", Category: "painting", Price: 1499, Icon: "brush"},
	}
	if category == "" {
		return all
	}
	var out []models.Service
	for _, s := range all {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// ListServices returns the catalogue for a category.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	category := c.Query("category")

	if h.API != nil {
		services, err := h.API.ServicesByCategory(c.Request.Context(), category)
		if err == nil && len(services) > 0 {
			c.JSON(http.StatusOK, gin.H{"services": services})
			return
		}
		if err != nil {
			getLogger(c).Warn("catalogue fetch failed, serving samples",
				zap.String("category", category), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"services": sampleCatalogue(category), "sample": true})
}

// ProfessionalCount returns how many professionals serve a category.
func (h *CatalogHandler) ProfessionalCount(c *gin.Context) {
	category := c.Query("category")
	if h.API == nil {
		c.JSON(http.StatusOK, gin.H{"count": 0, "sample": true})
		return
	}
	count, err := h.API.ProfessionalCount(c.Request.Context(), category)
	if err != nil {
		getLogger(c).Warn("professional count fetch failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"count": 0, "sample": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
