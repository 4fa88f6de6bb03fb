package handlers

import (
	"net/http"
	"strconv"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/store/cart"
	"github.com/Tharak23/bridge-full-stack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler exposes the hire user's cart.
type CartHandler struct {
	Cart *cart.Cart
}

// NewCartHandler returns a handler over the given cart.
func NewCartHandler(c *cart.Cart) *CartHandler {
	return &CartHandler{Cart: c}
}

func (h *CartHandler) snapshot() gin.H {
	items := h.Cart.Items()
	total := h.Cart.Total()
	return gin.H{
		"items":        items,
		"total":        total,
		"totalDisplay": utils.Currency(total),
		"count":        h.Cart.Count(),
	}
}

// GetCart returns the current cart snapshot.
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// AddItem adds a line item, aggregating with an existing line of the same
// service identity.
func (h *CartHandler) AddItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if item.ServiceSlug == "" || item.ServiceCategory == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceSlug and serviceCategory are required"})
		return
	}
	if !h.Cart.Add(item) {
		getLogger(c).Warn("cart snapshot write failed", zap.String("slug", item.ServiceSlug))
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// RemoveItem drops the line at the index the user clicked.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart index"})
		return
	}
	h.Cart.Remove(index)
	c.JSON(http.StatusOK, h.snapshot())
}

// UpdateQuantity sets the quantity of the line at index. A quantity below
// one removes the line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart index"})
		return
	}
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.Cart.SetQuantity(index, input.Quantity)
	c.JSON(http.StatusOK, h.snapshot())
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, h.snapshot())
}
