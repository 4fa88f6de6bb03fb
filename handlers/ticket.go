package handlers

import (
	"net/http"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/store/tickets"

	"github.com/gin-gonic/gin"
)

// TicketHandler exposes the support ticket collection.
type TicketHandler struct {
	Repo tickets.Repository
}

// NewTicketHandler returns a handler over the tickets store.
func NewTicketHandler(repo tickets.Repository) *TicketHandler {
	return &TicketHandler{Repo: repo}
}

// CreateTicket opens a new support ticket.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var t models.Ticket
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if t.Subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject is required"})
		return
	}
	created, _ := h.Repo.Create(t)
	c.JSON(http.StatusCreated, created)
}

// ListTickets returns all tickets, optionally filtered by status.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		ts := models.TicketStatus(status)
		if !ts.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tickets": h.Repo.ListByStatus(ts)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": h.Repo.List()})
}

// GetTicket returns one ticket by id.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	t, ok := h.Repo.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateStatus moves a ticket to any status; resolved tickets can reopen.
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status models.TicketStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !input.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket status"})
		return
	}
	t, ok := h.Repo.UpdateStatus(c.Param("id"), input.Status)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}
