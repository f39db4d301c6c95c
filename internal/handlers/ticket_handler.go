package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luckypick/powerball-backend/internal/services"
	"github.com/luckypick/powerball-backend/internal/validation"
)

// TicketHandler handles ticket-related HTTP requests
type TicketHandler struct {
	ticketService services.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService services.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// CheckTicket handles POST /tickets/check
func (h *TicketHandler) CheckTicket(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body: " + err.Error()})
		return
	}

	checked, err := h.ticketService.CheckTicket(c.Request.Context(), body)
	if err != nil {
		var validationErr *validation.Error
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.Is(err, services.ErrResultsUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Draw results are temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check ticket: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, checked)
}
