package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luckypick/powerball-backend/internal/repositories"
	"github.com/luckypick/powerball-backend/internal/services"
)

// DrawHandler handles draw-result HTTP requests
type DrawHandler struct {
	resultsService services.ResultsService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(resultsService services.ResultsService) *DrawHandler {
	return &DrawHandler{
		resultsService: resultsService,
	}
}

// GetDrawByDate handles GET /draws/date/:date
func (h *DrawHandler) GetDrawByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
		return
	}

	draw, err := h.resultsService.GetDrawByDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, repositories.ErrDrawNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No draw results for date"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve draw: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, draw)
}

// GetDrawsByDateRange handles GET /draws?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *DrawHandler) GetDrawsByDateRange(c *gin.Context) {
	var startDate, endDate time.Time
	var err error

	if s := c.Query("startDate"); s != "" {
		startDate, err = time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate format (YYYY-MM-DD)"})
			return
		}
	}
	if s := c.Query("endDate"); s != "" {
		endDate, err = time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate format (YYYY-MM-DD)"})
			return
		}
	}

	draws, err := h.resultsService.GetDrawsByDateRange(c.Request.Context(), startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve draws: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, draws)
}

// GetDrawCount handles GET /draws/count
func (h *DrawHandler) GetDrawCount(c *gin.Context) {
	count, err := h.resultsService.GetDrawCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count draws: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
