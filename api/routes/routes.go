package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/luckypick/powerball-backend/internal/config"
	"github.com/luckypick/powerball-backend/internal/handlers"
	"github.com/luckypick/powerball-backend/internal/middleware"
)

// HandlerDependencies holds the handlers wired in main
type HandlerDependencies struct {
	TicketHandler *handlers.TicketHandler
	DrawHandler   *handlers.DrawHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Ticket routes
		tickets := public.Group("/tickets")
		{
			tickets.POST("/check", deps.TicketHandler.CheckTicket)
		}

		// Draw result routes
		draws := public.Group("/draws")
		{
			draws.GET("", deps.DrawHandler.GetDrawsByDateRange)
			draws.GET("/count", deps.DrawHandler.GetDrawCount)
			draws.GET("/date/:date", deps.DrawHandler.GetDrawByDate)
		}
	}

	return router
}
