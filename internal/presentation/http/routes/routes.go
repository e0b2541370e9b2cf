package routes

import (
	"net/http"

	"github.com/gbmfoods/admin-api/internal/config"
	"github.com/gbmfoods/admin-api/internal/presentation/http/handler"
	"github.com/gbmfoods/admin-api/internal/presentation/http/middleware"
	"github.com/gbmfoods/admin-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth        *handler.AuthHandler
	Order       *handler.OrderHandler
	Printer     *handler.PrinterHandler
	Dashboard   *handler.DashboardHandler
	Directory   *handler.DirectoryHandler
	Transaction *handler.TransactionHandler
}

// Setup configures all application routes
func Setup(router *gin.Engine, cfg *config.Config, jwtManager *utils.JWTManager, h *Handlers) {
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	rateLimiter := middleware.NewClientRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Requests)

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(jwtManager))
	protected.Use(rateLimiter.Middleware())
	{
		protected.GET("/orders", h.Order.List)
		protected.GET("/orders/:id", h.Order.Get)
		protected.POST("/orders/:id/receipt", h.Printer.PrintReceipt)

		protected.GET("/printer/status", h.Printer.Status)
		protected.POST("/printer/test", h.Printer.Test)

		protected.GET("/dashboard", h.Dashboard.Stats)

		protected.GET("/users", h.Directory.ListUsers)
		protected.GET("/agents", h.Directory.ListAgents)
		protected.GET("/restaurants", h.Directory.ListRestaurants)

		protected.GET("/transactions", h.Transaction.List)
	}
}
