package main

import (
	"github.com/gin-gonic/gin"
	"github.com/studyring/reputation-backend/internal/handlers"
	"github.com/studyring/reputation-backend/internal/middleware"
	"github.com/studyring/reputation-backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS(), middleware.RequestID())

	// Rate limiter for rating submission routes
	writeLimiter := middleware.NewRateLimiter(10, 20)

	// Health check
	healthHandler := handlers.NewHealthHandler(svc.clock)
	r.GET("/health", healthHandler.CheckHealth)

	ratingHandler := handlers.NewRatingHandler(svc.ledgerService)
	reputationHandler := handlers.NewReputationHandler(svc.ledgerService)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/register", svc.authHandler.Register)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)

			// Rating submission (rate limited)
			write := protected.Group("", writeLimiter.Middleware())
			{
				write.POST("/ratings", ratingHandler.Create)
				write.POST("/ratings/detailed", ratingHandler.Create)
				write.POST("/peer-ratings", ratingHandler.CreatePeer)
				write.PUT("/ratings/:id", ratingHandler.Update)
				write.POST("/ratings/:id/responses", ratingHandler.AddResponse)
			}

			// Rating queries
			protected.GET("/ratings/:id", ratingHandler.Get)
			protected.GET("/ratings/:id/responses", ratingHandler.ListResponses)
			protected.GET("/interactions/:id/pair", ratingHandler.GetPair)
			protected.GET("/group-activities/:id/rated", ratingHandler.CheckPeerRating)

			// Reputation
			protected.GET("/accounts/:id/reputation", reputationHandler.Get)
			protected.GET("/accounts/:id/ratings", reputationHandler.ListRatings)
			protected.GET("/accounts/:id/ratings/active", reputationHandler.ListRatings)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			// Maintenance
			maintenanceHandler := handlers.NewMaintenanceHandler(svc.ledgerService)
			admin.POST("/maintenance/expire", maintenanceHandler.Expire)
			admin.POST("/maintenance/recalculate/:account", maintenanceHandler.Recalculate)

			// Event journal
			journalHandler := handlers.NewJournalHandler(svc.journal)
			admin.GET("/journal", journalHandler.List)
		}
	}
}
