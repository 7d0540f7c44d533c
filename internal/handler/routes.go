package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/studyhub/studyhub-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, materialHandler *MaterialHandler, dashboardHandler *DashboardHandler, tutorHandler *TutorHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Auth routes
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, sessionMiddleware.Optional())
	auth.GET("/me", authHandler.Me, sessionMiddleware.Require())

	// Material routes (browsing is public, completion needs a session)
	materials := api.Group("/materials")
	materials.GET("", materialHandler.ListMaterials)
	materials.GET("/:id", materialHandler.GetMaterial)
	materials.POST("/:id/complete", materialHandler.CompleteMaterial, sessionMiddleware.Require())

	// Dashboard routes (protected)
	dashboard := api.Group("/dashboard")
	dashboard.Use(sessionMiddleware.Require())
	dashboard.GET("", dashboardHandler.GetSummary)

	// AI tutor routes (protected, rate limited)
	ai := api.Group("/ai")
	ai.Use(sessionMiddleware.Require())
	ai.Use(middleware.RateLimitMiddleware(rateLimiter))
	ai.POST("/chat", tutorHandler.Chat)
	ai.POST("/grammar", tutorHandler.CorrectGrammar)
}
