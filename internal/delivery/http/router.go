package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/venturelink/venturelink-backend/internal/delivery/http/handler"
	"github.com/venturelink/venturelink-backend/internal/delivery/http/middleware"
	"github.com/venturelink/venturelink-backend/internal/domain"
)

type Router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	connectionHandler *handler.ConnectionHandler
	discoveryHandler  *handler.DiscoveryHandler
	activityHandler   *handler.ActivityHandler
	dashboardHandler  *handler.DashboardHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	connectionHandler *handler.ConnectionHandler,
	discoveryHandler *handler.DiscoveryHandler,
	activityHandler *handler.ActivityHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		profileHandler:    profileHandler,
		connectionHandler: connectionHandler,
		discoveryHandler:  discoveryHandler,
		activityHandler:   activityHandler,
		dashboardHandler:  dashboardHandler,
		authMiddleware:    authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.POST("", r.profileHandler.CreateProfile)
				profile.GET("/me", r.profileHandler.ListMyProfiles)
				profile.GET("/me/:profile_id", r.profileHandler.GetMyProfile)
				profile.PUT("/me/:profile_id", r.profileHandler.UpdateProfile)
				profile.GET("/me/:profile_id/privacy", r.profileHandler.GetPrivacySettings)
				profile.PUT("/me/:profile_id/privacy", r.profileHandler.UpdatePrivacySettings)
				profile.GET("/:profile_id", r.profileHandler.GetProfileByID)
			}

			// Connection routes
			connections := protected.Group("/connections")
			{
				connections.POST("/connect", r.connectionHandler.Connect)
				connections.GET("", r.discoveryHandler.GetConnections)
			}

			// Discovery routes
			protected.GET("/discover", r.discoveryHandler.Discover)

			// Activity routes
			activity := protected.Group("/activity")
			{
				activity.POST("/countView", r.activityHandler.CountView)
				activity.POST("/countSave", r.activityHandler.CountSave)
				activity.POST("/countSkip", r.activityHandler.CountSkip)
				activity.GET("/getViewed", r.activityHandler.GetViewed)
				activity.GET("/getSaved", r.activityHandler.GetSaved)
				activity.GET("/getSkipped", r.activityHandler.GetSkipped)
			}

			// Dashboard routes
			protected.GET("/dashboard", r.dashboardHandler.GetSummary)
		}
	}

	return router
}

// registerValidations adds the privacytier tag used by privacy inputs.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("privacytier", func(fl validator.FieldLevel) bool {
			return domain.PrivacyTier(fl.Field().String()).Valid()
		})
	}
}
