package routes

import (
	"net/http"
	"time"

	"dialhub/handlers"
	"dialhub/middleware"
	"dialhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetMeHandler)
		api.DELETE("/session", hb.RevokeAuthTokenHandler)
		api.PUT("/password", hb.UpdatePasswordHandler)
	}
}

// RegisterScheduleRoutes registers the weekly schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.GetScheduleHandler)
		api.PUT("", hb.SaveScheduleHandler)
		api.GET("/current", hb.CurrentScheduleHandler)
	}
}

// RegisterContactRoutes registers CRM contact endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contacts")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListContactsHandler)
		api.POST("", hb.CreateContactHandler)
		api.GET("/:id", hb.GetContactHandler)
		api.PUT("/:id", hb.UpdateContactHandler)
		api.DELETE("/:id", hb.DeleteContactHandler)
	}
}

// RegisterAssistantRoutes registers provider registry endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistants")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListAssistantsHandler)
		api.POST("", hb.CreateAssistantHandler)
		api.DELETE("/:id", hb.DeleteAssistantHandler)
	}

	numbers := r.Group("/api/phone-numbers")
	{
		numbers.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		numbers.GET("", hb.ListPhoneNumbersHandler)
	}
}

// RegisterCallRoutes registers call history and analytics endpoints.
func RegisterCallRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calls")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListCallsHandler)
		api.POST("", hb.AppendCallHandler)
		api.GET("/analytics", hb.CallAnalyticsHandler)
	}
}

// RegisterDispatchRoutes registers the manual dispatch trigger.
func RegisterDispatchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dispatch")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/run", hb.RunDispatchHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterCallRoutes(r, hb)
	RegisterDispatchRoutes(r, hb)
	RegisterHealthRoute(r)
}
