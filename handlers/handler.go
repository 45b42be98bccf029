package handlers

import (
	userRepo "dialhub/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers everything route registration needs.
type HandlerBundle struct {
	// UserRepo backs the auth middleware's cache-miss path.
	UserRepo userRepo.UserRepository

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetMeHandler            gin.HandlerFunc
	RevokeAuthTokenHandler  gin.HandlerFunc
	UpdatePasswordHandler   gin.HandlerFunc

	// Schedule endpoints.
	GetScheduleHandler     gin.HandlerFunc
	SaveScheduleHandler    gin.HandlerFunc
	CurrentScheduleHandler gin.HandlerFunc

	// Contact endpoints.
	ListContactsHandler  gin.HandlerFunc
	CreateContactHandler gin.HandlerFunc
	GetContactHandler    gin.HandlerFunc
	UpdateContactHandler gin.HandlerFunc
	DeleteContactHandler gin.HandlerFunc

	// Assistant endpoints.
	ListAssistantsHandler   gin.HandlerFunc
	CreateAssistantHandler  gin.HandlerFunc
	DeleteAssistantHandler  gin.HandlerFunc
	ListPhoneNumbersHandler gin.HandlerFunc

	// Call log endpoints.
	ListCallsHandler     gin.HandlerFunc
	AppendCallHandler    gin.HandlerFunc
	CallAnalyticsHandler gin.HandlerFunc

	// Dispatch endpoints.
	RunDispatchHandler gin.HandlerFunc
}

// contextUserID pulls the authenticated user ID set by the auth
// middleware. The empty string means the middleware didn't run.
func contextUserID(c *gin.Context) string {
	v, ok := c.Get("userID")
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
