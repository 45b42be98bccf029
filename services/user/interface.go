package user

import (
	userRepo "dialhub/database/repository/user"
	"dialhub/models"
)

// UserService manages dashboard accounts and their sessions.
type UserService interface {
	Register(req models.UserRegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(userID string) (*models.User, error)
	RevokeAuthToken(userID string) error
	UpdatePassword(userID, currentPassword, newPassword string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse carries the session token handed to the dashboard.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}
