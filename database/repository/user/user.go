package userRepo

import (
	"dialhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence for dashboard accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no account matches.
	GetByEmail(email string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
}
