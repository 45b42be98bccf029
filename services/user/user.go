package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dialhub/models"
	"dialhub/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials hides whether the email or the password was
// wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

const sessionDuration = 72 * time.Hour

// Register creates an account and opens its first session.
func (s *DefaultUserService) Register(req models.UserRegistrationRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, errors.New("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, err
	}
	return s.openSession(usr)
}

// Authenticate verifies credentials and opens a fresh session,
// replacing any previous one for this user.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.openSession(usr)
}

// openSession issues a JWT, stores its hash on the user document, and
// warms the auth cache.
func (s *DefaultUserService) openSession(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, sessionDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	usr.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(usr); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	if cache := utils.GetAuthCacheClient(); cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = cache.Set(ctx, utils.AuthCachePrefix+usr.ID, usr.TokenHash, time.Hour).Err()
	}

	return &AuthResponse{
		ID:       usr.ID,
		Token:    token,
		Username: usr.Username,
		Email:    usr.Email,
	}, nil
}

// GetUserByID returns the full account document.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// RevokeAuthToken signs the user out everywhere: clears the stored
// token hash and drops the cache entry.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	usr.TokenHash = ""
	if err := s.Repo.Update(usr); err != nil {
		return err
	}

	if cache := utils.GetAuthCacheClient(); cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = cache.Del(ctx, utils.AuthCachePrefix+userID).Err()
	}
	return nil
}

// UpdatePassword verifies the current password before replacing it and
// revokes the active session so the client must sign in again.
func (s *DefaultUserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	usr.PasswordHash = string(hash)
	usr.TokenHash = ""
	if err := s.Repo.Update(usr); err != nil {
		return err
	}

	if cache := utils.GetAuthCacheClient(); cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = cache.Del(ctx, utils.AuthCachePrefix+userID).Err()
	}
	return nil
}
