package assistant

import (
	"context"
	"encoding/json"
	"time"

	"dialhub/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AssistantService is the dashboard's view of the provider registry.
type AssistantService interface {
	List(ctx context.Context) ([]models.Assistant, error)
	Create(ctx context.Context, req models.AssistantRequest) (*models.Assistant, error)
	Delete(ctx context.Context, id string) error
	PhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error)
	StartCall(ctx context.Context, assistantID, customerNumber string) (string, error)

	// AssistantName implements schedule.AssistantDirectory.
	AssistantName(id string) (string, bool)
}

// DefaultAssistantService caches the provider's assistant list in
// Redis for a short TTL so schedule saves and dashboard reads don't
// hammer the provider API.
type DefaultAssistantService struct {
	Client *ProviderClient
	Cache  *redis.Client
	Logger *zap.Logger
}

const (
	assistantCacheKey = "assistants:list"
	assistantCacheTTL = 60 * time.Second
)

// List returns the assistant roster, from cache when fresh.
func (s *DefaultAssistantService) List(ctx context.Context) ([]models.Assistant, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, assistantCacheKey).Result(); err == nil {
			var cached []models.Assistant
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	assistants, err := s.Client.ListAssistants(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if b, err := json.Marshal(assistants); err == nil {
			_ = s.Cache.Set(ctx, assistantCacheKey, b, assistantCacheTTL).Err()
		}
	}
	return assistants, nil
}

// Create provisions an assistant and invalidates the cached roster.
func (s *DefaultAssistantService) Create(ctx context.Context, req models.AssistantRequest) (*models.Assistant, error) {
	created, err := s.Client.CreateAssistant(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

// Delete removes an assistant and invalidates the cached roster.
func (s *DefaultAssistantService) Delete(ctx context.Context, id string) error {
	if err := s.Client.DeleteAssistant(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// PhoneNumbers passes through the provider's number list.
func (s *DefaultAssistantService) PhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error) {
	return s.Client.ListPhoneNumbers(ctx)
}

// StartCall passes through an outbound call request.
func (s *DefaultAssistantService) StartCall(ctx context.Context, assistantID, customerNumber string) (string, error) {
	return s.Client.StartCall(ctx, assistantID, customerNumber)
}

// AssistantName resolves an ID to its display name, best effort: a
// provider outage just means the caller keeps its own label.
func (s *DefaultAssistantService) AssistantName(id string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	assistants, err := s.List(ctx)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("assistant lookup failed", zap.String("id", id), zap.Error(err))
		}
		return "", false
	}
	for _, a := range assistants {
		if a.ID == id {
			return a.Name, true
		}
	}
	return "", false
}

func (s *DefaultAssistantService) invalidate(ctx context.Context) {
	if s.Cache != nil {
		_ = s.Cache.Del(ctx, assistantCacheKey).Err()
	}
}
