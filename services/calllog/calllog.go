package calllog

import (
	"errors"

	calllogRepo "dialhub/database/repository/calllog"
	"dialhub/models"

	"github.com/google/uuid"
)

// CallLogService records call outcomes and serves the dashboard's
// history and chart data.
type CallLogService interface {
	Append(userID string, req models.CallLogRequest) (*models.CallLog, error)
	List(userID string, page, limit int) ([]models.CallLog, error)
	Analytics(userID string, days int) ([]models.DailyCallCount, error)
}

// DefaultCallLogService is the production implementation.
type DefaultCallLogService struct {
	Repo calllogRepo.CallLogRepository
}

func validCallStatus(status string) bool {
	switch status {
	case models.CallStatusQueued, models.CallStatusCompleted,
		models.CallStatusFailed, models.CallStatusNoAnswer:
		return true
	}
	return false
}

func (s *DefaultCallLogService) Append(userID string, req models.CallLogRequest) (*models.CallLog, error) {
	if !validCallStatus(req.Status) {
		return nil, errors.New("unknown call status")
	}

	log := &models.CallLog{
		ID:              uuid.NewString(),
		UserID:          userID,
		ContactID:       req.ContactID,
		ContactPhone:    req.ContactPhone,
		AssistantID:     req.AssistantID,
		AssistantName:   req.AssistantName,
		Status:          req.Status,
		DurationSeconds: req.DurationSeconds,
		StartedAt:       req.StartedAt,
	}
	if err := s.Repo.Insert(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *DefaultCallLogService) List(userID string, page, limit int) ([]models.CallLog, error) {
	return s.Repo.List(userID, page, limit)
}

func (s *DefaultCallLogService) Analytics(userID string, days int) ([]models.DailyCallCount, error) {
	return s.Repo.CountsByDay(userID, days)
}
