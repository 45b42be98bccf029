package calllogRepo

import "dialhub/models"

// CallLogRepository stores outbound call records.
type CallLogRepository interface {
	Insert(log *models.CallLog) error
	List(userID string, page, limit int) ([]models.CallLog, error)
	// CountsByDay buckets the user's calls per calendar day for the
	// last `days` days.
	CountsByDay(userID string, days int) ([]models.DailyCallCount, error)
}
