package scheduleRepo

import "dialhub/models"

// ScheduleRepository stores one schedule document per user.
type ScheduleRepository interface {
	// GetByUserID returns the user's schedule document, or (nil, nil)
	// when the user has never saved one.
	GetByUserID(userID string) (*models.ScheduleDocument, error)

	// Replace swaps the user's whole schedule document, creating it on
	// first save. There is no partial update path.
	Replace(userID string, weekly models.WeeklySchedule) error
}
