package schedule

import (
	scheduleRepo "dialhub/database/repository/schedule"
	"dialhub/models"
)

// Service is the save/read contract the surrounding CRUD layer uses.
type Service interface {
	// Get returns the user's stored schedule, or the all-empty default
	// when none has been saved yet. "No schedule" is never an error.
	Get(userID string) (models.WeeklySchedule, error)

	// Save validates and normalizes the editor payload, recomputes
	// every UTC field server-side, and replaces the user's schedule
	// document whole. Unknown day or slot keys are rejected.
	Save(userID string, input models.WeeklyScheduleInput) (models.WeeklySchedule, error)

	// Current resolves the active assignment for the user at the
	// clock's current instant.
	Current(userID string) (ActiveAssignment, error)
}

// AssistantDirectory resolves assistant IDs to display names so the
// denormalized label is refreshed at write time. Implementations
// report false when the ID is unknown to them.
type AssistantDirectory interface {
	AssistantName(id string) (string, bool)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo      scheduleRepo.ScheduleRepository
	Directory AssistantDirectory
	Clock     Clock
}
