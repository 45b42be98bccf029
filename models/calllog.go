package models

import "time"

// Call outcome statuses recorded by the dispatcher and the provider
// webhook passthrough.
const (
	CallStatusQueued    = "queued"
	CallStatusCompleted = "completed"
	CallStatusFailed    = "failed"
	CallStatusNoAnswer  = "no-answer"
)

// CallLog is one outbound call record.
type CallLog struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	ContactID       string    `bson:"contactId,omitempty" json:"contactId,omitempty"`
	ContactPhone    string    `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	AssistantID     string    `bson:"assistantId" json:"assistantId"`
	AssistantName   string    `bson:"assistantName,omitempty" json:"assistantName,omitempty"`
	Status          string    `bson:"status" json:"status"`
	DurationSeconds int       `bson:"durationSeconds,omitempty" json:"durationSeconds,omitempty"`
	StartedAt       time.Time `bson:"startedAt" json:"startedAt"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// CallLogRequest is the append payload.
type CallLogRequest struct {
	ContactID       string    `json:"contactId,omitempty"`
	ContactPhone    string    `json:"contactPhone,omitempty"`
	AssistantID     string    `json:"assistantId" binding:"required"`
	AssistantName   string    `json:"assistantName,omitempty"`
	Status          string    `json:"status" binding:"required"`
	DurationSeconds int       `json:"durationSeconds,omitempty"`
	StartedAt       time.Time `json:"startedAt,omitempty"`
}

// DailyCallCount is one bucket of the per-day analytics rollup.
type DailyCallCount struct {
	Date      string `bson:"_id" json:"date"`
	Total     int    `bson:"total" json:"total"`
	Completed int    `bson:"completed" json:"completed"`
	Failed    int    `bson:"failed" json:"failed"`
}

// DispatchPayload is the asynq task body for a dispatch tick.
type DispatchPayload struct {
	UserID string `json:"userId"`
}
