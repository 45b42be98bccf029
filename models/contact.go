package models

import "time"

// Contact statuses as they move through the calling pipeline.
const (
	ContactStatusQueued    = "queued"
	ContactStatusCalled    = "called"
	ContactStatusDoNotCall = "do-not-call"
)

// Contact is one CRM entry owned by a user. Phone is stored in the
// form the operator entered it, validated loosely at write time.
type Contact struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Company   string    `bson:"company,omitempty" json:"company,omitempty"`
	Status    string    `bson:"status" json:"status"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ContactRequest is the create/update payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
	Status  string `json:"status,omitempty"`
	Notes   string `json:"notes,omitempty"`
}
