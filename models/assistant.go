package models

// Assistant is a voice-call handling identity provisioned in the
// external calling provider. Opaque here beyond ID and display name;
// the remaining fields are passed through for the dashboard.
type Assistant struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Voice        string `json:"voice,omitempty"`
	Model        string `json:"model,omitempty"`
	FirstMessage string `json:"firstMessage,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// AssistantRequest is the create payload forwarded to the provider.
type AssistantRequest struct {
	Name         string `json:"name" binding:"required"`
	Voice        string `json:"voice,omitempty"`
	Model        string `json:"model,omitempty"`
	FirstMessage string `json:"firstMessage,omitempty"`
}

// PhoneNumber is an outbound caller number provisioned in the provider.
type PhoneNumber struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	AssistantID string `json:"assistantId,omitempty"`
}
