package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dialhub/models"
)

// ProviderClient is a thin HTTP client over the external calling
// provider's REST API. No provider business logic lives here; the
// dashboard is a pass-through for these resources.
type ProviderClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewProviderClient builds a client with a bounded request timeout.
func NewProviderClient(baseURL, apiKey string) *ProviderClient {
	return &ProviderClient{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *ProviderClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(msg))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode provider response: %w", err)
		}
	}
	return nil
}

// ListAssistants fetches all assistants provisioned for this account.
func (c *ProviderClient) ListAssistants(ctx context.Context) ([]models.Assistant, error) {
	var assistants []models.Assistant
	if err := c.do(ctx, http.MethodGet, "/assistant", nil, &assistants); err != nil {
		return nil, err
	}
	return assistants, nil
}

// CreateAssistant provisions a new assistant in the provider.
func (c *ProviderClient) CreateAssistant(ctx context.Context, req models.AssistantRequest) (*models.Assistant, error) {
	var created models.Assistant
	if err := c.do(ctx, http.MethodPost, "/assistant", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteAssistant removes an assistant from the provider.
func (c *ProviderClient) DeleteAssistant(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/assistant/"+id, nil, nil)
}

// ListPhoneNumbers fetches the account's outbound caller numbers.
func (c *ProviderClient) ListPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error) {
	var numbers []models.PhoneNumber
	if err := c.do(ctx, http.MethodGet, "/phone-number", nil, &numbers); err != nil {
		return nil, err
	}
	return numbers, nil
}

// startCallRequest is the provider's outbound call payload.
type startCallRequest struct {
	AssistantID string `json:"assistantId"`
	Customer    struct {
		Number string `json:"number"`
	} `json:"customer"`
}

// StartCall asks the provider to place an outbound call and returns
// the provider call ID.
func (c *ProviderClient) StartCall(ctx context.Context, assistantID, customerNumber string) (string, error) {
	req := startCallRequest{AssistantID: assistantID}
	req.Customer.Number = customerNumber

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/call", req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}
