package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dialhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAssistants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/assistant", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode([]models.Assistant{
			{ID: "a-1", Name: "Ava"},
			{ID: "a-2", Name: "Ben"},
		})
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL, "test-key")
	assistants, err := client.ListAssistants(context.Background())
	require.NoError(t, err)
	require.Len(t, assistants, 2)
	assert.Equal(t, "Ava", assistants[0].Name)
}

func TestCreateAssistant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.AssistantRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ava", req.Name)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Assistant{ID: "a-1", Name: req.Name})
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL, "test-key")
	created, err := client.CreateAssistant(context.Background(), models.AssistantRequest{Name: "Ava"})
	require.NoError(t, err)
	assert.Equal(t, "a-1", created.ID)
}

func TestProviderErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such assistant", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL, "test-key")
	err := client.DeleteAssistant(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestStartCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/call", r.URL.Path)

		var req startCallRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a-1", req.AssistantID)
		assert.Equal(t, "+15550100", req.Customer.Number)

		json.NewEncoder(w).Encode(map[string]string{"id": "call-77"})
	}))
	defer srv.Close()

	client := NewProviderClient(srv.URL, "test-key")
	callID, err := client.StartCall(context.Background(), "a-1", "+15550100")
	require.NoError(t, err)
	assert.Equal(t, "call-77", callID)
}
