package handlers

import (
	"net/http"

	"dialhub/models"
	"dialhub/services/assistant"
	"dialhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler serves the provider registry passthrough endpoints.
type AssistantHandler struct {
	Service assistant.AssistantService
}

func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: svc}
}

// ListAssistantsHandler handles GET /api/assistants.
func (h *AssistantHandler) ListAssistantsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	assistants, err := h.Service.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list assistants", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Calling provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assistants": assistants})
}

// CreateAssistantHandler handles POST /api/assistants.
func (h *AssistantHandler) CreateAssistantHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create assistant", zap.String("name", req.Name), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Calling provider rejected the request"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteAssistantHandler handles DELETE /api/assistants/:id.
func (h *AssistantHandler) DeleteAssistantHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete assistant", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Calling provider rejected the request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assistant deleted"})
}

// ListPhoneNumbersHandler handles GET /api/phone-numbers.
func (h *AssistantHandler) ListPhoneNumbersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	numbers, err := h.Service.PhoneNumbers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list phone numbers", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Calling provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phoneNumbers": numbers})
}
