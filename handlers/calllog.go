package handlers

import (
	"net/http"
	"strconv"

	"dialhub/models"
	"dialhub/services/calllog"
	"dialhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CallLogHandler serves call history and analytics endpoints.
type CallLogHandler struct {
	Service calllog.CallLogService
}

func NewCallLogHandler(svc calllog.CallLogService) *CallLogHandler {
	return &CallLogHandler{Service: svc}
}

// ListCallsHandler handles GET /api/calls.
func (h *CallLogHandler) ListCallsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)
	page, limit := pageParams(c)

	logs, err := h.Service.List(userID, page, limit)
	if err != nil {
		logger.Error("Failed to list calls", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list calls"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"calls": logs, "page": page})
}

// AppendCallHandler handles POST /api/calls. Used by the provider
// webhook passthrough to record outcomes.
func (h *CallLogHandler) AppendCallHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)

	var req models.CallLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.Append(userID, req)
	if err != nil {
		logger.Error("Failed to record call", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CallAnalyticsHandler handles GET /api/calls/analytics.
func (h *CallLogHandler) CallAnalyticsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	counts, err := h.Service.Analytics(userID, days)
	if err != nil {
		logger.Error("Failed to aggregate calls", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate calls"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": counts})
}
