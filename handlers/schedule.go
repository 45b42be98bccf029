package handlers

import (
	"errors"
	"net/http"

	"dialhub/models"
	"dialhub/services/schedule"
	"dialhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the weekly schedule's read, write, and
// resolution-query endpoints.
type ScheduleHandler struct {
	Service schedule.Service
}

func NewScheduleHandler(svc schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetScheduleHandler handles GET /api/schedule. A user who never
// saved a schedule gets the all-empty default, not a 404.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)

	weekly, err := h.Service.Get(userID)
	if err != nil {
		logger.Error("Failed to load schedule", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule"})
		return
	}
	c.JSON(http.StatusOK, weekly)
}

// SaveScheduleHandler handles PUT /api/schedule. The payload is the
// editor's full week keyed by day and slot names; unknown keys are a
// 400, storage trouble a 500, and the response echoes the normalized
// schedule that was persisted.
func (h *ScheduleHandler) SaveScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)

	var input models.WeeklyScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weekly, err := h.Service.Save(userID, input)
	if err != nil {
		var verr *schedule.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
			return
		}
		logger.Error("Failed to save schedule", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved", "schedule": weekly})
}

// CurrentScheduleHandler handles GET /api/schedule/current. A null
// slot in the response is the normal "nobody on duty" state.
func (h *ScheduleHandler) CurrentScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)

	active, err := h.Service.Current(userID)
	if err != nil {
		logger.Error("Failed to resolve schedule", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve schedule"})
		return
	}
	c.JSON(http.StatusOK, active)
}
