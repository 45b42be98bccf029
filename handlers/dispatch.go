package handlers

import (
	"net/http"

	"dialhub/services/dispatch"
	"dialhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DispatchHandler lets the dashboard kick off a dispatch pass.
type DispatchHandler struct {
	Enqueuer *dispatch.Enqueuer
}

func NewDispatchHandler(enq *dispatch.Enqueuer) *DispatchHandler {
	return &DispatchHandler{Enqueuer: enq}
}

// RunDispatchHandler handles POST /api/dispatch/run. The pass itself
// happens on the worker; this only enqueues it.
func (h *DispatchHandler) RunDispatchHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)

	if err := h.Enqueuer.EnqueueTick(userID); err != nil {
		logger.Error("Failed to enqueue dispatch", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enqueue dispatch"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Dispatch queued"})
}
