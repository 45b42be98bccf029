package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dialhub/models"
	"dialhub/services/contact"
	"dialhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves the CRM contact endpoints.
type ContactHandler struct {
	Service contact.ContactService
}

func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	return page, limit
}

// ListContactsHandler handles GET /api/contacts.
func (h *ContactHandler) ListContactsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)
	page, limit := pageParams(c)

	contacts, err := h.Service.List(userID, page, limit)
	if err != nil {
		logger.Error("Failed to list contacts", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts, "page": page})
}

// CreateContactHandler handles POST /api/contacts.
func (h *ContactHandler) CreateContactHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)

	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.Create(userID, req)
	if err != nil {
		logger.Error("Failed to create contact", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetContactHandler handles GET /api/contacts/:id.
func (h *ContactHandler) GetContactHandler(c *gin.Context) {
	userID := contextUserID(c)
	id := c.Param("id")

	found, err := h.Service.Get(userID, id)
	if err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateContactHandler handles PUT /api/contacts/:id.
func (h *ContactHandler) UpdateContactHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)
	id := c.Param("id")

	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.Update(userID, id, req)
	if err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update contact", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteContactHandler handles DELETE /api/contacts/:id.
func (h *ContactHandler) DeleteContactHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := contextUserID(c)
	id := c.Param("id")

	if err := h.Service.Delete(userID, id); err != nil {
		logger.Error("Failed to delete contact", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}
