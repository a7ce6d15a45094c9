package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerbridge/jobboard/internal/dtos"
	"github.com/careerbridge/jobboard/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// Apply is the POST /api/apply endpoint.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id and user_id are required"})
		return
	}

	applicationID, err := h.Applications.Apply(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted successfully",
		"id":      applicationID,
	})
}

// ListByUser is the GET /api/applications/:userId endpoint.
func (h *ApplicationHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	items, err := h.Applications.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateStatus is the PUT /api/applications/:applicationId endpoint.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, ok := pathID(c, "applicationId")
	if !ok {
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status and user_id are required"})
		return
	}

	if err := h.Applications.UpdateStatus(c.Request.Context(), applicationID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}
