package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerbridge/jobboard/internal/dtos"
	"github.com/careerbridge/jobboard/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// ListJobs is the GET /api/jobs endpoint.
func (h *JobHandler) ListJobs(c *gin.Context) {
	items, err := h.Jobs.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PostJob is the POST /api/jobs endpoint.
func (h *JobHandler) PostJob(c *gin.Context) {
	var req dtos.JobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and job_title are required"})
		return
	}

	jobID, err := h.Jobs.Post(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully",
		"id":      jobID,
	})
}

// CompanyJobs is the GET /api/company-jobs/:userId endpoint.
func (h *JobHandler) CompanyJobs(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	jobs, err := h.Jobs.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
