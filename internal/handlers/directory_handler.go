package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerbridge/jobboard/internal/services"
)

type DirectoryHandler struct {
	Directory *services.DirectoryService
}

func NewDirectoryHandler(dir *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Directory: dir}
}

// Companies is the GET /api/companies endpoint.
func (h *DirectoryHandler) Companies(c *gin.Context) {
	companies, err := h.Directory.Companies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Applicants is the GET /api/applicants endpoint.
func (h *DirectoryHandler) Applicants(c *gin.Context) {
	applicants, err := h.Directory.Applicants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applicants)
}
