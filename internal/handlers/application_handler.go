package handlers

import (
	"errors"
	"net/http"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/middleware"
	"github.com/dhruvkp2310/resume-pilot/internal/services"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Applications.ListByUser(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Application not found"})
		return
	}
	app, err := h.Applications.GetOwned(id, middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	var msgs []string
	if req.Job == 0 {
		msgs = append(msgs, "Job is required")
	}
	if req.Resume == 0 {
		msgs = append(msgs, "Resume is required")
	}
	if len(msgs) > 0 {
		validationFailed(c, msgs...)
		return
	}

	resumeID := req.Resume
	app, err := h.Applications.Create(middleware.UserIDFromContext(c), req.Job, &resumeID, req.CoverLetter, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "You have already applied for this job"})
			return
		}
		if errors.Is(err, services.ErrNotAuthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Not authorized to use this resume"})
			return
		}
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Job not found"})
			return
		}
		if errors.Is(err, services.ErrResumeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Resume not found"})
			return
		}
		serviceError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Application not found"})
		return
	}
	var req dtos.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}
	app, err := h.Applications.Update(id, middleware.UserIDFromContext(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			validationFailed(c, "Invalid status")
			return
		}
		serviceError(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Application not found"})
		return
	}
	if err := h.Applications.Delete(id, middleware.UserIDFromContext(c)); err != nil {
		serviceError(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Application removed"})
}

// Stats handles GET /api/applications/stats/me.
func (h *ApplicationHandler) Stats(c *gin.Context) {
	stats, err := h.Applications.Stats(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, stats)
}
