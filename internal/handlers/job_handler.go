package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/middleware"
	"github.com/dhruvkp2310/resume-pilot/internal/services"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

func NewJobHandler(jobs *services.JobService, applications *services.ApplicationService) *JobHandler {
	return &JobHandler{Jobs: jobs, Applications: applications}
}

// List handles GET /api/jobs: public, filtered, paginated.
func (h *JobHandler) List(c *gin.Context) {
	q := dtos.JobListQuery{
		Search:          c.Query("search"),
		Location:        c.Query("location"),
		JobType:         c.Query("jobType"),
		ExperienceLevel: c.Query("experienceLevel"),
		Page:            intQuery(c, "page", 1),
		Limit:           intQuery(c, "limit", 20),
	}
	resp, err := h.Jobs.List(q)
	if err != nil {
		serviceError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Job not found"})
		return
	}
	job, err := h.Jobs.Get(id)
	if err != nil {
		serviceError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	var msgs []string
	if req.Title == "" {
		msgs = append(msgs, "Title is required")
	}
	if req.Company == "" {
		msgs = append(msgs, "Company is required")
	}
	if req.Description == "" {
		msgs = append(msgs, "Description is required")
	}
	if req.Requirements == "" {
		msgs = append(msgs, "Requirements are required")
	}
	if len(msgs) > 0 {
		validationFailed(c, msgs...)
		return
	}

	job, err := h.Jobs.Create(&req)
	if err != nil {
		serviceError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Job not found"})
		return
	}
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}
	job, err := h.Jobs.Update(id, &req)
	if err != nil {
		serviceError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Job not found"})
		return
	}
	if err := h.Jobs.Delete(id); err != nil {
		serviceError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Job removed"})
}

// Apply handles POST /api/jobs/apply/:id.
func (h *JobHandler) Apply(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Job not found"})
		return
	}
	var req dtos.ApplyJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}
	app, err := h.Applications.Create(middleware.UserIDFromContext(c), id, req.ResumeID, req.CoverLetter, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "You have already applied for this job"})
			return
		}
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Job not found"})
			return
		}
		serviceError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, app)
}

// MyApplications handles GET /api/jobs/applications/me.
func (h *JobHandler) MyApplications(c *gin.Context) {
	apps, err := h.Applications.ListByUser(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateApplication handles PUT /api/jobs/applications/:id.
func (h *JobHandler) UpdateApplication(c *gin.Context) {
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

// ExternalSearch handles GET /api/jobs/external/search with static data
// standing in for the future job-board integration.
func (h *JobHandler) ExternalSearch(c *gin.Context) {
	jobs := h.Jobs.ExternalSearch(c.Query("query"), c.Query("location"), intQuery(c, "limit", 10))
	c.JSON(http.StatusOK, jobs)
}

// Import handles POST /api/jobs/import.
func (h *JobHandler) Import(c *gin.Context) {
	var req dtos.ImportJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}
	job, err := h.Jobs.Import(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Job already imported"})
			return
		}
		serviceError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
