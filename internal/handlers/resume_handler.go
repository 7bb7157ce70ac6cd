package handlers

import (
	"net/http"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/middleware"
	"github.com/dhruvkp2310/resume-pilot/internal/services"
	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	Resumes *services.ResumeService
}

func NewResumeHandler(resumes *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{Resumes: resumes}
}

func (h *ResumeHandler) List(c *gin.Context) {
	resumes, err := h.Resumes.ListByUser(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	c.JSON(http.StatusOK, resumes)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Resume not found"})
		return
	}
	resume, err := h.Resumes.GetOwned(id, middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var req dtos.ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	var msgs []string
	if req.Template == "" {
		msgs = append(msgs, "Template is required")
	}
	if req.PersonalInfo == nil || req.PersonalInfo.Name == "" {
		msgs = append(msgs, "Name is required")
	}
	if req.PersonalInfo == nil || !validEmail(req.PersonalInfo.Email) {
		msgs = append(msgs, "Email is required")
	}
	if len(msgs) > 0 {
		validationFailed(c, msgs...)
		return
	}

	resume, err := h.Resumes.Create(middleware.UserIDFromContext(c), &req)
	if err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Resume not found"})
		return
	}
	var req dtos.ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}
	resume, err := h.Resumes.Update(id, middleware.UserIDFromContext(c), &req)
	if err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Resume not found"})
		return
	}
	if err := h.Resumes.Delete(id, middleware.UserIDFromContext(c)); err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Resume removed"})
}

// ApplyOptimization merges a stored optimization payload back into the
// resume (POST /api/resumes/apply-optimization/:id).
func (h *ResumeHandler) ApplyOptimization(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Resume not found"})
		return
	}
	var req dtos.ApplyOptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OptimizationData == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Optimization data is required"})
		return
	}
	resume, err := h.Resumes.ApplyOptimization(id, middleware.UserIDFromContext(c), req.OptimizationData)
	if err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	c.JSON(http.StatusOK, resume)
}
