package handlers

import (
	"net/http"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/middleware"
	"github.com/dhruvkp2310/resume-pilot/internal/services"
	"github.com/gin-gonic/gin"
)

const matchJobPoolLimit = 100

type MatchingHandler struct {
	Resumes *services.ResumeService
	Jobs    *services.JobService
	AI      *services.AIService
}

func NewMatchingHandler(resumes *services.ResumeService, jobs *services.JobService, ai *services.AIService) *MatchingHandler {
	return &MatchingHandler{Resumes: resumes, Jobs: jobs, AI: ai}
}

// ResumeToJobs handles POST /api/matching/resume-to-jobs: rank active jobs
// against one of the caller's resumes.
func (h *MatchingHandler) ResumeToJobs(c *gin.Context) {
	var req dtos.ResumeToJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}
	if req.Limit < 1 {
		req.Limit = 10
	}

	resume, err := h.Resumes.GetOwned(req.ResumeID, middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Resume not found")
		return
	}

	jobs, err := h.Jobs.ActiveJobs(matchJobPoolLimit)
	if err != nil {
		serviceError(c, err, "Job not found")
		return
	}
	if len(jobs) == 0 {
		c.JSON(http.StatusOK, gin.H{"matches": []dtos.MatchResult{}})
		return
	}

	matches, err := h.AI.MatchResumeToJobs(c.Request.Context(), services.ResumeContent(resume), jobs, req.Limit)
	if err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// JobToResumes handles POST /api/matching/job-to-resumes: rank the caller's
// resumes against one job.
func (h *MatchingHandler) JobToResumes(c *gin.Context) {
	var req dtos.JobToResumesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	job, err := h.Jobs.Get(req.JobID)
	if err != nil {
		serviceError(c, err, "Job not found")
		return
	}

	resumes, err := h.Resumes.ListByUser(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	if len(resumes) == 0 {
		c.JSON(http.StatusOK, gin.H{"matches": []dtos.MatchResult{}})
		return
	}

	matches, err := h.AI.MatchJobToResumes(c.Request.Context(), services.JobContent(job), resumes)
	if err != nil {
		serviceError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// OptimizeResume handles POST /api/matching/optimize-resume.
func (h *MatchingHandler) OptimizeResume(c *gin.Context) {
	var req dtos.OptimizeResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	resume, err := h.Resumes.GetOwned(req.ResumeID, middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	job, err := h.Jobs.Get(req.JobID)
	if err != nil {
		serviceError(c, err, "Job not found")
		return
	}

	optimization, err := h.AI.OptimizeResume(c.Request.Context(), services.ResumeContent(resume), services.JobContent(job))
	if err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	c.JSON(http.StatusOK, optimization)
}

// AnalyzePortfolio handles POST /api/matching/analyze-portfolio.
func (h *MatchingHandler) AnalyzePortfolio(c *gin.Context) {
	var req dtos.AnalyzePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}
	if len(req.PortfolioURLs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Portfolio URLs are required"})
		return
	}

	jobContent := ""
	if req.JobID != 0 {
		if job, err := h.Jobs.Get(req.JobID); err == nil {
			jobContent = services.JobContent(job)
		}
	}

	analysis, err := h.AI.AnalyzePortfolio(c.Request.Context(), req.PortfolioURLs, jobContent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Portfolio analysis failed"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}
