package handlers

import (
	"errors"
	"net/http"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/middleware"
	"github.com/dhruvkp2310/resume-pilot/internal/services"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: analytics}
}

// Dashboard handles GET /api/analytics/dashboard.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	ua, err := h.Analytics.Dashboard(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, ua)
}

// Summary handles GET /api/analytics/applications/summary?period=weekly|monthly.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summaries, err := h.Analytics.Summaries(middleware.UserIDFromContext(c), c.Query("period"))
	if err != nil {
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// UpdateWeeklySummary handles POST /api/analytics/update-weekly-summary.
func (h *AnalyticsHandler) UpdateWeeklySummary(c *gin.Context) {
	summary, err := h.Analytics.UpdateSummary(middleware.UserIDFromContext(c), "weekly")
	if err != nil {
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UpdateMonthlySummary handles POST /api/analytics/update-monthly-summary.
func (h *AnalyticsHandler) UpdateMonthlySummary(c *gin.Context) {
	summary, err := h.Analytics.UpdateSummary(middleware.UserIDFromContext(c), "monthly")
	if err != nil {
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Suggestions handles GET /api/analytics/suggestions: the unread inbox.
func (h *AnalyticsHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.Analytics.UnreadSuggestions(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// MarkSuggestionRead handles PUT /api/analytics/suggestions/:id.
func (h *AnalyticsHandler) MarkSuggestionRead(c *gin.Context) {
	suggestions, err := h.Analytics.MarkSuggestionRead(middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		serviceError(c, err, "Suggestion not found")
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// GenerateInsights handles POST /api/analytics/generate-insights.
func (h *AnalyticsHandler) GenerateInsights(c *gin.Context) {
	insights, err := h.Analytics.GenerateInsights(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, services.ErrNoApplications) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "No applications found to generate insights"})
			return
		}
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, insights)
}

// TrackResumeView handles POST /api/analytics/track-resume-view/:resumeId.
func (h *AnalyticsHandler) TrackResumeView(c *gin.Context) {
	views, err := h.Analytics.TrackResumeView(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"resumeViews": views})
}

// TrackJobMatch handles POST /api/analytics/track-job-match.
func (h *AnalyticsHandler) TrackJobMatch(c *gin.Context) {
	var req dtos.TrackJobMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	var msgs []string
	if req.JobID == nil {
		msgs = append(msgs, "Job ID is required")
	}
	if req.MatchPercentage == nil {
		msgs = append(msgs, "Match percentage is required")
	}
	if len(msgs) > 0 {
		validationFailed(c, msgs...)
		return
	}

	records, err := h.Analytics.TrackJobMatch(middleware.UserIDFromContext(c), *req.JobID, *req.MatchPercentage)
	if err != nil {
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, records)
}

// TrackResponse handles POST /api/analytics/track-application-response.
func (h *AnalyticsHandler) TrackResponse(c *gin.Context) {
	var req dtos.TrackResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	var msgs []string
	if req.ApplicationID == nil {
		msgs = append(msgs, "Application ID is required")
	}
	if req.Status == "" {
		msgs = append(msgs, "Status is required")
	}
	if req.ResponseTime == nil {
		msgs = append(msgs, "Response time is required")
	}
	if len(msgs) > 0 {
		validationFailed(c, msgs...)
		return
	}

	records, err := h.Analytics.TrackResponse(middleware.UserIDFromContext(c), *req.ApplicationID, req.Status, *req.ResponseTime)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			validationFailed(c, "Invalid status")
			return
		}
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, records)
}

// ResponseTime handles GET /api/analytics/response-time.
func (h *AnalyticsHandler) ResponseTime(c *gin.Context) {
	records, err := h.Analytics.ResponseTimeData(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, records)
}

// JobMatchData handles GET /api/analytics/job-match-data.
func (h *AnalyticsHandler) JobMatchData(c *gin.Context) {
	records, err := h.Analytics.JobMatchData(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "Analytics data not found")
		return
	}
	c.JSON(http.StatusOK, records)
}
