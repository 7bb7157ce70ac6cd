package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsDashboard(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")
	jobID := createJob(t, app, tok, "Backend Engineer")

	w := app.do(t, http.MethodPost, fmt.Sprintf("/api/jobs/apply/%d", jobID), tok, gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/analytics/dashboard", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ua models.UserAnalytics
	decodeBody(t, w, &ua)
	assert.Equal(t, 1, ua.ApplicationStats.TotalApplications)
	assert.Equal(t, 1, ua.ApplicationStats.Pending)
}

func TestAnalyticsGenerateInsightsNoApplications(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")

	w := app.do(t, http.MethodPost, "/api/analytics/generate-insights", tok, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No applications found to generate insights")
}

func TestAnalyticsInsightsAndSuggestions(t *testing.T) {
	model := &fakeModel{response: `[{"content":"Broaden your search","category":"ApplicationStrategy"}]`}
	app := newTestApp(t, model)
	tok := app.registerUser(t, "Ada", "ada@example.com")
	jobID := createJob(t, app, tok, "Backend Engineer")
	w := app.do(t, http.MethodPost, fmt.Sprintf("/api/jobs/apply/%d", jobID), tok, gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/api/analytics/generate-insights", tok, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var insights []dtos.Insight
	decodeBody(t, w, &insights)
	require.Len(t, insights, 1)

	w = app.do(t, http.MethodGet, "/api/analytics/suggestions", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var suggestions []models.Suggestion
	decodeBody(t, w, &suggestions)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Broaden your search", suggestions[0].Content)

	w = app.do(t, http.MethodPut, "/api/analytics/suggestions/"+suggestions[0].ID, tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/analytics/suggestions", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &suggestions)
	assert.Empty(t, suggestions)

	w = app.do(t, http.MethodPut, "/api/analytics/suggestions/no-such-id", tok, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Suggestion not found")
}

func TestAnalyticsTrackJobMatchValidation(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")

	w := app.do(t, http.MethodPost, "/api/analytics/track-job-match", tok, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Job ID is required")
	assert.Contains(t, w.Body.String(), "Match percentage is required")

	jobID := createJob(t, app, tok, "Backend Engineer")
	w = app.do(t, http.MethodPost, "/api/analytics/track-job-match", tok, gin.H{
		"jobId": jobID, "matchPercentage": 82.5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var records []models.JobMatchRecord
	decodeBody(t, w, &records)
	require.Len(t, records, 1)
	assert.Equal(t, 82.5, records[0].MatchPercentage)
}

func TestAnalyticsTrackResponse(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")

	w := app.do(t, http.MethodPost, "/api/analytics/track-application-response", tok, gin.H{
		"applicationId": 1, "status": "Applied", "responseTime": 2.5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status")

	w = app.do(t, http.MethodPost, "/api/analytics/track-application-response", tok, gin.H{
		"applicationId": 1, "status": "Interview", "responseTime": 2.5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var records []models.ResponseTimeRecord
	decodeBody(t, w, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "Interview", records[0].Status)

	w = app.do(t, http.MethodGet, "/api/analytics/response-time", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &records)
	assert.Len(t, records, 1)
}

func TestAnalyticsTrackResumeView(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")

	w := app.do(t, http.MethodPost, "/api/analytics/track-resume-view/1", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		ResumeViews int `json:"resumeViews"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 1, resp.ResumeViews)
}

func TestAnalyticsSummaryFlow(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")
	jobID := createJob(t, app, tok, "Backend Engineer")
	w := app.do(t, http.MethodPost, fmt.Sprintf("/api/jobs/apply/%d", jobID), tok, gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/api/analytics/update-weekly-summary", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary models.PeriodSummary
	decodeBody(t, w, &summary)
	assert.Equal(t, 1, summary.ApplicationsSubmitted)

	w = app.do(t, http.MethodGet, "/api/analytics/applications/summary?period=weekly", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summaries []models.PeriodSummary
	decodeBody(t, w, &summaries)
	assert.Len(t, summaries, 1)

	w = app.do(t, http.MethodGet, "/api/analytics/applications/summary?period=monthly", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &summaries)
	assert.Empty(t, summaries)
}
