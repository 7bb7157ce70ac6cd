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

func TestApplicationCreateValidation(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")

	w := app.do(t, http.MethodPost, "/api/applications", tok, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Job is required")
	assert.Contains(t, w.Body.String(), "Resume is required")
}

func TestApplicationCreateWithResume(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")
	jobID := createJob(t, app, tok, "Backend Engineer")
	resumeID := createResume(t, app, tok)

	w := app.do(t, http.MethodPost, "/api/applications", tok, gin.H{
		"job": jobID, "resume": resumeID, "coverLetter": "Dear team",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created models.Application
	decodeBody(t, w, &created)
	assert.Equal(t, models.StatusApplied, created.Status)

	// Duplicate apply.
	w = app.do(t, http.MethodPost, "/api/applications", tok, gin.H{
		"job": jobID, "resume": resumeID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You have already applied for this job")
}

func TestApplicationCreateRejectsForeignResume(t *testing.T) {
	app := newTestApp(t, nil)
	owner := app.registerUser(t, "Ada", "ada@example.com")
	other := app.registerUser(t, "Eve", "eve@example.com")
	jobID := createJob(t, app, owner, "Backend Engineer")
	resumeID := createResume(t, app, owner)

	w := app.do(t, http.MethodPost, "/api/applications", other, gin.H{
		"job": jobID, "resume": resumeID,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized to use this resume")
}

func TestApplicationCreateMissingReferences(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")
	resumeID := createResume(t, app, tok)

	w := app.do(t, http.MethodPost, "/api/applications", tok, gin.H{
		"job": 9999, "resume": resumeID,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Job not found")

	jobID := createJob(t, app, tok, "Backend Engineer")
	w = app.do(t, http.MethodPost, "/api/applications", tok, gin.H{
		"job": jobID, "resume": 9999,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Resume not found")
}

func TestApplicationStatsEndpoint(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")
	resumeID := createResume(t, app, tok)

	for i := 0; i < 3; i++ {
		jobID := createJob(t, app, tok, fmt.Sprintf("Job %d", i))
		w := app.do(t, http.MethodPost, "/api/applications", tok, gin.H{
			"job": jobID, "resume": resumeID,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := app.do(t, http.MethodGet, "/api/applications/stats/me", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats dtos.ApplicationStats
	decodeBody(t, w, &stats)
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 3, stats.Applied)
	assert.Zero(t, stats.Offer)
}

func TestApplicationGetAndDelete(t *testing.T) {
	app := newTestApp(t, nil)
	tok := app.registerUser(t, "Ada", "ada@example.com")
	other := app.registerUser(t, "Eve", "eve@example.com")
	jobID := createJob(t, app, tok, "Backend Engineer")
	resumeID := createResume(t, app, tok)

	w := app.do(t, http.MethodPost, "/api/applications", tok, gin.H{
		"job": jobID, "resume": resumeID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created models.Application
	decodeBody(t, w, &created)

	w = app.do(t, http.MethodGet, fmt.Sprintf("/api/applications/%d", created.ID), other, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodGet, fmt.Sprintf("/api/applications/%d", created.ID), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Application
	decodeBody(t, w, &got)
	require.NotNil(t, got.Job)
	assert.Equal(t, "Backend Engineer", got.Job.Title)

	w = app.do(t, http.MethodDelete, fmt.Sprintf("/api/applications/%d", created.ID), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Application removed")

	w = app.do(t, http.MethodGet, fmt.Sprintf("/api/applications/%d", created.ID), tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
