package handlers

import (
	"github.com/dhruvkp2310/resume-pilot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Resumes      *ResumeHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
	Analytics    *AnalyticsHandler
	Matching     *MatchingHandler
	AI           *AIHandler
	Admin        *AdminHandler
	JWTSecret    string
}

// Register mounts the full /api route table on the engine.
func (h Handlers) Register(r *gin.Engine) {
	auth := middleware.RequireAuth(h.JWTSecret)
	admin := middleware.RequireAdmin(h.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		api.POST("/users", h.Auth.Register)

		api.GET("/auth", auth, h.Auth.Me)
		api.POST("/auth", h.Auth.Login)
		api.POST("/auth/register", h.Auth.Register)

		resumes := api.Group("/resumes", auth)
		{
			resumes.GET("", h.Resumes.List)
			resumes.POST("", h.Resumes.Create)
			resumes.GET("/:id", h.Resumes.Get)
			resumes.PUT("/:id", h.Resumes.Update)
			resumes.DELETE("/:id", h.Resumes.Delete)
			resumes.POST("/apply-optimization/:id", h.Resumes.ApplyOptimization)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", h.Jobs.List)
			jobs.POST("", auth, h.Jobs.Create)
			// Fixed segments before :id so gin doesn't swallow them.
			jobs.GET("/external/search", auth, h.Jobs.ExternalSearch)
			jobs.POST("/import", auth, h.Jobs.Import)
			jobs.GET("/applications/me", auth, h.Jobs.MyApplications)
			jobs.PUT("/applications/:id", auth, h.Jobs.UpdateApplication)
			jobs.POST("/apply/:id", auth, h.Jobs.Apply)
			jobs.GET("/:id", h.Jobs.Get)
			jobs.PUT("/:id", auth, h.Jobs.Update)
			jobs.DELETE("/:id", auth, h.Jobs.Delete)
		}

		applications := api.Group("/applications", auth)
		{
			applications.GET("", h.Applications.List)
			applications.POST("", h.Applications.Create)
			applications.GET("/stats/me", h.Applications.Stats)
			applications.GET("/:id", h.Applications.Get)
			applications.PUT("/:id", h.Applications.Update)
			applications.DELETE("/:id", h.Applications.Delete)
		}

		analytics := api.Group("/analytics", auth)
		{
			analytics.GET("/dashboard", h.Analytics.Dashboard)
			analytics.GET("/applications/summary", h.Analytics.Summary)
			analytics.GET("/suggestions", h.Analytics.Suggestions)
			analytics.PUT("/suggestions/:id", h.Analytics.MarkSuggestionRead)
			analytics.POST("/generate-insights", h.Analytics.GenerateInsights)
			analytics.POST("/update-weekly-summary", h.Analytics.UpdateWeeklySummary)
			analytics.POST("/update-monthly-summary", h.Analytics.UpdateMonthlySummary)
			analytics.POST("/track-resume-view/:resumeId", h.Analytics.TrackResumeView)
			analytics.POST("/track-job-match", h.Analytics.TrackJobMatch)
			analytics.POST("/track-application-response", h.Analytics.TrackResponse)
			analytics.GET("/response-time", h.Analytics.ResponseTime)
			analytics.GET("/job-match-data", h.Analytics.JobMatchData)
		}

		ai := api.Group("/ai", auth)
		{
			ai.POST("/optimize-experience", h.AI.OptimizeExperience)
			ai.POST("/suggest-skills", h.AI.SuggestSkills)
		}

		matching := api.Group("/matching", auth)
		{
			matching.POST("/resume-to-jobs", h.Matching.ResumeToJobs)
			matching.POST("/job-to-resumes", h.Matching.JobToResumes)
			matching.POST("/optimize-resume", h.Matching.OptimizeResume)
			matching.POST("/analyze-portfolio", h.Matching.AnalyzePortfolio)
		}

		adminRoutes := api.Group("/admin")
		{
			adminRoutes.POST("/login", h.Auth.AdminLogin)
			adminRoutes.GET("/users", admin, h.Admin.ListUsers)
			adminRoutes.DELETE("/users/:id", admin, h.Admin.DeleteUser)
			adminRoutes.GET("/resumes", admin, h.Admin.ListResumes)
			adminRoutes.GET("/applications", admin, h.Admin.ListApplications)
			adminRoutes.GET("/jobs", admin, h.Admin.ListJobs)
		}
	}
}
