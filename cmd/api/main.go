package main

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dhruvkp2310/resume-pilot/internal/config"
	"github.com/dhruvkp2310/resume-pilot/internal/database"
	"github.com/dhruvkp2310/resume-pilot/internal/handlers"
	"github.com/dhruvkp2310/resume-pilot/internal/services"
)

func main() {
	// .env is optional in deployment; real env vars win either way.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	db := database.Connect(cfg.DatabaseURL)

	userService := services.NewUserService(db)
	resumeService := services.NewResumeService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	aiService := services.NewAIService(cfg)
	analyticsService := services.NewAnalyticsService(db, aiService)

	// Create the admin account before serving requests.
	if err := userService.BootstrapAdmin(cfg.AdminEmail, cfg.AdminPass); err != nil {
		log.Println("Error initializing admin user:", err)
	}

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "x-auth-token"}
	r.Use(cors.New(corsConfig))

	h := handlers.Handlers{
		Auth:         handlers.NewAuthHandler(userService, cfg.JWTSecret),
		Resumes:      handlers.NewResumeHandler(resumeService),
		Jobs:         handlers.NewJobHandler(jobService, applicationService),
		Applications: handlers.NewApplicationHandler(applicationService),
		Analytics:    handlers.NewAnalyticsHandler(analyticsService),
		Matching:     handlers.NewMatchingHandler(resumeService, jobService, aiService),
		AI:           handlers.NewAIHandler(aiService),
		Admin:        handlers.NewAdminHandler(db),
		JWTSecret:    cfg.JWTSecret,
	}
	h.Register(r)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the AI Resume Builder API")
	})

	// Serve the built client with a catch-all fallback to its entry page.
	if cfg.ClientBuild != "" {
		r.Static("/static", filepath.Join(cfg.ClientBuild, "static"))
		r.NoRoute(func(c *gin.Context) {
			c.File(filepath.Join(cfg.ClientBuild, "index.html"))
		})
	}

	log.Println("Server starting on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
