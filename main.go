// main.go - Entry point for the job portal API server

package main

import (
	"go-job-portal/config"
	"go-job-portal/database"
	"go-job-portal/handlers"
	"go-job-portal/logger"
	"go-job-portal/middleware"
	"go-job-portal/models"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// STEP 1: Load configuration and connect the database
	_ = godotenv.Load()
	cfg := config.Load()

	if err := logger.Initialize(cfg.Development()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := database.Connect(cfg.DBPath, cfg.DBMaxConns); err != nil {
		logger.Logger.Fatalw("database connection failed", "error", err)
	}

	// STEP 2: Create the router and register routes
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery(cfg.Development()))

	// The frontend is served from another origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	registerRoutes(r)

	// STEP 3: Start the web server
	logger.Logger.Infow("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Logger.Fatalw("server failed", "error", err)
	}
}

// registerRoutes wires every endpoint with its auth and role gates.
// Public reads carry no middleware; every mutation runs
// Auth -> RequireRole, and ownership is checked inside the repository.
func registerRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Authentication (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// Jobs
	jobs := api.Group("/jobs")
	{
		jobs.GET("", handlers.ListJobs)
		jobs.GET("/recruiter/my-jobs",
			middleware.Auth(), middleware.RequireRole(models.RoleRecruiter), handlers.MyJobs)
		jobs.GET("/:id", handlers.GetJob)
		jobs.POST("",
			middleware.Auth(), middleware.RequireRole(models.RoleRecruiter), handlers.CreateJob)
		jobs.PUT("/:id",
			middleware.Auth(), middleware.RequireRole(models.RoleRecruiter), handlers.UpdateJob)
		jobs.DELETE("/:id",
			middleware.Auth(), middleware.RequireRole(models.RoleRecruiter), handlers.DeleteJob)
	}

	// Applications
	applications := api.Group("/applications")
	applications.Use(middleware.Auth())
	{
		applications.POST("",
			middleware.RequireRole(models.RoleJobSeeker), handlers.Apply)
		applications.GET("/my-applications",
			middleware.RequireRole(models.RoleJobSeeker), handlers.MyApplications)
		applications.GET("/job/:jobId",
			middleware.RequireRole(models.RoleRecruiter), handlers.JobApplications)
		applications.PUT("/:id/status",
			middleware.RequireRole(models.RoleRecruiter), handlers.UpdateApplicationStatus)
	}

	// Saved jobs (job seekers only)
	saved := api.Group("/saved-jobs")
	saved.Use(middleware.Auth(), middleware.RequireRole(models.RoleJobSeeker))
	{
		saved.POST("", handlers.SaveJob)
		saved.GET("", handlers.SavedJobs)
		saved.DELETE("/:jobId", handlers.UnsaveJob)
	}

	// Health check
	api.GET("/health", handlers.Health)

	// Unknown routes
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})
}
