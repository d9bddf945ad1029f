// helpers_test.go - Shared setup for handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"

	"go-job-portal/config"
	"go-job-portal/database"
	"go-job-portal/middleware"
	"go-job-portal/models"
	"go-job-portal/token"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// setupTestDB removes any existing test DB and creates a new one
func setupTestDB(path string) {
	_ = os.Remove(path)
	if err := database.Connect(path, 10); err != nil {
		panic(err)
	}
}

// setupRouter returns a Gin engine with the full API route table,
// mirroring the wiring in main.go
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", Register)
	auth.POST("/login", Login)

	jobs := api.Group("/jobs")
	jobs.GET("", ListJobs)
	jobs.GET("/recruiter/my-jobs",
		middleware.Auth(), middleware.RequireRole(models.RoleRecruiter), MyJobs)
	jobs.GET("/:id", GetJob)
	jobs.POST("",
		middleware.Auth(), middleware.RequireRole(models.RoleRecruiter), CreateJob)
	jobs.PUT("/:id",
		middleware.Auth(), middleware.RequireRole(models.RoleRecruiter), UpdateJob)
	jobs.DELETE("/:id",
		middleware.Auth(), middleware.RequireRole(models.RoleRecruiter), DeleteJob)

	applications := api.Group("/applications")
	applications.Use(middleware.Auth())
	applications.POST("", middleware.RequireRole(models.RoleJobSeeker), Apply)
	applications.GET("/my-applications", middleware.RequireRole(models.RoleJobSeeker), MyApplications)
	applications.GET("/job/:jobId", middleware.RequireRole(models.RoleRecruiter), JobApplications)
	applications.PUT("/:id/status", middleware.RequireRole(models.RoleRecruiter), UpdateApplicationStatus)

	saved := api.Group("/saved-jobs")
	saved.Use(middleware.Auth(), middleware.RequireRole(models.RoleJobSeeker))
	saved.POST("", SaveJob)
	saved.GET("", SavedJobs)
	saved.DELETE("/:jobId", UnsaveJob)

	api.GET("/health", Health)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	return r
}

// seedUser inserts a user directly and returns it with a signed token
func seedUser(name, email, role string) (models.User, string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.DefaultCost)
	user := models.User{Name: name, Email: email, Password: string(hash), Role: role}
	database.DB.Create(&user)

	cfg := config.Load()
	signed, _ := token.Issue(cfg.JWTSecret, user.ID, user.Role)
	return user, signed
}

// seedJob inserts an active job owned by the given recruiter
func seedJob(title, category, location, company string, recruiterID uint) models.Job {
	job := models.Job{
		Title:       title,
		Description: "Description for " + title,
		Category:    category,
		Location:    location,
		Salary:      "100000",
		CompanyName: company,
		PostedBy:    recruiterID,
		Status:      models.JobStatusActive,
	}
	database.DB.Create(&job)
	return job
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(r *gin.Engine, method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

// parseBody decodes a recorded JSON response body
func parseBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}
