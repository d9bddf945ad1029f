// jobs.go - Handles job CRUD endpoints

package handlers

import (
	"net/http"
	"strconv"

	"go-job-portal/database"
	"go-job-portal/logger"
	"go-job-portal/middleware"
	"go-job-portal/models"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type JobInput struct { // Struct for job create/update input
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Salary      string `json:"salary" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Status      string `json:"status"` // Update only; defaults to active
}

// ListJobs is the public job listing with optional category, location,
// search, and limit filters. Only active jobs appear.
func ListJobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit")) // Unparsable limit falls back to the default

	jobs, err := database.ListJobs(database.JobFilters{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
		Limit:    limit,
	})
	if err != nil {
		logger.Logger.Errorw("list jobs failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error fetching jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

// GetJob returns a single job of any status. Public.
func GetJob(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Job not found")
		return
	}

	job, err := database.JobByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			fail(c, http.StatusNotFound, "Job not found")
			return
		}
		logger.Logger.Errorw("get job failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error fetching job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

// CreateJob posts a new job owned by the authenticated recruiter.
func CreateJob(c *gin.Context) {
	var input JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}

	recruiter := middleware.CurrentUser(c)
	job := models.Job{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		Salary:      input.Salary,
		CompanyName: input.CompanyName,
	}
	if err := database.CreateJob(&job, recruiter.ID); err != nil {
		logger.Logger.Errorw("create job failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error creating job")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job posted successfully",
		"job":     job,
	})
}

// UpdateJob replaces a job's fields. Only the posting recruiter
// succeeds; anyone else sees 404.
func UpdateJob(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Job not found or you do not have permission to update it")
		return
	}

	var input JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}

	recruiter := middleware.CurrentUser(c)
	fields := models.Job{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		Salary:      input.Salary,
		CompanyName: input.CompanyName,
		Status:      input.Status,
	}
	if err := database.UpdateJob(id, recruiter.ID, &fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			fail(c, http.StatusNotFound, "Job not found or you do not have permission to update it")
			return
		}
		logger.Logger.Errorw("update job failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error updating job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job updated successfully",
	})
}

// DeleteJob removes a job and, through the cascade constraints, its
// applications and saved rows. Ownership-gated like UpdateJob.
func DeleteJob(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Job not found or you do not have permission to delete it")
		return
	}

	recruiter := middleware.CurrentUser(c)
	if err := database.DeleteJob(id, recruiter.ID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			fail(c, http.StatusNotFound, "Job not found or you do not have permission to delete it")
			return
		}
		logger.Logger.Errorw("delete job failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error deleting job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted successfully",
	})
}

// MyJobs lists the authenticated recruiter's postings with per-job
// application counts.
func MyJobs(c *gin.Context) {
	recruiter := middleware.CurrentUser(c)
	jobs, err := database.JobsByRecruiter(recruiter.ID)
	if err != nil {
		logger.Logger.Errorw("list recruiter jobs failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error fetching jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

// parseID parses a numeric path parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
