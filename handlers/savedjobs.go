// savedjobs.go - Handles saved-job bookmark endpoints

package handlers

import (
	"net/http"

	"go-job-portal/database"
	"go-job-portal/logger"
	"go-job-portal/middleware"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type SaveJobInput struct { // Struct for saving a job
	JobID uint `json:"job_id" binding:"required"`
}

// SaveJob bookmarks a job for the authenticated job seeker.
func SaveJob(c *gin.Context) {
	var input SaveJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Job ID is required")
		return
	}

	seeker := middleware.CurrentUser(c)
	if err := database.SaveJob(input.JobID, seeker.ID); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			fail(c, http.StatusNotFound, "Job not found")
		case errors.Is(err, database.ErrDuplicate):
			fail(c, http.StatusBadRequest, "Job already saved")
		default:
			logger.Logger.Errorw("save job failed", "error", err)
			fail(c, http.StatusInternalServerError, "Error saving job")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job saved successfully",
	})
}

// SavedJobs lists the authenticated job seeker's bookmarks.
func SavedJobs(c *gin.Context) {
	seeker := middleware.CurrentUser(c)
	jobs, err := database.SavedJobsByUser(seeker.ID)
	if err != nil {
		logger.Logger.Errorw("list saved jobs failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error fetching saved jobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"savedJobs": jobs,
	})
}

// UnsaveJob removes a bookmark; removing one that is not there is 404.
func UnsaveJob(c *gin.Context) {
	jobID, err := parseID(c.Param("jobId"))
	if err != nil {
		fail(c, http.StatusNotFound, "Saved job not found")
		return
	}

	seeker := middleware.CurrentUser(c)
	if err := database.UnsaveJob(jobID, seeker.ID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			fail(c, http.StatusNotFound, "Saved job not found")
			return
		}
		logger.Logger.Errorw("unsave job failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error removing saved job")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job removed from saved list",
	})
}
