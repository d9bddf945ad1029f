// applications.go - Handles job application endpoints

package handlers

import (
	"net/http"

	"go-job-portal/database"
	"go-job-portal/logger"
	"go-job-portal/middleware"
	"go-job-portal/models"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type ApplyInput struct { // Struct for application submission
	JobID       uint   `json:"job_id" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

type StatusInput struct { // Struct for status updates
	Status string `json:"status" binding:"required"`
}

// Apply submits an application to an active job on behalf of the
// authenticated job seeker. A second application to the same job is a
// conflict, enforced by the storage-layer unique index.
func Apply(c *gin.Context) {
	var input ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Job ID is required")
		return
	}

	seeker := middleware.CurrentUser(c)
	app, err := database.CreateApplication(input.JobID, seeker.ID, input.CoverLetter)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			fail(c, http.StatusNotFound, "Job not found or not available")
		case errors.Is(err, database.ErrDuplicate):
			fail(c, http.StatusBadRequest, "You have already applied for this job")
		default:
			logger.Logger.Errorw("apply failed", "error", err)
			fail(c, http.StatusInternalServerError, "Error submitting application")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Application submitted successfully",
		"application": app,
	})
}

// MyApplications lists the authenticated job seeker's applications with
// job summaries.
func MyApplications(c *gin.Context) {
	seeker := middleware.CurrentUser(c)
	apps, err := database.ApplicationsByUser(seeker.ID)
	if err != nil {
		logger.Logger.Errorw("list applications failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error fetching applications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": apps,
	})
}

// JobApplications lists the applications to one of the recruiter's own
// jobs, including each applicant's name and email.
func JobApplications(c *gin.Context) {
	jobID, err := parseID(c.Param("jobId"))
	if err != nil {
		fail(c, http.StatusNotFound, "Job not found or access denied")
		return
	}

	recruiter := middleware.CurrentUser(c)
	apps, err := database.ApplicationsForJob(jobID, recruiter.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			fail(c, http.StatusNotFound, "Job not found or access denied")
			return
		}
		logger.Logger.Errorw("list job applications failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error fetching applications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": apps,
	})
}

// UpdateApplicationStatus moves an application through the review
// workflow. Status membership is checked before the ownership gate, so
// an invalid value is a 400 regardless of who asks.
func UpdateApplicationStatus(c *gin.Context) {
	appID, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Application not found or access denied")
		return
	}

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil || !models.ValidApplicationStatus(input.Status) {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}

	recruiter := middleware.CurrentUser(c)
	if err := database.UpdateApplicationStatus(appID, recruiter.ID, input.Status); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			fail(c, http.StatusNotFound, "Application not found or access denied")
			return
		}
		logger.Logger.Errorw("update application status failed", "error", err)
		fail(c, http.StatusInternalServerError, "Error updating application status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application status updated successfully",
	})
}
