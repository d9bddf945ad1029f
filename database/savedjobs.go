// savedjobs.go - Saved-job bookmarks

package database

import (
	"time"

	"go-job-portal/models"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

// SavedJobWithJob is a bookmark joined with the full job row.
type SavedJobWithJob struct {
	models.Job
	SavedAt time.Time `json:"saved_at"`
}

// SaveJob bookmarks a job for a job seeker. The job may have any
// status; only its existence matters. Duplicates fail on the composite
// unique index.
func SaveJob(jobID, userID uint) error {
	var job models.Job
	if err := DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(err, "find job")
	}

	saved := models.SavedJob{JobID: jobID, UserID: userID}
	if err := DB.Create(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return errors.Wrap(err, "save job")
	}
	return nil
}

// SavedJobsByUser lists a job seeker's bookmarked jobs, most recently
// saved first.
func SavedJobsByUser(userID uint) ([]SavedJobWithJob, error) {
	var jobs []SavedJobWithJob
	err := DB.Model(&models.SavedJob{}).
		Select("jobs.*, saved_jobs.saved_at").
		Joins("JOIN jobs ON jobs.id = saved_jobs.job_id").
		Where("saved_jobs.user_id = ?", userID).
		Order("saved_jobs.saved_at DESC").
		Scan(&jobs).Error
	if err != nil {
		return nil, errors.Wrap(err, "list saved jobs")
	}
	return jobs, nil
}

// UnsaveJob removes a bookmark. Deleting a bookmark that does not
// exist surfaces as ErrNotFound via the affected-row count.
func UnsaveJob(jobID, userID uint) error {
	res := DB.Where("job_id = ? AND user_id = ?", jobID, userID).Delete(&models.SavedJob{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "unsave job")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
