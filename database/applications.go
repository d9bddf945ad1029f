// applications.go - Application persistence and the review workflow

package database

import (
	"go-job-portal/models"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

// ApplicationWithJob is an application row joined with a summary of the
// job it targets, for the job seeker's own listing.
type ApplicationWithJob struct {
	models.Application
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	JobStatus   string `gorm:"column:job_status" json:"job_status"`
}

// ApplicationWithApplicant is an application row joined with the
// applicant's identity, for the recruiter's review listing.
type ApplicationWithApplicant struct {
	models.Application
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
}

// CreateApplication submits an application for an active job. The
// composite unique index on (job_id, user_id) is the duplicate guard;
// the job-existence check only decides between not-found and conflict.
func CreateApplication(jobID, userID uint, coverLetter string) (*models.Application, error) {
	var job models.Job
	err := DB.Where("id = ? AND status = ?", jobID, models.JobStatusActive).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find active job")
	}

	app := models.Application{
		JobID:       jobID,
		UserID:      userID,
		CoverLetter: coverLetter,
		Status:      models.ApplicationPending,
	}
	if err := DB.Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, errors.Wrap(err, "create application")
	}
	return &app, nil
}

// ApplicationsByUser lists a job seeker's applications with job
// summaries, newest first.
func ApplicationsByUser(userID uint) ([]ApplicationWithJob, error) {
	var apps []ApplicationWithJob
	err := DB.Model(&models.Application{}).
		Select("applications.*, jobs.title, jobs.company_name, jobs.location, jobs.salary, jobs.status AS job_status").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.user_id = ?", userID).
		Order("applications.applied_at DESC").
		Scan(&apps).Error
	if err != nil {
		return nil, errors.Wrap(err, "list applications")
	}
	return apps, nil
}

// ApplicationsForJob lists the applications to one of the recruiter's
// own jobs. A job the recruiter does not own yields ErrNotFound.
func ApplicationsForJob(jobID, recruiterID uint) ([]ApplicationWithApplicant, error) {
	var job models.Job
	if err := DB.Scopes(ownedBy(recruiterID)).First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find owned job")
	}

	var apps []ApplicationWithApplicant
	err := DB.Model(&models.Application{}).
		Select("applications.*, users.name AS applicant_name, users.email AS applicant_email").
		Joins("JOIN users ON users.id = applications.user_id").
		Where("applications.job_id = ?", jobID).
		Order("applications.applied_at DESC").
		Scan(&apps).Error
	if err != nil {
		return nil, errors.Wrap(err, "list job applications")
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application to a new status, gated
// on the caller owning the parent job. Status membership is validated
// at the handler before this runs.
func UpdateApplicationStatus(appID, recruiterID uint, status string) error {
	var app models.Application
	err := DB.Model(&models.Application{}).
		Select("applications.*").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.id = ? AND jobs.posted_by = ?", appID, recruiterID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(err, "find owned application")
	}

	if err := DB.Model(&models.Application{}).Where("id = ?", app.ID).
		Update("status", status).Error; err != nil {
		return errors.Wrap(err, "update application status")
	}
	return nil
}
