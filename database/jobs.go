// jobs.go - Job persistence and the ownership gate for job mutations

package database

import (
	"strings"

	"go-job-portal/models"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

// DefaultJobLimit caps job listings when the caller does not ask for a
// specific limit.
const DefaultJobLimit = 50

// JobFilters narrows the public job listing.
type JobFilters struct {
	Category string
	Location string
	Search   string // Substring match on title, description, company name
	Limit    int    // <= 0 means DefaultJobLimit
}

// JobWithPoster is a job row joined with the name of the recruiter who
// posted it.
type JobWithPoster struct {
	models.Job
	PostedByName string `json:"posted_by_name"`
}

// JobWithCount is a job row joined with its application count, used on
// the recruiter dashboard.
type JobWithCount struct {
	models.Job
	ApplicationCount int64 `json:"application_count"`
}

// ownedBy restricts a job query to rows posted by the given recruiter.
// Every ownership-gated mutation goes through this scope, so a job the
// caller does not own looks exactly like a job that does not exist.
func ownedBy(recruiterID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posted_by = ?", recruiterID)
	}
}

// CreateJob inserts a new posting owned by the given recruiter.
// Status defaults to active.
func CreateJob(job *models.Job, recruiterID uint) error {
	job.PostedBy = recruiterID
	job.Status = models.JobStatusActive
	if err := DB.Create(job).Error; err != nil {
		return errors.Wrap(err, "create job")
	}
	return nil
}

// ListJobs returns active jobs matching the filters, newest first.
func ListJobs(f JobFilters) ([]JobWithPoster, error) {
	q := DB.Model(&models.Job{}).
		Select("jobs.*, users.name AS posted_by_name").
		Joins("LEFT JOIN users ON users.id = jobs.posted_by").
		Where("jobs.status = ?", models.JobStatusActive)

	if f.Category != "" {
		q = q.Where("jobs.category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("jobs.location = ?", f.Location)
	}
	if f.Search != "" {
		term := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(jobs.title) LIKE ? OR LOWER(jobs.description) LIKE ? OR LOWER(jobs.company_name) LIKE ?",
			term, term, term,
		)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultJobLimit
	}

	var jobs []JobWithPoster
	err := q.Order("jobs.created_at DESC").Limit(limit).Scan(&jobs).Error
	if err != nil {
		return nil, errors.Wrap(err, "list jobs")
	}
	return jobs, nil
}

// JobByID returns a single job of any status, with its poster's name.
func JobByID(id uint) (*JobWithPoster, error) {
	var job JobWithPoster
	err := DB.Model(&models.Job{}).
		Select("jobs.*, users.name AS posted_by_name").
		Joins("LEFT JOIN users ON users.id = jobs.posted_by").
		Where("jobs.id = ?", id).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find job")
	}
	return &job, nil
}

// UpdateJob replaces the descriptive fields and status of a job, but
// only when the recruiter owns it.
func UpdateJob(id, recruiterID uint, fields *models.Job) error {
	var job models.Job
	if err := DB.Scopes(ownedBy(recruiterID)).First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return errors.Wrap(err, "find owned job")
	}

	status := fields.Status
	if status == "" {
		status = models.JobStatusActive
	}

	updates := map[string]interface{}{
		"title":        fields.Title,
		"description":  fields.Description,
		"category":     fields.Category,
		"location":     fields.Location,
		"salary":       fields.Salary,
		"company_name": fields.CompanyName,
		"status":       status,
	}
	if err := DB.Model(&job).Updates(updates).Error; err != nil {
		return errors.Wrap(err, "update job")
	}
	return nil
}

// DeleteJob removes a job the recruiter owns. Applications and saved
// rows go with it via the cascade constraints.
func DeleteJob(id, recruiterID uint) error {
	res := DB.Scopes(ownedBy(recruiterID)).Delete(&models.Job{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete job")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// JobsByRecruiter lists every job a recruiter posted, each with its
// application count. Jobs with zero applications still appear.
func JobsByRecruiter(recruiterID uint) ([]JobWithCount, error) {
	var jobs []JobWithCount
	err := DB.Model(&models.Job{}).
		Select("jobs.*, COUNT(applications.id) AS application_count").
		Joins("LEFT JOIN applications ON applications.job_id = jobs.id").
		Where("jobs.posted_by = ?", recruiterID).
		Group("jobs.id").
		Order("jobs.created_at DESC").
		Scan(&jobs).Error
	if err != nil {
		return nil, errors.Wrap(err, "list recruiter jobs")
	}
	return jobs, nil
}
