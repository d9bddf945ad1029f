// savedjob.go - Defines the SavedJob bookmark model

package models

import "time"

type SavedJob struct { // SavedJob bookmarks a job for a job seeker
	ID      uint      `gorm:"primaryKey" json:"id"`
	JobID   uint      `gorm:"not null;uniqueIndex:idx_saved_jobs_job_user" json:"job_id"` // One bookmark per (job, user)
	Job     Job       `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_saved_jobs_job_user" json:"user_id"`
	User    User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SavedAt time.Time `gorm:"autoCreateTime" json:"saved_at"`
}
