// application.go - Defines the Application model for the database

package models

import "time"

// Application statuses. Any value may move to any other; the set itself
// is the only constraint.
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

type Application struct { // Application links a job seeker to a job
	ID          uint      `gorm:"primaryKey" json:"id"`
	JobID       uint      `gorm:"not null;uniqueIndex:idx_applications_job_user" json:"job_id"` // One application per (job, user)
	Job         Job       `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_applications_job_user" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
	Status      string    `gorm:"not null;default:'pending'" json:"status"`
	AppliedAt   time.Time `gorm:"autoCreateTime" json:"applied_at"`
}

// ValidApplicationStatus reports whether status belongs to the four-value set.
func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}
