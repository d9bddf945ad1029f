// job.go - Defines the Job model for the database

package models

import "time"

// Job posting statuses.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

type Job struct { // Job struct represents a job posting
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"not null;index" json:"category"`
	Location    string    `gorm:"not null;index" json:"location"`
	Salary      string    `gorm:"not null" json:"salary"`
	CompanyName string    `gorm:"not null" json:"company_name"`
	PostedBy    uint      `gorm:"not null;index" json:"posted_by"` // Recruiter who owns the posting
	Poster      User      `gorm:"foreignKey:PostedBy;constraint:OnDelete:CASCADE" json:"-"`
	Status      string    `gorm:"not null;default:'active'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
