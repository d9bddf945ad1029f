// user.go - Defines the User model for the database

package models

import "time"

// Roles a user can register with. The role is fixed at registration.
const (
	RoleJobSeeker = "job_seeker"
	RoleRecruiter = "recruiter"
)

type User struct { // User struct represents a user in the database
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // Must be unique
	Password  string    `gorm:"not null" json:"-"`                 // Hashed, never serialized
	Role      string    `gorm:"not null" json:"role"`              // job_seeker or recruiter
	CreatedAt time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the two registrable roles.
func ValidRole(role string) bool {
	return role == RoleJobSeeker || role == RoleRecruiter
}
