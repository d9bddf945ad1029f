// users.go - User persistence

package database

import (
	"go-job-portal/models"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

// CreateUser inserts a new user. The unique index on email is the
// duplicate guard; a constraint violation comes back as ErrDuplicate.
func CreateUser(user *models.User) error {
	if err := DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return errors.Wrap(err, "create user")
	}
	return nil
}

// UserByEmailAndRole looks up a user for login. Email alone is not
// enough: the same email cannot exist twice, but the login form sends
// a role and a mismatch must fail like a bad password.
func UserByEmailAndRole(email, role string) (*models.User, error) {
	var user models.User
	if err := DB.Where("email = ? AND role = ?", email, role).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find user by email and role")
	}
	return &user, nil
}

// UserByID re-resolves the current user record for an authenticated
// request. Tokens issued for since-deleted accounts fail here.
func UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find user by id")
	}
	return &user, nil
}
