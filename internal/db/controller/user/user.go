// Package user provides query operations for user accounts.
package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/db/models"
)

const (
	emailQueryPattern = "email = ?"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserEmailEmpty is returned when querying a user with an empty email.
	ErrUserEmailEmpty = errors.New("user email cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a user by email, including the assigned roles.
func Get(db *gorm.DB, email string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if email == "" {
		return nil, ErrUserEmailEmpty
	}

	var u models.User
	result := db.Preload("Roles").Where(emailQueryPattern, email).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &u, nil
}

// Exists reports whether a user with the given email is present.
// A query error is returned as such and must never be read as "absent".
func Exists(db *gorm.DB, email string) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}
	if email == "" {
		return false, ErrUserEmailEmpty
	}

	var u models.User
	result := db.Select("id").Where(emailQueryPattern, email).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}

	return true, nil
}

// GetAll retrieves all users including their assigned roles.
func GetAll(db *gorm.DB) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.User
	result := db.Preload("Roles").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// Count returns the number of user accounts.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.User{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
