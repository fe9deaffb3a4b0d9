// Package permission provides query operations for the permission catalog.
package permission

import (
	"errors"

	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/db/models"
)

const (
	nameQueryPattern   = "name = ?"
	nameInQueryPattern = "name IN ?"
)

var (
	// ErrPermissionNotFound is returned when a permission is not found.
	ErrPermissionNotFound = errors.New("permission not found")
	// ErrPermissionNameEmpty is returned when querying a permission with an empty name.
	ErrPermissionNameEmpty = errors.New("permission name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a permission by its name.
func Get(db *gorm.DB, name string) (*models.Permission, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrPermissionNameEmpty
	}

	var perm models.Permission
	result := db.Where(nameQueryPattern, name).First(&perm)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPermissionNotFound
		}
		return nil, result.Error
	}

	return &perm, nil
}

// GetAll retrieves the whole permission catalog.
func GetAll(db *gorm.DB) ([]models.Permission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var perms []models.Permission
	result := db.Find(&perms)
	if result.Error != nil {
		return nil, result.Error
	}

	return perms, nil
}

// GetByNames retrieves the permissions whose name appears in names.
// Names without a matching catalog entry are not reported; the result
// may therefore be shorter than the input.
func GetByNames(db *gorm.DB, names []string) ([]models.Permission, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if len(names) == 0 {
		return []models.Permission{}, nil
	}

	var perms []models.Permission
	result := db.Where(nameInQueryPattern, names).Find(&perms)
	if result.Error != nil {
		return nil, result.Error
	}

	return perms, nil
}

// Count returns the number of permissions in the catalog.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.Permission{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
