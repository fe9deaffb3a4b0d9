// Package seedstate tracks bootstrap progress per seed version.
package seedstate

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/db/models"
)

const (
	versionQueryPattern = "version = ?"
)

var (
	// ErrSeedStateNotFound is returned when no state row exists for a version.
	ErrSeedStateNotFound = errors.New("seed state not found")
	// ErrVersionEmpty is returned when the seed version is empty.
	ErrVersionEmpty = errors.New("seed version cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the seed state for a version.
func Get(db *gorm.DB, version string) (*models.SeedState, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if version == "" {
		return nil, ErrVersionEmpty
	}

	var state models.SeedState
	result := db.Where(versionQueryPattern, version).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSeedStateNotFound
		}
		return nil, result.Error
	}

	return &state, nil
}

// SetStage records the given stage as the last committed one for a version.
// The row is created on first use. Must run inside the stage transaction so
// the marker and the stage data commit together.
func SetStage(db *gorm.DB, version, stage string) error {
	if db == nil {
		return ErrDBNil
	}
	if version == "" {
		return ErrVersionEmpty
	}

	var state models.SeedState
	result := db.Where(versionQueryPattern, version).First(&state)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		state = models.SeedState{
			Version: version,
			Stage:   stage,
		}

		return db.Create(&state).Error
	}
	if result.Error != nil {
		return result.Error
	}

	state.Stage = stage

	return db.Save(&state).Error
}

// Complete marks the version as fully seeded.
func Complete(db *gorm.DB, version string) error {
	if db == nil {
		return ErrDBNil
	}
	if version == "" {
		return ErrVersionEmpty
	}

	now := time.Now().UTC()

	result := db.Model(&models.SeedState{}).
		Where(versionQueryPattern, version).
		Update("completed_at", &now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSeedStateNotFound
	}

	return nil
}
