package models

import "time"

// SeedState records the progress of a bootstrap run for one seed version.
// The row is upserted inside each stage transaction, so after a crash the
// last successfully committed stage is known and a partially seeded store
// can be told apart from an empty one.
type SeedState struct {
	// ID is the unique identifier for the seed state row.
	ID uint `gorm:"primaryKey"`
	// Version identifies the baseline data set (e.g., "baseline-v1").
	Version string `gorm:"unique;size:100;not null"`
	// Stage is the last stage that committed (permissions, roles or users).
	Stage string `gorm:"size:50;not null"`
	// CompletedAt is set when the final stage committed; nil while partial.
	CompletedAt *time.Time
	// CreatedAt is the timestamp when the row was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the row was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the SeedState model.
// This overrides GORM's default pluralized table naming.
func (SeedState) TableName() string {
	return "seed_states"
}
