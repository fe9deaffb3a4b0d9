package models

import "time"

// Permission represents a specific permission in the authorization system.
// Permissions are atomic capability grants in resource:action format and are
// assigned to roles, which are then assigned to users. The catalog is created
// once by the bootstrap and is immutable afterwards.
type Permission struct {
	// ID is the unique identifier for the permission.
	ID uint `gorm:"primaryKey"`
	// Name is the unique permission identifier in resource:action format (e.g., "user:create").
	Name string `gorm:"unique;size:100;not null"`
	// Description provides a human-readable explanation of what this permission grants.
	Description string `gorm:"size:255"`
	// Category groups related permissions (e.g., "user_management", "wallet").
	Category string `gorm:"size:100;not null"`
	// CreatedAt is the timestamp when the permission was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the permission was last updated (managed by GORM).
	UpdatedAt time.Time
	// Roles are the roles this permission is granted to.
	Roles []Role `gorm:"many2many:role_permissions"`
}

// TableName specifies the database table name for the Permission model.
// This overrides GORM's default pluralized table naming.
func (Permission) TableName() string {
	return "permissions"
}
