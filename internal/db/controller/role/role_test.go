package role

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, db.SetupJoinTable(&models.Role{}, "Permissions", &models.RolePermission{}))

	// Migrate the schema
	err = db.AutoMigrate(&models.Permission{}, &models.Role{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	read := models.Permission{Name: "user:read", Category: "user_management"}
	create := models.Permission{Name: "user:create", Category: "user_management"}
	require.NoError(t, db.Create(&read).Error)
	require.NoError(t, db.Create(&create).Error)

	seeded := models.Role{
		Name:        "admin",
		Description: "Administrator",
		Permissions: []models.Permission{read, create},
	}
	require.NoError(t, db.Create(&seeded).Error)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		roleName      string
		expectedError error
		expectedPerms int
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			roleName:      "admin",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			roleName:      "",
			expectedError: ErrRoleNameEmpty,
		},
		{
			name:          "role not found",
			dbParam:       db,
			roleName:      "ghost",
			expectedError: ErrRoleNotFound,
		},
		{
			name:          "successful get with grants",
			dbParam:       db,
			roleName:      "admin",
			expectedPerms: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Get(tc.dbParam, tc.roleName)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.roleName, r.Name)
			assert.Len(t, r.Permissions, tc.expectedPerms)
		})
	}
}

func TestGetAllAndCount(t *testing.T) {
	db := setupTestDB(t)

	count, err := Count(db)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	require.NoError(t, db.Create(&models.Role{Name: "admin"}).Error)
	require.NoError(t, db.Create(&models.Role{Name: "user"}).Error)

	roles, err := GetAll(db)
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	count, err = Count(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
