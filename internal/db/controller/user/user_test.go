package user

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

	require.NoError(t, db.SetupJoinTable(&models.User{}, "Roles", &models.UserRole{}))

	// Migrate the schema
	err = db.AutoMigrate(&models.Role{}, &models.User{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	admin := models.Role{Name: "admin", Description: "Administrator"}
	require.NoError(t, db.Create(&admin).Error)

	seeded := models.User{
		Email:  "admin@example.com",
		Name:   "Admin User",
		Active: true,
		Roles:  []models.Role{admin},
	}
	require.NoError(t, db.Create(&seeded).Error)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		email         string
		expectedError error
		expectedRoles int
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			email:         "admin@example.com",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty email",
			dbParam:       db,
			email:         "",
			expectedError: ErrUserEmailEmpty,
		},
		{
			name:          "user not found",
			dbParam:       db,
			email:         "ghost@example.com",
			expectedError: ErrUserNotFound,
		},
		{
			name:          "successful get with roles",
			dbParam:       db,
			email:         "admin@example.com",
			expectedRoles: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := Get(tc.dbParam, tc.email)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.email, u.Email)
			assert.Len(t, u.Roles, tc.expectedRoles)
		})
	}
}

func TestExists(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.User{Email: "demo@example.com", Active: true}).Error)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		email         string
		expectedError error
		expected      bool
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			email:         "demo@example.com",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty email",
			dbParam:       db,
			email:         "",
			expectedError: ErrUserEmailEmpty,
		},
		{
			name:     "absent user",
			dbParam:  db,
			email:    "ghost@example.com",
			expected: false,
		},
		{
			name:     "present user",
			dbParam:  db,
			email:    "demo@example.com",
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			present, err := Exists(tc.dbParam, tc.email)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, present)
		})
	}
}

func TestExistsQueryErrorIsNotAbsent(t *testing.T) {
	db := setupTestDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	present, err := Exists(db, "demo@example.com")
	require.Error(t, err)
	assert.False(t, present)
}

func TestGetAllAndCount(t *testing.T) {
	db := setupTestDB(t)

	count, err := Count(db)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	require.NoError(t, db.Create(&models.User{Email: "a@example.com"}).Error)
	require.NoError(t, db.Create(&models.User{Email: "b@example.com"}).Error)

	users, err := GetAll(db)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	count, err = Count(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
