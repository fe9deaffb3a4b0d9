package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/auth"
	permissionctl "github.com/onenet-identity/onenet-identity/internal/db/controller/permission"
	roctl "github.com/onenet-identity/onenet-identity/internal/db/controller/role"
	"github.com/onenet-identity/onenet-identity/internal/db/controller/seedstate"
	userctl "github.com/onenet-identity/onenet-identity/internal/db/controller/user"
	"github.com/onenet-identity/onenet-identity/internal/db/models"
	"github.com/onenet-identity/onenet-identity/internal/seed"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, db.SetupJoinTable(&models.Role{}, "Permissions", &models.RolePermission{}))
	require.NoError(t, db.SetupJoinTable(&models.User{}, "Roles", &models.UserRole{}))

	// Migrate the schema
	err = db.AutoMigrate(
		&models.Permission{},
		&models.Role{},
		&models.User{},
		&models.SeedState{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func counts(t *testing.T, db *gorm.DB) (perms, roles, users int64) {
	t.Helper()

	var err error

	perms, err = permissionctl.Count(db)
	require.NoError(t, err)

	roles, err = roctl.Count(db)
	require.NoError(t, err)

	users, err = userctl.Count(db)
	require.NoError(t, err)

	return perms, roles, users
}

func TestRunOnEmptyStore(t *testing.T) {
	db := setupTestDB(t)

	status, err := seed.Run(context.Background(), db, seed.Defaults())
	require.NoError(t, err)
	assert.Equal(t, seed.StatusSeeded, status)

	perms, roles, users := counts(t, db)
	assert.EqualValues(t, 11, perms)
	assert.EqualValues(t, 3, roles)
	assert.EqualValues(t, 2, users)

	// role grants
	grantCounts := map[string]int{
		"admin":   11,
		"manager": 6,
		"user":    3,
	}

	for name, want := range grantCounts {
		r, err := roctl.Get(db, name)
		require.NoError(t, err, "role %s should exist", name)
		assert.Len(t, r.Permissions, want, "role %s grant count", name)
	}

	// user role assignments
	admin, err := userctl.Get(db, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, admin.Active)
	assert.ElementsMatch(t, []string{"admin", "manager"}, roleNames(admin.Roles))

	demo, err := userctl.Get(db, "demo@example.com")
	require.NoError(t, err)
	assert.True(t, demo.Active)
	assert.ElementsMatch(t, []string{"user"}, roleNames(demo.Roles))

	// seed state marks the run complete
	state, err := seedstate.Get(db, seed.DefaultVersion)
	require.NoError(t, err)
	assert.Equal(t, seed.StageUsers, state.Stage)
	assert.NotNil(t, state.CompletedAt)
}

func TestRunBackdatesUserCreation(t *testing.T) {
	db := setupTestDB(t)

	_, err := seed.Run(context.Background(), db, seed.Defaults())
	require.NoError(t, err)

	admin, err := userctl.Get(db, "admin@example.com")
	require.NoError(t, err)

	demo, err := userctl.Get(db, "demo@example.com")
	require.NoError(t, err)

	wantAdmin := time.Now().UTC().AddDate(0, 0, -60)
	wantDemo := time.Now().UTC().AddDate(0, 0, -30)

	assert.WithinDuration(t, wantAdmin, admin.CreatedAt, time.Minute)
	assert.WithinDuration(t, wantDemo, demo.CreatedAt, time.Minute)
}

func TestRunHashesCredentials(t *testing.T) {
	db := setupTestDB(t)

	_, err := seed.Run(context.Background(), db, seed.Defaults())
	require.NoError(t, err)

	admin, err := userctl.Get(db, "admin@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, seed.DefaultAdminPassword, admin.PasswordHash)
	assert.True(t, admin.VerifyPassword(seed.DefaultAdminPassword))
	assert.False(t, admin.VerifyPassword("wrong"))
}

func TestManagerRoleResolvesExactSubset(t *testing.T) {
	db := setupTestDB(t)

	_, err := seed.Run(context.Background(), db, seed.Defaults())
	require.NoError(t, err)

	manager, err := roctl.Get(db, "manager")
	require.NoError(t, err)

	want := []string{
		auth.PermUserRead,
		auth.PermUserCreate,
		auth.PermUserUpdate,
		auth.PermWalletRead,
		auth.PermWalletTransfer,
		auth.PermRoleRead,
	}

	var got []string
	for _, p := range manager.Permissions {
		got = append(got, p.Name)
	}

	assert.ElementsMatch(t, want, got)
}

func TestRunIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	status, err := seed.Run(context.Background(), db, seed.Defaults())
	require.NoError(t, err)
	require.Equal(t, seed.StatusSeeded, status)

	permsBefore, rolesBefore, usersBefore := counts(t, db)

	status, err = seed.Run(context.Background(), db, seed.Defaults())
	require.NoError(t, err)
	assert.Equal(t, seed.StatusSkipped, status)

	permsAfter, rolesAfter, usersAfter := counts(t, db)
	assert.Equal(t, permsBefore, permsAfter)
	assert.Equal(t, rolesBefore, rolesAfter)
	assert.Equal(t, usersBefore, usersAfter)
}

func TestRunSkipsWhenSentinelExists(t *testing.T) {
	db := setupTestDB(t)

	// A store with the sentinel account but nothing else is reported as
	// seeded: the guard asks nothing beyond the marker's presence.
	sentinel := models.User{Email: seed.SentinelEmail, Name: "Pre-existing", Active: true}
	require.NoError(t, db.Create(&sentinel).Error)

	status, err := seed.Run(context.Background(), db, seed.Defaults())
	require.NoError(t, err)
	assert.Equal(t, seed.StatusSkipped, status)

	perms, roles, users := counts(t, db)
	assert.EqualValues(t, 0, perms)
	assert.EqualValues(t, 0, roles)
	assert.EqualValues(t, 1, users)
}

func TestUnresolvedPermissionNamesAreDropped(t *testing.T) {
	db := setupTestDB(t)

	data := seed.Defaults()
	data.Roles = []seed.RoleSeed{
		{
			Name:        "auditor",
			Description: "Role with a typo in its grant list",
			Permissions: []string{auth.PermUserRead, "report:export"},
		},
	}
	data.Users = nil

	status, err := seed.Run(context.Background(), db, data)
	require.NoError(t, err)
	assert.Equal(t, seed.StatusSeeded, status)

	auditor, err := roctl.Get(db, "auditor")
	require.NoError(t, err)
	require.Len(t, auditor.Permissions, 1)
	assert.Equal(t, auth.PermUserRead, auditor.Permissions[0].Name)
}

func TestUnresolvedRoleNamesAreDropped(t *testing.T) {
	db := setupTestDB(t)

	data := seed.Defaults()
	data.Users = []seed.UserSeed{
		{
			Email:    seed.SentinelEmail,
			Name:     "Admin User",
			Password: "secret",
			Active:   true,
			Roles:    []string{"admin", "ghost"},
		},
	}

	status, err := seed.Run(context.Background(), db, data)
	require.NoError(t, err)
	assert.Equal(t, seed.StatusSeeded, status)

	admin, err := userctl.Get(db, seed.SentinelEmail)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"admin"}, roleNames(admin.Roles))
}

func TestStageFailureKeepsEarlierCommits(t *testing.T) {
	db := setupTestDB(t)

	// Duplicate role names violate the unique constraint mid-stage; the
	// role transaction rolls back while the committed permission catalog
	// stays in place.
	data := seed.Defaults()
	data.Roles = []seed.RoleSeed{
		{Name: "dup", Description: "first"},
		{Name: "dup", Description: "second"},
	}

	_, err := seed.Run(context.Background(), db, data)
	require.Error(t, err)

	perms, roles, users := counts(t, db)
	assert.EqualValues(t, 11, perms)
	assert.EqualValues(t, 0, roles)
	assert.EqualValues(t, 0, users)

	state, stateErr := seedstate.Get(db, seed.DefaultVersion)
	require.NoError(t, stateErr)
	assert.Equal(t, seed.StagePermissions, state.Stage)
	assert.Nil(t, state.CompletedAt)
}

func TestPartiallySeededStoreIsRefused(t *testing.T) {
	db := setupTestDB(t)

	data := seed.Defaults()
	data.Roles = []seed.RoleSeed{
		{Name: "dup"},
		{Name: "dup"},
	}

	_, err := seed.Run(context.Background(), db, data)
	require.Error(t, err)

	// Rerunning with good data must not duplicate the committed catalog.
	_, err = seed.Run(context.Background(), db, seed.Defaults())
	require.ErrorIs(t, err, seed.ErrPartialSeed)

	perms, _, _ := counts(t, db)
	assert.EqualValues(t, 11, perms)
}

func TestInvalidSeedDataIsRejected(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name   string
		mutate func(*seed.Data)
	}{
		{
			name:   "missing sentinel email",
			mutate: func(d *seed.Data) { d.SentinelEmail = "" },
		},
		{
			name:   "malformed sentinel email",
			mutate: func(d *seed.Data) { d.SentinelEmail = "not-an-email" },
		},
		{
			name:   "missing version",
			mutate: func(d *seed.Data) { d.Version = "" },
		},
		{
			name:   "empty catalog",
			mutate: func(d *seed.Data) { d.Permissions = nil },
		},
		{
			name: "user without password",
			mutate: func(d *seed.Data) {
				d.Users[0].Password = ""
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := seed.Defaults()
			tc.mutate(&data)

			_, err := seed.Run(context.Background(), db, data)
			require.ErrorIs(t, err, seed.ErrInvalidSeedData)

			perms, roles, users := counts(t, db)
			assert.EqualValues(t, 0, perms)
			assert.EqualValues(t, 0, roles)
			assert.EqualValues(t, 0, users)
		})
	}
}

func TestGuardErrorAbortsRun(t *testing.T) {
	db := setupTestDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = seed.Run(context.Background(), db, seed.Defaults())
	require.Error(t, err, "a failed existence check must never be read as absent")
}

func TestNilDBIsRejected(t *testing.T) {
	_, err := seed.Run(context.Background(), nil, seed.Defaults())
	require.ErrorIs(t, err, seed.ErrDBNil)
}

func roleNames(roles []models.Role) []string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}

	return names
}
