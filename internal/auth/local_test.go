package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onenet-identity/onenet-identity/internal/db/models"
)

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)

	disabled := models.User{
		Email:        "disabled@example.com",
		PasswordHash: models.HashPassword("secret"),
		Active:       false,
	}
	require.NoError(t, db.Create(&disabled).Error)

	provider := NewLocalProvider(db)

	testCases := []struct {
		name          string
		email         string
		password      string
		expectedError error
	}{
		{
			name:     "valid credentials",
			email:    "manager@example.com",
			password: "secret",
		},
		{
			name:          "wrong password",
			email:         "manager@example.com",
			password:      "nope",
			expectedError: ErrInvalidPassword,
		},
		{
			name:          "unknown user",
			email:         "ghost@example.com",
			password:      "secret",
			expectedError: ErrUserNotFound,
		},
		{
			name:          "disabled account",
			email:         "disabled@example.com",
			password:      "secret",
			expectedError: ErrUserAccountDisabled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := provider.Authenticate(tc.email, tc.password)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.email, u.Email)
		})
	}
}

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)

	provider := NewLocalProvider(db)

	u, err := provider.CreateUser("new@example.com", "New User", "password", nil)
	require.NoError(t, err)
	assert.True(t, u.Active)
	assert.NotEqual(t, "password", u.PasswordHash, "credential must be stored hashed")

	// duplicate email is rejected
	_, err = provider.CreateUser("new@example.com", "Other", "password", nil)
	require.ErrorIs(t, err, ErrUserEmailExists)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	u := seedFixture(t, db)

	provider := NewLocalProvider(db)

	require.ErrorIs(t, provider.ChangePassword(u.ID, "wrong", "next"), ErrInvalidOldPassword)
	require.NoError(t, provider.ChangePassword(u.ID, "secret", "next"))

	_, err := provider.Authenticate(u.Email, "next")
	require.NoError(t, err)
}

func TestActivateDeactivate(t *testing.T) {
	db := setupTestDB(t)
	u := seedFixture(t, db)

	provider := NewLocalProvider(db)

	require.NoError(t, provider.DeactivateUser(u.ID))

	_, err := provider.Authenticate(u.Email, "secret")
	require.ErrorIs(t, err, ErrUserAccountDisabled)

	require.NoError(t, provider.ActivateUser(u.ID))

	_, err = provider.Authenticate(u.Email, "secret")
	require.NoError(t, err)
}
