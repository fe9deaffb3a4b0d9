package seed

import (
	"github.com/onenet-identity/onenet-identity/internal/auth"
)

// PermissionSeed is one entry of the static permission catalog.
type PermissionSeed struct {
	Name        string `validate:"required"`
	Description string
	Category    string `validate:"required"`
}

// RoleSeed describes a role to create and the permission names to grant it.
type RoleSeed struct {
	Name        string `validate:"required"`
	Description string
	// Permissions lists the catalog names to grant. A nil list grants the
	// full catalog. Names without a catalog entry are dropped.
	Permissions []string
}

// UserSeed describes a user account to create and the role names to assign.
type UserSeed struct {
	Email    string `validate:"required,email"`
	Name     string
	Password string `validate:"required"`
	Active   bool
	// CreatedDaysAgo backdates the account's creation timestamp relative
	// to the wall clock at seed time.
	CreatedDaysAgo int `validate:"min=0"`
	// Roles lists the role names to assign. Names without a created role
	// are dropped.
	Roles []string
}

// Data is the full baseline data set for one bootstrap run.
type Data struct {
	// SentinelEmail is the user whose presence marks the store as seeded.
	SentinelEmail string `validate:"required,email"`
	// Version keys the seed_states record for this data set.
	Version string `validate:"required"`

	Permissions []PermissionSeed `validate:"min=1,dive"`
	Roles       []RoleSeed       `validate:"dive"`
	Users       []UserSeed       `validate:"dive"`
}

// Default seed account credentials. Overridable via config; always stored
// argon2id hashed.
const (
	DefaultAdminPassword = "admin123"
	DefaultDemoPassword  = "demo123"
)

// DefaultVersion identifies the built-in baseline data set.
const DefaultVersion = "baseline-v1"

// SentinelEmail is the default existence marker account.
const SentinelEmail = "admin@example.com"

// Defaults returns the built-in baseline: the 11-entry permission catalog,
// the admin/manager/user roles and the two seed accounts.
func Defaults() Data {
	return Data{
		SentinelEmail: SentinelEmail,
		Version:       DefaultVersion,
		Permissions: []PermissionSeed{
			{Name: auth.PermUserCreate, Description: "Create new users", Category: "user_management"},
			{Name: auth.PermUserRead, Description: "View user information", Category: "user_management"},
			{Name: auth.PermUserUpdate, Description: "Update users", Category: "user_management"},
			{Name: auth.PermUserDelete, Description: "Delete users", Category: "user_management"},
			{Name: auth.PermWalletRead, Description: "View wallet information", Category: "wallet"},
			{Name: auth.PermWalletTransfer, Description: "Perform wallet transfers", Category: "wallet"},
			{Name: auth.PermRoleRead, Description: "View roles", Category: "role_management"},
			{Name: auth.PermRoleCreate, Description: "Create roles", Category: "role_management"},
			{Name: auth.PermRoleAssign, Description: "Assign roles to users", Category: "role_management"},
			{Name: auth.PermAdminPanel, Description: "Access admin panel", Category: "admin"},
			{Name: auth.PermRiskConsole, Description: "Access risk console", Category: "admin"},
		},
		Roles: []RoleSeed{
			{
				Name:        "admin",
				Description: "Administrator with full access",
				// nil grants the full catalog
			},
			{
				Name:        "manager",
				Description: "Manager with elevated permissions",
				Permissions: []string{
					auth.PermUserRead,
					auth.PermUserCreate,
					auth.PermUserUpdate,
					auth.PermWalletRead,
					auth.PermWalletTransfer,
					auth.PermRoleRead,
				},
			},
			{
				Name:        "user",
				Description: "Standard user role",
				Permissions: []string{
					auth.PermUserRead,
					auth.PermWalletRead,
					auth.PermWalletTransfer,
				},
			},
		},
		Users: []UserSeed{
			{
				Email:          "admin@example.com",
				Name:           "Admin User",
				Password:       DefaultAdminPassword,
				Active:         true,
				CreatedDaysAgo: 60,
				Roles:          []string{"admin", "manager"},
			},
			{
				Email:          "demo@example.com",
				Name:           "Demo User",
				Password:       DefaultDemoPassword,
				Active:         true,
				CreatedDaysAgo: 30,
				Roles:          []string{"user"},
			},
		},
	}
}
