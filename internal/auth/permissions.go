package auth

// Permission constants define the available permissions in the system.
// These are used for role-based access control (RBAC) and match the
// catalog the bootstrap seeds into the permissions table.
const (
	// PermUserCreate allows creating new users.
	PermUserCreate = "user:create"
	// PermUserRead allows viewing user information.
	PermUserRead = "user:read"
	// PermUserUpdate allows updating users.
	PermUserUpdate = "user:update"
	// PermUserDelete allows deleting users.
	PermUserDelete = "user:delete"

	// PermWalletRead allows viewing wallet information.
	PermWalletRead = "wallet:read"
	// PermWalletTransfer allows performing wallet transfers.
	PermWalletTransfer = "wallet:transfer"

	// PermRoleRead allows viewing roles.
	PermRoleRead = "role:read"
	// PermRoleCreate allows creating roles.
	PermRoleCreate = "role:create"
	// PermRoleAssign allows assigning roles to users.
	PermRoleAssign = "role:assign"

	// PermAdminPanel allows access to the admin panel.
	PermAdminPanel = "admin:panel"
	// PermRiskConsole allows access to the risk console.
	PermRiskConsole = "risk:console"
)
