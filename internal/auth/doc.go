// Package auth provides authentication and authorization support for the
// identity store.
//
// It defines the permission name constants the bootstrap seeds into the
// catalog, a Service answering permission questions through the
// user_roles/role_permissions join tables, and a LocalProvider for
// credential verification against the local database.
//
// Request-time enforcement is intentionally not wired here; collaborators
// decide where and how to gate their routes.
package auth
