// Package main provides the entry point for the OneNet identity service.
// It runs a role-based access control identity store backed by gorm and
// exposed through a Fiber web API. On every start the service bootstraps
// the database to a known-good baseline (permission catalog, roles with
// permission grants, seed user accounts) before accepting traffic. The
// same bootstrap is available standalone through the seed command.
package main
