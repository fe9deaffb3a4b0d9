// Package daemon wires the database, the startup bootstrap and the web
// service together.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/config"
	"github.com/onenet-identity/onenet-identity/internal/db/dsn"
	"github.com/onenet-identity/onenet-identity/internal/db/models"
	"github.com/onenet-identity/onenet-identity/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	addr       string
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(d.addr)
}

// WaitShutdown blocks until the web service finished a graceful shutdown.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
}

// New creates a new Daemon instance with the provided configuration.
// The database is opened and migrated and the bootstrap runs to completion
// before the web service is constructed; a failed bootstrap aborts startup.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.Seed.Disabled {
		if err = Bootstrap(cfg, db); err != nil {
			return nil, errors.Wrap(err, "startup bootstrap failed")
		}
	}

	return &Daemon{
		webService: web.New(cfg, db),
		addr:       fmt.Sprintf(":%d", cfg.Webserver.Port),
	}, nil
}

// OpenDB opens the configured database engine and migrates the schema.
// Join tables are registered before migration so gorm creates the
// role_permissions and user_roles tables from our models.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case "postgres":
		dialector = gormpostgres.Open(dsn.Create(cfg))
	default:
		dialector = gormmysql.Open(dsn.Create(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = SetupJoinTables(db); err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&models.Permission{},
		&models.Role{},
		&models.User{},
		&models.SeedState{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}

// SetupJoinTables registers the explicit junction models for the
// many-to-many associations.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Role{}, "Permissions", &models.RolePermission{}); err != nil {
		return errors.Wrap(err, "failed to set up role_permissions join table")
	}

	if err := db.SetupJoinTable(&models.Permission{}, "Roles", &models.RolePermission{}); err != nil {
		return errors.Wrap(err, "failed to set up role_permissions join table")
	}

	if err := db.SetupJoinTable(&models.User{}, "Roles", &models.UserRole{}); err != nil {
		return errors.Wrap(err, "failed to set up user_roles join table")
	}

	if err := db.SetupJoinTable(&models.Role{}, "Users", &models.UserRole{}); err != nil {
		return errors.Wrap(err, "failed to set up user_roles join table")
	}

	return nil
}
