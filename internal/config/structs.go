package config

import (
	"github.com/onenet-identity/onenet-identity/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Seed      Seed
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string // domain name for the webserver
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
}

// Seed holds the database bootstrap settings.
type Seed struct {
	// Disabled skips the startup bootstrap entirely. The seed command
	// ignores this flag.
	Disabled bool
	// Version identifies the baseline data set in the seed_states table.
	Version string
	// TimeoutSeconds is the deadline for the whole bootstrap run.
	TimeoutSeconds int
	// AdminPassword and DemoPassword override the default seed account
	// credentials. Stored argon2id hashed, never as given.
	AdminPassword string
	DemoPassword  string
}
