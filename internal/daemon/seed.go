package daemon

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/config"
	"github.com/onenet-identity/onenet-identity/internal/seed"
)

// defaultSeedTimeout bounds the whole bootstrap run if the config does not.
const defaultSeedTimeout = 60 * time.Second

// Bootstrap runs the idempotent seeding pipeline against db, bounded by the
// configured timeout. Deadline expiry or any stage failure is returned to
// the caller, which must abort startup.
func Bootstrap(cfg *config.Config, db *gorm.DB) error {
	timeout := defaultSeedTimeout
	if cfg.Seed.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Seed.TimeoutSeconds) * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	status, err := seed.Run(ctx, db, seedData(cfg))
	if err != nil {
		return err
	}

	log.Info().Str("status", string(status)).Msg("bootstrap finished")

	return nil
}

// seedData builds the baseline data set, applying config overrides to the
// built-in defaults.
func seedData(cfg *config.Config) seed.Data {
	data := seed.Defaults()

	if cfg.Seed.Version != "" {
		data.Version = cfg.Seed.Version
	}

	overrides := map[string]string{
		"admin@example.com": cfg.Seed.AdminPassword,
		"demo@example.com":  cfg.Seed.DemoPassword,
	}

	for i := range data.Users {
		if pw := overrides[data.Users[i].Email]; pw != "" {
			data.Users[i].Password = pw
		}
	}

	return data
}
