package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/onenet-identity/onenet-identity/internal/config"
	"github.com/onenet-identity/onenet-identity/internal/daemon"
	"github.com/onenet-identity/onenet-identity/internal/logger"
)

func init() { //nolint: gochecknoinits
	seedCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	rootCmd.AddCommand(seedCmd)
}

// seedCmd runs the database bootstrap without starting the web service.
// Safe to run repeatedly: a seeded store is detected and left untouched.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the baseline RBAC data",
	Long: `Seed the database with the baseline permission catalog, roles and
user accounts without starting the web service. The run is idempotent: a
store that already carries the seed marker account is left untouched.`,
	PreRun: func(_ *cobra.Command, _ []string) {
		if cfg, err = config.ReadConfig(configPath); err != nil {
			panic(err)
		}

		if err = logger.Init(cfg.Log); err != nil {
			panic(err)
		}
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		db, err := daemon.OpenDB(&cfg)
		if err != nil {
			log.Error().Err(err).Msg("failed to open database")
			return err
		}

		if err := daemon.Bootstrap(&cfg, db); err != nil {
			log.Error().Err(err).Msg("bootstrap failed")
			return err
		}

		return nil
	},
}
