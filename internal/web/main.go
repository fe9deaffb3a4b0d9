// Package web implements the fiber based web service of the identity store.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/auth"
	"github.com/onenet-identity/onenet-identity/internal/config"
	fiberlogger "github.com/onenet-identity/onenet-identity/internal/logger/adapter/fiber"
	"github.com/onenet-identity/onenet-identity/internal/web/handler/health"
	"github.com/onenet-identity/onenet-identity/internal/web/handler/permissions"
	"github.com/onenet-identity/onenet-identity/internal/web/handler/roles"
	"github.com/onenet-identity/onenet-identity/internal/web/handler/users"
)

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	alive atomic.Bool
	db    *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	log.Info().Msgf(
		"graceful shutdown: return 503 for %d seconds to let LB remove this pod from active targets",
		s.cfg.Webserver.ShutDownTime,
	)

	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
// The daemon only calls this after the bootstrap succeeded, so every route
// observes a fully seeded store.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: health.Path,
	}))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	service.alive.Store(true)

	// Initialize auth service
	authService := auth.NewService(db)

	// init handlers (they register their own routes)
	if err := health.Handler.Init(app, cfg, &service.alive); err != nil {
		log.Fatal().Err(err).Msg("failed to init health handler")
	}

	if err := permissions.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init permissions handler")
	}

	if err := roles.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init roles handler")
	}

	if err := users.Handler.Init(app, cfg, db, authService); err != nil {
		log.Fatal().Err(err).Msg("failed to init users handler")
	}

	return service
}
