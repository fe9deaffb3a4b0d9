// Package health implements the liveness endpoint.
package health

import (
	"errors"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"

	"github.com/onenet-identity/onenet-identity/internal/config"
)

const (
	// Path is the path of the liveness endpoint.
	Path = "/checkalive"
)

// Service is the health handler service.
type Service struct {
	alive *atomic.Bool
}

// Handler is the health handler.
var Handler = Service{}

// Init initializes the health handler. The alive flag is owned by the web
// service and flipped to false during graceful shutdown.
func (s *Service) Init(app *fiber.App, cfg *config.Config, alive *atomic.Bool) error {
	if app == nil || cfg == nil || alive == nil {
		return errors.New("app, cfg or alive is nil")
	}

	s.alive = alive

	app.Get(Path, s.Get)

	return nil
}

// Get reports liveness: 200 while serving, 503 once shutdown started.
func (s *Service) Get(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}
