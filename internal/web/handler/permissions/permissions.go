// Package permissions implements the read-only permission catalog API.
package permissions

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/config"
	permissionctl "github.com/onenet-identity/onenet-identity/internal/db/controller/permission"
	"github.com/onenet-identity/onenet-identity/internal/web/handler"
)

const (
	// Path is the base path of the permission catalog routes.
	Path = handler.APIBasePath + "/permissions"
)

// Permission is the JSON shape of one catalog entry.
type Permission struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Service is the permissions handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the permissions handler.
var Handler = Service{}

// Init initializes the permissions handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Get("/:name", s.Get)
	})

	return nil
}

// List returns the whole permission catalog.
func (s *Service) List(c *fiber.Ctx) error {
	perms, err := permissionctl.GetAll(s.db)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	out := make([]Permission, 0, len(perms))
	for _, p := range perms {
		out = append(out, Permission{
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
		})
	}

	return c.JSON(out)
}

// Get returns one catalog entry by name.
func (s *Service) Get(c *fiber.Ctx) error {
	perm, err := permissionctl.Get(s.db, c.Params("name"))
	if err != nil {
		if errors.Is(err, permissionctl.ErrPermissionNotFound) {
			return fiber.ErrNotFound
		}

		return fiber.ErrInternalServerError
	}

	return c.JSON(Permission{
		Name:        perm.Name,
		Description: perm.Description,
		Category:    perm.Category,
	})
}
