// Package roles implements the read-only role API.
package roles

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/config"
	roctl "github.com/onenet-identity/onenet-identity/internal/db/controller/role"
	"github.com/onenet-identity/onenet-identity/internal/db/models"
	"github.com/onenet-identity/onenet-identity/internal/web/handler"
)

const (
	// Path is the base path of the role routes.
	Path = handler.APIBasePath + "/roles"
)

// Role is the JSON shape of one role with its permission grants.
type Role struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// Service is the roles handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the roles handler.
var Handler = Service{}

// Init initializes the roles handler.
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

// List returns all roles with their permission grants.
func (s *Service) List(c *fiber.Ctx) error {
	dbRoles, err := roctl.GetAll(s.db)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	out := make([]Role, 0, len(dbRoles))
	for i := range dbRoles {
		out = append(out, toRole(&dbRoles[i]))
	}

	return c.JSON(out)
}

// Get returns one role by name.
func (s *Service) Get(c *fiber.Ctx) error {
	r, err := roctl.Get(s.db, c.Params("name"))
	if err != nil {
		if errors.Is(err, roctl.ErrRoleNotFound) {
			return fiber.ErrNotFound
		}

		return fiber.ErrInternalServerError
	}

	return c.JSON(toRole(r))
}

func toRole(r *models.Role) Role {
	perms := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, p.Name)
	}

	return Role{
		Name:        r.Name,
		Description: r.Description,
		Permissions: perms,
	}
}
