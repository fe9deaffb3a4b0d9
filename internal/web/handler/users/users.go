// Package users implements the read-only user API.
package users

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/onenet-identity/onenet-identity/internal/auth"
	"github.com/onenet-identity/onenet-identity/internal/config"
	userctl "github.com/onenet-identity/onenet-identity/internal/db/controller/user"
	"github.com/onenet-identity/onenet-identity/internal/db/models"
	"github.com/onenet-identity/onenet-identity/internal/web/handler"
)

const (
	// Path is the base path of the user routes.
	Path = handler.APIBasePath + "/users"
)

// User is the JSON shape of one user account. Credential material is never
// exposed here.
type User struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	Roles     []string  `json:"roles"`
}

// Service is the users handler service.
type Service struct {
	handler.Service
	cfg         *config.Config
	db          *gorm.DB
	authService *auth.Service
}

// Handler is the users handler.
var Handler = Service{}

// Init initializes the users handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || authService == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.authService = authService

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Get("/:email", s.Get)
		router.Get("/:email/permissions", s.GetPermissions)
	})

	return nil
}

// List returns all user accounts with their role assignments.
func (s *Service) List(c *fiber.Ctx) error {
	dbUsers, err := userctl.GetAll(s.db)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	out := make([]User, 0, len(dbUsers))
	for i := range dbUsers {
		out = append(out, toUser(&dbUsers[i]))
	}

	return c.JSON(out)
}

// Get returns one user account by email.
func (s *Service) Get(c *fiber.Ctx) error {
	u, err := s.lookup(c)
	if err != nil {
		return err
	}

	return c.JSON(toUser(u))
}

// GetPermissions returns the distinct permissions a user holds through all
// assigned roles.
func (s *Service) GetPermissions(c *fiber.Ctx) error {
	u, err := s.lookup(c)
	if err != nil {
		return err
	}

	perms, err := s.authService.GetUserPermissions(u.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"email":       u.Email,
		"permissions": perms,
	})
}

func toUser(u *models.User) User {
	roleNames := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roleNames = append(roleNames, r.Name)
	}

	return User{
		Email:     u.Email,
		Name:      u.Name,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		Roles:     roleNames,
	}
}

func (s *Service) lookup(c *fiber.Ctx) (*models.User, error) {
	u, err := userctl.Get(s.db, c.Params("email"))
	if err != nil {
		if errors.Is(err, userctl.ErrUserNotFound) {
			return nil, fiber.ErrNotFound
		}

		return nil, fiber.ErrInternalServerError
	}

	return u, nil
}
