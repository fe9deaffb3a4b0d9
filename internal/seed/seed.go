// Package seed brings the identity store from an empty state to the
// known-good baseline: permission catalog, roles with permission grants and
// the seed user accounts. The pipeline is guarded by an existence check and
// safe to run on every process start.
package seed

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	permissionctl "github.com/onenet-identity/onenet-identity/internal/db/controller/permission"
	"github.com/onenet-identity/onenet-identity/internal/db/controller/seedstate"
	userctl "github.com/onenet-identity/onenet-identity/internal/db/controller/user"
	"github.com/onenet-identity/onenet-identity/internal/db/models"
)

// Status is the terminal state of a bootstrap run.
type Status string

const (
	// StatusSkipped means the existence guard found the store already seeded.
	StatusSkipped Status = "skipped"
	// StatusSeeded means all three loader stages committed.
	StatusSeeded Status = "seeded"
)

// Stage names recorded in the seed_states table.
const (
	StagePermissions = "permissions"
	StageRoles       = "roles"
	StageUsers       = "users"
)

var dataValidator = validator.New()

// Run executes the bootstrap pipeline: existence guard, then the
// permission, role and user loaders, each committing its own transaction
// before the next stage starts. There is no cross-stage rollback; a stage
// failure aborts the run and leaves earlier commits in place.
//
// The context bounds the whole run. Callers own the db handle; Run never
// closes it.
func Run(ctx context.Context, db *gorm.DB, data Data) (Status, error) {
	if db == nil {
		return "", ErrDBNil
	}

	if err := dataValidator.Struct(data); err != nil {
		return "", errors.Wrap(ErrInvalidSeedData, err.Error())
	}

	db = db.WithContext(ctx)

	seeded, err := alreadySeeded(db, data.SentinelEmail)
	if err != nil {
		return "", errors.Wrap(err, "existence check failed")
	}

	if seeded {
		log.Info().Str("sentinel", data.SentinelEmail).Msg("database already seeded, skipping bootstrap")
		return StatusSkipped, nil
	}

	if err = guardPartialSeed(db, data.Version); err != nil {
		return "", err
	}

	log.Info().Str("version", data.Version).Msg("seeding initial data")

	if err = createPermissions(db, data); err != nil {
		return "", errors.Wrap(err, "permission stage failed")
	}

	roles, err := createRoles(db, data)
	if err != nil {
		return "", errors.Wrap(err, "role stage failed")
	}

	if err = createUsers(db, data, roles); err != nil {
		return "", errors.Wrap(err, "user stage failed")
	}

	log.Info().Str("version", data.Version).Msg("seeding complete")

	return StatusSeeded, nil
}

// alreadySeeded is the existence guard: one read-only query for the
// sentinel account. A query error propagates, it is never read as absent.
func alreadySeeded(db *gorm.DB, sentinelEmail string) (bool, error) {
	return userctl.Exists(db, sentinelEmail)
}

// guardPartialSeed refuses to reseed a store a previous run left half
// populated. The loaders assume empty tables, so rerunning them over a
// committed permission catalog would insert duplicates.
func guardPartialSeed(db *gorm.DB, version string) error {
	state, err := seedstate.Get(db, version)
	if errors.Is(err, seedstate.ErrSeedStateNotFound) {
		return nil
	}

	if err != nil {
		return errors.Wrap(err, "seed state check failed")
	}

	return errors.Wrapf(ErrPartialSeed, "version %s stopped after stage %q", version, state.Stage)
}

// createPermissions persists the whole catalog as one committed batch.
// No upsert or dedup by name: the guard guarantees an empty catalog.
func createPermissions(db *gorm.DB, data Data) error {
	return db.Transaction(func(tx *gorm.DB) error {
		perms := make([]models.Permission, 0, len(data.Permissions))
		for _, p := range data.Permissions {
			perms = append(perms, models.Permission{
				Name:        p.Name,
				Description: p.Description,
				Category:    p.Category,
			})
		}

		if err := tx.Create(&perms).Error; err != nil {
			return err
		}

		if err := seedstate.SetStage(tx, data.Version, StagePermissions); err != nil {
			return err
		}

		log.Info().Int("count", len(perms)).Msg("created permission catalog")

		return nil
	})
}

// createRoles persists all roles in one committed batch, resolving each
// role's permission name list against the catalog committed by the previous
// stage. Unresolved names are dropped, not errors.
func createRoles(db *gorm.DB, data Data) (map[string]*models.Role, error) {
	created := make(map[string]*models.Role, len(data.Roles))

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, r := range data.Roles {
			var (
				perms []models.Permission
				err   error
			)

			if r.Permissions == nil {
				perms, err = permissionctl.GetAll(tx)
			} else {
				perms, err = permissionctl.GetByNames(tx, r.Permissions)
			}

			if err != nil {
				return err
			}

			if unresolved := missingNames(r.Permissions, perms); len(unresolved) > 0 {
				log.Warn().Str("role", r.Name).Strs("unresolved", unresolved).
					Msg("permission names not in catalog, grants dropped")
			}

			role := models.Role{
				Name:        r.Name,
				Description: r.Description,
				Permissions: perms,
			}

			if err = tx.Create(&role).Error; err != nil {
				return err
			}

			created[r.Name] = &role
		}

		if err := seedstate.SetStage(tx, data.Version, StageRoles); err != nil {
			return err
		}

		log.Info().Int("count", len(created)).Msg("created roles with permission grants")

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// createUsers persists the seed accounts as the final committed batch.
// Roles are taken by direct reference from the role stage, not re-queried.
// Credentials are stored argon2id hashed, never as given.
func createUsers(db *gorm.DB, data Data, roles map[string]*models.Role) error {
	return db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		for _, u := range data.Users {
			var (
				assigned   []models.Role
				unresolved []string
			)

			for _, name := range u.Roles {
				if r, ok := roles[name]; ok {
					assigned = append(assigned, *r)
				} else {
					unresolved = append(unresolved, name)
				}
			}

			if len(unresolved) > 0 {
				log.Warn().Str("email", u.Email).Strs("unresolved", unresolved).
					Msg("role names not created this run, assignments dropped")
			}

			user := models.User{
				Email:        u.Email,
				Name:         u.Name,
				PasswordHash: models.HashPassword(u.Password),
				Active:       u.Active,
				CreatedAt:    now.AddDate(0, 0, -u.CreatedDaysAgo),
				Roles:        assigned,
			}

			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}

		if err := seedstate.SetStage(tx, data.Version, StageUsers); err != nil {
			return err
		}

		if err := seedstate.Complete(tx, data.Version); err != nil {
			return err
		}

		log.Info().Int("count", len(data.Users)).Msg("created seed user accounts")

		return nil
	})
}

// missingNames reports the requested names without a resolved permission.
// A nil request means "full catalog" and can not miss.
func missingNames(requested []string, resolved []models.Permission) []string {
	if requested == nil {
		return nil
	}

	have := make(map[string]struct{}, len(resolved))
	for _, p := range resolved {
		have[p.Name] = struct{}{}
	}

	var missing []string

	for _, name := range requested {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}
