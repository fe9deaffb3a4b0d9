package seed

import (
	"errors"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrInvalidSeedData is returned when the seed data set fails validation.
	ErrInvalidSeedData = errors.New("seed data is invalid")

	// ErrPartialSeed is returned when the sentinel account is absent but a
	// seed_states row shows an earlier run committed one or more stages.
	// Re-running the loaders against such a store would duplicate the
	// catalog, so the bootstrap refuses and asks for operator repair.
	ErrPartialSeed = errors.New("store is partially seeded, refusing to reseed")
)
