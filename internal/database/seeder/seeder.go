package seeder

import (
	"context"

	"skill-pulse/internal/database"
)

// Seeder installs one slice of reference data. Implementations must be
// idempotent: they run on every boot, against whatever is already there.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
