package seeder

import (
	"context"
	"errors"
	"fmt"

	"skill-pulse/internal/database"
)

// Runner executes seeders in order, stopping at the first failure. Order
// matters: later seeders resolve skill names planted by earlier ones.
type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("seeder: nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
