package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skill-pulse/internal/database"
)

// EnsureTableColumns fails fast when a seeder's target table lacks columns
// it is about to write. A skipped migration then surfaces as one readable
// error naming every missing column instead of a SQL failure mid-seed.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return errors.New("nil db")
	}
	if table == "" {
		return errors.New("empty table")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	present := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, col := range columns {
		if col == "" {
			return errors.New("empty column")
		}
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: table %s missing columns: %s", table, strings.Join(missing, ", "))
	}
	return nil
}
