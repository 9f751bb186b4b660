package seeder

import (
	"context"
	"fmt"

	"skill-pulse/internal/database"
)

// skillCatalog is the baseline taxonomy every environment starts with.
// Role requirements, job postings and question banks all key off these
// names, so this seeder must run before the others.
var skillCatalog = []struct {
	name     string
	category string
}{
	{"Go", "Programming Language"},
	{"JavaScript", "Programming Language"},
	{"TypeScript", "Programming Language"},
	{"Python", "Programming Language"},
	{"PostgreSQL", "Database"},
	{"Redis", "Database"},
	{"Docker", "DevOps"},
	{"Kubernetes", "DevOps"},
	{"AWS", "Cloud"},
	{"System Design", "Architecture"},
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	const insert = `INSERT INTO skills (id, name, category)
		VALUES (gen_random_uuid(), $1, $2)
		ON CONFLICT (name) DO NOTHING`
	for _, s := range skillCatalog {
		if _, err := tx.Exec(ctx, insert, s.name, s.category); err != nil {
			return fmt.Errorf("insert skill %q: %w", s.name, err)
		}
	}

	return tx.Commit(ctx)
}
