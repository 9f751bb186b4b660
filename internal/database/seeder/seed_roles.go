package seeder

import (
	"context"
	"fmt"

	"skill-pulse/internal/database"

	"github.com/google/uuid"
)

type roleRequirementSeed struct {
	SkillName  string
	MinimumSCI float64
	Importance int
}

type roleSeed struct {
	Name         string
	Description  string
	Requirements []roleRequirementSeed
}

type RolesSeeder struct{}

func (RolesSeeder) Name() string { return "roles" }

func (RolesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "roles", "id", "name", "description", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "role_skills",
		"id", "role_id", "skill_id", "minimum_sci", "importance", "position",
	); err != nil {
		return err
	}

	skillsByName, err := loadSkillsByName(ctx, db)
	if err != nil {
		return err
	}

	for _, r := range roleSeeds() {
		roleID, err := upsertRole(ctx, db, r)
		if err != nil {
			return err
		}

		for pos, req := range r.Requirements {
			skillID, ok := skillsByName[req.SkillName]
			if !ok {
				return fmt.Errorf("role %q requires unseeded skill %q", r.Name, req.SkillName)
			}
			if _, err := db.Exec(ctx,
				`INSERT INTO role_skills (id, role_id, skill_id, minimum_sci, importance, position)
				 VALUES ($1,$2,$3,$4,$5,$6)
				 ON CONFLICT (role_id, skill_id) DO UPDATE
				 SET minimum_sci = EXCLUDED.minimum_sci, importance = EXCLUDED.importance, position = EXCLUDED.position`,
				uuid.New(), roleID, skillID, req.MinimumSCI, req.Importance, pos,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func upsertRole(ctx context.Context, db database.DB, r roleSeed) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO roles (id, name, description) VALUES (gen_random_uuid(), $1, $2)
		 ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
		 RETURNING id`,
		r.Name, r.Description,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func loadSkillsByName(ctx context.Context, db database.DB) (map[string]uuid.UUID, error) {
	rows, err := db.Query(ctx, `SELECT id, name FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[name] = id
	}
	return out, rows.Err()
}

func roleSeeds() []roleSeed {
	return []roleSeed{
		{
			Name:        "Backend Engineer",
			Description: "Designs and operates server-side services.",
			Requirements: []roleRequirementSeed{
				{SkillName: "Go", MinimumSCI: 70, Importance: 5},
				{SkillName: "PostgreSQL", MinimumSCI: 60, Importance: 4},
				{SkillName: "Redis", MinimumSCI: 40, Importance: 2},
				{SkillName: "Docker", MinimumSCI: 50, Importance: 3},
			},
		},
		{
			Name:        "Platform Engineer",
			Description: "Builds deployment and runtime infrastructure.",
			Requirements: []roleRequirementSeed{
				{SkillName: "Kubernetes", MinimumSCI: 70, Importance: 5},
				{SkillName: "Docker", MinimumSCI: 70, Importance: 4},
				{SkillName: "AWS", MinimumSCI: 60, Importance: 4},
				{SkillName: "Go", MinimumSCI: 50, Importance: 3},
			},
		},
		{
			Name:        "Full-Stack Engineer",
			Description: "Works across the web stack.",
			Requirements: []roleRequirementSeed{
				{SkillName: "TypeScript", MinimumSCI: 70, Importance: 5},
				{SkillName: "JavaScript", MinimumSCI: 60, Importance: 4},
				{SkillName: "PostgreSQL", MinimumSCI: 50, Importance: 3},
				{SkillName: "System Design", MinimumSCI: 40, Importance: 2},
			},
		},
	}
}
