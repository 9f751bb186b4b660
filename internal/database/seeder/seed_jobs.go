package seeder

import (
	"context"
	"fmt"

	"skill-pulse/internal/database"

	"github.com/google/uuid"
)

type jobRequirementSeed struct {
	SkillName  string
	MinimumSCI float64
	Importance int
}

type jobSeed struct {
	Title        string
	Company      string
	Requirements []jobRequirementSeed
}

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "company", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "job_skills",
		"id", "job_id", "skill_id", "minimum_sci", "importance", "position",
	); err != nil {
		return err
	}

	skillsByName, err := loadSkillsByName(ctx, db)
	if err != nil {
		return err
	}

	for _, j := range jobSeeds() {
		jobID, err := upsertJob(ctx, db, j)
		if err != nil {
			return err
		}

		for pos, req := range j.Requirements {
			skillID, ok := skillsByName[req.SkillName]
			if !ok {
				return fmt.Errorf("job %q requires unseeded skill %q", j.Title, req.SkillName)
			}
			if _, err := db.Exec(ctx,
				`INSERT INTO job_skills (id, job_id, skill_id, minimum_sci, importance, position)
				 VALUES ($1,$2,$3,$4,$5,$6)
				 ON CONFLICT (job_id, skill_id) DO UPDATE
				 SET minimum_sci = EXCLUDED.minimum_sci, importance = EXCLUDED.importance, position = EXCLUDED.position`,
				uuid.New(), jobID, skillID, req.MinimumSCI, req.Importance, pos,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func upsertJob(ctx context.Context, db database.DB, j jobSeed) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, company) VALUES (gen_random_uuid(), $1, $2)
		 ON CONFLICT (title, company) DO UPDATE SET title = EXCLUDED.title
		 RETURNING id`,
		j.Title, j.Company,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func jobSeeds() []jobSeed {
	return []jobSeed{
		{
			Title:   "Senior Backend Engineer",
			Company: "Northwind",
			Requirements: []jobRequirementSeed{
				{SkillName: "Go", MinimumSCI: 75, Importance: 5},
				{SkillName: "PostgreSQL", MinimumSCI: 65, Importance: 4},
				{SkillName: "Kubernetes", MinimumSCI: 50, Importance: 3},
			},
		},
		{
			Title:   "Cloud Infrastructure Engineer",
			Company: "Contoso",
			Requirements: []jobRequirementSeed{
				{SkillName: "AWS", MinimumSCI: 70, Importance: 5},
				{SkillName: "Docker", MinimumSCI: 60, Importance: 3},
				{SkillName: "Python", MinimumSCI: 50, Importance: 2},
			},
		},
	}
}
