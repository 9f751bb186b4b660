package seeder

import (
	"context"
	"fmt"

	"skill-pulse/internal/database"

	"github.com/google/uuid"
)

type questionSeed struct {
	Prompt       string
	Options      []string
	CorrectIndex int
}

type QuestionsSeeder struct{}

func (QuestionsSeeder) Name() string { return "questions" }

func (QuestionsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "questions",
		"id", "skill_id", "prompt", "options", "correct_index", "position",
	); err != nil {
		return err
	}

	skillsByName, err := loadSkillsByName(ctx, db)
	if err != nil {
		return err
	}

	for skillName, questions := range questionSeeds() {
		skillID, ok := skillsByName[skillName]
		if !ok {
			return fmt.Errorf("questions reference unseeded skill %q", skillName)
		}

		for pos, q := range questions {
			if _, err := db.Exec(ctx,
				`INSERT INTO questions (id, skill_id, prompt, options, correct_index, position)
				 VALUES ($1,$2,$3,$4,$5,$6)
				 ON CONFLICT (skill_id, position) DO UPDATE
				 SET prompt = EXCLUDED.prompt, options = EXCLUDED.options, correct_index = EXCLUDED.correct_index`,
				uuid.New(), skillID, q.Prompt, q.Options, q.CorrectIndex, pos,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func questionSeeds() map[string][]questionSeed {
	return map[string][]questionSeed{
		"Go": {
			{
				Prompt:       "Which construct synchronizes goroutines by communicating values?",
				Options:      []string{"Channel", "Mutex", "WaitGroup", "Atomic"},
				CorrectIndex: 0,
			},
			{
				Prompt:       "What does a deferred call run relative to its enclosing function?",
				Options:      []string{"Before it starts", "After it returns", "On a new goroutine", "Only on panic"},
				CorrectIndex: 1,
			},
			{
				Prompt:       "Which declaration creates a slice with length 3?",
				Options:      []string{"make([]int, 3)", "new([]int)", "[]int{}", "make([]int, 0, 3)"},
				CorrectIndex: 0,
			},
			{
				Prompt:       "How does a function report a recoverable failure?",
				Options:      []string{"panic", "os.Exit", "returning an error", "log.Fatal"},
				CorrectIndex: 2,
			},
		},
		"PostgreSQL": {
			{
				Prompt:       "Which clause makes an INSERT tolerate duplicate keys?",
				Options:      []string{"ON CONFLICT", "IGNORE", "MERGE", "UPSERT"},
				CorrectIndex: 0,
			},
			{
				Prompt:       "Which index type serves equality and range queries by default?",
				Options:      []string{"hash", "btree", "gin", "brin"},
				CorrectIndex: 1,
			},
			{
				Prompt:       "What isolation level is the PostgreSQL default?",
				Options:      []string{"Serializable", "Repeatable Read", "Read Committed", "Read Uncommitted"},
				CorrectIndex: 2,
			},
		},
	}
}
