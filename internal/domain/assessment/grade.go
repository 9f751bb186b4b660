package assessment

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

var ErrNoQuestions = errors.New("no questions in bank for skill")

// Question is one entry of the assessment question bank.
type Question struct {
	ID           uuid.UUID
	SkillID      uuid.UUID
	Prompt       string
	Options      []string
	CorrectIndex int
}

// Answer is one submitted selection. Questions with no matching answer
// score as incorrect, which is how timer auto-submission of a partially
// answered exam flows through the same grading path.
type Answer struct {
	QuestionID    uuid.UUID
	SelectedIndex int
}

// Grade scores a submission against the question bank: correct answers
// over total questions, on a 0-100 scale. Unanswered and out-of-range
// selections are incorrect, never "ungraded".
func Grade(questions []Question, answers []Answer) (float64, error) {
	if len(questions) == 0 {
		return 0, ErrNoQuestions
	}

	selected := make(map[uuid.UUID]int, len(answers))
	for _, a := range answers {
		if a.QuestionID == uuid.Nil {
			return 0, fmt.Errorf("answer without a question id")
		}
		selected[a.QuestionID] = a.SelectedIndex
	}

	correct := 0
	for _, q := range questions {
		idx, ok := selected[q.ID]
		if !ok {
			continue
		}
		if idx < 0 || idx >= len(q.Options) {
			continue
		}
		if idx == q.CorrectIndex {
			correct++
		}
	}

	score := float64(correct) / float64(len(questions)) * 100
	return math.Round(score*100) / 100, nil
}
