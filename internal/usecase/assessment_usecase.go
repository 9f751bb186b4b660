package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"skill-pulse/internal/domain/assessment"
	"skill-pulse/internal/domain/scoring"
	"skill-pulse/internal/repository"

	"github.com/google/uuid"
)

type QuestionItem struct {
	ID      uuid.UUID
	Prompt  string
	Options []string
}

type AnswerInput struct {
	QuestionID    uuid.UUID
	SelectedIndex int
}

type CooldownStatus struct {
	Eligible        bool
	RetakeAllowedAt *time.Time
}

type SubmissionResult struct {
	AssessmentScore float64
	SCI             float64
	Breakdown       scoring.Breakdown
	RetakeAllowedAt time.Time
}

type AssessmentUsecase interface {
	Questions(ctx context.Context, userID, skillID uuid.UUID) ([]QuestionItem, error)
	Cooldown(ctx context.Context, userID, skillID uuid.UUID) (CooldownStatus, error)
	Submit(ctx context.Context, userID, skillID uuid.UUID, answers []AnswerInput) (SubmissionResult, error)
}

type Assessment struct {
	skills    repository.SkillRepository
	questions repository.QuestionRepository
	records   repository.SkillRecordRepository
	cooldowns repository.CooldownRepository
	cache     rankingInvalidator
	logger    *log.Logger

	window time.Duration
	now    func() time.Time
}

func NewAssessmentUsecase(
	skills repository.SkillRepository,
	questions repository.QuestionRepository,
	records repository.SkillRecordRepository,
	cooldowns repository.CooldownRepository,
	cache rankingInvalidator,
	logger *log.Logger,
	cooldownWindow time.Duration,
) *Assessment {
	return &Assessment{
		skills:    skills,
		questions: questions,
		records:   records,
		cooldowns: cooldowns,
		cache:     cache,
		logger:    logger,
		window:    cooldownWindow,
		now:       time.Now,
	}
}

// Questions gates the start of an assessment on cooldown eligibility
// and returns the question bank without correct answers.
func (u *Assessment) Questions(ctx context.Context, userID, skillID uuid.UUID) ([]QuestionItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if err := u.requireSkill(ctx, skillID); err != nil {
		return nil, err
	}
	if err := u.requireEligible(ctx, userID, skillID); err != nil {
		return nil, err
	}

	qs, err := u.questions.FindBySkillID(ctx, skillID)
	if err != nil {
		return nil, ErrInternal
	}
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}

	out := make([]QuestionItem, 0, len(qs))
	for _, q := range qs {
		out = append(out, QuestionItem{ID: q.ID, Prompt: q.Prompt, Options: q.Options})
	}
	return out, nil
}

func (u *Assessment) Cooldown(ctx context.Context, userID, skillID uuid.UUID) (CooldownStatus, error) {
	if userID == uuid.Nil {
		return CooldownStatus{}, ErrUnauthorized
	}
	if err := u.requireSkill(ctx, skillID); err != nil {
		return CooldownStatus{}, err
	}

	st, err := u.cooldowns.Find(ctx, userID, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrCooldownNotFound) {
			return CooldownStatus{Eligible: true}, nil
		}
		return CooldownStatus{}, ErrInternal
	}

	if st.Eligible(u.now()) {
		return CooldownStatus{Eligible: true}, nil
	}
	at := st.RetakeAllowedAt
	return CooldownStatus{Eligible: false, RetakeAllowedAt: &at}, nil
}

// Submit is the single grading path for manual submission and timer
// auto-submission alike: unanswered questions score as incorrect. The
// cooldown claim happens before any state mutation, so a submission
// that loses the race leaves the stored SCI untouched.
func (u *Assessment) Submit(ctx context.Context, userID, skillID uuid.UUID, answers []AnswerInput) (SubmissionResult, error) {
	if userID == uuid.Nil {
		return SubmissionResult{}, ErrUnauthorized
	}
	if err := u.requireSkill(ctx, skillID); err != nil {
		return SubmissionResult{}, err
	}

	qs, err := u.questions.FindBySkillID(ctx, skillID)
	if err != nil {
		return SubmissionResult{}, ErrInternal
	}

	graded := make([]assessment.Answer, 0, len(answers))
	for _, a := range answers {
		graded = append(graded, assessment.Answer{QuestionID: a.QuestionID, SelectedIndex: a.SelectedIndex})
	}

	score, err := assessment.Grade(qs, graded)
	if err != nil {
		if errors.Is(err, assessment.ErrNoQuestions) {
			return SubmissionResult{}, ErrNoQuestions
		}
		return SubmissionResult{}, ErrInvalidInput
	}

	now := u.now()
	st, claimed, err := u.cooldowns.Claim(ctx, userID, skillID, now, u.window)
	if err != nil {
		return SubmissionResult{}, ErrInternal
	}
	if !claimed {
		return SubmissionResult{}, &assessment.CooldownActiveError{RetakeAllowedAt: st.RetakeAllowedAt}
	}

	rec, err := u.records.FindByUserAndSkill(ctx, userID, skillID)
	if err != nil && !errors.Is(err, repository.ErrSkillRecordNotFound) {
		return SubmissionResult{}, ErrInternal
	}
	rec.UserID = userID
	rec.SkillID = skillID
	rec.AssessmentScore = score
	rec.LastAssessedAt = &now

	freshness := scoring.FreshnessOrDefault(now, rec.LastUsedAt)
	res, err := scoring.ComputeSCI(rec.AssessmentScore, freshness, rec.ScenarioScore)
	if err != nil {
		return SubmissionResult{}, mapScoringError(err)
	}
	rec.SCI = res.Score

	if _, err := u.records.Upsert(ctx, rec); err != nil {
		return SubmissionResult{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.InvalidateRankings(ctx)
	}
	if u.logger != nil {
		u.logger.Printf("[Assessment] Submission accepted user=%s skill=%s score=%.2f sci=%.2f retake_at=%s",
			userID, skillID, score, res.Score, st.RetakeAllowedAt.Format(time.RFC3339))
	}

	return SubmissionResult{
		AssessmentScore: score,
		SCI:             res.Score,
		Breakdown:       res.Breakdown,
		RetakeAllowedAt: st.RetakeAllowedAt,
	}, nil
}

func (u *Assessment) requireSkill(ctx context.Context, skillID uuid.UUID) error {
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}
	exists, err := u.skills.ExistsByID(ctx, skillID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrSkillNotFound
	}
	return nil
}

func (u *Assessment) requireEligible(ctx context.Context, userID, skillID uuid.UUID) error {
	st, err := u.cooldowns.Find(ctx, userID, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrCooldownNotFound) {
			return nil
		}
		return ErrInternal
	}
	if !st.Eligible(u.now()) {
		return &assessment.CooldownActiveError{RetakeAllowedAt: st.RetakeAllowedAt}
	}
	return nil
}
