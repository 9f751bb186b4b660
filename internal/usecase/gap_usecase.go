package usecase

import (
	"context"
	"errors"
	"fmt"

	"skill-pulse/internal/domain/scoring"
	"skill-pulse/internal/repository"

	"github.com/google/uuid"
)

type RoleItem struct {
	ID          uuid.UUID
	Name        string
	Description string
}

type RoleGap struct {
	RoleID          uuid.UUID
	RoleName        string
	MatchPercentage int
	Readiness       scoring.Readiness
	SkillBreakdown  []scoring.GapResult
	Recommendations []string
}

type GapUsecase interface {
	ListRoles(ctx context.Context) ([]RoleItem, error)
	AnalyzeRole(ctx context.Context, userID, roleID uuid.UUID) (RoleGap, error)
}

type Gap struct {
	roles   repository.RoleRepository
	records repository.SkillRecordRepository
}

func NewGapUsecase(roles repository.RoleRepository, records repository.SkillRecordRepository) *Gap {
	return &Gap{roles: roles, records: records}
}

func (u *Gap) ListRoles(ctx context.Context) ([]RoleItem, error) {
	roles, err := u.roles.ListRoles(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RoleItem, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleItem{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	return out, nil
}

func (u *Gap) AnalyzeRole(ctx context.Context, userID, roleID uuid.UUID) (RoleGap, error) {
	if userID == uuid.Nil {
		return RoleGap{}, ErrUnauthorized
	}
	if roleID == uuid.Nil {
		return RoleGap{}, ErrInvalidInput
	}

	role, err := u.roles.GetByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return RoleGap{}, ErrRoleNotFound
		}
		return RoleGap{}, ErrInternal
	}

	rows, err := u.roles.FindRequiredSkills(ctx, roleID)
	if err != nil {
		return RoleGap{}, ErrInternal
	}
	required, err := toRequiredSkills(rows)
	if err != nil {
		return RoleGap{}, err
	}

	recs, err := u.records.FindByUserID(ctx, userID)
	if err != nil {
		return RoleGap{}, ErrInternal
	}
	candidate := sciBySkill(recs)

	gaps, err := scoring.AnalyzeGap(candidate, required)
	if err != nil {
		return RoleGap{}, mapScoringError(err)
	}
	pct, err := scoring.MatchPercentage(gaps)
	if err != nil {
		return RoleGap{}, mapScoringError(err)
	}

	return RoleGap{
		RoleID:          role.ID,
		RoleName:        role.Name,
		MatchPercentage: pct,
		Readiness:       scoring.ReadinessFor(pct),
		SkillBreakdown:  gaps,
		Recommendations: buildRecommendations(gaps),
	}, nil
}

// toRequiredSkills converts stored requirement rows, surfacing dangling
// catalog references as configuration errors instead of skipping them.
func toRequiredSkills(rows []repository.RequiredSkillRow) ([]scoring.RequiredSkill, error) {
	out := make([]scoring.RequiredSkill, 0, len(rows))
	for _, row := range rows {
		if row.SkillName == "" {
			return nil, fmt.Errorf("%w: required skill %s not in catalog", ErrInvalidInput, row.SkillID)
		}
		out = append(out, scoring.RequiredSkill{
			SkillID:    row.SkillID,
			SkillName:  row.SkillName,
			MinimumSCI: row.MinimumSCI,
			Importance: row.Importance,
		})
	}
	return out, nil
}

func sciBySkill(recs []repository.SkillRecord) map[uuid.UUID]float64 {
	out := make(map[uuid.UUID]float64, len(recs))
	for _, rec := range recs {
		out[rec.SkillID] = rec.SCI
	}
	return out
}

func buildRecommendations(gaps []scoring.GapResult) []string {
	out := make([]string, 0, len(gaps))
	allMet := true
	for _, g := range gaps {
		switch g.Status {
		case scoring.StatusMissing:
			allMet = false
			out = append(out, fmt.Sprintf("Take the %s assessment to establish a baseline.", g.SkillName))
		case scoring.StatusBelow:
			allMet = false
			out = append(out, fmt.Sprintf("Improve %s: confidence %.0f is below the required %.0f (%s).",
				g.SkillName, g.CandidateSCI, g.MinimumSCI, scoring.ScoreLabel(g.CandidateSCI)))
		}
	}
	if allMet && len(gaps) > 0 {
		out = append(out, "You meet every requirement for this role.")
	}
	return out
}
