package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/domain/assessment"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticEnvelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newComputeTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())
	NewSCIHandler(usecase.NewSCIUsecase()).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) semanticEnvelope {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var env semanticEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if resp.StatusCode != env.Status {
		t.Fatalf("HTTP status %d disagrees with envelope status %d", resp.StatusCode, env.Status)
	}
	return env
}

func TestComputeEndpoint_RecentUsage(t *testing.T) {
	app := newComputeTestApp(t)

	lastUsed := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
	env := postJSON(t, app, "/sci/compute", map[string]any{
		"skill_level":    70.0,
		"last_used_date": lastUsed,
		"proof_score":    60.0,
	})

	if env.Status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (message=%s)", env.Status, env.Message)
	}

	var payload struct {
		SCIScore  float64 `json:"sci_score"`
		Breakdown struct {
			SkillContribution     float64 `json:"skill_contribution"`
			FreshnessContribution float64 `json:"freshness_contribution"`
			ProofContribution     float64 `json:"proof_contribution"`
		} `json:"breakdown"`
		Formula string `json:"formula"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.SCIScore != 78 {
		t.Fatalf("expected sci_score 78, got %v", payload.SCIScore)
	}
	if payload.Breakdown.SkillContribution != 28 {
		t.Fatalf("expected skill_contribution 28, got %v", payload.Breakdown.SkillContribution)
	}
	if payload.Breakdown.FreshnessContribution != 35 {
		t.Fatalf("expected freshness_contribution 35, got %v", payload.Breakdown.FreshnessContribution)
	}
	if payload.Breakdown.ProofContribution != 15 {
		t.Fatalf("expected proof_contribution 15, got %v", payload.Breakdown.ProofContribution)
	}
	if payload.Formula == "" {
		t.Fatalf("expected formula in payload")
	}
}

func TestComputeEndpoint_MissingProofScore(t *testing.T) {
	app := newComputeTestApp(t)

	env := postJSON(t, app, "/sci/compute", map[string]any{
		"skill_level":      70.0,
		"freshness_bucket": "<1 month",
	})

	if env.Status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d (message=%s)", env.Status, env.Message)
	}
	if !strings.Contains(env.Message, "proof_score") {
		t.Fatalf("expected message to name proof_score, got %q", env.Message)
	}
}

func TestComputeEndpoint_MalformedDate(t *testing.T) {
	app := newComputeTestApp(t)

	env := postJSON(t, app, "/sci/compute", map[string]any{
		"skill_level":    70.0,
		"last_used_date": "last summer",
		"proof_score":    60.0,
	})

	if env.Status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d (message=%s)", env.Status, env.Message)
	}
	if !strings.Contains(env.Message, "last_used_date") {
		t.Fatalf("expected message to name last_used_date, got %q", env.Message)
	}
}

// stubAssessmentUsecase lets endpoint tests script the usecase outcome
// without a question bank behind it.
type stubAssessmentUsecase struct {
	submitErr error
}

func (s stubAssessmentUsecase) Questions(context.Context, uuid.UUID, uuid.UUID) ([]usecase.QuestionItem, error) {
	return nil, nil
}

func (s stubAssessmentUsecase) Cooldown(context.Context, uuid.UUID, uuid.UUID) (usecase.CooldownStatus, error) {
	return usecase.CooldownStatus{Eligible: true}, nil
}

func (s stubAssessmentUsecase) Submit(context.Context, uuid.UUID, uuid.UUID, []usecase.AnswerInput) (usecase.SubmissionResult, error) {
	return usecase.SubmissionResult{}, s.submitErr
}

func newSubmitTestApp(t *testing.T, uc usecase.AssessmentUsecase) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.CtxUserIDKey, uuid.New())
		return c.Next()
	})
	NewAssessmentHandler(uc).RegisterRoutes(app)
	return app
}

func TestSubmitEndpoint_CooldownCarriesRetakeTime(t *testing.T) {
	retakeAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	app := newSubmitTestApp(t, stubAssessmentUsecase{
		submitErr: &assessment.CooldownActiveError{RetakeAllowedAt: retakeAt},
	})

	path := "/assessments/" + uuid.NewString() + "/submit"
	env := postJSON(t, app, path, map[string]any{"answers": []any{}})

	if env.Status != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d (message=%s)", env.Status, env.Message)
	}
	var data struct {
		RetakeAllowedAt string `json:"retake_allowed_at"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.RetakeAllowedAt != retakeAt.Format(time.RFC3339) {
		t.Fatalf("expected retake_allowed_at %s, got %s", retakeAt.Format(time.RFC3339), data.RetakeAllowedAt)
	}
}

func TestSubmitEndpoint_InternalErrorStaysGeneric(t *testing.T) {
	app := newSubmitTestApp(t, stubAssessmentUsecase{submitErr: usecase.ErrInternal})

	path := "/assessments/" + uuid.NewString() + "/submit"
	env := postJSON(t, app, path, map[string]any{"answers": []any{}})

	if env.Status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d (message=%s)", env.Status, env.Message)
	}
	if env.Message != "internal server error" {
		t.Fatalf("expected generic message, got %q", env.Message)
	}
	if string(env.Data) != "null" {
		t.Fatalf("expected no data on 500, got %s", env.Data)
	}
}
