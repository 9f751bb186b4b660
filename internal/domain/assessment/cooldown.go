package assessment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CooldownState tracks the per (user, skill) retake window. A zero
// RetakeAllowedAt means the user has never been assessed and is
// eligible.
type CooldownState struct {
	UserID          uuid.UUID
	SkillID         uuid.UUID
	LastAssessedAt  time.Time
	RetakeAllowedAt time.Time
}

// Eligible reports whether a new assessment may start at now.
func (s CooldownState) Eligible(now time.Time) bool {
	if s.RetakeAllowedAt.IsZero() {
		return true
	}
	return !now.Before(s.RetakeAllowedAt)
}

// NewCooldownState is the Eligible -> InCooldown transition taken on an
// accepted submission. The window is an injected configuration value,
// never a literal.
func NewCooldownState(userID, skillID uuid.UUID, submittedAt time.Time, window time.Duration) CooldownState {
	return CooldownState{
		UserID:          userID,
		SkillID:         skillID,
		LastAssessedAt:  submittedAt,
		RetakeAllowedAt: submittedAt.Add(window),
	}
}

// CooldownActiveError rejects a submission inside the retake window. It
// carries RetakeAllowedAt so callers can render a countdown.
type CooldownActiveError struct {
	RetakeAllowedAt time.Time
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("assessment cooldown active until %s", e.RetakeAllowedAt.Format(time.RFC3339))
}
