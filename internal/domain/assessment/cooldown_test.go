package assessment

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCooldownState_Eligible(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	var never CooldownState
	if !never.Eligible(now) {
		t.Fatalf("never-assessed state must be eligible")
	}

	st := NewCooldownState(uuid.New(), uuid.New(), now, 24*time.Hour)
	if st.RetakeAllowedAt != now.Add(24*time.Hour) {
		t.Fatalf("expected retake at %v, got %v", now.Add(24*time.Hour), st.RetakeAllowedAt)
	}
	if st.Eligible(now) {
		t.Fatalf("must not be eligible immediately after submission")
	}
	if st.Eligible(now.Add(23 * time.Hour)) {
		t.Fatalf("must not be eligible inside the window")
	}
	if !st.Eligible(now.Add(24 * time.Hour)) {
		t.Fatalf("must be eligible exactly at retake time")
	}
	if !st.Eligible(now.Add(48 * time.Hour)) {
		t.Fatalf("must be eligible after the window")
	}
}

func TestCooldownActiveError_Message(t *testing.T) {
	at := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
	err := &CooldownActiveError{RetakeAllowedAt: at}
	want := "assessment cooldown active until 2026-08-02T10:00:00Z"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
