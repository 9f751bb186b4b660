package scoring

// Readiness bands over a match percentage. Defined once here so every
// consumer renders the same thresholds.
type Readiness string

const (
	ReadinessReady    Readiness = "ready"
	ReadinessConsider Readiness = "consider"
	ReadinessNotReady Readiness = "not_ready"
)

func ReadinessFor(matchPercentage int) Readiness {
	switch {
	case matchPercentage >= 80:
		return ReadinessReady
	case matchPercentage >= 60:
		return ReadinessConsider
	default:
		return ReadinessNotReady
	}
}

// ScoreLabel classifies an individual 0-100 score into the shared
// 80/60/40 bands used for per-skill display and recommendations.
func ScoreLabel(score float64) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "needs_work"
	default:
		return "critical"
	}
}
