package domain

// Score labels and their inclusive lower bounds. Exactly 60 maps to the
// lower tier: a score must exceed the threshold to earn the label.
const (
	LabelExcellent   = "Excellent"
	LabelHealthy     = "Healthy"
	LabelNeedsAction = "Needs Action"
)

// Severity classes mirror the label tiers for any color mapping consumers
// need (dashboard badges, report highlighting).
const (
	SeverityGood    = "good"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

// ScoreBreakdown is the labeled per-component view of a fitness score.
type ScoreBreakdown struct {
	Diversification int `json:"diversification"` // max 40
	SafetyNet       int `json:"safety_net"`      // max 25
	Discipline      int `json:"discipline"`      // max 20
	RiskAlignment   int `json:"risk_alignment"`  // max 15
}

// FitnessScore is the composite financial fitness score in [0,100].
type FitnessScore struct {
	Total     int            `json:"total"`
	Label     string         `json:"label"`
	Severity  string         `json:"severity"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// ScoreLabel maps a composite score to its qualitative tier.
func ScoreLabel(total int) string {
	switch {
	case total > 80:
		return LabelExcellent
	case total > 60:
		return LabelHealthy
	default:
		return LabelNeedsAction
	}
}

// ScoreSeverity maps a composite score to its severity class using the same
// three-tier thresholds as ScoreLabel.
func ScoreSeverity(total int) string {
	switch {
	case total > 80:
		return SeverityGood
	case total > 60:
		return SeverityWarning
	default:
		return SeverityDanger
	}
}
