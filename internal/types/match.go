package types

// Priority buckets a match score into an application urgency tier.
type Priority string

// Priority tiers, derived from the match score via fixed thresholds.
const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// MatchResult is the derived fit estimate for a single posting. It is
// recomputed per posting and never treated as authoritative state.
type MatchResult struct {
	Score    float64  `json:"score"` // always within [0, 1]
	Priority Priority `json:"priority"`
}
