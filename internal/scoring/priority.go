package scoring

import "github.com/jonathan/jobsearch-agent/internal/types"

// Priority thresholds. The comparison is >=, so a score of exactly 0.70 is
// HIGH and exactly 0.50 is MEDIUM.
const (
	highThreshold   = 0.70
	mediumThreshold = 0.50
)

// PriorityFor buckets a match score into a priority tier.
func PriorityFor(score float64) types.Priority {
	switch {
	case score >= highThreshold:
		return types.PriorityHigh
	case score >= mediumThreshold:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// Match scores a posting and returns the full MatchResult.
func (s *Scorer) Match(job *types.JobPosting, connections *types.ConnectionResult) types.MatchResult {
	score := s.Score(job, connections)
	return types.MatchResult{
		Score:    score,
		Priority: PriorityFor(score),
	}
}
