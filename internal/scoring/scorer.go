// Package scoring computes weighted match scores for job postings against the
// candidate profile.
package scoring

import (
	"strings"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// Default weights for scoring components. They sum to 1.0 so the final
// score stays within [0, 1].
const (
	titleWeight              = 0.25
	seniorityWeight          = 0.20
	technicalWeight          = 0.25
	locationWeight           = 0.15
	personalConnectionWeight = 0.15
)

// Weights holds the per-component weights for a scorer. Custom weights are
// mostly useful in tests; production runs use DefaultWeights.
type Weights struct {
	Title              float64
	Seniority          float64
	Technical          float64
	Location           float64
	PersonalConnection float64
}

// DefaultWeights returns the standard component weights.
func DefaultWeights() Weights {
	return Weights{
		Title:              titleWeight,
		Seniority:          seniorityWeight,
		Technical:          technicalWeight,
		Location:           locationWeight,
		PersonalConnection: personalConnectionWeight,
	}
}

// Scorer scores postings using substring heuristics over enumerated keyword
// lists. Keyword sets are configuration, not inline literals, so tests can
// substitute fixtures.
type Scorer struct {
	weights Weights

	roleKeyword       string   // core role phrase worth most of the title weight
	titleLevelTerms   []string // seniority markers inside the title
	technicalKeywords []string // AI/ML indicators counted in the description
	directorTerms     []string // leadership markers for the seniority stretch rule
}

// Option customizes a Scorer.
type Option func(*Scorer)

// WithWeights overrides the default component weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) { s.weights = w }
}

// WithTechnicalKeywords overrides the technical keyword list.
func WithTechnicalKeywords(keywords []string) Option {
	return func(s *Scorer) { s.technicalKeywords = keywords }
}

// NewScorer creates a Scorer with the default heuristics.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		weights:         DefaultWeights(),
		roleKeyword:     "product manager",
		titleLevelTerms: []string{"senior", "staff", "principal", "lead"},
		technicalKeywords: []string{
			"ai", "artificial intelligence", "machine learning", "llm",
			"genai", "generative", "nlp", "deep learning",
		},
		directorTerms: []string{"director", "principal"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Breakdown holds the weighted contribution of each component, mostly for
// verbose output and tests.
type Breakdown struct {
	Title              float64
	Seniority          float64
	Technical          float64
	Location           float64
	PersonalConnection float64
}

// Total sums the component contributions, clamped to 1.0.
func (b Breakdown) Total() float64 {
	total := b.Title + b.Seniority + b.Technical + b.Location + b.PersonalConnection
	if total > 1.0 {
		total = 1.0
	}
	if total < 0.0 {
		total = 0.0
	}
	return total
}

// Score computes the match score for a posting. Connections must be the
// result of the profile store's FindConnections for the same posting; a nil
// result contributes zero for the personal-connection component. Missing
// posting fields are treated as empty strings and contribute nothing.
func (s *Scorer) Score(job *types.JobPosting, connections *types.ConnectionResult) float64 {
	return s.ScoreWithBreakdown(job, connections).Total()
}

// ScoreWithBreakdown computes the match score and returns the per-component
// contributions.
func (s *Scorer) ScoreWithBreakdown(job *types.JobPosting, connections *types.ConnectionResult) Breakdown {
	if job == nil {
		return Breakdown{}
	}
	return Breakdown{
		Title:              s.scoreTitle(job),
		Seniority:          s.scoreSeniority(job),
		Technical:          s.scoreTechnical(job),
		Location:           s.scoreLocation(job),
		PersonalConnection: s.scorePersonalConnection(connections),
	}
}

// scoreTitle rewards the core role phrase and a seniority marker in the
// title. The two sub-rules are independent, so the contribution ranges from
// 0 to the full title weight.
func (s *Scorer) scoreTitle(job *types.JobPosting) float64 {
	title := strings.ToLower(job.Title)

	score := 0.0
	if strings.Contains(title, s.roleKeyword) {
		score += s.weights.Title * 0.7
	}
	if containsAny(title, s.titleLevelTerms) {
		score += s.weights.Title * 0.3
	}
	return score
}

// scoreSeniority applies tiered, mutually exclusive rules; the first match
// wins. A "senior" title is consumed by the first rule at 0.8x weight and
// never reaches the mid-level rule at 1.0x, even when the experience text
// also matches. That precedence is intentional and pinned by tests; do not
// reorder the rules.
func (s *Scorer) scoreSeniority(job *types.JobPosting) float64 {
	title := strings.ToLower(job.Title)
	seniority := strings.ToLower(job.SeniorityLevel)
	experience := strings.ToLower(job.RequiredExperience)

	switch {
	case strings.Contains(seniority, "senior") || strings.Contains(title, "senior"):
		return s.weights.Seniority * 0.8
	case strings.Contains(seniority, "mid") || strings.Contains(experience, "5") || strings.Contains(experience, "7"):
		return s.weights.Seniority * 1.0
	case containsAny(title, s.directorTerms):
		return s.weights.Seniority * 0.6 // slight stretch
	default:
		return 0.0
	}
}

// scoreTechnical counts distinct technical keywords present in the
// description. Two or more earn the full weight, exactly one earns 0.7x.
func (s *Scorer) scoreTechnical(job *types.JobPosting) float64 {
	desc := strings.ToLower(job.Description)

	matches := 0
	for _, keyword := range s.technicalKeywords {
		if strings.Contains(desc, keyword) {
			matches++
		}
	}

	switch {
	case matches >= 2:
		return s.weights.Technical
	case matches == 1:
		return s.weights.Technical * 0.7
	default:
		return 0.0
	}
}

// scoreLocation prefers remote, then New York, then hybrid.
func (s *Scorer) scoreLocation(job *types.JobPosting) float64 {
	location := strings.ToLower(job.Location)
	workplace := strings.ToLower(job.WorkplaceType)

	switch {
	case strings.Contains(location, "remote") || strings.Contains(workplace, "remote"):
		return s.weights.Location
	case strings.Contains(location, "new york") || strings.Contains(location, "nyc") || strings.Contains(location, "ny,"):
		return s.weights.Location * 0.8
	case strings.Contains(workplace, "hybrid"):
		return s.weights.Location * 0.6
	default:
		return 0.0
	}
}

// scorePersonalConnection grants the full weight when any experience record
// matched the posting.
func (s *Scorer) scorePersonalConnection(connections *types.ConnectionResult) float64 {
	if connections.HasRelevantExperience() {
		return s.weights.PersonalConnection
	}
	return 0.0
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
