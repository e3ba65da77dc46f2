// Package research builds company intelligence reports from recent news:
// credibility-weighted articles, categorized events, interview talking
// points and a momentum assessment.
package research

import "time"

// Momentum is the overall trajectory read from recent news.
type Momentum string

const (
	MomentumStrongGrowth     Momentum = "strong_growth"
	MomentumSteadyGrowth     Momentum = "steady_growth"
	MomentumFacingChallenges Momentum = "facing_challenges"
	MomentumStable           Momentum = "stable"
	MomentumUnknown          Momentum = "unknown"
)

// Article is one news item scored for credibility and relevance.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SourceID    string    `json:"source_id"`
	SourceName  string    `json:"source_name"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Credibility int       `json:"credibility"`
	Relevance   float64   `json:"relevance"`
}

// Event is a categorized news item carried into the report.
type Event struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Source  string `json:"source"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

// Report is the full research output for one company.
type Report struct {
	Company              string    `json:"company"`
	ResearchDate         time.Time `json:"research_date"`
	RecentNews           []Article `json:"recent_news"`
	KeyEvents            []Event   `json:"key_events"`
	FinancialEvents      []Event   `json:"financial_events"`
	ProductLaunches      []Event   `json:"product_launches"`
	LeadershipChanges    []Event   `json:"leadership_changes"`
	StrategicInitiatives []Event   `json:"strategic_initiatives"`
	Challenges           []Event   `json:"challenges"`
	TalkingPoints        []string  `json:"talking_points"`
	Momentum             Momentum  `json:"company_momentum"`
	Brief                string    `json:"brief,omitempty"`
}

// TrustedSources are the NewsAPI source IDs queried, in preference order.
var TrustedSources = []string{
	"techcrunch", "bloomberg", "reuters", "the-wall-street-journal",
	"financial-times", "business-insider", "forbes", "fortune",
	"the-verge", "wired", "cnbc", "venture-beat",
}

// defaultCredibility applies to sources outside the table.
const defaultCredibility = 60

// sourceCredibility scores NewsAPI source IDs.
var sourceCredibility = map[string]int{
	"the-wall-street-journal": 95,
	"reuters":                 92,
	"bloomberg":               90,
	"financial-times":         88,
	"techcrunch":              85,
	"forbes":                  80,
	"fortune":                 80,
	"business-insider":        75,
	"cnbc":                    75,
	"the-verge":               70,
	"wired":                   70,
	"venture-beat":            65,
}

// CredibilityFor returns the credibility score for a NewsAPI source ID.
func CredibilityFor(sourceID string) int {
	if score, ok := sourceCredibility[sourceID]; ok {
		return score
	}
	return defaultCredibility
}

// eventCategories maps report categories to the keywords that select them.
var eventCategories = map[string][]string{
	"financial_events":      {"funding", "revenue", "ipo", "acquisition", "merger", "investment", "valuation", "earnings"},
	"product_launches":      {"launch", "release", "announce", "introduce", "unveil", "new product", "new feature"},
	"leadership_changes":    {"ceo", "cto", "cfo", "hire", "appoint", "resign", "departure", "leadership"},
	"strategic_initiatives": {"strategy", "partnership", "expansion", "initiative", "transformation", "pivot"},
	"challenges":            {"layoff", "lawsuit", "challenge", "issue", "problem", "decline", "loss", "struggle"},
}
