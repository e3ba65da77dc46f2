// Package discovery finds candidate postings across job boards, scores them
// against the personal profile, and returns a ranked shortlist.
package discovery

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// Source is one job board. Implementations must be safe for concurrent use;
// the engine runs all sources in parallel.
type Source interface {
	Name() string
	Discover(ctx context.Context) ([]types.JobPosting, error)
}

// DefaultSearchQueries are the role queries sent to boards that support
// keyword search.
func DefaultSearchQueries() []string {
	return []string{
		"AI Product Manager",
		"GenAI Product Manager",
		"Senior Product Manager AI",
		"Senior Product Manager Machine Learning",
		"Principal Product Manager AI",
		"Staff Product Manager AI",
		"Product Manager LLM",
		"Product Manager Generative AI",
		"Director Product Management AI",
	}
}

// DefaultTargetCompanies are companies watched directly, in priority order.
func DefaultTargetCompanies() []string {
	return []string{
		"OpenAI", "Anthropic", "Google", "Meta", "Microsoft", "Amazon",
		"Apple", "Netflix", "Spotify", "Stripe", "Databricks", "Snowflake",
		"Palantir", "Scale AI", "Cohere", "Stability AI", "Runway",
		"Character AI", "Perplexity", "Midjourney", "Inflection AI",
	}
}

// postingCheck is the minimal shape a posting must satisfy to enter scoring.
type postingCheck struct {
	Title   string `validate:"required"`
	Company string `validate:"required"`
	URL     string `validate:"omitempty,url"`
}

var validate = validator.New()

// validPosting reports whether a posting carries the fields scoring needs.
// Boards return partial records routinely; dropping them here keeps the
// pipeline total downstream.
func validPosting(job types.JobPosting) bool {
	check := postingCheck{Title: job.Title, Company: job.Company, URL: job.URL}
	return validate.Struct(check) == nil
}
