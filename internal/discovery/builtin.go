package discovery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/jobsearch-agent/internal/fetch"
	"github.com/jonathan/jobsearch-agent/internal/types"
)

const (
	builtinAPIURL = "https://builtin.com/api/2/jobs"
	builtinSite   = "https://builtin.com"

	// builtinQueryLimit caps search queries per run to stay under the
	// board's rate limit.
	builtinQueryLimit = 3
)

// BuiltInSource queries the BuiltIn jobs API for each search query.
type BuiltInSource struct {
	apiURL  string
	site    string
	queries []string
	opts    *fetch.Options
	logger  *zap.Logger
}

// NewBuiltInSource creates the source. Nil queries fall back to the default
// query list.
func NewBuiltInSource(queries []string, opts *fetch.Options, logger *zap.Logger) *BuiltInSource {
	if queries == nil {
		queries = DefaultSearchQueries()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BuiltInSource{
		apiURL:  builtinAPIURL,
		site:    builtinSite,
		queries: queries,
		opts:    opts,
		logger:  logger,
	}
}

// Name implements Source.
func (s *BuiltInSource) Name() string { return "BuiltIn" }

type builtinResponse struct {
	Jobs []builtinJob `json:"jobs"`
}

type builtinJob struct {
	Title   string `json:"title"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
	Description string `json:"description"`
	SalaryRange string `json:"salary_range"`
	Remote      bool   `json:"remote"`
}

// Discover implements Source. Individual query failures are logged and
// skipped; the source only errors when every query fails.
func (s *BuiltInSource) Discover(ctx context.Context) ([]types.JobPosting, error) {
	queries := s.queries
	if len(queries) > builtinQueryLimit {
		queries = queries[:builtinQueryLimit]
	}

	var jobs []types.JobPosting
	var lastErr error
	failures := 0

	for _, query := range queries {
		var resp builtinResponse
		if err := fetch.JSON(ctx, s.queryURL(query), s.opts, &resp); err != nil {
			s.logger.Warn("builtin query failed", zap.String("query", query), zap.Error(err))
			failures++
			lastErr = err
			continue
		}
		s.logger.Info("builtin query complete",
			zap.String("query", query), zap.Int("jobs", len(resp.Jobs)))

		for _, job := range resp.Jobs {
			jobs = append(jobs, s.toPosting(job))
		}
	}

	if failures == len(queries) && lastErr != nil {
		return nil, fmt.Errorf("all builtin queries failed: %w", lastErr)
	}
	return jobs, nil
}

func (s *BuiltInSource) queryURL(query string) string {
	params := url.Values{}
	params.Set("search", query)
	params.Set("categories", "product-management")
	params.Set("experiences", "senior,lead,manager")
	params.Set("locations", "remote,new-york")
	params.Set("page", "1")
	params.Set("per_page", "20")
	return s.apiURL + "?" + params.Encode()
}

func (s *BuiltInSource) toPosting(job builtinJob) types.JobPosting {
	postingURL := job.URL
	if postingURL != "" && !strings.HasPrefix(postingURL, "http") {
		postingURL = s.site + postingURL
	}
	workplace := ""
	if job.Remote {
		workplace = "Remote"
	}
	return types.JobPosting{
		Title:         job.Title,
		Company:       job.Company.Name,
		Location:      job.Location,
		WorkplaceType: workplace,
		Description:   job.Description,
		PostedTime:    job.PublishedAt,
		URL:           postingURL,
		Source:        s.Name(),
		Salary:        job.SalaryRange,
	}
}
