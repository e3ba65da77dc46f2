package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/jobsearch-agent/internal/fetch"
	"github.com/jonathan/jobsearch-agent/internal/types"
)

const (
	remoteokAPIURL = "https://remoteok.com/api"

	// remoteokScanLimit caps how many feed entries are examined per run.
	remoteokScanLimit = 50
)

var (
	remoteokPMKeywords = []string{"product manager", "product lead", "product director", "pm"}
	remoteokAIKeywords = []string{"ai", "ml", "machine learning", "genai", "llm"}
)

// RemoteOKSource reads the RemoteOK JSON feed and keeps product-management
// or AI-tagged roles.
type RemoteOKSource struct {
	apiURL string
	opts   *fetch.Options
	logger *zap.Logger
}

// NewRemoteOKSource creates the source.
func NewRemoteOKSource(opts *fetch.Options, logger *zap.Logger) *RemoteOKSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteOKSource{apiURL: remoteokAPIURL, opts: opts, logger: logger}
}

// Name implements Source.
func (s *RemoteOKSource) Name() string { return "RemoteOK" }

type remoteokJob struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	URL         string   `json:"url"`
	ApplyURL    string   `json:"apply_url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Epoch       int64    `json:"epoch"`
	SalaryMin   int      `json:"salary_min"`
	SalaryMax   int      `json:"salary_max"`
}

// Discover implements Source. The feed's first element is a legal notice,
// not a job; it and any other undecodable entries are skipped.
func (s *RemoteOKSource) Discover(ctx context.Context) ([]types.JobPosting, error) {
	var raw []json.RawMessage
	if err := fetch.JSON(ctx, s.apiURL, s.opts, &raw); err != nil {
		return nil, fmt.Errorf("remoteok feed: %w", err)
	}
	if len(raw) > 0 {
		raw = raw[1:]
	}
	if len(raw) > remoteokScanLimit {
		raw = raw[:remoteokScanLimit]
	}

	var jobs []types.JobPosting
	for _, entry := range raw {
		var job remoteokJob
		if err := json.Unmarshal(entry, &job); err != nil {
			continue
		}
		if !s.relevant(job) {
			continue
		}
		jobs = append(jobs, s.toPosting(job))
	}

	s.logger.Info("remoteok scan complete", zap.Int("kept", len(jobs)))
	return jobs, nil
}

// relevant keeps PM roles and AI-tagged roles; either signal is enough.
func (s *RemoteOKSource) relevant(job remoteokJob) bool {
	position := strings.ToLower(job.Position)
	tags := strings.ToLower(strings.Join(job.Tags, " "))

	for _, kw := range remoteokPMKeywords {
		if strings.Contains(position, kw) {
			return true
		}
	}
	for _, kw := range remoteokAIKeywords {
		if strings.Contains(position, kw) || strings.Contains(tags, kw) {
			return true
		}
	}
	return false
}

func (s *RemoteOKSource) toPosting(job remoteokJob) types.JobPosting {
	postingURL := job.ApplyURL
	if postingURL == "" {
		postingURL = job.URL
	}

	posted := ""
	if job.Epoch > 0 {
		posted = time.Unix(job.Epoch, 0).UTC().Format(time.RFC3339)
	}

	salary := ""
	if job.SalaryMin > 0 {
		salary = fmt.Sprintf("$%d-$%d", job.SalaryMin, job.SalaryMax)
	}

	return types.JobPosting{
		Title:         job.Position,
		Company:       job.Company,
		Location:      "Remote",
		WorkplaceType: "Remote",
		Description:   job.Description,
		PostedTime:    posted,
		URL:           postingURL,
		Source:        s.Name(),
		Salary:        salary,
	}
}
