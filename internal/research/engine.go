package research

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/jobsearch-agent/internal/llm"
	"github.com/jonathan/jobsearch-agent/internal/prompts"
)

// cacheTTL is how long a cached report stays fresh.
const cacheTTL = 24 * time.Hour

// Cache stores reports between runs. The Postgres store implements it; a nil
// cache disables caching entirely.
type Cache interface {
	// GetFreshReport returns the cached report for a company when one newer
	// than maxAge exists, else (nil, nil).
	GetFreshReport(ctx context.Context, company string, maxAge time.Duration) (*Report, error)
	// SaveReport stores a report, replacing any previous one for the company.
	SaveReport(ctx context.Context, report *Report) error
}

// Engine produces company research reports.
type Engine struct {
	news   *NewsClient
	cache  Cache
	llm    llm.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine builds a research engine. cache and llmClient may be nil:
// without a cache every call hits the news API, without an LLM client the
// brief is skipped.
func NewEngine(news *NewsClient, cache Cache, llmClient llm.Client, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{news: news, cache: cache, llm: llmClient, logger: logger, now: time.Now}
}

// Research builds the report for one company. Cache hits short-circuit; cache
// failures degrade to a fresh fetch.
func (e *Engine) Research(ctx context.Context, company, jobTitle string) (*Report, error) {
	if company == "" {
		return nil, fmt.Errorf("research: company is required")
	}

	if e.cache != nil {
		cached, err := e.cache.GetFreshReport(ctx, company, cacheTTL)
		if err != nil {
			e.logger.Warn("research cache read failed", zap.String("company", company), zap.Error(err))
		} else if cached != nil {
			e.logger.Info("using cached research", zap.String("company", company))
			return cached, nil
		}
	}

	report := &Report{
		Company:      company,
		ResearchDate: e.now().UTC(),
		Momentum:     MomentumUnknown,
	}

	articles, err := e.news.Everything(ctx, company)
	if err != nil {
		return nil, err
	}
	report.RecentNews = articles

	categorizeArticles(report, articles)
	report.TalkingPoints = talkingPoints(report, jobTitle)
	report.Momentum = assessMomentum(report)

	e.addBrief(ctx, report, jobTitle)

	if e.cache != nil {
		if err := e.cache.SaveReport(ctx, report); err != nil {
			e.logger.Warn("research cache write failed", zap.String("company", company), zap.Error(err))
		}
	}
	return report, nil
}

// addBrief asks the model for a one-paragraph brief. Absence of a client or
// a model failure leaves the report without a brief, never fails research.
func (e *Engine) addBrief(ctx context.Context, report *Report, jobTitle string) {
	if e.llm == nil || len(report.RecentNews) == 0 {
		return
	}

	headlines := make([]string, 0, len(report.RecentNews))
	for _, article := range report.RecentNews {
		headlines = append(headlines, "- "+article.Title)
	}

	template, err := prompts.Get("research.json", "company_brief")
	if err != nil {
		e.logger.Warn("brief prompt unavailable", zap.Error(err))
		return
	}
	prompt := prompts.Format(template, map[string]string{
		"Company":   report.Company,
		"JobTitle":  jobTitle,
		"Headlines": strings.Join(headlines, "\n"),
	})

	brief, err := e.llm.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		e.logger.Warn("brief generation failed", zap.String("company", report.Company), zap.Error(err))
		return
	}
	report.Brief = strings.TrimSpace(brief)
}
