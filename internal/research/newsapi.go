package research

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/jobsearch-agent/internal/fetch"
)

const (
	newsAPIURL = "https://newsapi.org/v2/everything"

	// newsWindowDays bounds the query to recent coverage.
	newsWindowDays = 30

	// newsPageSize articles requested per query.
	newsPageSize = 20

	// newsSourceLimit caps the trusted sources sent with the query.
	newsSourceLimit = 5

	// topArticles kept after credibility*relevance ranking.
	topArticles = 10
)

// NewsClient queries NewsAPI for recent company coverage.
type NewsClient struct {
	apiURL string
	apiKey string
	opts   *fetch.Options
	logger *zap.Logger
	now    func() time.Time
}

// NewNewsClient creates a client. An empty API key is allowed; Everything
// then returns no articles instead of failing, so research degrades rather
// than aborts.
func NewNewsClient(apiKey string, opts *fetch.Options, logger *zap.Logger) *NewsClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NewsClient{
		apiURL: newsAPIURL,
		apiKey: apiKey,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

type newsResponse struct {
	Status   string        `json:"status"`
	Articles []newsArticle `json:"articles"`
}

type newsArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// Everything fetches the last 30 days of coverage for a company, scores each
// article for credibility and relevance, and returns the strongest articles
// first.
func (c *NewsClient) Everything(ctx context.Context, company string) ([]Article, error) {
	if c.apiKey == "" {
		c.logger.Debug("news api key not configured, skipping fetch")
		return nil, nil
	}

	var resp newsResponse
	if err := fetch.JSON(ctx, c.queryURL(company), c.opts, &resp); err != nil {
		return nil, fmt.Errorf("newsapi query for %s: %w", company, err)
	}

	now := c.now()
	articles := make([]Article, 0, len(resp.Articles))
	for _, raw := range resp.Articles {
		article := Article{
			Title:       raw.Title,
			Description: raw.Description,
			SourceID:    raw.Source.ID,
			SourceName:  raw.Source.Name,
			URL:         raw.URL,
			Credibility: CredibilityFor(raw.Source.ID),
		}
		if ts, err := time.Parse(time.RFC3339, raw.PublishedAt); err == nil {
			article.PublishedAt = ts
		}
		article.Relevance = relevanceFor(article, company, now)
		articles = append(articles, article)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return float64(articles[i].Credibility)*articles[i].Relevance >
			float64(articles[j].Credibility)*articles[j].Relevance
	})
	if len(articles) > topArticles {
		articles = articles[:topArticles]
	}

	c.logger.Info("news fetch complete",
		zap.String("company", company), zap.Int("articles", len(articles)))
	return articles, nil
}

func (c *NewsClient) queryURL(company string) string {
	now := c.now()
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%q", company))
	params.Set("apiKey", c.apiKey)
	params.Set("from", now.AddDate(0, 0, -newsWindowDays).Format("2006-01-02"))
	params.Set("to", now.Format("2006-01-02"))
	params.Set("sortBy", "relevancy")
	params.Set("language", "en")
	params.Set("pageSize", fmt.Sprintf("%d", newsPageSize))
	params.Set("sources", strings.Join(TrustedSources[:newsSourceLimit], ","))
	return c.apiURL + "?" + params.Encode()
}

// relevanceFor scores how much an article is actually about the company:
// base 0.5, +0.3 for a title mention, +0.2 for a description mention, plus a
// recency bonus, capped at 1.0.
func relevanceFor(article Article, company string, now time.Time) float64 {
	relevance := 0.5
	companyLower := strings.ToLower(company)

	if strings.Contains(strings.ToLower(article.Title), companyLower) {
		relevance += 0.3
	}
	if strings.Contains(strings.ToLower(article.Description), companyLower) {
		relevance += 0.2
	}

	if !article.PublishedAt.IsZero() {
		age := now.Sub(article.PublishedAt)
		switch {
		case age <= 7*24*time.Hour:
			relevance += 0.2
		case age <= 14*24*time.Hour:
			relevance += 0.1
		}
	}

	if relevance > 1.0 {
		relevance = 1.0
	}
	return relevance
}
