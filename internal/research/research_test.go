package research

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobsearch-agent/internal/llm"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestCredibilityFor(t *testing.T) {
	assert.Equal(t, 95, CredibilityFor("the-wall-street-journal"))
	assert.Equal(t, 65, CredibilityFor("venture-beat"))
	assert.Equal(t, 60, CredibilityFor("unknown-blog"))
	assert.Equal(t, 60, CredibilityFor(""))
}

func TestRelevanceFor(t *testing.T) {
	base := Article{Title: "Tech roundup", Description: "General industry news"}
	assert.InDelta(t, 0.5, relevanceFor(base, "Acme", testNow), 1e-9)

	titled := Article{Title: "Acme raises Series C", Description: "More about Acme plans"}
	assert.InDelta(t, 1.0, relevanceFor(titled, "Acme", testNow), 1e-9)

	recent := Article{Title: "Industry news", PublishedAt: testNow.Add(-3 * 24 * time.Hour)}
	assert.InDelta(t, 0.7, relevanceFor(recent, "Acme", testNow), 1e-9)

	twoWeeks := Article{Title: "Industry news", PublishedAt: testNow.Add(-10 * 24 * time.Hour)}
	assert.InDelta(t, 0.6, relevanceFor(twoWeeks, "Acme", testNow), 1e-9)
}

func TestNewsClient_EverythingRanksAndTruncates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"Acme"`, r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.URL.Query().Get("apiKey"))
		assert.NotEmpty(t, r.URL.Query().Get("sources"))

		articles := `{"status": "ok", "articles": [`
		// 11 low-credibility fillers plus one strong WSJ article.
		for i := 0; i < 11; i++ {
			articles += fmt.Sprintf(`{"source": {"id": "unknown-blog", "name": "Blog"},
				"title": "Filler %d", "description": "", "url": "https://blog.example/%d",
				"publishedAt": "2026-07-01T00:00:00Z"},`, i, i)
		}
		articles += `{"source": {"id": "the-wall-street-journal", "name": "The Wall Street Journal"},
			"title": "Acme lands major funding round", "description": "Acme raised new investment",
			"url": "https://wsj.example/acme", "publishedAt": "2026-08-27T00:00:00Z"}]}`
		_, _ = w.Write([]byte(articles))
	}))
	defer server.Close()

	client := NewNewsClient("test-key", nil, nil)
	client.apiURL = server.URL
	client.now = func() time.Time { return testNow }

	articles, err := client.Everything(context.Background(), "Acme")
	require.NoError(t, err)
	require.Len(t, articles, topArticles)

	// The credible, relevant article ranks first.
	assert.Equal(t, "Acme lands major funding round", articles[0].Title)
	assert.Equal(t, 95, articles[0].Credibility)
	assert.InDelta(t, 1.0, articles[0].Relevance, 1e-9)
}

func TestNewsClient_NoKeySkipsFetch(t *testing.T) {
	client := NewNewsClient("", nil, nil)
	articles, err := client.Everything(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Nil(t, articles)
}

func articleFixture(title, desc, sourceID string) Article {
	return Article{
		Title:       title,
		Description: desc,
		SourceID:    sourceID,
		SourceName:  sourceID,
		Credibility: CredibilityFor(sourceID),
		PublishedAt: testNow.Add(-48 * time.Hour),
	}
}

func TestCategorizeArticles(t *testing.T) {
	report := &Report{Company: "Acme"}
	categorizeArticles(report, []Article{
		articleFixture("Acme announces funding round", "Series C investment", "the-wall-street-journal"),
		articleFixture("Acme launches new product line", "A new feature ships", "unknown-blog"),
		articleFixture("Acme faces layoff rumors", "Restructuring challenge", "reuters"),
		articleFixture("Weather today", "Nothing relevant", "unknown-blog"),
	})

	require.Len(t, report.FinancialEvents, 1)
	assert.Equal(t, "Acme announces funding round", report.FinancialEvents[0].Title)
	require.Len(t, report.ProductLaunches, 2) // funding article also says "announces"
	require.Len(t, report.Challenges, 1)

	// Key events only admit credibility >= 80 sources.
	for _, event := range report.KeyEvents {
		assert.NotEqual(t, "Acme launches new product line", event.Title)
	}
	assert.NotEmpty(t, report.KeyEvents)
}

func TestCategorizeArticles_CapsPerCategory(t *testing.T) {
	report := &Report{Company: "Acme"}
	var articles []Article
	for i := 0; i < 6; i++ {
		articles = append(articles, articleFixture(
			fmt.Sprintf("Funding news %d", i), "investment round", "unknown-blog"))
	}
	categorizeArticles(report, articles)
	assert.Len(t, report.FinancialEvents, eventsPerCategory)
}

func TestTalkingPoints(t *testing.T) {
	report := &Report{
		FinancialEvents: []Event{{Title: "Acme raises $50M"}},
		ProductLaunches: []Event{{Title: "Acme launches AI assistant", Summary: "new ai feature"}},
		Challenges:      []Event{{Title: "Acme layoff round", Summary: "layoff"}},
	}

	points := talkingPoints(report, "Senior Product Manager, AI")
	require.NotEmpty(t, points)
	assert.LessOrEqual(t, len(points), maxTalkingPoints)
	assert.Contains(t, points[0], "Acme raises $50M")
	assert.Contains(t, points[1], "LLM orchestration")
	assert.Contains(t, points[2], "organizational efficiency")
	// AI job titles get the multi-agent closer.
	assert.Contains(t, points[len(points)-1], "multi-agent AI systems")
}

func TestAssessMomentum(t *testing.T) {
	tests := []struct {
		name     string
		positive int
		negative int
		want     Momentum
	}{
		{"strong", 5, 1, MomentumStrongGrowth},
		{"steady", 2, 1, MomentumSteadyGrowth},
		{"challenged", 1, 3, MomentumFacingChallenges},
		{"stable", 1, 1, MomentumStable},
		{"empty", 0, 0, MomentumStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &Report{}
			for i := 0; i < tt.positive; i++ {
				report.FinancialEvents = append(report.FinancialEvents, Event{})
			}
			for i := 0; i < tt.negative; i++ {
				report.Challenges = append(report.Challenges, Event{})
			}
			assert.Equal(t, tt.want, assessMomentum(report))
		})
	}
}

type memoryCache struct {
	mu      sync.Mutex
	reports map[string]*Report
}

func (m *memoryCache) GetFreshReport(ctx context.Context, company string, maxAge time.Duration) (*Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	report, ok := m.reports[company]
	if !ok || time.Since(report.ResearchDate) > maxAge {
		return nil, nil
	}
	return report, nil
}

func (m *memoryCache) SaveReport(ctx context.Context, report *Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reports == nil {
		m.reports = make(map[string]*Report)
	}
	m.reports[report.Company] = report
	return nil
}

type stubLLM struct {
	response string
	err      error
	prompts  []string
}

func (s *stubLLM) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubLLM) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Close() error { return nil }

func newsServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ok", "articles": [
			{"source": {"id": "techcrunch", "name": "TechCrunch"},
			 "title": "Acme launches agent platform", "description": "Acme product launch",
			 "url": "https://tc.example/acme", "publishedAt": "2026-08-26T00:00:00Z"}
		]}`))
	}))
}

func TestEngine_ResearchBuildsReport(t *testing.T) {
	server := newsServer(t)
	defer server.Close()

	client := NewNewsClient("test-key", nil, nil)
	client.apiURL = server.URL
	client.now = func() time.Time { return testNow }

	model := &stubLLM{response: "Acme is shipping fast."}
	engine := NewEngine(client, nil, model, nil)
	engine.now = func() time.Time { return testNow }

	report, err := engine.Research(context.Background(), "Acme", "Senior Product Manager, AI")
	require.NoError(t, err)

	assert.Equal(t, "Acme", report.Company)
	assert.Len(t, report.RecentNews, 1)
	assert.NotEmpty(t, report.ProductLaunches)
	assert.NotEmpty(t, report.TalkingPoints)
	assert.NotEqual(t, MomentumUnknown, report.Momentum)
	assert.Equal(t, "Acme is shipping fast.", report.Brief)
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Acme launches agent platform")
}

func TestEngine_CacheHitSkipsFetch(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		_, _ = w.Write([]byte(`{"status": "ok", "articles": []}`))
	}))
	defer server.Close()

	client := NewNewsClient("test-key", nil, nil)
	client.apiURL = server.URL

	cache := &memoryCache{}
	engine := NewEngine(client, cache, nil, nil)

	first, err := engine.Research(context.Background(), "Acme", "")
	require.NoError(t, err)
	second, err := engine.Research(context.Background(), "Acme", "")
	require.NoError(t, err)

	assert.Equal(t, 1, fetches)
	assert.Equal(t, first.ResearchDate, second.ResearchDate)
}

func TestEngine_LLMFailureDoesNotFailResearch(t *testing.T) {
	server := newsServer(t)
	defer server.Close()

	client := NewNewsClient("test-key", nil, nil)
	client.apiURL = server.URL
	client.now = func() time.Time { return testNow }

	engine := NewEngine(client, nil, &stubLLM{err: fmt.Errorf("model unavailable")}, nil)

	report, err := engine.Research(context.Background(), "Acme", "")
	require.NoError(t, err)
	assert.Empty(t, report.Brief)
}

func TestEngine_RequiresCompany(t *testing.T) {
	engine := NewEngine(NewNewsClient("", nil, nil), nil, nil, nil)
	_, err := engine.Research(context.Background(), "", "PM")
	assert.Error(t, err)
}
