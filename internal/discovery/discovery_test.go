package discovery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

func TestBuiltInSource_Discover(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("search"))
		assert.Equal(t, "product-management", r.URL.Query().Get("categories"))
		_, _ = w.Write([]byte(`{"jobs": [{
			"title": "Senior Product Manager, AI",
			"company": {"name": "Acme"},
			"location": "New York, NY",
			"url": "/job/senior-product-manager-ai/1",
			"published_at": "2026-08-20",
			"description": "Own the LLM roadmap",
			"salary_range": "$180K-$220K",
			"remote": true
		}]}`))
	}))
	defer server.Close()

	source := NewBuiltInSource([]string{"AI Product Manager"}, nil, nil)
	source.apiURL = server.URL
	source.site = "https://builtin.com"

	jobs, err := source.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AI Product Manager"}, queries)

	require.Len(t, jobs, 1)
	job := jobs[0]
	assert.Equal(t, "Senior Product Manager, AI", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "https://builtin.com/job/senior-product-manager-ai/1", job.URL)
	assert.Equal(t, "Remote", job.WorkplaceType)
	assert.Equal(t, "BuiltIn", job.Source)
	assert.Equal(t, "$180K-$220K", job.Salary)
}

func TestBuiltInSource_QueryLimit(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"jobs": []}`))
	}))
	defer server.Close()

	source := NewBuiltInSource(DefaultSearchQueries(), nil, nil)
	source.apiURL = server.URL

	_, err := source.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, builtinQueryLimit, calls)
}

func TestBuiltInSource_AllQueriesFailing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	source := NewBuiltInSource([]string{"AI Product Manager"}, nil, nil)
	source.apiURL = server.URL

	_, err := source.Discover(context.Background())
	assert.Error(t, err)
}

func TestRemoteOKSource_FiltersAndMaps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"legal": "feed terms, not a job"},
			{"position": "Product Manager", "company": "Acme", "url": "https://remoteok.com/l/1",
			 "apply_url": "https://acme.example/apply", "tags": ["product"], "epoch": 1756300000,
			 "salary_min": 150000, "salary_max": 190000, "description": "Ship product"},
			{"position": "Backend Engineer", "company": "NoFit", "url": "https://remoteok.com/l/2",
			 "tags": ["golang"], "description": "Write services"},
			{"position": "ML Platform Lead", "company": "Tagged", "url": "https://remoteok.com/l/3",
			 "tags": ["machine learning"], "description": "Run the ML platform"}
		]`))
	}))
	defer server.Close()

	source := NewRemoteOKSource(nil, nil)
	source.apiURL = server.URL

	jobs, err := source.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	pm := jobs[0]
	assert.Equal(t, "Product Manager", pm.Title)
	assert.Equal(t, "https://acme.example/apply", pm.URL)
	assert.Equal(t, "Remote", pm.Location)
	assert.Equal(t, "$150000-$190000", pm.Salary)
	assert.NotEmpty(t, pm.PostedTime)

	assert.Equal(t, "ML Platform Lead", jobs[1].Title)
}

func TestWellfoundSource_EmitsKnownHiring(t *testing.T) {
	source := NewWellfoundSource([]string{"OpenAI", "Anthropic", "Initech", "Perplexity", "Stripe", "Cohere"})
	source.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }

	jobs, err := source.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "OpenAI", jobs[0].Company)
	assert.Equal(t, "https://wellfound.com/company/openai/jobs", jobs[0].URL)
	assert.Equal(t, "Wellfound", jobs[0].Source)
}

type stubSource struct {
	name string
	jobs []types.JobPosting
	err  error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Discover(ctx context.Context) ([]types.JobPosting, error) {
	return s.jobs, s.err
}

func TestEngine_ScoresFiltersAndRanks(t *testing.T) {
	strong := types.JobPosting{
		Title:         "Senior Product Manager, AI Platform",
		Company:       "OpenAI",
		Location:      "Remote",
		WorkplaceType: "Remote",
		Description:   "machine learning and llm work on the ai platform",
		URL:           "https://example.com/strong",
	}
	weak := types.JobPosting{
		Title:       "Office Coordinator",
		Company:     "Paperco",
		Location:    "Des Moines, IA",
		Description: "front desk coverage",
		URL:         "https://example.com/weak",
	}
	missingCompany := types.JobPosting{
		Title: "Senior Product Manager",
		URL:   "https://example.com/missing",
	}

	engine := NewEngine([]Source{
		&stubSource{name: "a", jobs: []types.JobPosting{weak, strong}},
		&stubSource{name: "b", jobs: []types.JobPosting{strong, missingCompany}},
	}, nil, nil, nil)

	scored, err := engine.Discover(context.Background())
	require.NoError(t, err)

	// The weak posting is LOW and dropped, the invalid one never scores, and
	// the strong one appears once despite arriving from both sources.
	require.Len(t, scored, 1)
	assert.Equal(t, "https://example.com/strong", scored[0].Job.URL)
	assert.Equal(t, types.PriorityHigh, scored[0].Match.Priority)
	assert.True(t, scored[0].Connections.HasRelevantExperience())
}

func TestEngine_RanksByScoreDescending(t *testing.T) {
	high := types.JobPosting{
		Title:         "Senior Product Manager, AI",
		Company:       "Acme",
		Location:      "Remote",
		WorkplaceType: "Remote",
		Description:   "llm and machine learning",
		URL:           "https://example.com/high",
	}
	medium := types.JobPosting{
		Title:       "Product Manager",
		Company:     "Beta",
		Location:    "New York, NY",
		Description: "some llm exposure",
		URL:         "https://example.com/medium",
	}

	engine := NewEngine([]Source{
		&stubSource{name: "a", jobs: []types.JobPosting{medium, high}},
	}, nil, nil, nil)

	scored, err := engine.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, scored, 2)
	assert.Equal(t, "https://example.com/high", scored[0].Job.URL)
	assert.GreaterOrEqual(t, scored[0].Match.Score, scored[1].Match.Score)
}

func TestEngine_ToleratesPartialSourceFailure(t *testing.T) {
	job := types.JobPosting{
		Title:         "Senior Product Manager, AI",
		Company:       "Acme",
		Location:      "Remote",
		WorkplaceType: "Remote",
		Description:   "llm and machine learning",
		URL:           "https://example.com/1",
	}

	engine := NewEngine([]Source{
		&stubSource{name: "down", err: errors.New("board unreachable")},
		&stubSource{name: "up", jobs: []types.JobPosting{job}},
	}, nil, nil, nil)

	scored, err := engine.Discover(context.Background())
	require.NoError(t, err)
	assert.Len(t, scored, 1)
}

func TestEngine_AllSourcesFailing(t *testing.T) {
	engine := NewEngine([]Source{
		&stubSource{name: "down1", err: errors.New("unreachable")},
		&stubSource{name: "down2", err: errors.New("unreachable")},
	}, nil, nil, nil)

	_, err := engine.Discover(context.Background())
	assert.Error(t, err)
}
