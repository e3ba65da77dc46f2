package discovery

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobsearch-agent/internal/profile"
	"github.com/jonathan/jobsearch-agent/internal/scoring"
	"github.com/jonathan/jobsearch-agent/internal/types"
)

// ScoredJob is one discovered posting with its profile connections and match
// result attached.
type ScoredJob struct {
	Job         types.JobPosting
	Connections *types.ConnectionResult
	Match       types.MatchResult
}

// Engine fans discovery out across sources, then scores and ranks what came
// back. Connections are computed before scoring because the scorer's
// personal-connection component reads them.
type Engine struct {
	sources []Source
	store   *profile.Store
	scorer  *scoring.Scorer
	logger  *zap.Logger
}

// NewEngine builds an Engine over the given sources.
func NewEngine(sources []Source, store *profile.Store, scorer *scoring.Scorer, logger *zap.Logger) *Engine {
	if store == nil {
		store = profile.DefaultStore()
	}
	if scorer == nil {
		scorer = scoring.NewScorer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{sources: sources, store: store, scorer: scorer, logger: logger}
}

// Discover runs all sources concurrently and returns MEDIUM-or-better
// matches sorted by score descending. A failing source is logged and
// skipped; discovery fails only when every source fails.
func (e *Engine) Discover(ctx context.Context) ([]ScoredJob, error) {
	var (
		mu       sync.Mutex
		jobs     []types.JobPosting
		failures int
		lastErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, source := range e.sources {
		g.Go(func() error {
			found, err := source.Discover(gctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				e.logger.Warn("source failed", zap.String("source", source.Name()), zap.Error(err))
				failures++
				lastErr = err
				return nil
			}
			e.logger.Info("source complete",
				zap.String("source", source.Name()), zap.Int("jobs", len(found)))
			jobs = append(jobs, found...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(e.sources) > 0 && failures == len(e.sources) {
		return nil, lastErr
	}

	return e.scoreAndRank(jobs), nil
}

// scoreAndRank deduplicates by URL, drops invalid postings, scores the rest
// and keeps MEDIUM-or-better sorted best first.
func (e *Engine) scoreAndRank(jobs []types.JobPosting) []ScoredJob {
	seen := make(map[string]bool, len(jobs))
	scored := make([]ScoredJob, 0, len(jobs))

	for _, job := range jobs {
		if !validPosting(job) {
			continue
		}
		if job.URL != "" {
			if seen[job.URL] {
				continue
			}
			seen[job.URL] = true
		}

		connections := e.store.FindConnections(&job)
		match := e.scorer.Match(&job, connections)
		if match.Priority == types.PriorityLow {
			continue
		}
		scored = append(scored, ScoredJob{Job: job, Connections: connections, Match: match})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Match.Score > scored[j].Match.Score
	})
	return scored
}
