package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/jobsearch-agent/internal/config"
	"github.com/jonathan/jobsearch-agent/internal/db"
	"github.com/jonathan/jobsearch-agent/internal/discovery"
	"github.com/jonathan/jobsearch-agent/internal/notify"
	"github.com/jonathan/jobsearch-agent/internal/observability"
	"github.com/jonathan/jobsearch-agent/internal/profile"
	"github.com/jonathan/jobsearch-agent/internal/scoring"
	"github.com/jonathan/jobsearch-agent/internal/types"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find and rank open roles across job boards",
	Long:  "Searches BuiltIn, RemoteOK and the watched-company list for AI product management roles, scores each posting against the personal profile and prints the ranked matches.",
	RunE:  runDiscover,
}

var (
	discoverLimit int
	discoverSave  bool
)

func init() {
	discoverCmd.Flags().IntVar(&discoverLimit, "limit", 0, "maximum postings to show (0 shows all)")
	discoverCmd.Flags().BoolVar(&discoverSave, "save", false, "persist postings and match results to Postgres")

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	cfg, err := getConfig()
	if err != nil {
		return err
	}

	store, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	scorer := scoring.NewScorer()
	engine := discovery.NewEngine(discoverySources(cfg, logger), store, scorer, logger)

	jobs, err := engine.Discover(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		logger.Info("no matching postings found")
		return nil
	}
	if discoverLimit > 0 && len(jobs) > discoverLimit {
		jobs = jobs[:discoverLimit]
	}

	printer := observability.NewPrinter(os.Stdout)
	for i := range jobs {
		job := &jobs[i]
		printer.PrintScoredJob(&job.Job, scorer.ScoreWithBreakdown(&job.Job, job.Connections), job.Match.Priority)
	}

	notifyHighPriority(cfg, jobs, logger)

	if discoverSave {
		return savePostings(cmd, cfg, jobs, logger)
	}
	return nil
}

func discoverySources(cfg *config.Config, logger *zap.Logger) []discovery.Source {
	queries := cfg.Search.Queries
	if len(queries) == 0 {
		queries = discovery.DefaultSearchQueries()
	}
	companies := cfg.Search.TargetCompanies
	if len(companies) == 0 {
		companies = discovery.DefaultTargetCompanies()
	}

	return []discovery.Source{
		discovery.NewBuiltInSource(queries, nil, logger),
		discovery.NewRemoteOKSource(nil, logger),
		discovery.NewWellfoundSource(companies),
	}
}

func notifyHighPriority(cfg *config.Config, jobs []discovery.ScoredJob, logger *zap.Logger) {
	reporter, err := notify.NewReporter(cfg.Telegram.Token, cfg.Telegram.ChatID, logger)
	if err != nil {
		logger.Warn("skipping telegram notifications", zap.Error(err))
		return
	}
	if reporter == nil {
		return
	}

	for i := range jobs {
		if jobs[i].Match.Priority != types.PriorityHigh {
			continue
		}
		if err := reporter.SendMatch(&jobs[i].Job, jobs[i].Match); err != nil {
			logger.Warn("failed to send match notification", zap.Error(err))
		}
	}
}

func savePostings(cmd *cobra.Command, cfg *config.Config, jobs []discovery.ScoredJob, logger *zap.Logger) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL not set (set the environment variable or database-url in the config)")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	for i := range jobs {
		id, err := database.UpsertPosting(ctx, &jobs[i].Job)
		if err != nil {
			return err
		}
		if err := database.SaveMatch(ctx, id, jobs[i].Match, jobs[i].Connections); err != nil {
			return err
		}
	}

	logger.Info("postings saved", zap.Int("count", len(jobs)))
	return nil
}
