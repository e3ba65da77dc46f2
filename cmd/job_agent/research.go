package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/jobsearch-agent/internal/db"
	"github.com/jonathan/jobsearch-agent/internal/llm"
	"github.com/jonathan/jobsearch-agent/internal/observability"
	"github.com/jonathan/jobsearch-agent/internal/research"
)

var researchCmd = &cobra.Command{
	Use:   "research [company]",
	Short: "Research a company's recent news before applying",
	Long:  "Pulls recent news for the company, categorizes events, assesses momentum and suggests talking points for the cover letter and interviews. Reports are cached in Postgres for a day when a database is configured.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResearch,
}

var (
	researchJobTitle string
	researchJSON     bool
)

func init() {
	researchCmd.Flags().StringVar(&researchJobTitle, "job-title", "", "role being applied for, used to tailor talking points")
	researchCmd.Flags().BoolVar(&researchJSON, "json-output", false, "print the full report as JSON")

	rootCmd.AddCommand(researchCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	cfg, err := getConfig()
	if err != nil {
		return err
	}
	if cfg.Research.NewsAPIKey == "" {
		return fmt.Errorf("NEWSAPI_API_KEY not set (set the environment variable or research.newsapi-key in the config)")
	}

	news := research.NewNewsClient(cfg.Research.NewsAPIKey, nil, logger)

	var cache research.Cache
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		cache = database
	}

	var llmClient llm.Client
	if cfg.Research.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.Research.GeminiAPIKey)
		if err != nil {
			logger.Warn("skipping llm brief", zap.Error(err))
		} else {
			defer client.Close()
			llmClient = client
		}
	}

	engine := research.NewEngine(news, cache, llmClient, logger)
	report, err := engine.Research(ctx, args[0], researchJobTitle)
	if err != nil {
		return err
	}

	if researchJSON {
		pretty, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(pretty))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintResearchReport(report)
	if report.Brief != "" {
		fmt.Println(report.Brief)
	}
	return nil
}
