package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobsearch-agent/internal/fetch"
	"github.com/jonathan/jobsearch-agent/internal/observability"
	"github.com/jonathan/jobsearch-agent/internal/profile"
	"github.com/jonathan/jobsearch-agent/internal/scoring"
	"github.com/jonathan/jobsearch-agent/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single posting against the personal profile",
	Long:  "Builds a posting from flags (or fetches its description from a URL), finds personal connections and prints the per-component match breakdown.",
	RunE:  runScore,
}

var (
	scoreTitle       string
	scoreCompany     string
	scoreDescription string
	scoreLocation    string
	scoreURL         string
)

func init() {
	scoreCmd.Flags().StringVar(&scoreTitle, "title", "", "job title (required)")
	scoreCmd.Flags().StringVar(&scoreCompany, "company", "", "company name (required)")
	scoreCmd.Flags().StringVar(&scoreDescription, "description", "", "job description text")
	scoreCmd.Flags().StringVar(&scoreLocation, "location", "", "job location")
	scoreCmd.Flags().StringVar(&scoreURL, "url", "", "posting URL; its text is fetched when no description is given")

	if err := scoreCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	cfg, err := getConfig()
	if err != nil {
		return err
	}

	job := &types.JobPosting{
		Title:       scoreTitle,
		Company:     scoreCompany,
		Description: scoreDescription,
		Location:    scoreLocation,
		URL:         scoreURL,
	}

	if job.Description == "" && job.URL != "" {
		text, err := fetch.PostingText(ctx, job.URL, nil, logger)
		if err != nil {
			return fmt.Errorf("failed to fetch posting text: %w", err)
		}
		job.Description = text
	}

	store, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	connections := store.FindConnections(job)
	scorer := scoring.NewScorer()
	breakdown := scorer.ScoreWithBreakdown(job, connections)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoredJob(job, breakdown, scoring.PriorityFor(breakdown.Total()))
	printer.PrintConnections(connections)
	return nil
}
