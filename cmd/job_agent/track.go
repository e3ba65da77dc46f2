package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jonathan/jobsearch-agent/internal/db"
	"github.com/jonathan/jobsearch-agent/internal/observability"
	"github.com/jonathan/jobsearch-agent/internal/profile"
	"github.com/jonathan/jobsearch-agent/internal/scoring"
	"github.com/jonathan/jobsearch-agent/internal/tracker"
	"github.com/jonathan/jobsearch-agent/internal/types"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Render an application and add it to the tracker spreadsheet",
	Long:  "Scores the posting, renders the resume and cover letter, creates Google Docs for both and appends a row to the tracker spreadsheet.",
	RunE:  runTrack,
}

var (
	trackTitle       string
	trackCompany     string
	trackDescription string
	trackLocation    string
	trackURL         string
	trackSource      string
	trackCredentials string
	trackSkipDocs    bool
)

func init() {
	trackCmd.Flags().StringVar(&trackTitle, "title", "", "job title (required)")
	trackCmd.Flags().StringVar(&trackCompany, "company", "", "company name (required)")
	trackCmd.Flags().StringVar(&trackDescription, "description", "", "job description text")
	trackCmd.Flags().StringVar(&trackLocation, "location", "", "job location")
	trackCmd.Flags().StringVar(&trackURL, "url", "", "posting URL")
	trackCmd.Flags().StringVar(&trackSource, "source", "manual", "where the posting was found")
	trackCmd.Flags().StringVar(&trackCredentials, "credentials", "", "Google service account credentials file (required)")
	trackCmd.Flags().BoolVar(&trackSkipDocs, "skip-docs", false, "append the tracker row without creating documents")

	if err := trackCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}
	if err := trackCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	if err := trackCmd.MarkFlagRequired("credentials"); err != nil {
		panic(fmt.Sprintf("failed to mark credentials flag as required: %v", err))
	}

	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	cfg, err := getConfig()
	if err != nil {
		return err
	}
	if cfg.Tracker.SpreadsheetID == "" {
		return fmt.Errorf("tracker.spreadsheet-id is not configured")
	}

	job := &types.JobPosting{
		Title:       trackTitle,
		Company:     trackCompany,
		Description: trackDescription,
		Location:    trackLocation,
		URL:         trackURL,
		Source:      trackSource,
	}

	store, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	connections := store.FindConnections(job)
	match := scoring.NewScorer().Match(job, connections)

	renderer, err := buildRenderer(cfg)
	if err != nil {
		return err
	}
	rendered := renderer.Render(job)

	creds := option.WithCredentialsFile(trackCredentials)

	var links types.DocumentLinks
	if !trackSkipDocs {
		docsSvc, err := docs.NewService(ctx, creds)
		if err != nil {
			return fmt.Errorf("failed to create docs service: %w", err)
		}
		driveSvc, err := drive.NewService(ctx, creds)
		if err != nil {
			return fmt.Errorf("failed to create drive service: %w", err)
		}

		docsClient := tracker.NewDocsClient(docsSvc, driveSvc, cfg.Tracker.FolderID, logger)
		links, err = docsClient.CreateApplicationDocs(ctx, job, rendered)
		if err != nil {
			return err
		}
	}

	sheetsSvc, err := sheets.NewService(ctx, creds)
	if err != nil {
		return fmt.Errorf("failed to create sheets service: %w", err)
	}
	sheetsClient := tracker.NewSheetsClient(sheetsSvc, cfg.Tracker.SpreadsheetID, logger)
	if err := sheetsClient.Append(ctx, job, match, links); err != nil {
		return err
	}

	// Postings are keyed by URL in Postgres, so nothing to save without one.
	if cfg.DatabaseURL != "" && job.URL != "" {
		if err := saveApplication(cmd, cfg.DatabaseURL, job, match, connections, rendered, links); err != nil {
			return err
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoredJob(job, scoring.NewScorer().ScoreWithBreakdown(job, connections), match.Priority)
	printer.PrintRenderSummary(job, links)
	return nil
}

func saveApplication(cmd *cobra.Command, databaseURL string, job *types.JobPosting, match types.MatchResult, connections *types.ConnectionResult, rendered types.RenderedApplication, links types.DocumentLinks) error {
	ctx := cmd.Context()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	id, err := database.UpsertPosting(ctx, job)
	if err != nil {
		return err
	}
	if err := database.SaveMatch(ctx, id, match, connections); err != nil {
		return err
	}
	return database.SaveApplication(ctx, id, rendered, links)
}
