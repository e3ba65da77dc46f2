package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jonathan/jobsearch-agent/internal/metrics"
	"github.com/jonathan/jobsearch-agent/internal/tracker"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Summarize the application funnel from the tracker spreadsheet",
	RunE:  runMetrics,
}

var metricsCredentials string

func init() {
	metricsCmd.Flags().StringVar(&metricsCredentials, "credentials", "", "Google service account credentials file (required)")

	if err := metricsCmd.MarkFlagRequired("credentials"); err != nil {
		panic(fmt.Sprintf("failed to mark credentials flag as required: %v", err))
	}

	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	cfg, err := getConfig()
	if err != nil {
		return err
	}
	if cfg.Tracker.SpreadsheetID == "" {
		return fmt.Errorf("tracker.spreadsheet-id is not configured")
	}

	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(metricsCredentials))
	if err != nil {
		return fmt.Errorf("failed to create sheets service: %w", err)
	}

	rows, err := tracker.NewSheetsClient(svc, cfg.Tracker.SpreadsheetID, logger).ReadRows(ctx)
	if err != nil {
		return err
	}

	fmt.Print(metrics.Format(metrics.Summarize(rows)))
	return nil
}
