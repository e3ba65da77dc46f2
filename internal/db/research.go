package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobsearch-agent/internal/research"
)

// GetFreshReport implements research.Cache. It returns (nil, nil) when no
// report exists or the stored one is older than maxAge.
func (db *DB) GetFreshReport(ctx context.Context, company string, maxAge time.Duration) (*research.Report, error) {
	var (
		payload   []byte
		fetchedAt time.Time
	)
	err := db.pool.QueryRow(ctx,
		`SELECT report, fetched_at FROM research_reports WHERE company = $1`,
		company,
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read research report: %w", err)
	}
	if time.Since(fetchedAt) > maxAge {
		return nil, nil
	}

	var report research.Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("failed to decode research report: %w", err)
	}
	return &report, nil
}

// SaveReport implements research.Cache.
func (db *DB) SaveReport(ctx context.Context, report *research.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal research report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO research_reports (company, report, fetched_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (company) DO UPDATE SET report = $2, fetched_at = NOW()`,
		report.Company, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save research report: %w", err)
	}
	return nil
}
