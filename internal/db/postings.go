package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// UpsertPosting stores a posting keyed by URL and returns its row ID.
// Re-discovering the same URL refreshes the mutable fields instead of
// duplicating the row.
func (db *DB) UpsertPosting(ctx context.Context, job *types.JobPosting) (uuid.UUID, error) {
	if job.URL == "" {
		return uuid.Nil, fmt.Errorf("posting has no URL")
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings
			(id, url, title, company, location, workplace_type, description,
			 seniority_level, required_experience, posted_time, source, salary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (url) DO UPDATE SET
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			location = EXCLUDED.location,
			workplace_type = EXCLUDED.workplace_type,
			description = EXCLUDED.description,
			seniority_level = EXCLUDED.seniority_level,
			required_experience = EXCLUDED.required_experience,
			posted_time = EXCLUDED.posted_time,
			source = EXCLUDED.source,
			salary = EXCLUDED.salary
		 RETURNING id`,
		uuid.New(), job.URL, job.Title, job.Company, job.Location, job.WorkplaceType,
		job.Description, job.SeniorityLevel, job.RequiredExperience, job.PostedTime,
		job.Source, job.Salary,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert posting: %w", err)
	}
	return id, nil
}

// SaveMatch stores the score, priority and connection detail for a posting.
func (db *DB) SaveMatch(ctx context.Context, postingID uuid.UUID, match types.MatchResult, connections *types.ConnectionResult) error {
	connJSON, err := json.Marshal(connections)
	if err != nil {
		return fmt.Errorf("failed to marshal connections: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_results (posting_id, score, priority, connections)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (posting_id) DO UPDATE SET
			score = $2, priority = $3, connections = $4, scored_at = NOW()`,
		postingID, match.Score, string(match.Priority), connJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}
