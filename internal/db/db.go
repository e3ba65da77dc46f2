// Package db persists pipeline output in PostgreSQL: discovered postings,
// match results, rendered applications and the research report cache.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect opens a pool and verifies the connection.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the tables the pipeline writes to. Idempotent.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS job_postings (
			id UUID PRIMARY KEY,
			url TEXT UNIQUE NOT NULL,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			workplace_type TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			seniority_level TEXT NOT NULL DEFAULT '',
			required_experience TEXT NOT NULL DEFAULT '',
			posted_time TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			salary TEXT NOT NULL DEFAULT '',
			discovered_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS match_results (
			posting_id UUID PRIMARY KEY REFERENCES job_postings(id) ON DELETE CASCADE,
			score DOUBLE PRECISION NOT NULL,
			priority TEXT NOT NULL,
			connections JSONB,
			scored_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			posting_id UUID PRIMARY KEY REFERENCES job_postings(id) ON DELETE CASCADE,
			resume_text TEXT NOT NULL,
			cover_letter_text TEXT NOT NULL,
			resume_url TEXT NOT NULL DEFAULT '',
			cover_letter_url TEXT NOT NULL DEFAULT '',
			rendered_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS research_reports (
			company TEXT PRIMARY KEY,
			report JSONB NOT NULL,
			fetched_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
