package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// SaveApplication stores the rendered documents and their drive links for a
// posting. Re-rendering replaces the previous row.
func (db *DB) SaveApplication(ctx context.Context, postingID uuid.UUID, app types.RenderedApplication, links types.DocumentLinks) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO applications
			(posting_id, resume_text, cover_letter_text, resume_url, cover_letter_url)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (posting_id) DO UPDATE SET
			resume_text = $2, cover_letter_text = $3,
			resume_url = $4, cover_letter_url = $5, rendered_at = NOW()`,
		postingID, app.ResumeText, app.CoverLetterText, links.ResumeURL, links.CoverLetterURL,
	)
	if err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}
