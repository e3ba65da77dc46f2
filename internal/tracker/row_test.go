package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

func TestRow_ColumnContract(t *testing.T) {
	job := &types.JobPosting{
		Title:      "Senior Product Manager, AI",
		Company:    "Acme",
		Location:   "Remote",
		PostedTime: "2026-08-20",
		URL:        "https://example.com/job/1",
		Source:     "BuiltIn",
	}
	match := types.MatchResult{Score: 0.865, Priority: types.PriorityHigh}
	links := types.DocumentLinks{
		ResumeURL:      "https://docs.google.com/document/d/r/edit",
		CoverLetterURL: "https://docs.google.com/document/d/c/edit",
	}

	row := Row(job, match, links)
	require.Len(t, row, RowWidth)

	assert.Equal(t, "Senior Product Manager, AI", row[0])
	assert.Equal(t, "Acme", row[1])
	assert.Equal(t, "Not Started", row[2])
	assert.Equal(t, "HIGH", row[3])
	assert.Equal(t, "2026-08-20", row[4])
	assert.Equal(t, "86.5%", row[5])
	assert.Equal(t, "", row[6])
	assert.Equal(t, "", row[7])
	assert.Equal(t, links.ResumeURL, row[8])
	assert.Equal(t, links.CoverLetterURL, row[9])
	assert.Equal(t, "BuiltIn | Remote", row[10])
	assert.Equal(t, "Apply this week", row[11])
	assert.Equal(t, "https://example.com/job/1", row[12])
}

func TestRow_NextActionByPriority(t *testing.T) {
	job := &types.JobPosting{Title: "PM", Company: "Acme"}

	high := Row(job, types.MatchResult{Score: 0.8, Priority: types.PriorityHigh}, types.DocumentLinks{})
	assert.Equal(t, "Apply this week", high[11])

	medium := Row(job, types.MatchResult{Score: 0.6, Priority: types.PriorityMedium}, types.DocumentLinks{})
	assert.Equal(t, "Review and apply", medium[11])

	low := Row(job, types.MatchResult{Score: 0.3, Priority: types.PriorityLow}, types.DocumentLinks{})
	assert.Equal(t, "Review and apply", low[11])
}

func TestRow_ScoreFormatting(t *testing.T) {
	job := &types.JobPosting{Title: "PM", Company: "Acme"}

	row := Row(job, types.MatchResult{Score: 1.0, Priority: types.PriorityHigh}, types.DocumentLinks{})
	assert.Equal(t, "100.0%", row[5])

	row = Row(job, types.MatchResult{Score: 0, Priority: types.PriorityLow}, types.DocumentLinks{})
	assert.Equal(t, "0.0%", row[5])
}
