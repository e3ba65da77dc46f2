package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

func TestFormatMatch(t *testing.T) {
	job := &types.JobPosting{
		Title:    "Senior Product Manager, AI",
		Company:  "Acme",
		Location: "Remote",
		Salary:   "$180k-$220k",
		URL:      "https://example.com/job/1",
	}
	match := types.MatchResult{Score: 0.865, Priority: types.PriorityHigh}

	text := FormatMatch(job, match)

	assert.Contains(t, text, "<b>Senior Product Manager, AI</b>")
	assert.Contains(t, text, "Acme")
	assert.Contains(t, text, "Remote")
	assert.Contains(t, text, "$180k-$220k")
	assert.Contains(t, text, "86.5% match (HIGH)")
	assert.Contains(t, text, `<a href="https://example.com/job/1">Apply Now</a>`)
}

func TestFormatMatch_OmitsEmptyFields(t *testing.T) {
	job := &types.JobPosting{Title: "PM", Company: "Acme"}
	match := types.MatchResult{Score: 0.5, Priority: types.PriorityMedium}

	text := FormatMatch(job, match)

	assert.NotContains(t, text, "📍")
	assert.NotContains(t, text, "💰")
	assert.NotContains(t, text, "🔗")
	assert.Contains(t, text, "50.0% match (MEDIUM)")
}

func TestNewReporter_EmptyTokenIsOptional(t *testing.T) {
	r, err := NewReporter("", 123, nil)
	require.NoError(t, err)
	assert.Nil(t, r)
}
