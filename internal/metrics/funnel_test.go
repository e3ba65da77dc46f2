package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(status, priority, score, notes string) []string {
	return []string{
		"PM", "Acme", status, priority, "2026-08-20", score,
		"", "", "", "", notes, "Review and apply", "https://example.com",
	}
}

func TestSummarize(t *testing.T) {
	rows := [][]string{
		row("Not Started", "HIGH", "90.0%", "BuiltIn | Remote"),
		row("Applied", "MEDIUM", "60.0%", "RemoteOK | Remote"),
		row("Interviewing", "HIGH", "75.0%", "BuiltIn | New York, NY"),
		row("", "LOW", "", "Wellfound | "),
	}

	s := Summarize(rows)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Applied)
	assert.InDelta(t, 0.5, s.ApplicationRate, 1e-9)
	assert.InDelta(t, 0.75, s.AverageScore, 1e-9)

	assert.Equal(t, map[string]int{
		"Not Started":  2,
		"Applied":      1,
		"Interviewing": 1,
	}, s.ByStatus)
	assert.Equal(t, map[string]int{"HIGH": 2, "MEDIUM": 1, "LOW": 1}, s.ByPriority)
	assert.Equal(t, map[string]int{"BuiltIn": 2, "RemoteOK": 1, "Wellfound": 1}, s.BySource)
}

func TestSummarize_SkipsShortRows(t *testing.T) {
	rows := [][]string{
		{"PM", "Acme"},
		row("Not Started", "HIGH", "80.0%", "BuiltIn | Remote"),
	}

	s := Summarize(rows)

	assert.Equal(t, 1, s.Total)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Total)
	assert.Zero(t, s.ApplicationRate)
	assert.Zero(t, s.AverageScore)
}

func TestFormat(t *testing.T) {
	s := Summarize([][]string{
		row("Applied", "HIGH", "90.0%", "BuiltIn | Remote"),
		row("Not Started", "MEDIUM", "60.0%", "RemoteOK | Remote"),
	})

	out := Format(s)

	assert.Contains(t, out, "Tracked postings: 2")
	assert.Contains(t, out, "Applications sent: 1 (50%)")
	assert.Contains(t, out, "Average match score: 75.0%")
	assert.Contains(t, out, "By source")
	assert.Contains(t, out, "BuiltIn")
}
