// Package metrics summarizes the application tracker into a funnel report:
// how many postings were found, how many applications went out, and where
// the strongest matches came from.
package metrics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Tracker row columns read by the funnel.
const (
	colStatus   = 2
	colPriority = 3
	colScore    = 5
	colNotes    = 10
)

// Statuses that count as an application sent.
var appliedStatuses = map[string]bool{
	"Applied":      true,
	"Interviewing": true,
	"Offer":        true,
	"Rejected":     true,
}

// Summary is the aggregated view of all tracker rows.
type Summary struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"by_status"`
	ByPriority      map[string]int `json:"by_priority"`
	BySource        map[string]int `json:"by_source"`
	Applied         int            `json:"applied"`
	ApplicationRate float64        `json:"application_rate"` // applied / total
	AverageScore    float64        `json:"average_score"`    // mean match score, 0..1
}

// Summarize aggregates tracker rows (header already stripped) into a funnel
// summary. Rows shorter than the tracker contract are skipped.
func Summarize(rows [][]string) Summary {
	s := Summary{
		ByStatus:   map[string]int{},
		ByPriority: map[string]int{},
		BySource:   map[string]int{},
	}

	var scoreSum float64
	var scored int
	for _, row := range rows {
		if len(row) <= colNotes {
			continue
		}
		s.Total++

		status := strings.TrimSpace(row[colStatus])
		if status == "" {
			status = "Not Started"
		}
		s.ByStatus[status]++
		if appliedStatuses[status] {
			s.Applied++
		}

		if p := strings.TrimSpace(row[colPriority]); p != "" {
			s.ByPriority[p]++
		}
		if src := sourceFromNotes(row[colNotes]); src != "" {
			s.BySource[src]++
		}
		if score, ok := parseScore(row[colScore]); ok {
			scoreSum += score
			scored++
		}
	}

	if s.Total > 0 {
		s.ApplicationRate = float64(s.Applied) / float64(s.Total)
	}
	if scored > 0 {
		s.AverageScore = scoreSum / float64(scored)
	}
	return s
}

// sourceFromNotes extracts the source from the "source | location" notes cell.
func sourceFromNotes(notes string) string {
	src, _, _ := strings.Cut(notes, "|")
	return strings.TrimSpace(src)
}

// parseScore reads a "86.5%" cell back into a 0..1 fraction.
func parseScore(cell string) (float64, bool) {
	cell = strings.TrimSuffix(strings.TrimSpace(cell), "%")
	if cell == "" {
		return 0, false
	}
	pct, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return pct / 100, true
}

// Format renders a summary as plain text for CLI output.
func Format(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tracked postings: %d\n", s.Total)
	fmt.Fprintf(&b, "Applications sent: %d (%.0f%%)\n", s.Applied, s.ApplicationRate*100)
	fmt.Fprintf(&b, "Average match score: %.1f%%\n", s.AverageScore*100)

	writeCounts := func(title string, counts map[string]int) {
		if len(counts) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %-14s %d\n", k, counts[k])
		}
	}

	writeCounts("By status", s.ByStatus)
	writeCounts("By priority", s.ByPriority)
	writeCounts("By source", s.BySource)
	return b.String()
}
