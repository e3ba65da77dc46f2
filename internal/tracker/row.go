// Package tracker exports pipeline output to the application tracker: a
// Google Sheets row per posting plus generated Docs for the resume and cover
// letter.
package tracker

import (
	"fmt"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// RowWidth is the tracker sheet's column count (columns A through M).
const RowWidth = 13

// trackerRange is where rows are appended.
const trackerRange = "Applications!A:M"

// Row builds the 13-column tracker row for one scored posting. Column order
// is the sheet's contract: Role, Company, Status, Priority, Date Posted,
// Match Score, Deadline, Date Applied, Resume Link, Cover Letter Link,
// Notes, Next Action, Job URL.
func Row(job *types.JobPosting, match types.MatchResult, links types.DocumentLinks) []string {
	nextAction := "Review and apply"
	if match.Priority == types.PriorityHigh {
		nextAction = "Apply this week"
	}

	return []string{
		job.Title,
		job.Company,
		"Not Started",
		string(match.Priority),
		job.PostedTime,
		fmt.Sprintf("%.1f%%", match.Score*100),
		"", // Deadline
		"", // Date Applied
		links.ResumeURL,
		links.CoverLetterURL,
		fmt.Sprintf("%s | %s", job.Source, job.Location),
		nextAction,
		job.URL,
	}
}
