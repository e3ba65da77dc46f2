// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobsearch-agent/internal/research"
	"github.com/jonathan/jobsearch-agent/internal/scoring"
	"github.com/jonathan/jobsearch-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoredJob outputs one posting with its per-component score breakdown.
func (p *Printer) PrintScoredJob(job *types.JobPosting, breakdown scoring.Breakdown, priority types.Priority) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Title match:     %.2f\n", breakdown.Title))
	sb.WriteString(fmt.Sprintf("Seniority:       %.2f\n", breakdown.Seniority))
	sb.WriteString(fmt.Sprintf("Technical fit:   %.2f\n", breakdown.Technical))
	sb.WriteString(fmt.Sprintf("Location:        %.2f\n", breakdown.Location))
	sb.WriteString(fmt.Sprintf("Personal link:   %.2f\n", breakdown.PersonalConnection))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total: %.1f%%  (%s)", breakdown.Total()*100, priority))

	p.printBox("MATCH BREAKDOWN", sb.String())
}

// PrintConnections outputs the personal connections found for a posting.
func (p *Printer) PrintConnections(connections *types.ConnectionResult) {
	if connections == nil || !connections.HasRelevantExperience() {
		return
	}

	var sb strings.Builder
	sb.WriteString("Relevant experience:\n")
	count := min(len(connections.RelevantExperiences), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := connections.RelevantExperiences[i]
		desc := exp.Description
		if len(desc) > 45 {
			desc = desc[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s (score %d)\n", desc, exp.RelevanceScore))
	}
	if len(connections.RelevantExperiences) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n",
			len(connections.RelevantExperiences)-maxItemsToShow))
	}

	if len(connections.ApplicableProjects) > 0 {
		sb.WriteString("\nSide projects:\n")
		for _, proj := range connections.ApplicableProjects {
			sb.WriteString(fmt.Sprintf("  • %s\n", proj.Name))
		}
	}

	if connections.UniqueAngle != "" {
		angle := connections.UniqueAngle
		if len(angle) > 50 {
			angle = angle[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nAngle: %s", angle))
	}

	p.printBox("PERSONAL CONNECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResearchReport outputs the company intelligence summary.
func (p *Printer) PrintResearchReport(report *research.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:   %s\n", report.Company))
	sb.WriteString(fmt.Sprintf("Momentum:  %s\n", report.Momentum))
	sb.WriteString(fmt.Sprintf("Articles:  %d\n", len(report.RecentNews)))

	if len(report.KeyEvents) > 0 {
		sb.WriteString("\nKey events:\n")
		count := min(len(report.KeyEvents), 3)
		for i := 0; i < count; i++ {
			title := report.KeyEvents[i].Title
			if len(title) > 50 {
				title = title[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", title))
		}
		if len(report.KeyEvents) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.KeyEvents)-3))
		}
	}

	if len(report.TalkingPoints) > 0 {
		sb.WriteString("\nTalking points:\n")
		count := min(len(report.TalkingPoints), 3)
		for i := 0; i < count; i++ {
			point := report.TalkingPoints[i]
			if len(point) > 50 {
				point = point[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", point))
		}
	}

	p.printBox("COMPANY RESEARCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRenderSummary outputs where the rendered documents ended up.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRenderSummary(job *types.JobPosting, links types.DocumentLinks) {
	if job == nil {
		return
	}
	if links.ResumeURL == "" && links.CoverLetterURL == "" {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RENDERED TO STDOUT ONLY")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company: %s\n\n", job.Company))
	if links.ResumeURL != "" {
		sb.WriteString(fmt.Sprintf("Resume:       %s\n", links.ResumeURL))
	}
	if links.CoverLetterURL != "" {
		sb.WriteString(fmt.Sprintf("Cover letter: %s\n", links.CoverLetterURL))
	}

	p.printBox("DOCUMENTS CREATED", strings.TrimSuffix(sb.String(), "\n"))
}
