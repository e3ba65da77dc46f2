package rendering

import (
	"sort"
	"strings"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// introAnchor marks the end of the opening paragraph; company-specific intros
// are inserted after the blank line that follows it.
const introAnchor = "That's where I do my best work."

// defaultCoverLetterTemplate is used when the kit carries no template.
// [Company] and [Name] are literal substitution targets.
const defaultCoverLetterTemplate = `Dear Hiring Manager,

You're looking for a product leader who can turn an AI roadmap into shipped outcomes. That's where I do my best work. I operate end-to-end: clarify the problem, design the workflow, ship with guardrails, and measure adoption and ROI.

**Why [Company], why me**
- **Roadmap → results:** I translate strategy into user stories, acceptance criteria, and weekly releases.
- **Hands-on:** I build and ship AI-assisted workflows (agents, evals, guardrails), not slideware.
- **Governed speed:** I partner early with Security/Legal so we move fast without risking compliance.

**90-day plan**
1) **Assess & align** current tools, datasets, and use cases; define success metrics (adoption, cycle time, quality).
2) **Pilot with proof**: 1–2 high-leverage pilots with weekly evals and clear decision gates.
3) **Operationalize** with playbooks and enablement; ramp shadow-mode → production.
4) **Govern** via lightweight review and audit trails.

I'd love to share shipped examples and discuss where we can deliver impact in quarter one.

Sincerely,
[Name]`

// RenderCoverLetter assembles the cover letter: literal company substitution
// into the template, company-specific intro insertion after the opening
// paragraph, and keyword-conditional phrase rewrites. The first matching
// rewrite wins; platform outranks data outranks revenue/growth.
func (r *Renderer) RenderCoverLetter(job *types.JobPosting) string {
	if job == nil {
		job = &types.JobPosting{}
	}

	company := job.Company
	if company == "" {
		company = "Your Company"
	}

	template := r.seniorKit.CoverLetterTemplate
	if template == "" {
		template = defaultCoverLetterTemplate
	}

	letter := strings.ReplaceAll(template, "[Company]", company)
	letter = strings.ReplaceAll(letter, "{company}", company)
	letter = strings.ReplaceAll(letter, "[Hiring Manager]", "Hiring Manager")
	letter = strings.ReplaceAll(letter, "[Name]", r.seniorKit.Header.Name)

	if intro := r.companyIntro(job.Company); intro != "" {
		letter = insertAfterOpening(letter, intro)
	}
	letter = strings.ReplaceAll(letter, "{intro}", "")

	return rewriteForFocus(letter, job.Description)
}

// companyIntro resolves the pre-authored intro for a company: the override
// variant's intro wins, then the kit's intro table matched by fragment.
func (r *Renderer) companyIntro(company string) string {
	if company == "" {
		return ""
	}
	if variant, ok := r.overrides.Lookup(company); ok && variant.Intro != "" {
		return variant.Intro
	}

	companyLower := strings.ToLower(company)
	fragments := make([]string, 0, len(r.seniorKit.CoverLetterIntros))
	for fragment := range r.seniorKit.CoverLetterIntros {
		fragments = append(fragments, fragment)
	}
	sort.Strings(fragments)

	for _, fragment := range fragments {
		if strings.Contains(companyLower, fragment) {
			return r.seniorKit.CoverLetterIntros[fragment]
		}
	}
	return ""
}

// insertAfterOpening places the intro as its own paragraph after the opening
// paragraph. Falls back to the first paragraph break, then to appending.
func insertAfterOpening(letter, intro string) string {
	searchFrom := 0
	if idx := strings.Index(letter, introAnchor); idx != -1 {
		searchFrom = idx
	}
	breakIdx := strings.Index(letter[searchFrom:], "\n\n")
	if breakIdx == -1 {
		return letter + "\n\n" + intro
	}
	insertAt := searchFrom + breakIdx + 2
	return letter[:insertAt] + intro + "\n\n" + letter[insertAt:]
}

// rewriteForFocus adjusts fixed template phrases to the posting's focus.
func rewriteForFocus(letter, description string) string {
	descLower := strings.ToLower(description)
	switch {
	case strings.Contains(descLower, "platform"):
		return strings.Replace(letter,
			"1–2 high-leverage pilots",
			"platform capabilities that enable multiple teams", 1)
	case strings.Contains(descLower, "data"):
		return strings.Replace(letter,
			"1–2 high-leverage pilots",
			"data ingestion and quality pilots with measurable SLAs", 1)
	case strings.Contains(descLower, "revenue"), strings.Contains(descLower, "growth"):
		return strings.Replace(letter,
			"adoption, cycle time, quality",
			"adoption, revenue impact, retention", 1)
	}
	return letter
}
