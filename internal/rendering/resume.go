package rendering

import (
	"sort"
	"strings"

	"github.com/jonathan/jobsearch-agent/internal/selection"
	"github.com/jonathan/jobsearch-agent/internal/types"
)

const (
	// currentRoleAchievementCount bullets are picked from the achievements
	// bank for the current-role entry.
	currentRoleAchievementCount = 6

	// pastRoleBulletLimit caps bullets on non-current entries for brevity.
	pastRoleBulletLimit = 4

	// signatureOutcomeLimit caps the generic outcomes under the senior
	// variant's signature section.
	signatureOutcomeLimit = 5

	defaultEducationLine = "Pace University — BA, English Language & Literature"
)

// Renderer turns (posting, kit) pairs into resume and cover letter text. It
// holds only immutable reference data, so one Renderer serves all postings.
type Renderer struct {
	seniorKit   *types.ApplicationKit
	directorKit *types.ApplicationKit
	overrides   Overrides
	selector    *selection.Selector
}

// NewRenderer builds a Renderer. The director kit may be nil, in which case
// the senior kit serves both variants. A nil overrides table falls back to
// the senior kit's role variants.
func NewRenderer(seniorKit, directorKit *types.ApplicationKit, opts ...RendererOption) *Renderer {
	if seniorKit == nil {
		seniorKit = &types.ApplicationKit{Level: types.KitSenior}
	}
	if directorKit == nil {
		directorKit = seniorKit
	}
	r := &Renderer{
		seniorKit:   seniorKit,
		directorKit: directorKit,
		overrides:   OverridesFromKit(seniorKit),
		selector:    selection.NewSelector(nil),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RendererOption customizes a Renderer at construction time.
type RendererOption func(*Renderer)

// WithOverrides replaces the company override table.
func WithOverrides(overrides Overrides) RendererOption {
	return func(r *Renderer) { r.overrides = overrides }
}

// WithSelector replaces the achievement selector.
func WithSelector(selector *selection.Selector) RendererOption {
	return func(r *Renderer) { r.selector = selector }
}

// Render produces both documents for one posting.
func (r *Renderer) Render(job *types.JobPosting) types.RenderedApplication {
	return types.RenderedApplication{
		ResumeText:      r.RenderResume(job),
		CoverLetterText: r.RenderCoverLetter(job),
	}
}

// RenderResume assembles the resume in fixed section order: header, title,
// summary, outcomes, skills, experience, education, projects-or-speaking,
// ATS keywords.
func (r *Renderer) RenderResume(job *types.JobPosting) string {
	if job == nil {
		job = &types.JobPosting{}
	}
	level := VariantForTitle(job.Title)
	kit := r.kitFor(level)
	variant, hasVariant := r.overrides.Lookup(job.Company)

	var lines []string

	lines = append(lines, r.headerLines(kit)...)
	lines = append(lines, "")

	title := kit.Header.Title
	if hasVariant && variant.Role != "" {
		title = variant.Role
	}
	lines = append(lines, "**"+title+"**")

	summary := kit.Summary
	if hasVariant && variant.Summary != "" {
		summary = variant.Summary
	}
	lines = append(lines, summary, "")

	lines = append(lines, r.outcomeLines(level, kit, variant, hasVariant)...)
	lines = append(lines, "")

	lines = append(lines, r.skillLines(level, kit)...)
	lines = append(lines, "", "---", "")

	lines = append(lines, r.experienceLines(level, kit, job)...)

	lines = append(lines, "**education**")
	education := kit.Education
	if education == "" {
		education = defaultEducationLine
	}
	lines = append(lines, education, "")

	if level == types.KitDirector {
		lines = append(lines, "**speaking & media**")
		lines = append(lines, kit.SpeakingMedia...)
	} else {
		lines = append(lines, "**selected projects & ip**")
		for _, project := range kit.SelectedProjects {
			lines = append(lines, "- "+project)
		}
	}
	lines = append(lines, "")

	lines = append(lines, "**keywords for ats**")
	if level == types.KitDirector {
		lines = append(lines, kit.DirectorKeywords)
	} else {
		lines = append(lines, kit.ATSKeywords)
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) kitFor(level types.KitLevel) *types.ApplicationKit {
	if level == types.KitDirector {
		return r.directorKit
	}
	return r.seniorKit
}

func (r *Renderer) headerLines(kit *types.ApplicationKit) []string {
	header := kit.Header
	contact := make([]string, 0, 4)
	for _, field := range []string{header.Location, header.Phone, header.Email, header.LinkedIn} {
		if field != "" {
			contact = append(contact, field)
		}
	}
	return []string{
		"**" + header.Name + "**",
		strings.Join(contact, " • "),
	}
}

func (r *Renderer) outcomeLines(level types.KitLevel, kit *types.ApplicationKit, variant types.CompanyVariant, hasVariant bool) []string {
	var lines []string
	if level == types.KitDirector {
		lines = append(lines, "**executive summary (what you get)**")
		for _, point := range kit.ExecutiveSummary {
			lines = append(lines, "- "+point)
		}
		lines = append(lines, "", "**select portfolio outcomes**")
		for _, outcome := range kit.PortfolioOutcomes {
			lines = append(lines, "- "+outcome)
		}
		return lines
	}

	lines = append(lines, "**signature outcomes**")
	// Company-specific bullets lead, then the generic outcomes.
	if hasVariant {
		for _, bullet := range variant.TopBullets {
			lines = append(lines, "- "+bullet)
		}
	}
	outcomes := kit.SignatureOutcomes
	if len(outcomes) > signatureOutcomeLimit {
		outcomes = outcomes[:signatureOutcomeLimit]
	}
	for _, outcome := range outcomes {
		lines = append(lines, "- "+outcome)
	}
	return lines
}

func (r *Renderer) skillLines(level types.KitLevel, kit *types.ApplicationKit) []string {
	var lines []string
	if level == types.KitDirector {
		lines = append(lines, "**core capabilities**")
		for _, category := range sortedKeys(kit.CoreCapabilities) {
			lines = append(lines, "- **"+category+":** "+kit.CoreCapabilities[category])
		}
		return lines
	}
	lines = append(lines, "**core skills**")
	for _, category := range sortedKeys(kit.CoreSkills) {
		lines = append(lines, "- "+category+": "+kit.CoreSkills[category])
	}
	return lines
}

func (r *Renderer) experienceLines(level types.KitLevel, kit *types.ApplicationKit, job *types.JobPosting) []string {
	lines := []string{"## experience", ""}
	for _, entry := range kit.Experience {
		if level == types.KitDirector && entry.Scope != "" {
			lines = append(lines, "**"+entry.Company+" — "+entry.Title+"** *"+entry.Scope+"* ("+entry.Dates+")")
		} else {
			lines = append(lines, "**"+entry.Company+" — "+entry.Title+"** ("+entry.Dates+")")
		}

		// The current role gets bullets selected against this posting; past
		// roles keep their leading bullets.
		if entry.Current {
			selected := r.selector.SelectAchievements(job.Description, kit.AchievementsBank, currentRoleAchievementCount)
			for _, achievement := range selected {
				lines = append(lines, "- "+achievement)
			}
		} else {
			bullets := entry.Bullets
			if len(bullets) > pastRoleBulletLimit {
				bullets = bullets[:pastRoleBulletLimit]
			}
			for _, bullet := range bullets {
				lines = append(lines, "- "+bullet)
			}
		}
		lines = append(lines, "")
	}
	return lines
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
