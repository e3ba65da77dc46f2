package rendering

import (
	"strings"
	"testing"

	"github.com/jonathan/jobsearch-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seniorKitFixture() *types.ApplicationKit {
	return &types.ApplicationKit{
		Level: types.KitSenior,
		Header: types.KitHeader{
			Name:     "Jordan Avery",
			Title:    "Senior Product Manager, AI",
			Location: "Stamford, CT",
			Email:    "jordan@example.com",
		},
		Summary:           "Ships AI products with measurable outcomes.",
		SignatureOutcomes: []string{"Outcome one", "Outcome two", "Outcome three", "Outcome four", "Outcome five", "Outcome six"},
		CoreSkills:        map[string]string{"AI/ML": "evals, guardrails", "Data": "pipelines"},
		SelectedProjects:  []string{"WeatherThreads styling app"},
		ATSKeywords:       "product management, llm",
		Experience: []types.ExperienceEntry{
			{Company: "Helios Labs", Title: "Principal PM", Dates: "2022 - Present", Current: true},
			{Company: "BrightGrocer", Title: "Head of Product", Dates: "2019 - 2022",
				Bullets: []string{"b1", "b2", "b3", "b4", "b5"}},
		},
		AchievementsBank: []string{
			"Reduced busywork with multi-agent workflows",
			"Implemented data-health SLAs",
			"Drove ARR from churn-risk signals",
		},
		CoverLetterIntros: map[string]string{
			"zillow": "Your consumer platform is a daily habit in my house.",
		},
		RoleVariants: map[string]types.CompanyVariant{
			"zillow": {
				Role:       "Senior PM, AI Experiences",
				Summary:    "Consumer AI with trust built in.",
				TopBullets: []string{"Shipped consumer AI to millions"},
				Intro:      "Your consumer platform is a daily habit in my house.",
			},
		},
	}
}

func directorKitFixture() *types.ApplicationKit {
	return &types.ApplicationKit{
		Level:             types.KitDirector,
		Header:            types.KitHeader{Name: "Jordan Avery", Title: "Director of Product"},
		ExecutiveSummary:  []string{"Led orgs through AI transformation"},
		PortfolioOutcomes: []string{"Identified ARR pipeline"},
		CoreCapabilities:  map[string]string{"Org Design": "hiring, coaching"},
		SpeakingMedia:     []string{"PM in the PM podcast, host"},
		DirectorKeywords:  "product leadership, governance",
		Experience: []types.ExperienceEntry{
			{Company: "Helios Labs", Title: "Director", Scope: "3 squads", Dates: "2022 - Present",
				Bullets: []string{"d1"}},
		},
	}
}

func TestVariantForTitle(t *testing.T) {
	tests := []struct {
		title string
		want  types.KitLevel
	}{
		{"Director of Product", types.KitDirector},
		{"Principal Product Manager", types.KitDirector},
		{"Staff Product Manager", types.KitDirector},
		{"Head of Product", types.KitDirector},
		{"VP Product", types.KitDirector},
		{"Vice President, Product", types.KitDirector},
		{"Senior Product Manager", types.KitSenior},
		{"Product Manager", types.KitSenior},
		{"", types.KitSenior},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VariantForTitle(tt.title), "title %q", tt.title)
	}
}

func TestOverrides_SubstringLookupIsCaseInsensitive(t *testing.T) {
	overrides := OverridesFromKit(seniorKitFixture())

	variant, ok := overrides.Lookup("Zillow Group")
	require.True(t, ok)
	assert.Equal(t, "Senior PM, AI Experiences", variant.Role)

	_, ok = overrides.Lookup("Initech")
	assert.False(t, ok)

	_, ok = overrides.Lookup("")
	assert.False(t, ok)
}

func TestRenderResume_SectionOrderAndContent(t *testing.T) {
	renderer := NewRenderer(seniorKitFixture(), nil)

	job := &types.JobPosting{
		Title:       "Senior Product Manager",
		Company:     "Initech",
		Description: "general product role",
	}
	resume := renderer.RenderResume(job)

	sections := []string{
		"**Jordan Avery**",
		"**Senior Product Manager, AI**",
		"**signature outcomes**",
		"**core skills**",
		"## experience",
		"**education**",
		"**selected projects & ip**",
		"**keywords for ats**",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(resume, section)
		require.NotEqual(t, -1, idx, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}

	// No education in the kit: the fallback literal appears.
	assert.Contains(t, resume, "Pace University — BA, English Language & Literature")

	// Generic outcomes are capped at five.
	assert.NotContains(t, resume, "Outcome six")

	// Past-role bullets are capped at four.
	assert.Contains(t, resume, "- b4")
	assert.NotContains(t, resume, "- b5")
}

func TestRenderResume_CompanyOverrideTakesPrecedence(t *testing.T) {
	renderer := NewRenderer(seniorKitFixture(), nil)

	resume := renderer.RenderResume(&types.JobPosting{
		Title:   "Senior Product Manager",
		Company: "Zillow Group",
	})

	assert.Contains(t, resume, "**Senior PM, AI Experiences**")
	assert.Contains(t, resume, "Consumer AI with trust built in.")
	// Variant bullets lead the signature outcomes section.
	bulletIdx := strings.Index(resume, "Shipped consumer AI to millions")
	genericIdx := strings.Index(resume, "Outcome one")
	require.NotEqual(t, -1, bulletIdx)
	require.NotEqual(t, -1, genericIdx)
	assert.Less(t, bulletIdx, genericIdx)
}

func TestRenderResume_CurrentRoleUsesSelectedAchievements(t *testing.T) {
	renderer := NewRenderer(seniorKitFixture(), nil)

	resume := renderer.RenderResume(&types.JobPosting{
		Title:       "Senior Product Manager",
		Company:     "Initech",
		Description: "data platform with automation",
	})

	// Current-role bullets come from the achievements bank, not entry bullets.
	assert.Contains(t, resume, "- Reduced busywork with multi-agent workflows")
	assert.Contains(t, resume, "- Implemented data-health SLAs")
}

func TestRenderResume_DirectorVariant(t *testing.T) {
	renderer := NewRenderer(seniorKitFixture(), directorKitFixture())

	resume := renderer.RenderResume(&types.JobPosting{Title: "Director of Product", Company: "Initech"})

	assert.Contains(t, resume, "**executive summary (what you get)**")
	assert.Contains(t, resume, "**select portfolio outcomes**")
	assert.Contains(t, resume, "**core capabilities**")
	assert.Contains(t, resume, "**speaking & media**")
	assert.Contains(t, resume, "product leadership, governance")
	// Director entries carry the scope annotation.
	assert.Contains(t, resume, "**Helios Labs — Director** *3 squads* (2022 - Present)")
	assert.NotContains(t, resume, "**signature outcomes**")
}

func TestRenderCoverLetter_SubstitutionAndIntro(t *testing.T) {
	renderer := NewRenderer(seniorKitFixture(), nil)

	letter := renderer.RenderCoverLetter(&types.JobPosting{
		Title:   "Senior Product Manager",
		Company: "Zillow Group",
	})

	assert.Contains(t, letter, "Why Zillow Group, why me")
	assert.NotContains(t, letter, "[Company]")
	assert.Contains(t, letter, "Your consumer platform is a daily habit in my house.")
	assert.Contains(t, letter, "Sincerely,\nJordan Avery")

	// The intro lands after the opening paragraph, before the why-me block.
	introIdx := strings.Index(letter, "daily habit")
	whyIdx := strings.Index(letter, "Why Zillow Group")
	assert.Less(t, introIdx, whyIdx)
}

func TestRenderCoverLetter_FocusRewrites(t *testing.T) {
	renderer := NewRenderer(seniorKitFixture(), nil)

	platform := renderer.RenderCoverLetter(&types.JobPosting{Company: "Initech", Description: "platform work"})
	assert.Contains(t, platform, "platform capabilities that enable multiple teams")
	assert.NotContains(t, platform, "1–2 high-leverage pilots")

	data := renderer.RenderCoverLetter(&types.JobPosting{Company: "Initech", Description: "data work"})
	assert.Contains(t, data, "data ingestion and quality pilots with measurable SLAs")

	revenue := renderer.RenderCoverLetter(&types.JobPosting{Company: "Initech", Description: "revenue work"})
	assert.Contains(t, revenue, "adoption, revenue impact, retention")

	// Platform wins when several focus keywords appear.
	both := renderer.RenderCoverLetter(&types.JobPosting{Company: "Initech", Description: "platform and data and revenue"})
	assert.Contains(t, both, "platform capabilities that enable multiple teams")
	assert.Contains(t, both, "adoption, cycle time, quality")
}

func TestRenderCoverLetter_MissingCompanyDegrades(t *testing.T) {
	renderer := NewRenderer(seniorKitFixture(), nil)

	letter := renderer.RenderCoverLetter(&types.JobPosting{})
	assert.Contains(t, letter, "Why Your Company, why me")

	letter = renderer.RenderCoverLetter(nil)
	assert.NotEmpty(t, letter)
}

func TestRender_Deterministic(t *testing.T) {
	renderer := NewRenderer(seniorKitFixture(), directorKitFixture())

	job := &types.JobPosting{
		Title:       "Senior Product Manager",
		Company:     "Zillow Group",
		Description: "platform and data",
	}
	first := renderer.Render(job)
	second := renderer.Render(job)
	assert.Equal(t, first, second)
}
