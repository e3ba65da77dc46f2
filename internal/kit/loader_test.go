package kit

import (
	"testing"

	"github.com/jonathan/jobsearch-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seniorKitDoc = `# Jordan Avery
**Senior Product Manager, AI**
Stamford, CT | 555-201-8890 | jordan@example.com | linkedin.com/in/jordanavery

## Summary
Product leader who ships AI systems with measurable business outcomes.

## Signature Outcomes
- Reduced PM busywork 80% with multi-agent workflows
- Prevented $400K churn through early-warning signals

## Core Skills
- **AI/ML**: LLM evaluation, prompt design, guardrails
- **Data**: ingestion pipelines, anomaly detection

## Experience
### Helios Labs — Principal Product Manager (2022 - Present)
Scope: 3 squads, $2M budget
- Shipped the agent platform
- Cut prototype cycles from days to hours

### BrightGrocer — Head of Product (2019 - 2022)
- Scaled to 20,000+ users
- Built gamified retention loops

## Education
Pace University — BA, English Language & Literature

## Selected Projects
- WeatherThreads: AI styling recommendations

## ATS Keywords
product management, llm, evaluation, retention

## Achievements Bank
- Reduced PM busywork 80% with multi-agent workflows
- Implemented data-health SLAs cutting incidents 40%
- Drove $6M ARR pipeline from churn-risk signals

## Cover Letter Template
Dear {company} team,

I am excited to apply. {intro}

Sincerely,
Jordan

## Cover Letter Intros
- **zillow**: Your consumer real estate platform is a daily habit in my house.
- **sparkplug**: Retail enablement at your scale is a rare platform problem.

## Role Variants
### zillow
Role: Senior Product Manager, AI Experiences
Summary: Consumer AI products with trust and safety built in.
Intro: Your consumer real estate platform is a daily habit in my house.
- Shipped consumer AI features to millions
- Balanced personalization with privacy
`

func TestParse_SeniorKitSections(t *testing.T) {
	k, err := Parse([]byte(seniorKitDoc), types.KitSenior)
	require.NoError(t, err)

	assert.Equal(t, types.KitSenior, k.Level)
	assert.Equal(t, "Jordan Avery", k.Header.Name)
	assert.Equal(t, "Senior Product Manager, AI", k.Header.Title)
	assert.Equal(t, "Stamford, CT", k.Header.Location)
	assert.Equal(t, "555-201-8890", k.Header.Phone)
	assert.Equal(t, "jordan@example.com", k.Header.Email)
	assert.Equal(t, "linkedin.com/in/jordanavery", k.Header.LinkedIn)

	assert.Contains(t, k.Summary, "measurable business outcomes")
	assert.Len(t, k.SignatureOutcomes, 2)
	assert.Equal(t, "LLM evaluation, prompt design, guardrails", k.CoreSkills["AI/ML"])
	assert.Len(t, k.SelectedProjects, 1)
	assert.Equal(t, "product management, llm, evaluation, retention", k.ATSKeywords)
	assert.Len(t, k.AchievementsBank, 3)
	assert.Contains(t, k.Education, "Pace University")
}

func TestParse_ExperienceEntries(t *testing.T) {
	k, err := Parse([]byte(seniorKitDoc), types.KitSenior)
	require.NoError(t, err)

	require.Len(t, k.Experience, 2)

	current := k.Experience[0]
	assert.Equal(t, "Helios Labs", current.Company)
	assert.Equal(t, "Principal Product Manager", current.Title)
	assert.Equal(t, "2022 - Present", current.Dates)
	assert.Equal(t, "3 squads, $2M budget", current.Scope)
	assert.True(t, current.Current)
	assert.Len(t, current.Bullets, 2)

	previous := k.Experience[1]
	assert.Equal(t, "BrightGrocer", previous.Company)
	assert.False(t, previous.Current)
}

func TestParse_CoverLetterAndVariants(t *testing.T) {
	k, err := Parse([]byte(seniorKitDoc), types.KitSenior)
	require.NoError(t, err)

	assert.Contains(t, k.CoverLetterTemplate, "{company}")
	assert.Contains(t, k.CoverLetterIntros["zillow"], "daily habit")

	variant, ok := k.RoleVariants["zillow"]
	require.True(t, ok)
	assert.Equal(t, "Senior Product Manager, AI Experiences", variant.Role)
	assert.Contains(t, variant.Summary, "trust and safety")
	assert.Contains(t, variant.Intro, "daily habit")
	assert.Len(t, variant.TopBullets, 2)
}

func TestParse_DirectorSections(t *testing.T) {
	doc := `# Jordan Avery

## Executive Summary
- Built and led product orgs through AI transformation
- Operated platforms serving 20,000+ users

## Portfolio Outcomes
- $6M ARR pipeline identified from churn-risk signals

## Core Capabilities
- **Org Design**: hiring, coaching, team topologies

## Speaking & Media
- PM in the PM podcast, host

## Director Keywords
product leadership, ai strategy, governance
`
	k, err := Parse([]byte(doc), types.KitDirector)
	require.NoError(t, err)

	assert.Equal(t, types.KitDirector, k.Level)
	assert.Len(t, k.ExecutiveSummary, 2)
	assert.Len(t, k.PortfolioOutcomes, 1)
	assert.Equal(t, "hiring, coaching, team topologies", k.CoreCapabilities["Org Design"])
	assert.Len(t, k.SpeakingMedia, 1)
	assert.Equal(t, "product leadership, ai strategy, governance", k.DirectorKeywords)
}

func TestParse_MissingSectionsDegrade(t *testing.T) {
	k, err := Parse([]byte("# Just A Name\n"), types.KitSenior)
	require.NoError(t, err)

	assert.Equal(t, "Just A Name", k.Header.Name)
	assert.Empty(t, k.Summary)
	assert.Empty(t, k.Experience)
	assert.Empty(t, k.AchievementsBank)
	assert.Nil(t, k.RoleVariants)
}

func TestParse_EmptyDocument(t *testing.T) {
	_, err := Parse([]byte("  \n\n"), types.KitSenior)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}
