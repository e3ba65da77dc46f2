// Package profile holds the candidate's personal context: past experiences,
// side projects, values and logistics, plus the matching logic that links
// them to specific postings.
package profile

import "github.com/jonathan/jobsearch-agent/internal/types"

// Store is the immutable personal-context table. It is built once at startup
// and only ever read afterward, so concurrent use is safe by construction.
type Store struct {
	records      []types.ExperienceRecord
	sideProjects []types.SideProject
	values       map[string]types.SharedValue
	starters     map[string]string
	logistics    map[string]string
}

// NewStore builds a Store from explicit experience records. Side projects,
// values and conversation starters use the defaults; use the With* options
// if a test needs to substitute them.
func NewStore(records []types.ExperienceRecord, opts ...StoreOption) *Store {
	s := &Store{
		records:      records,
		sideProjects: defaultSideProjects(),
		values:       defaultValues(),
		starters:     defaultConversationStarters(),
		logistics:    defaultLogistics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StoreOption customizes a Store at construction time.
type StoreOption func(*Store)

// WithSideProjects replaces the default side-project list.
func WithSideProjects(projects []types.SideProject) StoreOption {
	return func(s *Store) { s.sideProjects = projects }
}

// DefaultStore returns a Store loaded with the standard experience records.
func DefaultStore() *Store {
	return NewStore(DefaultExperienceRecords())
}

// Records returns the experience records. Callers must not mutate the
// returned slice.
func (s *Store) Records() []types.ExperienceRecord {
	return s.records
}

// DefaultExperienceRecords returns the built-in experience table: one record
// per topic, each with the keywords that make it relevant and a pre-authored
// talking point.
func DefaultExperienceRecords() []types.ExperienceRecord {
	return []types.ExperienceRecord{
		{
			Key:               "gaming_retention",
			Description:       "Scaled e-grocery to 20K+ users with gamified engagement achieving 70% cohort retention",
			Metrics:           "<$10 CAC, LTV >$1,000",
			RelevanceKeywords: []string{"gaming", "retention", "engagement", "monetization", "economy"},
			Companies:         []string{"Scopely", "Epic Games", "Roblox", "Unity"},
			TalkingPoint:      "I understand the balance of engagement and monetization from scaling an e-grocery startup with gamified retention mechanics",
		},
		{
			Key:               "ai_transformation",
			Description:       "Reduced PM overhead by 80% through multi-agent AI systems",
			Metrics:           "Prevented $400K churn, identified $6M ARR opportunities",
			RelevanceKeywords: []string{"ai", "llm", "genai", "automation", "agent", "ml"},
			Companies:         []string{"OpenAI", "Anthropic", "Meta", "Google", "Microsoft"},
			TalkingPoint:      "Built production multi-agent systems achieving 80% efficiency gains with evaluation frameworks and guardrails",
		},
		{
			Key:               "platform_building",
			Description:       "Architected reusable LLM platform with 50+ prompt templates and evaluation harnesses",
			Metrics:           "Cut prototype cycles from days to hours",
			RelevanceKeywords: []string{"platform", "infrastructure", "developer", "api", "framework"},
			Companies:         []string{"ClickUp", "Stripe", "Twilio", "Datadog"},
			TalkingPoint:      "I build platforms that enable other teams to ship faster, like a prompt library that cut prototyping from days to hours",
		},
		{
			Key:               "edtech_learning",
			Description:       "Parent perspective on EdTech plus AI-assisted learning systems",
			Metrics:           "27% productivity lift across teams through AI enablement",
			RelevanceKeywords: []string{"education", "learning", "edtech", "training", "curriculum"},
			Companies:         []string{"Committee for Children", "Nerdy", "Duolingo", "Coursera"},
			TalkingPoint:      "As a parent using EdTech tools daily, I bring both user empathy and technical expertise to learning products",
		},
		{
			Key:               "b2b_saas",
			Description:       "Scaled PropTech SaaS from concept to enterprise pilots as CPO",
			Metrics:           "12% MoM active-use growth during rollout",
			RelevanceKeywords: []string{"b2b", "saas", "enterprise", "sales", "gtm"},
			Companies:         []string{"Salesforce", "HubSpot", "ClickUp", "Monday.com"},
			TalkingPoint:      "Led 0-to-1 through enterprise pilots, understanding both startup velocity and enterprise governance needs",
		},
		{
			Key:               "healthcare_regulated",
			Description:       "Navigated regulated environments with HIPAA compliance and security reviews",
			Metrics:           "Maintained velocity while meeting compliance requirements",
			RelevanceKeywords: []string{"healthcare", "hipaa", "compliance", "regulation", "security"},
			Companies:         []string{"Bicycle Health", "Oscar Health", "One Medical"},
			TalkingPoint:      "I've balanced innovation speed with regulatory compliance in sensitive data environments",
		},
		{
			Key:               "martech_growth",
			Description:       "Achieved 40% targeted-campaign conversion with personalization",
			Metrics:           "Built retention programs yielding 70% cohort retention",
			RelevanceKeywords: []string{"marketing", "martech", "growth", "conversion", "personalization"},
			Companies:         []string{"NBCUniversal", "Adobe", "Mailchimp", "Klaviyo"},
			TalkingPoint:      "I've built personalization engines that achieved 40% conversion rates through data-driven segmentation",
		},
		{
			Key:               "data_products",
			Description:       "Built data ingestion pipelines with anomaly detection and entity resolution",
			Metrics:           "Reduced downstream incidents by 40%",
			RelevanceKeywords: []string{"data", "analytics", "pipeline", "quality", "ingestion"},
			Companies:         []string{"Databricks", "Snowflake", "Palantir", "Tableau"},
			TalkingPoint:      "Implemented data health SLAs and anomaly detection reducing incidents by 40%",
		},
	}
}

func defaultSideProjects() []types.SideProject {
	return []types.SideProject{
		{
			Key:         "pm_podcast",
			Name:        "PM in the PM",
			Description: "Host practitioner podcast on shipping GenAI responsibly",
			Relevance:   "Demonstrates thought leadership and commitment to responsible AI",
		},
		{
			Key:          "weather_threads",
			Name:         "WeatherThreads",
			Description:  "Built AI fashion recommendation app with personalized comfort settings",
			Relevance:    "Shows hands-on technical skills and consumer product thinking",
			Technologies: []string{"llm", "personalization", "rules engine"},
		},
		{
			Key:         "job_automation",
			Name:        "Job Search Automation",
			Description: "Open-source job search system with AI personalization",
			Relevance:   "Demonstrates building in public and automation expertise",
		},
	}
}

func defaultValues() map[string]types.SharedValue {
	return map[string]types.SharedValue{
		"family_first": {
			Key:         "family_first",
			Description: "Sustainable work-life integration, no hustle culture",
			Relevance:   "Seeking companies with healthy culture and work-life balance",
		},
		"building_in_public": {
			Key:         "building_in_public",
			Description: "Open source contributor, transparent about successes and failures",
			Relevance:   "Prefer companies that value transparency and knowledge sharing",
		},
		"ethical_ai": {
			Key:         "ethical_ai",
			Description: "Committed to responsible AI with governance and safety",
			Relevance:   "Align with companies prioritizing AI safety and ethics",
		},
	}
}

func defaultConversationStarters() map[string]string {
	return map[string]string{
		"startup":    "The 0-to-1 phase is my favorite - what's the biggest unknown you're trying to validate right now?",
		"enterprise": "Working with large enterprises presents unique challenges - how do you balance innovation with governance?",
		"ai_focused": "Your approach to {specific_ai_tech} is interesting - how are you thinking about evaluation and safety?",
		"platform":   "Platform teams are force multipliers - how do you measure internal developer satisfaction?",
	}
}

func defaultLogistics() map[string]string {
	return map[string]string{
		"remote": "Strongly prefer remote, proven track record collaborating across time zones",
		"nyc":    "Easy 35-minute train to NYC when needed",
		"west":   "Open to occasional travel for strategic meetings, not relocation",
	}
}
