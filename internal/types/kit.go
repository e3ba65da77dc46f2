package types

// KitLevel selects which application kit variant to render from.
type KitLevel string

// Kit variants. Senior is the default for IC roles; director is used when
// the job title signals a leadership role.
const (
	KitSenior   KitLevel = "senior"
	KitDirector KitLevel = "director"
)

// KitHeader holds the contact block rendered at the top of a resume.
type KitHeader struct {
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ExperienceEntry is one employment entry in a kit's experience section.
type ExperienceEntry struct {
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Scope   string   `json:"scope,omitempty"` // director kits annotate team/budget scope
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets"`
	Current bool     `json:"current,omitempty"` // current role gets achievement selection instead of fixed bullets
}

// CompanyVariant is a pre-authored content block for a specific target
// company. When a posting's company matches, the variant's title, summary and
// top bullets take precedence over the generic kit content.
type CompanyVariant struct {
	Role       string   `json:"role,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	TopBullets []string `json:"top_bullets,omitempty"`
	Intro      string   `json:"intro,omitempty"` // company-specific cover letter intro
}

// ApplicationKit is a structured bundle of pre-authored resume and cover
// letter content for one seniority variant. Kits are loaded once from source
// documents and are read-only afterward.
type ApplicationKit struct {
	Level   KitLevel  `json:"level"`
	Header  KitHeader `json:"header"`
	Summary string    `json:"summary,omitempty"`

	// Senior variant sections.
	SignatureOutcomes []string          `json:"signature_outcomes,omitempty"`
	CoreSkills        map[string]string `json:"core_skills,omitempty"`
	SelectedProjects  []string          `json:"selected_projects,omitempty"`
	ATSKeywords       string            `json:"ats_keywords,omitempty"`

	// Director variant sections.
	ExecutiveSummary  []string          `json:"executive_summary,omitempty"`
	PortfolioOutcomes []string          `json:"portfolio_outcomes,omitempty"`
	CoreCapabilities  map[string]string `json:"core_capabilities,omitempty"`
	SpeakingMedia     []string          `json:"speaking_media,omitempty"`
	DirectorKeywords  string            `json:"director_keywords,omitempty"`

	Experience      []ExperienceEntry `json:"experience,omitempty"`
	Education       string            `json:"education,omitempty"`
	AchievementsBank []string         `json:"achievements_bank,omitempty"`

	CoverLetterTemplate string                    `json:"cover_letter_template,omitempty"`
	CoverLetterIntros   map[string]string         `json:"cover_letter_intros,omitempty"`
	RoleVariants        map[string]CompanyVariant `json:"role_variants,omitempty"`
}
