package types

// ExperienceRecord is one entry in the candidate's personal context: a past
// experience keyed by topic, with the keywords that make it relevant to a
// posting and a pre-authored talking point. Records are loaded once at
// startup and never mutated.
type ExperienceRecord struct {
	Key               string   `json:"key"`
	Description       string   `json:"description"`
	Metrics           string   `json:"metrics,omitempty"`
	RelevanceKeywords []string `json:"relevance_keywords"`
	Companies         []string `json:"companies,omitempty"`
	TalkingPoint      string   `json:"talking_point,omitempty"`
}

// RelevantExperience is an ExperienceRecord that matched a posting, annotated
// with its relevance score.
type RelevantExperience struct {
	Key            string `json:"key"`
	Description    string `json:"description"`
	Metrics        string `json:"metrics,omitempty"`
	TalkingPoint   string `json:"talking_point,omitempty"`
	RelevanceScore int    `json:"relevance_score"`
}

// SideProject is a personal project surfaced when its technologies appear in
// a job description.
type SideProject struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Relevance    string   `json:"relevance,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// SharedValue is a personal value matched against signals in the posting text.
type SharedValue struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Relevance   string `json:"relevance,omitempty"`
}

// ConnectionResult collects everything the profile store found linking the
// candidate to a specific company and role.
type ConnectionResult struct {
	RelevantExperiences  []RelevantExperience `json:"relevant_experiences"`
	ApplicableProjects   []SideProject        `json:"applicable_projects,omitempty"`
	SharedValues         []SharedValue        `json:"shared_values,omitempty"`
	ConversationStarters []string             `json:"conversation_starters,omitempty"`
	UniqueAngle          string               `json:"unique_angle,omitempty"`
	WhyInterested        string               `json:"why_interested,omitempty"`
	WhatIBring           []string             `json:"what_i_bring,omitempty"`
}

// HasRelevantExperience reports whether any experience record matched. The
// scorer's personal-connection component keys off this.
func (c *ConnectionResult) HasRelevantExperience() bool {
	return c != nil && len(c.RelevantExperiences) > 0
}
