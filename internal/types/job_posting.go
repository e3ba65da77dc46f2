// Package types defines the shared data structures passed between pipeline stages.
package types

import "strings"

// JobPosting is a single job opportunity as collected from a board or scraper.
// Postings are immutable once collected; any field may be empty when the
// source did not provide it.
type JobPosting struct {
	Title              string `json:"title"`
	Company            string `json:"company"`
	Location           string `json:"location,omitempty"`
	WorkplaceType      string `json:"workplace_type,omitempty"`
	Description        string `json:"description,omitempty"`
	SeniorityLevel     string `json:"seniority_level,omitempty"`
	RequiredExperience string `json:"required_experience,omitempty"`
	PostedTime         string `json:"posted_time,omitempty"`
	URL                string `json:"url,omitempty"`
	Source             string `json:"source,omitempty"`
	Salary             string `json:"salary,omitempty"`
}

// SearchText returns the lowercased concatenation of title, description and
// company, the text that keyword relevance checks run against.
func (j *JobPosting) SearchText() string {
	return strings.ToLower(j.Title + " " + j.Description + " " + j.Company)
}
