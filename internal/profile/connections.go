package profile

import (
	"sort"
	"strings"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

const (
	// companyMatchBonus is added to a record's relevance when the posting's
	// company appears in the record's company list.
	companyMatchBonus = 2

	// maxRelevantExperiences caps how many experience records a single
	// connection result carries.
	maxRelevantExperiences = 3
)

// FindConnections links the candidate's personal context to one posting:
// which experiences are relevant, which side projects apply, and what to
// lead with in outreach.
func (s *Store) FindConnections(job *types.JobPosting) *types.ConnectionResult {
	result := &types.ConnectionResult{
		RelevantExperiences: []types.RelevantExperience{},
	}
	if job == nil {
		return result
	}

	searchText := strings.ToLower(job.Title + " " + job.Description + " " + job.Company)
	companyLower := strings.ToLower(job.Company)

	result.RelevantExperiences = s.matchExperiences(searchText, companyLower)
	result.ApplicableProjects = s.matchProjects(searchText)
	result.SharedValues = s.matchValues(searchText)
	result.ConversationStarters = s.pickStarters(searchText)
	result.UniqueAngle = s.uniqueAngle(result.RelevantExperiences)
	result.WhyInterested = s.whyInterested(job, result.RelevantExperiences)
	result.WhatIBring = s.whatIBring(result.RelevantExperiences)
	return result
}

// matchExperiences scores every record against the posting text and returns
// the strongest matches, best first.
func (s *Store) matchExperiences(searchText, companyLower string) []types.RelevantExperience {
	matched := make([]types.RelevantExperience, 0, len(s.records))
	for _, record := range s.records {
		score := 0
		for _, keyword := range record.RelevanceKeywords {
			if strings.Contains(searchText, strings.ToLower(keyword)) {
				score++
			}
		}
		if companyLower != "" {
			for _, company := range record.Companies {
				if strings.Contains(companyLower, strings.ToLower(company)) ||
					strings.Contains(strings.ToLower(company), companyLower) {
					score += companyMatchBonus
					break
				}
			}
		}
		if score <= 0 {
			continue
		}
		matched = append(matched, types.RelevantExperience{
			Key:            record.Key,
			Description:    record.Description,
			Metrics:        record.Metrics,
			TalkingPoint:   record.TalkingPoint,
			RelevanceScore: score,
		})
	}

	// Stable sort: records that tie keep their table order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].RelevanceScore > matched[j].RelevanceScore
	})
	if len(matched) > maxRelevantExperiences {
		matched = matched[:maxRelevantExperiences]
	}
	return matched
}

func (s *Store) matchProjects(searchText string) []types.SideProject {
	var matched []types.SideProject
	for _, project := range s.sideProjects {
		for _, tech := range project.Technologies {
			if strings.Contains(searchText, strings.ToLower(tech)) {
				matched = append(matched, project)
				break
			}
		}
	}
	return matched
}

func (s *Store) matchValues(searchText string) []types.SharedValue {
	signals := map[string][]string{
		"family_first":       {"work-life", "flexible", "balance", "family"},
		"building_in_public": {"open source", "transparent", "community"},
		"ethical_ai":         {"responsible", "ethics", "safety", "governance"},
	}

	keys := make([]string, 0, len(signals))
	for key := range signals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var matched []types.SharedValue
	for _, key := range keys {
		value, ok := s.values[key]
		if !ok {
			continue
		}
		for _, signal := range signals[key] {
			if strings.Contains(searchText, signal) {
				matched = append(matched, value)
				break
			}
		}
	}
	return matched
}

func (s *Store) pickStarters(searchText string) []string {
	var starters []string
	if strings.Contains(searchText, "startup") || strings.Contains(searchText, "early stage") {
		starters = append(starters, s.starters["startup"])
	}
	if strings.Contains(searchText, "enterprise") {
		starters = append(starters, s.starters["enterprise"])
	}
	if strings.Contains(searchText, "ai") || strings.Contains(searchText, "llm") {
		starters = append(starters, s.starters["ai_focused"])
	}
	if strings.Contains(searchText, "platform") {
		starters = append(starters, s.starters["platform"])
	}
	return starters
}

// uniqueAngle composes a one-line differentiator from the top matches.
func (s *Store) uniqueAngle(experiences []types.RelevantExperience) string {
	if len(experiences) == 0 {
		return "Hands-on AI builder who ships production systems, not just strategy decks"
	}
	points := make([]string, 0, len(experiences))
	for _, exp := range experiences {
		if exp.TalkingPoint != "" {
			points = append(points, exp.TalkingPoint)
		}
	}
	if len(points) == 0 {
		return "Hands-on AI builder who ships production systems, not just strategy decks"
	}
	return points[0]
}

func (s *Store) whyInterested(job *types.JobPosting, experiences []types.RelevantExperience) string {
	if job.Company == "" {
		return "The role matches my track record of shipping AI products with measurable business impact"
	}
	if len(experiences) > 0 {
		return "My background in " + experiences[0].Key + " work maps directly to what " + job.Company + " is building"
	}
	return "Excited about the product challenges " + job.Company + " is taking on"
}

func (s *Store) whatIBring(experiences []types.RelevantExperience) []string {
	bring := make([]string, 0, len(experiences))
	for _, exp := range experiences {
		line := exp.Description
		if exp.Metrics != "" {
			line += " (" + exp.Metrics + ")"
		}
		bring = append(bring, line)
	}
	return bring
}

// LocationPreference returns the logistics line for the posting's location
// tier, used when drafting outreach notes.
func (s *Store) LocationPreference(job *types.JobPosting) string {
	if job == nil {
		return s.logistics["remote"]
	}
	locationLower := strings.ToLower(job.Location + " " + job.WorkplaceType)
	switch {
	case strings.Contains(locationLower, "new york") || strings.Contains(locationLower, "nyc"):
		return s.logistics["nyc"]
	case strings.Contains(locationLower, "san francisco") || strings.Contains(locationLower, "seattle"):
		return s.logistics["west"]
	default:
		return s.logistics["remote"]
	}
}
