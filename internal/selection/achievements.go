// Package selection ranks and selects pre-authored achievement bullets for a
// specific job description.
package selection

import (
	"sort"
	"strings"
)

// CategoryKeywords maps a job-description trigger keyword to the indicator
// substrings expected inside achievement text when that trigger is present.
// An achievement earns one point per (category, indicator) pair where the
// category appears in the description and the indicator appears in the
// achievement.
type CategoryKeywords map[string][]string

// DefaultCategoryKeywords returns the standard trigger-to-indicator map used
// for the achievements bank.
func DefaultCategoryKeywords() CategoryKeywords {
	return CategoryKeywords{
		"automation": {"multi-agent", "reduced pm busywork", "prototype cycle"},
		"revenue":    {"$6m arr", "$400k", "churn", "retention"},
		"data":       {"data-health", "anomaly detection", "entity resolution"},
		"platform":   {"llm experimentation", "notebook", "guardrails"},
		"scale":      {"20,000+ users", "cac", "ltv"},
		"governance": {"responsible-ai", "audit trails", "security/legal"},
	}
}

// Selector scores achievements against job descriptions using an injected
// category map.
type Selector struct {
	categories CategoryKeywords
}

// NewSelector creates a Selector. A nil category map falls back to the
// default.
func NewSelector(categories CategoryKeywords) *Selector {
	if categories == nil {
		categories = DefaultCategoryKeywords()
	}
	return &Selector{categories: categories}
}

// SelectAchievements returns the `count` most relevant achievements from the
// bank for the given description. The sort is stable: ties keep the bank's
// original order, so identical inputs always produce identical output. An
// empty bank or non-positive count returns an empty slice; a count larger
// than the bank returns everything, best first.
func (s *Selector) SelectAchievements(description string, bank []string, count int) []string {
	if len(bank) == 0 || count <= 0 {
		return []string{}
	}

	descLower := strings.ToLower(description)

	type scored struct {
		text  string
		score int
	}
	candidates := make([]scored, 0, len(bank))
	for _, achievement := range bank {
		candidates = append(candidates, scored{
			text:  achievement,
			score: s.scoreAchievement(descLower, achievement),
		})
	}

	// Stable sort keeps original bank order on ties; output must be
	// deterministic because selections feed rendered documents.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if count > len(candidates) {
		count = len(candidates)
	}

	selected := make([]string, 0, count)
	for _, c := range candidates[:count] {
		selected = append(selected, c.text)
	}
	return selected
}

// scoreAchievement counts matching (category, indicator) pairs for one
// achievement.
func (s *Selector) scoreAchievement(descLower, achievement string) int {
	achievementLower := strings.ToLower(achievement)

	score := 0
	for category, indicators := range s.categories {
		if !strings.Contains(descLower, category) {
			continue
		}
		for _, indicator := range indicators {
			if strings.Contains(achievementLower, strings.ToLower(indicator)) {
				score++
			}
		}
	}
	return score
}
