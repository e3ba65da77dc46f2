package research

import (
	"fmt"
	"strings"
	"time"
)

const (
	// keyEventCredibility is the floor for an article to count as a key event.
	keyEventCredibility = 80

	// eventsPerCategory caps each report category.
	eventsPerCategory = 3

	// maxTalkingPoints caps the talking point list.
	maxTalkingPoints = 5
)

// categorizeArticles sorts articles into the report's event buckets by
// keyword and collects highly credible ones as key events.
func categorizeArticles(report *Report, articles []Article) {
	buckets := map[string]*[]Event{
		"financial_events":      &report.FinancialEvents,
		"product_launches":      &report.ProductLaunches,
		"leadership_changes":    &report.LeadershipChanges,
		"strategic_initiatives": &report.StrategicInitiatives,
		"challenges":            &report.Challenges,
	}

	for _, article := range articles {
		content := strings.ToLower(article.Title + " " + article.Description)
		event := Event{
			Title:   article.Title,
			Date:    formatDate(article.PublishedAt),
			Source:  article.SourceName,
			URL:     article.URL,
			Summary: article.Description,
		}

		for category, keywords := range eventCategories {
			if !containsAnyKeyword(content, keywords) {
				continue
			}
			bucket := buckets[category]
			if len(*bucket) < eventsPerCategory {
				*bucket = append(*bucket, event)
			}
			if article.Credibility >= keyEventCredibility && len(report.KeyEvents) < eventsPerCategory {
				report.KeyEvents = append(report.KeyEvents, event)
			}
		}
	}
}

// talkingPoints drafts interview openers from the categorized events, most
// concrete categories first, plus a job-title-specific closer.
func talkingPoints(report *Report, jobTitle string) []string {
	var points []string

	if len(report.FinancialEvents) > 0 {
		points = append(points, fmt.Sprintf(
			"Congratulations on %s - how is this impacting the product roadmap?",
			report.FinancialEvents[0].Title))
	}
	if len(report.ProductLaunches) > 0 {
		launch := report.ProductLaunches[0]
		points = append(points, fmt.Sprintf(
			"I saw the recent %s - I'd love to discuss how my experience with %s could contribute",
			launch.Title, relevantExperienceFor(launch)))
	}
	if len(report.StrategicInitiatives) > 0 {
		initiative := report.StrategicInitiatives[0]
		points = append(points, fmt.Sprintf(
			"Your %s aligns with my work on %s",
			initiative.Title, relevantExperienceFor(initiative)))
	}
	if len(report.Challenges) > 0 {
		points = append(points, fmt.Sprintf(
			"I've navigated similar challenges before and have ideas on approaching %s",
			challengeTypeFor(report.Challenges[0])))
	}
	if len(report.LeadershipChanges) > 0 {
		points = append(points, fmt.Sprintf(
			"With the recent %s, I imagine there are exciting new directions for the product team",
			report.LeadershipChanges[0].Title))
	}

	titleLower := strings.ToLower(jobTitle)
	switch {
	case strings.Contains(titleLower, "ai") || strings.Contains(titleLower, "ml"):
		points = append(points,
			"I'd love to share how I reduced PM overhead by 80% using multi-agent AI systems")
	case strings.Contains(titleLower, "director") || strings.Contains(titleLower, "principal"):
		points = append(points,
			"Having led 15-20 person cross-functional teams, I understand the challenges of scaling product organizations")
	}

	if len(points) > maxTalkingPoints {
		points = points[:maxTalkingPoints]
	}
	return points
}

// relevantExperienceFor maps an event to the candidate experience it echoes.
func relevantExperienceFor(event Event) string {
	text := strings.ToLower(event.Title + " " + event.Summary)
	switch {
	case strings.Contains(text, "ai") || strings.Contains(text, "ml"):
		return "LLM orchestration and AI platform development"
	case strings.Contains(text, "growth") || strings.Contains(text, "scale"):
		return "scaling products from 0 to 20K+ users"
	case strings.Contains(text, "platform"):
		return "platform thinking and reusable component libraries"
	case strings.Contains(text, "revenue") || strings.Contains(text, "monetization"):
		return "achieving <$10 CAC with LTV >$1,000"
	default:
		return "end-to-end product development"
	}
}

// challengeTypeFor frames a challenge positively for interview use.
func challengeTypeFor(event Event) string {
	text := strings.ToLower(event.Title + " " + event.Summary)
	switch {
	case strings.Contains(text, "layoff"):
		return "organizational efficiency"
	case strings.Contains(text, "competition"):
		return "competitive differentiation"
	case strings.Contains(text, "regulation"):
		return "regulatory compliance"
	case strings.Contains(text, "growth"):
		return "sustainable scaling"
	default:
		return "operational challenges"
	}
}

// assessMomentum weighs positive signals (financial, launches, initiatives)
// against challenges.
func assessMomentum(report *Report) Momentum {
	positive := len(report.FinancialEvents) + len(report.ProductLaunches) + len(report.StrategicInitiatives)
	negative := len(report.Challenges)

	switch {
	case positive > negative*2:
		return MomentumStrongGrowth
	case positive > negative:
		return MomentumSteadyGrowth
	case negative > positive:
		return MomentumFacingChallenges
	default:
		return MomentumStable
	}
}

func containsAnyKeyword(content string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
