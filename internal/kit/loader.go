// Package kit loads pre-authored application kits from markdown documents.
// A kit is the stable content bank (summary, experience, achievements, cover
// letter template) that the renderer customizes per posting.
//
// Parsing is deliberately shallow: the document is split on `## ` headings
// and each known section is decoded with an isolated regexp. Unknown sections
// are ignored and missing sections leave zero values, so an incomplete kit
// still loads.
package kit

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

var (
	headingRe    = regexp.MustCompile(`(?m)^## +(.+?)\s*$`)
	titleRe      = regexp.MustCompile(`(?m)^# +(.+?)\s*$`)
	bulletRe     = regexp.MustCompile(`(?m)^[-*] +(.+?)\s*$`)
	keyedRe      = regexp.MustCompile(`(?m)^[-*] +\*\*(.+?)\*\*[:：] *(.*?)\s*$`)
	entryHeadRe  = regexp.MustCompile(`(?m)^### +(.+?) +[—-] +(.+?) +\((.+?)\)\s*$`)
	scopeLineRe  = regexp.MustCompile(`(?m)^Scope: *(.+?)\s*$`)
	variantRoleRe    = regexp.MustCompile(`(?m)^Role: *(.+?)\s*$`)
	variantSummaryRe = regexp.MustCompile(`(?m)^Summary: *(.+?)\s*$`)
	variantIntroRe   = regexp.MustCompile(`(?m)^Intro: *(.+?)\s*$`)
)

// Load reads and parses a kit markdown file.
func Load(path string, level types.KitLevel) (*types.ApplicationKit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kit %s: %w", path, err)
	}
	return Parse(data, level)
}

// Parse decodes kit markdown. Only an empty document is an error; any
// individual section may be absent.
func Parse(data []byte, level types.KitLevel) (*types.ApplicationKit, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	k := &types.ApplicationKit{Level: level}
	sections := splitSections(text)

	k.Header = parseHeader(text, sections[""])
	k.Summary = strings.TrimSpace(sections["summary"])

	k.SignatureOutcomes = bullets(sections["signature outcomes"])
	k.CoreSkills = keyedMap(sections["core skills"])
	k.SelectedProjects = bullets(sections["selected projects"])
	k.ATSKeywords = strings.TrimSpace(sections["ats keywords"])

	k.ExecutiveSummary = bullets(sections["executive summary"])
	k.PortfolioOutcomes = bullets(sections["portfolio outcomes"])
	k.CoreCapabilities = keyedMap(sections["core capabilities"])
	k.SpeakingMedia = bullets(sections["speaking & media"])
	k.DirectorKeywords = strings.TrimSpace(sections["director keywords"])

	k.Experience = parseExperience(sections["experience"])
	k.Education = strings.TrimSpace(sections["education"])
	k.AchievementsBank = bullets(sections["achievements bank"])

	k.CoverLetterTemplate = strings.TrimSpace(sections["cover letter template"])
	k.CoverLetterIntros = lowerKeyedMap(sections["cover letter intros"])
	k.RoleVariants = parseVariants(sections["role variants"])

	return k, nil
}

// splitSections maps lowercased `## ` heading names to their body text. The
// preamble before the first heading is stored under the empty key.
func splitSections(text string) map[string]string {
	sections := make(map[string]string)

	locs := headingRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		sections[""] = text
		return sections
	}
	sections[""] = text[:locs[0][0]]

	for i, loc := range locs {
		name := strings.ToLower(strings.TrimSpace(text[loc[2]:loc[3]]))
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		sections[name] = text[loc[1]:end]
	}
	return sections
}

// parseHeader decodes the contact block: the `# ` title line is the name, the
// first following bold line is the professional title, and the remaining
// preamble lines are split on pipes into location, phone, email and LinkedIn.
func parseHeader(fullText, preamble string) types.KitHeader {
	header := types.KitHeader{}
	if m := titleRe.FindStringSubmatch(fullText); m != nil {
		header.Name = m[1]
	}

	var fields []string
	for _, line := range strings.Split(preamble, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "# ") {
			continue
		}
		if header.Title == "" && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
			header.Title = strings.Trim(line, "*")
			continue
		}
		for _, part := range strings.Split(line, "|") {
			if part = strings.TrimSpace(part); part != "" {
				fields = append(fields, part)
			}
		}
	}

	for _, field := range fields {
		switch {
		case strings.Contains(field, "@"):
			header.Email = field
		case strings.Contains(strings.ToLower(field), "linkedin"):
			header.LinkedIn = field
		case looksLikePhone(field):
			header.Phone = field
		case header.Location == "":
			header.Location = field
		}
	}
	return header
}

func looksLikePhone(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7
}

// parseExperience decodes `### Company — Title (Dates)` entries. An entry
// whose dates contain "present" is the current role.
func parseExperience(body string) []types.ExperienceEntry {
	locs := entryHeadRe.FindAllStringSubmatchIndex(body, -1)
	if len(locs) == 0 {
		return nil
	}

	entries := make([]types.ExperienceEntry, 0, len(locs))
	for i, loc := range locs {
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		block := body[loc[1]:end]

		entry := types.ExperienceEntry{
			Company: body[loc[2]:loc[3]],
			Title:   body[loc[4]:loc[5]],
			Dates:   body[loc[6]:loc[7]],
			Bullets: bullets(block),
		}
		entry.Current = strings.Contains(strings.ToLower(entry.Dates), "present")
		if m := scopeLineRe.FindStringSubmatch(block); m != nil {
			entry.Scope = m[1]
		}
		entries = append(entries, entry)
	}
	return entries
}

// parseVariants decodes `### company` blocks inside the role variants
// section. Keys are lowercased for substring lookup against posting companies.
func parseVariants(body string) map[string]types.CompanyVariant {
	nameRe := regexp.MustCompile(`(?m)^### +(.+?)\s*$`)
	locs := nameRe.FindAllStringSubmatchIndex(body, -1)
	if len(locs) == 0 {
		return nil
	}

	variants := make(map[string]types.CompanyVariant, len(locs))
	for i, loc := range locs {
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		block := body[loc[1]:end]

		variant := types.CompanyVariant{TopBullets: bullets(block)}
		if m := variantRoleRe.FindStringSubmatch(block); m != nil {
			variant.Role = m[1]
		}
		if m := variantSummaryRe.FindStringSubmatch(block); m != nil {
			variant.Summary = m[1]
		}
		if m := variantIntroRe.FindStringSubmatch(block); m != nil {
			variant.Intro = m[1]
		}

		key := strings.ToLower(strings.TrimSpace(body[loc[2]:loc[3]]))
		variants[key] = variant
	}
	return variants
}

func bullets(body string) []string {
	matches := bulletRe.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		// Keyed bullets (core skills style) belong to keyedMap, not here.
		if keyedRe.MatchString("- " + m[1]) {
			continue
		}
		items = append(items, m[1])
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

func keyedMap(body string) map[string]string {
	matches := keyedRe.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make(map[string]string, len(matches))
	for _, m := range matches {
		out[m[1]] = m[2]
	}
	return out
}

func lowerKeyedMap(body string) map[string]string {
	keyed := keyedMap(body)
	if keyed == nil {
		return nil
	}
	out := make(map[string]string, len(keyed))
	for k, v := range keyed {
		out[strings.ToLower(k)] = v
	}
	return out
}
