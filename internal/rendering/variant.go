// Package rendering assembles resume and cover letter text from an
// application kit, customized to one posting. Rendering is pure text
// assembly: deterministic given (job, kit, overrides), total over missing
// fields.
package rendering

import (
	"strings"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// directorTitleTerms flip rendering to the director kit when present in a
// job title.
var directorTitleTerms = []string{
	"director",
	"principal",
	"staff",
	"head of",
	"vp",
	"vice president",
}

// VariantForTitle picks the kit level from the job title alone.
func VariantForTitle(title string) types.KitLevel {
	titleLower := strings.ToLower(title)
	for _, term := range directorTitleTerms {
		if strings.Contains(titleLower, term) {
			return types.KitDirector
		}
	}
	return types.KitSenior
}
