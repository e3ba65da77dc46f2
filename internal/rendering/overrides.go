package rendering

import (
	"sort"
	"strings"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// Overrides is the company-specific content table. Keys are lowercase company
// name fragments matched as substrings of the posting's company.
type Overrides map[string]types.CompanyVariant

// DefaultOverrideKeys lists the companies with pre-authored variants. The
// content itself lives in the kit's role variants section; this table only
// gates which fragments participate in lookup when a kit carries none.
var DefaultOverrideKeys = []string{"sparkplug", "zillow", "crowdstrike", "nextera"}

// OverridesFromKit builds the lookup table from a kit's role variants.
func OverridesFromKit(kit *types.ApplicationKit) Overrides {
	if kit == nil || len(kit.RoleVariants) == 0 {
		return Overrides{}
	}
	overrides := make(Overrides, len(kit.RoleVariants))
	for fragment, variant := range kit.RoleVariants {
		overrides[strings.ToLower(fragment)] = variant
	}
	return overrides
}

// Lookup finds the variant whose key fragment appears in the company name,
// case-insensitively. Fragments are checked in sorted order so lookups are
// deterministic when multiple fragments match.
func (o Overrides) Lookup(company string) (types.CompanyVariant, bool) {
	if company == "" || len(o) == 0 {
		return types.CompanyVariant{}, false
	}
	companyLower := strings.ToLower(company)

	fragments := make([]string, 0, len(o))
	for fragment := range o {
		fragments = append(fragments, fragment)
	}
	sort.Strings(fragments)

	for _, fragment := range fragments {
		if strings.Contains(companyLower, fragment) {
			return o[fragment], true
		}
	}
	return types.CompanyVariant{}, false
}
