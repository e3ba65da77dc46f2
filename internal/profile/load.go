package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/jobsearch-agent/internal/schemas"
	"github.com/jonathan/jobsearch-agent/internal/types"
)

// profileFile is the on-disk JSON shape for a custom profile.
type profileFile struct {
	Experiences  []types.ExperienceRecord `json:"experiences"`
	SideProjects []types.SideProject      `json:"side_projects,omitempty"`
}

// Load reads a profile JSON file, validates it against the profile schema,
// and builds a Store from it. Pass an empty path to get the default store.
func Load(path string) (*Store, error) {
	if path == "" {
		return DefaultStore(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and decodes profile JSON.
func Parse(data []byte) (*Store, error) {
	if err := schemas.ValidateProfile(data); err != nil {
		return nil, fmt.Errorf("validate profile: %w", err)
	}

	var file profileFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if len(file.Experiences) == 0 {
		return nil, ErrNoRecords
	}

	seen := make(map[string]struct{}, len(file.Experiences))
	for _, record := range file.Experiences {
		if _, dup := seen[record.Key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, record.Key)
		}
		seen[record.Key] = struct{}{}
	}

	opts := []StoreOption{}
	if len(file.SideProjects) > 0 {
		opts = append(opts, WithSideProjects(file.SideProjects))
	}
	return NewStore(file.Experiences, opts...), nil
}
