package filtering

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gomecano/cv-matcher/internal/candidate"
	"github.com/gomecano/cv-matcher/internal/store"
)

type emptyProfileFilter struct{}

// NewEmptyProfile creates a filter that drops profiles where every extractor
// fell back to its default. Such profiles carry no signal and only pad the
// ranking tail.
func NewEmptyProfile() Filter {
	return &emptyProfileFilter{}
}

func (f *emptyProfileFilter) Name() string { return "empty_profile" }

func (f *emptyProfileFilter) Apply(deps Deps, profiles *candidate.Profiles) (*candidate.Profiles, Step, error) {
	initial := profiles.Len()

	kept := &candidate.Profiles{Items: make([]*candidate.Profile, 0, initial)}
	var dropped []string
	for _, profile := range profiles.Items {
		if profile.IsEmpty() {
			dropped = append(dropped, profile.SourceFile)
			continue
		}
		kept.Items = append(kept.Items, profile)
	}

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("dropping profiles with no extracted signal",
			zap.Strings("sources", dropped),
			zap.Int("profiles_left", kept.Len()),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(dropped), Left: kept.Len()}, nil
}

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes candidates whose source file
// is listed in an exclude file (already contacted, blacklisted, duplicate
// submissions). An empty path disables the step.
func NewExcludeFile(path string) Filter {
	return &excludeFileFilter{path: path}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Apply(deps Deps, profiles *candidate.Profiles) (*candidate.Profiles, Step, error) {
	initial := profiles.Len()
	if f.path == "" {
		return profiles, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	targets, err := store.LoadExcludeList(f.path)
	if err != nil {
		return nil, Step{}, fmt.Errorf("loading exclude file: %w", err)
	}

	removed := profiles.ExcludeBySourceFile(targets)
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding candidates based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_sources", removed),
			zap.Int("profiles_left", profiles.Len()),
		)
	}

	return profiles, Step{Initial: initial, Dropped: len(removed), Left: profiles.Len()}, nil
}
