package filtering

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gomecano/cv-matcher/internal/candidate"
)

// Filter represents a single pre-ranking step applied to candidate profiles.
type Filter interface {
	Name() string
	Apply(deps Deps, profiles *candidate.Profiles) (*candidate.Profiles, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially, returning the remaining
// profiles. Filters preserve the relative order of kept profiles; ranking
// ties depend on it.
func Run(deps Deps, steps []Filter, profiles *candidate.Profiles) (*candidate.Profiles, error) {
	for _, step := range steps {
		next, info, err := step.Apply(deps, profiles)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		profiles = next
	}

	return profiles, nil
}
