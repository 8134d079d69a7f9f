package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/gomecano/cv-matcher/internal/candidate"
)

// Credit granted for demonstrated-but-mismatched expertise.
const partialSkillCredit = 0.3

// MatchResult is the outcome of scoring one profile against one request: a
// compatibility score and the ordered justification trail explaining it.
// Strategic bonuses are added on top of the weighted base, so the score can
// exceed 100 for an exceptionally strong match.
type MatchResult struct {
	Score          float64  `json:"score"`
	Justifications []string `json:"justifications"`
}

// Scorer computes compatibility scores under a fixed rule set.
type Scorer struct {
	rules *Rules
}

func New(rules *Rules) *Scorer {
	if rules == nil {
		rules = DefaultRules()
	}

	return &Scorer{rules: rules}
}

// Score computes the weighted compatibility between a profile and a request.
// It is deterministic and total: missing profile fields contribute their
// documented defaults, and malformed weights are applied as-is. The
// justification order is fixed: location, skill, experience, then bonus
// (bonus only when non-zero); consumers render it verbatim.
func (s *Scorer) Score(profile *candidate.Profile, request *candidate.Request) MatchResult {
	var score float64
	justifications := make([]string, 0, 4)

	// Location. Mobility is the crucial criterion.
	switch {
	case strings.EqualFold(profile.City, request.TargetCity):
		score += request.WeightCity
		justifications = append(justifications, fmt.Sprintf("perfect location match (%s)", profile.City))
	case s.rules.IsPriorityCity(profile.City):
		score += request.WeightCity * 0.5
		justifications = append(justifications, fmt.Sprintf("regional match (%s)", profile.City))
	default:
		justifications = append(justifications, fmt.Sprintf("outside target zone (%s)", profile.City))
	}

	// Technical skill.
	switch {
	case profile.HasSkill(request.RequiredSkill):
		score += request.WeightSkill
		justifications = append(justifications, fmt.Sprintf("expert in %s", request.RequiredSkill))
	case len(profile.Skills) > 0:
		score += request.WeightSkill * partialSkillCredit
		justifications = append(justifications, fmt.Sprintf("other skills: %s", strings.Join(firstN(profile.Skills, 2), ", ")))
	default:
		justifications = append(justifications, fmt.Sprintf("required skill %s not validated", request.RequiredSkill))
	}

	// Experience.
	category := s.rules.ExperienceCategory(profile.ExperienceYears)
	switch {
	case profile.ExperienceYears >= request.MinExperienceYears:
		score += request.WeightExperience
		justifications = append(justifications, fmt.Sprintf("proven experience (%d years - %s)", profile.ExperienceYears, category))
	case profile.ExperienceYears > 0:
		// Only reachable when MinExperienceYears > ExperienceYears > 0,
		// so the ratio is always defined.
		ratio := float64(profile.ExperienceYears) / float64(request.MinExperienceYears)
		score += request.WeightExperience * ratio
		justifications = append(justifications, fmt.Sprintf("%s profile (%d years)", category, profile.ExperienceYears))
	default:
		justifications = append(justifications, "experience not stated")
	}

	// Strategic bonuses, uncapped on purpose.
	bonus, details := s.rules.SkillBonus(profile.Skills)
	if bonus > 0 {
		score += bonus
		justifications = append(justifications, fmt.Sprintf("skill bonuses: %s", strings.Join(details, ", ")))
	}

	return MatchResult{
		Score:          roundScore(score),
		Justifications: justifications,
	}
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}

	return items[:n]
}

// roundScore rounds to one decimal place.
func roundScore(score float64) float64 {
	return math.Round(score*10) / 10
}
