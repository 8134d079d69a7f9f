package scoring

import (
	"fmt"
	"strings"
)

// Experience category labels derived from years of practice.
const (
	CategoryJunior    = "junior"
	CategoryConfirmed = "confirmed"
	CategorySenior    = "senior"
)

// Verdict labels attached to ranked candidates.
const (
	VerdictRecommended = "recommended"
	VerdictToConsider  = "to consider"
	VerdictNotPriority = "not a priority"
)

// Rules holds the static business rules for scoring: experience category
// thresholds, strategic skill bonuses, the priority location list and the
// recommendation verdict thresholds. A Rules value is immutable once built.
type Rules struct {
	JuniorMaxYears    int
	ConfirmedMaxYears int
	SkillBonuses      map[string]float64
	PriorityCities    []string
	RecommendedScore  float64
	ConsiderScore     float64
}

// DefaultRules returns the standard rule set. The utility-fleet bonus
// outweighs the others: B2B fleet missions are the strategic market.
func DefaultRules() *Rules {
	return &Rules{
		JuniorMaxYears:    2,
		ConfirmedMaxYears: 5,
		SkillBonuses: map[string]float64{
			"utility-fleet":    10,
			"electrical":       5,
			"air-conditioning": 3,
		},
		PriorityCities: []string{
			"marseille",
			"aix-en-provence",
			"aubagne",
			"vitrolles",
		},
		RecommendedScore: 80,
		ConsiderScore:    50,
	}
}

// ExperienceCategory buckets years of experience into junior, confirmed or
// senior.
func (r *Rules) ExperienceCategory(years int) string {
	switch {
	case years <= r.JuniorMaxYears:
		return CategoryJunior
	case years <= r.ConfirmedMaxYears:
		return CategoryConfirmed
	default:
		return CategorySenior
	}
}

// SkillBonus sums the strategic bonuses over the given skill tags, in tag
// order, returning the total and one detail string per applied bonus.
func (r *Rules) SkillBonus(skills []string) (float64, []string) {
	var total float64
	var details []string

	for _, skill := range skills {
		bonus, ok := r.SkillBonuses[skill]
		if !ok {
			continue
		}
		total += bonus
		details = append(details, fmt.Sprintf("+%g (%s)", bonus, skill))
	}

	return total, details
}

// IsPriorityCity reports whether the city is in the priority zone.
func (r *Rules) IsPriorityCity(city string) bool {
	for _, priority := range r.PriorityCities {
		if strings.EqualFold(city, priority) {
			return true
		}
	}

	return false
}

// Verdict labels a final score using the recommendation thresholds.
func (r *Rules) Verdict(score float64) string {
	switch {
	case score >= r.RecommendedScore:
		return VerdictRecommended
	case score >= r.ConsiderScore:
		return VerdictToConsider
	default:
		return VerdictNotPriority
	}
}
