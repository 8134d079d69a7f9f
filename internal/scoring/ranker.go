package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gomecano/cv-matcher/internal/candidate"
)

// RankedCandidate wraps one scored profile with echoed identity fields so
// consumers can render the ranking without further lookups.
type RankedCandidate struct {
	Name            string   `json:"name"`
	SourceFile      string   `json:"source_file,omitempty"`
	Score           float64  `json:"score"`
	Verdict         string   `json:"verdict"`
	Justifications  []string `json:"justifications"`
	City            string   `json:"city"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
}

type Ranking struct {
	Items []*RankedCandidate
}

// Rank scores every profile against the request independently and returns
// the candidates sorted by score descending. The sort is stable: equal
// scores keep their relative input order. An empty input yields an empty
// ranking, never an error.
func (s *Scorer) Rank(profiles *candidate.Profiles, request *candidate.Request) *Ranking {
	ranking := &Ranking{Items: make([]*RankedCandidate, 0, profiles.Len())}

	for _, profile := range profiles.Items {
		result := s.Score(profile, request)

		ranking.Items = append(ranking.Items, &RankedCandidate{
			Name:            profile.Name,
			SourceFile:      profile.SourceFile,
			Score:           result.Score,
			Verdict:         s.rules.Verdict(result.Score),
			Justifications:  result.Justifications,
			City:            profile.City,
			ExperienceYears: profile.ExperienceYears,
			Skills:          profile.Skills,
		})
	}

	sort.SliceStable(ranking.Items, func(i, j int) bool {
		return ranking.Items[i].Score > ranking.Items[j].Score
	})

	return ranking
}

func (r *Ranking) Len() int {
	return len(r.Items)
}

// Top returns the best candidate, or nil for an empty ranking.
func (r *Ranking) Top() *RankedCandidate {
	if len(r.Items) == 0 {
		return nil
	}

	return r.Items[0]
}

func (r *Ranking) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "ranking_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}

	return file.Name(), nil
}

// ReportByCity groups ranked candidates by their extracted city.
func (r *Ranking) ReportByCity() map[string][]map[string]string {
	report := make(map[string][]map[string]string)

	for _, c := range r.Items {
		report[c.City] = append(report[c.City], map[string]string{
			"name":       c.Name,
			"source":     c.SourceFile,
			"score":      fmt.Sprintf("%.1f", c.Score),
			"verdict":    c.Verdict,
			"experience": fmt.Sprintf("%d years", c.ExperienceYears),
			"skills":     strings.Join(c.Skills, ", "),
		})
	}

	return report
}
