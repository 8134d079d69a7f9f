package ingestion

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gomecano/cv-matcher/internal/candidate"
)

const (
	// CVs conventionally carry the candidate name near the top.
	nameScanLines = 5
	// Numbers at or above this are extraction noise (phone fragments,
	// postal codes), never years of experience.
	maxPlausibleYears = 50
	excerptRunes      = 500
)

// All patterns are evaluated; the largest plausible match wins, favoring the
// strongest explicit experience claim.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*years?\s*of\s*experience`),
	regexp.MustCompile(`experience\s*:\s*(\d+)`),
	regexp.MustCompile(`(\d+)\s*years?\s*in\s*mechanics`),
	regexp.MustCompile(`(\d+)\s*years?`),
	regexp.MustCompile(`for\s*(\d+)\s*years?`),
}

// titleCase builds its Caser per call: a cases.Caser carries transformer
// state across uses and must not be shared between goroutines.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// Extractor recovers profile fields from CV text using an immutable skill
// taxonomy and city gazetteer. All extractors are pure and tolerant of
// missing matches: they return a documented default, never an error.
type Extractor struct {
	taxonomy  []SkillCategory
	gazetteer []string
}

func New() *Extractor {
	return NewWithRules(DefaultTaxonomy(), DefaultGazetteer())
}

// NewWithRules builds an extractor with an alternate taxonomy and gazetteer.
// The slices are not copied; callers must not mutate them afterwards.
func NewWithRules(taxonomy []SkillCategory, gazetteer []string) *Extractor {
	return &Extractor{
		taxonomy:  taxonomy,
		gazetteer: gazetteer,
	}
}

// ExtractName scans the first lines of the unnormalized text (case must be
// preserved to detect a name line). A line qualifies with 2-4 whitespace
// tokens and at least one upper-case rune; the first qualifying line wins,
// title-cased. This is a heuristic, not a guarantee.
func (e *Extractor) ExtractName(raw string) string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		tokens := strings.Fields(line)
		if len(tokens) < 2 || len(tokens) > 4 {
			continue
		}
		if !strings.ContainsFunc(line, unicode.IsUpper) {
			continue
		}

		return titleCase(line)
	}

	return candidate.UnknownName
}

// ExtractSkills returns the distinct taxonomy tags whose synonyms occur in
// the normalized text, in taxonomy-definition order. It never returns a
// synonym string, only category tags.
func (e *Extractor) ExtractSkills(normalized string) []string {
	var found []string

	for _, category := range e.taxonomy {
		for _, keyword := range category.Keywords {
			if strings.Contains(normalized, keyword) {
				found = append(found, category.Tag)
				break
			}
		}
	}

	return found
}

// ExtractCity returns the title-cased form of the first gazetteer entry
// found in the normalized text, in gazetteer order.
func (e *Extractor) ExtractCity(normalized string) string {
	for _, city := range e.gazetteer {
		if strings.Contains(normalized, city) {
			return titleCase(city)
		}
	}

	return candidate.UnknownCity
}

// ExtractExperience returns the largest plausible year count matched by any
// experience pattern, or 0 when nothing qualifies.
func (e *Extractor) ExtractExperience(normalized string) int {
	maxYears := 0

	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(normalized, -1) {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if years > maxYears && years < maxPlausibleYears {
				maxYears = years
			}
		}
	}

	return maxYears
}

// BuildProfile assembles a Profile from raw CV text. It returns nil when the
// text is empty: there is nothing to extract, which is not an error. The
// builder has no side effects; persistence and logging belong to the caller.
func (e *Extractor) BuildProfile(raw string) *candidate.Profile {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	normalized := Normalize(raw)

	return &candidate.Profile{
		Name:            e.ExtractName(raw),
		City:            e.ExtractCity(normalized),
		Skills:          e.ExtractSkills(normalized),
		ExperienceYears: e.ExtractExperience(normalized),
		SourceExcerpt:   excerpt(normalized),
	}
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptRunes {
		return s
	}

	return string(runes[:excerptRunes])
}
