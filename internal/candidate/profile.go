package candidate

// Sentinels returned by the extractors when a field cannot be recovered
// from the CV text.
const (
	UnknownName = "Unknown Name"
	UnknownCity = "Unknown"
)

// Profile represents one mechanic candidate extracted from a CV. A profile
// is built once per extraction run and never mutated by the core afterwards;
// attaching the source filename happens at the command boundary.
type Profile struct {
	Name            string   `json:"name"`
	City            string   `json:"city"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	SourceFile      string   `json:"source_file,omitempty"`
	SourceExcerpt   string   `json:"source_excerpt,omitempty"`
}

// HasSkill reports whether the profile carries the given skill tag.
func (p *Profile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}

	return false
}

// IsEmpty reports whether every extractor fell back to its default, meaning
// the CV text carried no recoverable signal.
func (p *Profile) IsEmpty() bool {
	return p.Name == UnknownName &&
		p.City == UnknownCity &&
		len(p.Skills) == 0 &&
		p.ExperienceYears == 0
}

type Profiles struct {
	Items []*Profile
}

func (p *Profiles) Len() int {
	return len(p.Items)
}

func (p *Profiles) Names() []string {
	names := make([]string, 0, len(p.Items))

	for _, profile := range p.Items {
		names = append(names, profile.Name)
	}

	return names
}

func (p *Profiles) FindByName(name string) *Profile {
	for _, profile := range p.Items {
		if profile.Name == name {
			return profile
		}
	}

	return nil
}

// ExcludeBySourceFile removes profiles whose source file is in targets and
// returns the removed source files. Removal preserves the remaining input
// order: ranking ties keep it.
func (p *Profiles) ExcludeBySourceFile(targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	drop := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		drop[target] = struct{}{}
	}

	var excluded []string
	kept := make([]*Profile, 0, len(p.Items))
	for _, profile := range p.Items {
		if _, ok := drop[profile.SourceFile]; ok {
			excluded = append(excluded, profile.SourceFile)
			continue
		}
		kept = append(kept, profile)
	}
	p.Items = kept

	return excluded
}
